package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"
	"errors"

	"pos-terminal/internal/gateway"
	"pos-terminal/internal/pkg/errs"
)

var (
	ErrNotAuthenticated = errs.New("not authenticated")
	ErrAccountService   = errs.New("account service unavailable")
)

type UserQueries interface {
	GetCurrentUser(ctx context.Context) (*UserView, error)
}

type UserReadStore interface {
	Me(ctx context.Context) (*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context) (*UserView, error) {
	user, err := q.readStore.Me(ctx)
	if err != nil {
		if errors.Is(err, gateway.ErrUnauthorized) {
			return nil, errs.Mark(err, ErrNotAuthenticated)
		}
		return nil, errs.Mark(err, ErrAccountService)
	}
	return user, nil
}
