package queries

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/queries/$GOFILE -package=queriesmock

import (
	"context"

	"pos-terminal/internal/domain/catalog"
	"pos-terminal/internal/infra"
	"pos-terminal/internal/pkg/errs"
)

type CatalogQueries interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	SearchProducts(ctx context.Context, search, categoryID string) ([]ProductView, error)
	GetProduct(ctx context.Context, id string) (*ProductView, error)
	GetProductByBarcode(ctx context.Context, code string) (*ProductView, error)
}

type CatalogReadStore interface {
	Categories(ctx context.Context) ([]catalog.Category, error)
	Search(ctx context.Context, search, categoryID string) ([]*catalog.Product, error)
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
	FindByBarcode(ctx context.Context, code string) (*catalog.Product, error)
}

type catalogQueriesImpl struct {
	readStore CatalogReadStore
}

func NewCatalogQueries(readStore CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{readStore: readStore}
}

func (q *catalogQueriesImpl) Categories(ctx context.Context) ([]catalog.Category, error) {
	return q.readStore.Categories(ctx)
}

func (q *catalogQueriesImpl) SearchProducts(ctx context.Context, search, categoryID string) ([]ProductView, error) {
	products, err := q.readStore.Search(ctx, search, categoryID)
	if err != nil {
		return nil, err
	}
	views := make([]ProductView, len(products))
	for i, p := range products {
		views[i] = NewProductView(p)
	}
	return views, nil
}

func (q *catalogQueriesImpl) GetProduct(ctx context.Context, id string) (*ProductView, error) {
	p, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err)
	}
	v := NewProductView(p)
	return &v, nil
}

func (q *catalogQueriesImpl) GetProductByBarcode(ctx context.Context, code string) (*ProductView, error) {
	p, err := q.readStore.FindByBarcode(ctx, code)
	if err != nil {
		return nil, notFoundOr(err)
	}
	v := NewProductView(p)
	return &v, nil
}

func notFoundOr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrProductNotFound)
	}
	return err
}
