package commands

//go:generate mockgen -source=$GOFILE -destination=../../../tests/mock/commands/$GOFILE -package=commandsmock

import (
	"context"

	"pos-terminal/internal/domain/auth"
	"pos-terminal/internal/domain/cart"
	"pos-terminal/internal/domain/catalog"
	"pos-terminal/internal/domain/settings"
	"pos-terminal/internal/usecase/queries"

	"github.com/google/uuid"
)

// AccountAPI is the remote account service as seen through the authenticated gateway.
type AccountAPI interface {
	Login(ctx context.Context, creds auth.Credentials) (string, error)
	Logout(ctx context.Context, refreshToken string) error
	VerifyToken(ctx context.Context) error
	Me(ctx context.Context) (*queries.UserView, error)
	Register(ctx context.Context, reg auth.Registration) (*queries.UserView, error)
	Activate(ctx context.Context, a auth.Activation) error
	ResetPassword(ctx context.Context, email string) error
	ResetPasswordConfirm(ctx context.Context, p auth.PasswordResetConfirm) error
	VerifyAccount(ctx context.Context, v auth.AccountVerification) error
	RequestAccountVerification(ctx context.Context, userID string) error
	SocialAuthenticate(ctx context.Context, s auth.SocialLogin) (*queries.UserView, error)
}

// CredentialStore is the slice of the terminal's key-value store that holds the session tokens.
type CredentialStore interface {
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, keys ...string) error
}

type SessionNotifier interface {
	LoggedOut()
	FinishLoading(authenticated bool)
}

type ProductFinder interface {
	FindByID(ctx context.Context, id string) (*catalog.Product, error)
	FindByBarcode(ctx context.Context, code string) (*catalog.Product, error)
}

type CartStore interface {
	Load(ctx context.Context) (*cart.Cart, error)
	Save(ctx context.Context, c *cart.Cart) error
}

type HeldOrderStore interface {
	Save(ctx context.Context, order cart.HeldOrder) error
	FindByID(ctx context.Context, id uuid.UUID) (*cart.HeldOrder, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type PreferencesStore interface {
	Load(ctx context.Context) (settings.Preferences, error)
	Save(ctx context.Context, p settings.Preferences) error
}
