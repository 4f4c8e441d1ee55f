package user

import "context"

type Repository interface {
	GetLogin(ctx context.Context) (Login, error)
	StoreLogin(ctx context.Context, login Login) error
	// ResetSession returns the whole session state to its initial value.
	ResetSession(ctx context.Context) error
}
