package user

import (
	"context"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	Create(ctx context.Context, newUser User) (User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	LinkGoogleAccount(ctx context.Context, googleID string, email string) (User, error)
	// ListAll returns the full roster, newest first.
	ListAll(ctx context.Context) ([]User, error)
	// ListRecent returns the most recently registered users.
	ListRecent(ctx context.Context, limit int) ([]User, error)
	// CountByRole returns total, admin and member counts in one round trip.
	CountByRole(ctx context.Context) (total, admins, members int64, err error)
}
