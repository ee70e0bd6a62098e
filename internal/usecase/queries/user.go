package queries

import "context"

type UserReadStore interface {
	// FindByEmail also returns the stored password hash for credential checks.
	FindByEmail(ctx context.Context, email string) (*AuthorizedUserView, string, error)
	FindByID(ctx context.Context, id int64) (*AuthorizedUserView, error)
}
