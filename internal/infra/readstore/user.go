package readstore

import (
	"context"
	"errors"

	"toolshed/internal/infra"
	"toolshed/internal/infra/db"
	"toolshed/internal/usecase/queries"

	"github.com/jackc/pgx/v5"
)

type UserReadStore struct {
	db db.DBTX
}

func NewUserReadStore(dbtx db.DBTX) *UserReadStore {
	return &UserReadStore{db: dbtx}
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role
		FROM users
		WHERE email = $1`,
		email,
	).Scan(&view.ID, &view.Name, &view.Email, &hash, &view.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}

func (r *UserReadStore) FindByID(ctx context.Context, id int64) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.db.QueryRow(ctx, `
		SELECT id, name, email, role
		FROM users
		WHERE id = $1`,
		id,
	).Scan(&view.ID, &view.Name, &view.Email, &view.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}
