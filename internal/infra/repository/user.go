package repository

import (
	"context"

	"toolshed/internal/infra"
	"toolshed/internal/infra/db"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, dbtx db.DBTX, name, email, passwordHash, role string) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		name, email, passwordHash, role,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create user", err, pgErrKind(err))
	}
	return id, nil
}
