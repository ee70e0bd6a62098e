package repository

import (
	"context"

	"toolshed/internal/infra"
	"toolshed/internal/infra/db"
)

type ReviewRepository struct{}

func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{}
}

func (r *ReviewRepository) Create(ctx context.Context, dbtx db.DBTX, toolID, userID int64, rating int, comment *string) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, `
		INSERT INTO reviews (tool_id, user_id, rating, comment)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		toolID, userID, rating, comment,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create review", err, pgErrKind(err))
	}
	return id, nil
}
