package readstore

import (
	"context"

	"toolshed/internal/infra"
	"toolshed/internal/infra/db"
	"toolshed/internal/usecase/queries"
)

type ReviewReadStore struct {
	db db.DBTX
}

func NewReviewReadStore(dbtx db.DBTX) *ReviewReadStore {
	return &ReviewReadStore{db: dbtx}
}

func (r *ReviewReadStore) FindByToolID(ctx context.Context, toolID int64) ([]*queries.ReviewView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.rating, r.comment, u.id, u.name
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.tool_id = $1
		ORDER BY r.id DESC`,
		toolID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reviews by tool", err)
	}
	defer rows.Close()

	result := []*queries.ReviewView{}
	for rows.Next() {
		var view queries.ReviewView
		if err := rows.Scan(&view.ID, &view.Rating, &view.Comment, &view.UserID, &view.UserName); err != nil {
			return nil, infra.WrapRepoErr("failed to scan review row", err)
		}
		result = append(result, &view)
	}
	return result, rows.Err()
}
