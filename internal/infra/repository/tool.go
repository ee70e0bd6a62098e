package repository

import (
	"context"

	"toolshed/internal/infra"
	"toolshed/internal/infra/db"
)

type ToolRepository struct{}

func NewToolRepository() *ToolRepository {
	return &ToolRepository{}
}

func (r *ToolRepository) Create(ctx context.Context, dbtx db.DBTX, adminID int64, name, description, category string, imageURL *string) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, `
		INSERT INTO tools (admin_id, name, description, category, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		adminID, name, description, category, imageURL,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create tool", err, pgErrKind(err))
	}
	return id, nil
}

func (r *ToolRepository) Delete(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, `DELETE FROM tools WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete tool", err, pgErrKind(err))
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("tool not found", nil, infra.KindNotFound)
	}
	return nil
}
