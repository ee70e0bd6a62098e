package repository

import (
	"context"
	"errors"

	"toolshed/internal/infra"
	"toolshed/internal/infra/db"

	"github.com/jackc/pgx/v5"
)

type ReportRepository struct{}

func NewReportRepository() *ReportRepository {
	return &ReportRepository{}
}

func (r *ReportRepository) Create(ctx context.Context, dbtx db.DBTX, toolID, userID int64, description string, imageURL *string) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, `
		INSERT INTO damage_reports (tool_id, user_id, description, image_url, resolved)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id`,
		toolID, userID, description, imageURL,
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create damage report", err, pgErrKind(err))
	}
	return id, nil
}

func (r *ReportRepository) ToolIDOf(ctx context.Context, dbtx db.DBTX, id int64) (int64, error) {
	var toolID int64
	err := dbtx.QueryRow(ctx, `SELECT tool_id FROM damage_reports WHERE id = $1`, id).Scan(&toolID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, infra.WrapRepoErr("report not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to find damage report", err)
	}
	return toolID, nil
}

func (r *ReportRepository) Resolve(ctx context.Context, dbtx db.DBTX, id int64) error {
	tag, err := dbtx.Exec(ctx, `UPDATE damage_reports SET resolved = TRUE WHERE id = $1`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to resolve damage report", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("report not found", nil, infra.KindNotFound)
	}
	return nil
}
