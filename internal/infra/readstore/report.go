package readstore

import (
	"context"

	"toolshed/internal/infra"
	"toolshed/internal/infra/db"
	"toolshed/internal/usecase/queries"
)

type ReportReadStore struct {
	db db.DBTX
}

func NewReportReadStore(dbtx db.DBTX) *ReportReadStore {
	return &ReportReadStore{db: dbtx}
}

const reportSelect = `
	SELECT dr.id, dr.tool_id, t.name, dr.user_id, u.name, dr.description, dr.image_url, dr.resolved, dr.created_at
	FROM damage_reports dr
	JOIN tools t ON dr.tool_id = t.id
	JOIN users u ON dr.user_id = u.id`

func (r *ReportReadStore) FindAll(ctx context.Context) ([]*queries.ReportView, error) {
	rows, err := r.db.Query(ctx, reportSelect+` ORDER BY dr.id DESC`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find damage reports", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

func (r *ReportReadStore) FindByAdminID(ctx context.Context, adminID int64) ([]*queries.ReportView, error) {
	rows, err := r.db.Query(ctx, reportSelect+` WHERE t.admin_id = $1 ORDER BY dr.created_at DESC`, adminID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find damage reports by admin", err)
	}
	defer rows.Close()
	return scanReports(rows)
}

type reportRows interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanReports(rows reportRows) ([]*queries.ReportView, error) {
	result := []*queries.ReportView{}
	for rows.Next() {
		var view queries.ReportView
		err := rows.Scan(
			&view.ID, &view.ToolID, &view.ToolName, &view.UserID, &view.Reporter,
			&view.Description, &view.ImageURL, &view.Resolved, &view.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan damage report row", err)
		}
		result = append(result, &view)
	}
	return result, rows.Err()
}
