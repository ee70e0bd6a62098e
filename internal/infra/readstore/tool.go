package readstore

import (
	"context"
	"errors"
	"time"

	"toolshed/internal/infra"
	"toolshed/internal/infra/db"
	"toolshed/internal/usecase/queries"
	"toolshed/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type ToolReadStore struct {
	db db.DBTX
}

func NewToolReadStore(dbtx db.DBTX) *ToolReadStore {
	return &ToolReadStore{db: dbtx}
}

// FindAllWithAvailability derives each tool's status from its reservations:
// a tool is in use when an approved/active reservation covers the given day.
func (r *ToolReadStore) FindAllWithAvailability(ctx context.Context, asOf time.Time) ([]*queries.ToolView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT t.id, t.name, t.description, t.category, t.image_url,
		       CASE WHEN b.tool_id IS NOT NULL THEN 'In Use' ELSE 'Available' END
		FROM tools t
		LEFT JOIN (
			SELECT DISTINCT tool_id
			FROM reservations
			WHERE status IN ('approved', 'active')
			  AND start_date <= $1
			  AND end_date >= $1
		) b ON t.id = b.tool_id
		ORDER BY t.id DESC`,
		asOf,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list tools", err)
	}
	defer rows.Close()

	result := []*queries.ToolView{}
	for rows.Next() {
		var view queries.ToolView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.Category, &view.ImageURL, &view.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan tool row", err)
		}
		result = append(result, &view)
	}
	return result, rows.Err()
}

func (r *ToolReadStore) HasBlockingReservation(ctx context.Context, toolID int64, asOf time.Time) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE tool_id = $1
			  AND status IN ('approved', 'active')
			  AND start_date <= $2
			  AND end_date >= $2
		)`,
		toolID, asOf,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check tool availability", err)
	}
	return exists, nil
}

func (r *ToolReadStore) FindViewByID(ctx context.Context, id int64, asOf time.Time) (*queries.ToolView, error) {
	var view queries.ToolView
	err := r.db.QueryRow(ctx, `
		SELECT t.id, t.name, t.description, t.category, t.image_url,
		       CASE WHEN EXISTS (
		           SELECT 1 FROM reservations
		           WHERE tool_id = t.id
		             AND status IN ('approved', 'active')
		             AND start_date <= $2
		             AND end_date >= $2
		       ) THEN 'In Use' ELSE 'Available' END
		FROM tools t
		WHERE t.id = $1`,
		id, asOf,
	).Scan(&view.ID, &view.Name, &view.Description, &view.Category, &view.ImageURL, &view.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("tool not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tool by ID", err)
	}
	return &view, nil
}

// FindByID returns the command-side snapshot used for ownership checks.
func (r *ToolReadStore) FindByID(ctx context.Context, id int64) (*shared.ToolSnapshot, error) {
	var snap shared.ToolSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, admin_id, name, image_url
		FROM tools
		WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.AdminID, &snap.Name, &snap.ImageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("tool not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find tool by ID", err)
	}
	return &snap, nil
}
