package readstore

import (
	"context"
	"errors"
	"time"

	"toolshed/internal/domain/reservation"
	"toolshed/internal/infra"
	"toolshed/internal/infra/db"
	"toolshed/internal/usecase/queries"
	"toolshed/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByUserID(ctx context.Context, userID int64) ([]*queries.ReservationListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.tool_id, t.name, r.start_date, r.end_date, r.status
		FROM reservations r
		JOIN tools t ON r.tool_id = t.id
		WHERE r.user_id = $1
		ORDER BY r.start_date DESC`,
		userID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by user", err)
	}
	defer rows.Close()

	result := []*queries.ReservationListItem{}
	for rows.Next() {
		var (
			item       queries.ReservationListItem
			start, end time.Time
		)
		if err := rows.Scan(&item.ID, &item.ToolID, &item.ToolName, &start, &end, &item.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan reservation row", err)
		}
		item.StartDate = start.Format(reservation.DateLayout)
		item.EndDate = end.Format(reservation.DateLayout)
		result = append(result, &item)
	}
	return result, rows.Err()
}

// FindPendingByAdminID feeds the approval queue: oldest request first.
func (r *ReservationReadStore) FindPendingByAdminID(ctx context.Context, adminID int64) ([]*queries.PendingReservationItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.tool_id, t.name, u.name, u.email, r.start_date, r.end_date, r.status
		FROM reservations r
		JOIN tools t ON r.tool_id = t.id
		JOIN users u ON r.user_id = u.id
		WHERE r.status = 'pending' AND t.admin_id = $1
		ORDER BY r.id ASC`,
		adminID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find pending reservations", err)
	}
	defer rows.Close()

	result := []*queries.PendingReservationItem{}
	for rows.Next() {
		var (
			item       queries.PendingReservationItem
			start, end time.Time
		)
		if err := rows.Scan(&item.ID, &item.ToolID, &item.ToolName, &item.UserName, &item.UserEmail, &start, &end, &item.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan pending reservation row", err)
		}
		item.StartDate = start.Format(reservation.DateLayout)
		item.EndDate = end.Format(reservation.DateLayout)
		result = append(result, &item)
	}
	return result, rows.Err()
}

func (r *ReservationReadStore) FindByAdminID(ctx context.Context, adminID int64) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT r.id, r.tool_id, t.name, r.user_id, u.name, u.email,
		       r.start_date, r.end_date, r.status, r.created_at, r.approved_at, r.approved_by
		FROM reservations r
		JOIN tools t ON r.tool_id = t.id
		JOIN users u ON r.user_id = u.id
		WHERE t.admin_id = $1
		ORDER BY r.id DESC`,
		adminID,
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find reservations by admin", err)
	}
	defer rows.Close()

	result := []*queries.ReservationView{}
	for rows.Next() {
		view, err := scanReservationView(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, view)
	}
	return result, rows.Err()
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT r.id, r.tool_id, t.name, r.user_id, u.name, u.email,
		       r.start_date, r.end_date, r.status, r.created_at, r.approved_at, r.approved_by
		FROM reservations r
		JOIN tools t ON r.tool_id = t.id
		JOIN users u ON r.user_id = u.id
		WHERE r.id = $1`,
		id,
	)
	return scanReservationView(row)
}

// FindSnapshotByID is the command-side read; no joins, no locking.
func (r *ReservationReadStore) FindSnapshotByID(ctx context.Context, id int64) (*shared.ReservationSnapshot, error) {
	var snap shared.ReservationSnapshot
	err := r.db.QueryRow(ctx, `
		SELECT id, tool_id, user_id, start_date, end_date, status
		FROM reservations
		WHERE id = $1`,
		id,
	).Scan(&snap.ID, &snap.ToolID, &snap.UserID, &snap.StartDate, &snap.EndDate, &snap.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find reservation by ID", err)
	}
	return &snap, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservationView(row rowScanner) (*queries.ReservationView, error) {
	var (
		view       queries.ReservationView
		start, end time.Time
	)
	err := row.Scan(
		&view.ID, &view.ToolID, &view.ToolName, &view.UserID, &view.UserName, &view.UserEmail,
		&start, &end, &view.Status, &view.CreatedAt, &view.ApprovedAt, &view.ApprovedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation view", err)
	}
	view.StartDate = start.Format(reservation.DateLayout)
	view.EndDate = end.Format(reservation.DateLayout)
	return &view, nil
}
