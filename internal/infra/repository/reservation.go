package repository

import (
	"context"
	"errors"
	"time"

	"toolshed/internal/domain/reservation"
	"toolshed/internal/infra"
	"toolshed/internal/infra/db"
	"toolshed/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

// ReservationRepository is the sole writer of reservation rows. Every status
// transition goes through here; rows are never deleted.
type ReservationRepository struct{}

func NewReservationRepository() *ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, dbtx db.DBTX, res *reservation.Reservation) (int64, error) {
	var id int64
	err := dbtx.QueryRow(ctx, `
		INSERT INTO reservations (tool_id, user_id, start_date, end_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		res.ToolID(), res.UserID(), res.Dates().Start(), res.Dates().End(), res.Status().String(),
	).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create reservation", err, pgErrKind(err))
	}
	return id, nil
}

func (r *ReservationRepository) FindForUpdate(ctx context.Context, dbtx db.DBTX, id int64) (*shared.ReservationSnapshot, error) {
	var snap shared.ReservationSnapshot
	err := dbtx.QueryRow(ctx, `
		SELECT id, tool_id, user_id, start_date, end_date, status
		FROM reservations
		WHERE id = $1
		FOR UPDATE`,
		id,
	).Scan(&snap.ID, &snap.ToolID, &snap.UserID, &snap.StartDate, &snap.EndDate, &snap.Status)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	return &snap, nil
}

func (r *ReservationRepository) LockToolReservations(ctx context.Context, dbtx db.DBTX, toolID int64) error {
	rows, err := dbtx.Query(ctx, `
		SELECT id FROM reservations
		WHERE tool_id = $1
		ORDER BY id
		FOR UPDATE`,
		toolID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to lock tool reservations", err)
	}
	rows.Close()
	return rows.Err()
}

func (r *ReservationRepository) HasBlockingOverlap(ctx context.Context, dbtx db.DBTX, toolID int64, dates reservation.DateRange, excludeID int64) (bool, error) {
	var exists bool
	err := dbtx.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM reservations
			WHERE tool_id = $1
			  AND id != $2
			  AND status IN ('approved', 'active')
			  AND NOT (end_date < $3 OR start_date > $4)
		)`,
		toolID, excludeID, dates.Start(), dates.End(),
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check reservation overlap", err)
	}
	return exists, nil
}

func (r *ReservationRepository) RejectOverlappingPending(ctx context.Context, dbtx db.DBTX, toolID, excludeID int64, dates reservation.DateRange) (int64, error) {
	tag, err := dbtx.Exec(ctx, `
		UPDATE reservations
		SET status = 'rejected'
		WHERE tool_id = $1
		  AND id != $2
		  AND status = 'pending'
		  AND NOT (end_date < $3 OR start_date > $4)`,
		toolID, excludeID, dates.Start(), dates.End(),
	)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to reject competing reservations", err)
	}
	return tag.RowsAffected(), nil
}

func (r *ReservationRepository) Approve(ctx context.Context, dbtx db.DBTX, id, adminID int64, approvedAt time.Time) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE reservations
		SET status = 'approved', approved_at = $2, approved_by = $3
		WHERE id = $1`,
		id, approvedAt, adminID,
	)
	if err != nil {
		return infra.WrapRepoErr("failed to approve reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) UpdateStatus(ctx context.Context, dbtx db.DBTX, id int64, status reservation.Status) error {
	tag, err := dbtx.Exec(ctx, `
		UPDATE reservations
		SET status = $2
		WHERE id = $1`,
		id, status.String(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}
