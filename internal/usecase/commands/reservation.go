package commands

import (
	"context"

	"toolshed/internal/domain/reservation"
	"toolshed/internal/infra"
	"toolshed/internal/pkg/clock"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/usecase/queries"
	"toolshed/internal/usecase/shared"
)

type SubmitReservationInput struct {
	ToolID    int64
	StartDate string
	EndDate   string
}

type ReservationCommands interface {
	// Submit validates a member's request and stores it as pending.
	Submit(ctx context.Context, userID int64, in SubmitReservationInput) (*queries.ReservationView, error)
	// Decide applies an admin decision. Approving cascade-rejects every
	// pending request that overlaps the approved dates, atomically.
	Decide(ctx context.Context, id, adminID int64, decision string) (*queries.ReservationView, error)
	// Close lets the owning member return or cancel a reservation.
	Close(ctx context.Context, id, userID int64) (*queries.ReservationView, error)
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	queries queries.ReservationQueries
	cache   shared.AvailabilityCache
	clock   clock.Clock
}

func NewReservationCommands(
	uow shared.UnitOfWork,
	reservationQueries queries.ReservationQueries,
	cache shared.AvailabilityCache,
	clk clock.Clock,
) ReservationCommands {
	return &reservationCommandsImpl{
		uow:     uow,
		queries: reservationQueries,
		cache:   cache,
		clock:   clk,
	}
}

// Validation order is fixed: field presence, date syntax, tool existence,
// ownership, then the overlap check against committed blocking reservations.
func (c *reservationCommandsImpl) Submit(ctx context.Context, userID int64, in SubmitReservationInput) (*queries.ReservationView, error) {
	if in.ToolID == 0 || in.StartDate == "" || in.EndDate == "" {
		return nil, errs.ErrMissingFields
	}

	dates, err := reservation.ParseDateRange(in.StartDate, in.EndDate)
	if err != nil {
		return nil, err
	}

	var reservationID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		tool, err := tx.Reads().ToolByID(ctx, in.ToolID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrToolNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		res, err := reservation.NewRequest(reservation.ToolSpec{ID: tool.ID, AdminID: tool.AdminID}, userID, dates)
		if err != nil {
			return err
		}

		blocked, err := tx.Reservations().HasBlockingOverlap(ctx, tx.DB(), tool.ID, dates, 0)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if blocked {
			return errs.ErrDateConflict
		}

		reservationID, err = tx.Reservations().Create(ctx, tx.DB(), res)
		if err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return errs.ErrToolNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return c.queries.GetByID(ctx, reservationID)
}

func (c *reservationCommandsImpl) Decide(ctx context.Context, id, adminID int64, decision string) (*queries.ReservationView, error) {
	status, err := reservation.NewDecision(decision)
	if err != nil {
		return nil, err
	}

	var toolID int64
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reads().ReservationByID(ctx, id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		toolID = snap.ToolID

		tool, err := tx.Reads().ToolByID(ctx, snap.ToolID)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if tool.AdminID != adminID {
			return errs.ErrNotToolOwner
		}

		if status == reservation.StatusApproved {
			return c.approve(ctx, tx, snap.ToolID, id, adminID)
		}
		return c.transition(ctx, tx, id, status)
	})
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate(ctx, toolID)
	return c.queries.GetByID(ctx, id)
}

// approve holds every reservation row of the tool under lock, so two admins
// deciding overlapping requests serialize instead of both succeeding.
func (c *reservationCommandsImpl) approve(ctx context.Context, tx shared.Tx, toolID, id, adminID int64) error {
	if err := tx.Reservations().LockToolReservations(ctx, tx.DB(), toolID); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	// Re-read under lock: the pre-lock snapshot may be stale.
	snap, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrReservationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if reservation.Status(snap.Status) != reservation.StatusPending {
		return errs.ErrNotPending
	}

	dates, err := reservation.NewDateRange(snap.StartDate, snap.EndDate)
	if err != nil {
		return err
	}

	blocked, err := tx.Reservations().HasBlockingOverlap(ctx, tx.DB(), toolID, dates, id)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if blocked {
		return errs.ErrDateConflict
	}

	if _, err := tx.Reservations().RejectOverlappingPending(ctx, tx.DB(), toolID, id, dates); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	if err := tx.Reservations().Approve(ctx, tx.DB(), id, adminID, c.clock.Now()); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reservationCommandsImpl) transition(ctx context.Context, tx shared.Tx, id int64, to reservation.Status) error {
	snap, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.ErrReservationNotFound
		}
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	from := reservation.Status(snap.Status)
	switch to {
	case reservation.StatusRejected:
		if from != reservation.StatusPending {
			return errs.ErrNotPending
		}
	case reservation.StatusActive:
		if from != reservation.StatusApproved {
			return errs.ErrInvalidTransition
		}
	case reservation.StatusClosed:
		if !from.Closeable() {
			return errs.ErrNotCloseable
		}
	default:
		return errs.ErrInvalidTransition
	}

	if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, to); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}

func (c *reservationCommandsImpl) Close(ctx context.Context, id, userID int64) (*queries.ReservationView, error) {
	var toolID int64
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, err := tx.Reservations().FindForUpdate(ctx, tx.DB(), id)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrReservationNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		// Other members' reservations are indistinguishable from absent ones.
		if snap.UserID != userID {
			return errs.ErrReservationNotFound
		}
		if !reservation.Status(snap.Status).Closeable() {
			return errs.ErrNotCloseable
		}
		toolID = snap.ToolID

		if err := tx.Reservations().UpdateStatus(ctx, tx.DB(), id, reservation.StatusClosed); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.cache.Invalidate(ctx, toolID)
	return c.queries.GetByID(ctx, id)
}
