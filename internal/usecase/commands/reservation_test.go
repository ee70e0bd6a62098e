//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"toolshed/internal/domain/reservation"
	"toolshed/internal/infra"
	"toolshed/internal/infra/db"
	"toolshed/internal/pkg/clock"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/usecase/commands"
	"toolshed/internal/usecase/queries"
	"toolshed/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ----------------------------------------------------------------------------
// In-memory fakes implementing the unit-of-work ports. Transactions are not
// simulated; every mutation applies immediately, which is enough to verify
// the command logic and the cascade semantics.
// ----------------------------------------------------------------------------

type fakeReservation struct {
	ID         int64
	ToolID     int64
	UserID     int64
	StartDate  time.Time
	EndDate    time.Time
	Status     string
	ApprovedAt *time.Time
	ApprovedBy *int64
}

type fakeStore struct {
	tools        map[int64]*shared.ToolSnapshot
	reservations map[int64]*fakeReservation
	nextID       int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		tools:        map[int64]*shared.ToolSnapshot{},
		reservations: map[int64]*fakeReservation{},
		nextID:       1,
	}
}

func (s *fakeStore) addTool(id, adminID int64) {
	s.tools[id] = &shared.ToolSnapshot{ID: id, AdminID: adminID, Name: "drill"}
}

func (s *fakeStore) addReservation(toolID, userID int64, start, end, status string) int64 {
	id := s.nextID
	s.nextID++
	s.reservations[id] = &fakeReservation{
		ID:        id,
		ToolID:    toolID,
		UserID:    userID,
		StartDate: mustDate(start),
		EndDate:   mustDate(end),
		Status:    status,
	}
	return id
}

func mustDate(s string) time.Time {
	t, err := time.Parse(reservation.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func notFound(msg string) error {
	return infra.WrapRepoErr(msg, nil, infra.KindNotFound)
}

type fakeUoW struct {
	store *fakeStore
}

func (u *fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, &fakeTx{store: u.store})
}

func (u *fakeUoW) WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return fn(ctx, nil)
}

func (u *fakeUoW) CommandReads() shared.CommandReads {
	return &fakeReads{store: u.store}
}

type fakeTx struct {
	store *fakeStore
}

func (t *fakeTx) DB() db.DBTX                                { return nil }
func (t *fakeTx) Reservations() shared.ReservationRepository { return &fakeResRepo{store: t.store} }
func (t *fakeTx) Tools() shared.ToolRepository               { return nil }
func (t *fakeTx) Users() shared.UserRepository               { return nil }
func (t *fakeTx) Reviews() shared.ReviewRepository           { return nil }
func (t *fakeTx) Reports() shared.ReportRepository           { return nil }
func (t *fakeTx) Reads() shared.CommandReads                 { return &fakeReads{store: t.store} }

type fakeReads struct {
	store *fakeStore
}

func (r *fakeReads) ToolByID(_ context.Context, id int64) (*shared.ToolSnapshot, error) {
	tool, ok := r.store.tools[id]
	if !ok {
		return nil, notFound("tool not found")
	}
	return tool, nil
}

func (r *fakeReads) ReservationByID(_ context.Context, id int64) (*shared.ReservationSnapshot, error) {
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return snapshotOf(res), nil
}

func snapshotOf(res *fakeReservation) *shared.ReservationSnapshot {
	return &shared.ReservationSnapshot{
		ID:        res.ID,
		ToolID:    res.ToolID,
		UserID:    res.UserID,
		StartDate: res.StartDate,
		EndDate:   res.EndDate,
		Status:    res.Status,
	}
}

type fakeResRepo struct {
	store *fakeStore
}

func (r *fakeResRepo) Create(_ context.Context, _ db.DBTX, res *reservation.Reservation) (int64, error) {
	id := r.store.nextID
	r.store.nextID++
	r.store.reservations[id] = &fakeReservation{
		ID:        id,
		ToolID:    res.ToolID(),
		UserID:    res.UserID(),
		StartDate: res.Dates().Start(),
		EndDate:   res.Dates().End(),
		Status:    res.Status().String(),
	}
	return id, nil
}

func (r *fakeResRepo) FindForUpdate(_ context.Context, _ db.DBTX, id int64) (*shared.ReservationSnapshot, error) {
	res, ok := r.store.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return snapshotOf(res), nil
}

func (r *fakeResRepo) LockToolReservations(_ context.Context, _ db.DBTX, _ int64) error {
	return nil
}

func (r *fakeResRepo) HasBlockingOverlap(_ context.Context, _ db.DBTX, toolID int64, dates reservation.DateRange, excludeID int64) (bool, error) {
	for _, res := range r.store.reservations {
		if res.ToolID != toolID || res.ID == excludeID {
			continue
		}
		if res.Status != "approved" && res.Status != "active" {
			continue
		}
		if !(res.EndDate.Before(dates.Start()) || res.StartDate.After(dates.End())) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeResRepo) RejectOverlappingPending(_ context.Context, _ db.DBTX, toolID, excludeID int64, dates reservation.DateRange) (int64, error) {
	var count int64
	for _, res := range r.store.reservations {
		if res.ToolID != toolID || res.ID == excludeID || res.Status != "pending" {
			continue
		}
		if !(res.EndDate.Before(dates.Start()) || res.StartDate.After(dates.End())) {
			res.Status = "rejected"
			count++
		}
	}
	return count, nil
}

func (r *fakeResRepo) Approve(_ context.Context, _ db.DBTX, id, adminID int64, approvedAt time.Time) error {
	res, ok := r.store.reservations[id]
	if !ok {
		return notFound("reservation not found")
	}
	res.Status = "approved"
	res.ApprovedAt = &approvedAt
	res.ApprovedBy = &adminID
	return nil
}

func (r *fakeResRepo) UpdateStatus(_ context.Context, _ db.DBTX, id int64, status reservation.Status) error {
	res, ok := r.store.reservations[id]
	if !ok {
		return notFound("reservation not found")
	}
	res.Status = status.String()
	return nil
}

type fakeResQueries struct {
	store *fakeStore
}

func (q *fakeResQueries) ListByUser(context.Context, int64) ([]*queries.ReservationListItem, error) {
	return nil, nil
}

func (q *fakeResQueries) ListPendingForAdmin(context.Context, int64) ([]*queries.PendingReservationItem, error) {
	return nil, nil
}

func (q *fakeResQueries) ListForAdmin(context.Context, int64) ([]*queries.ReservationView, error) {
	return nil, nil
}

func (q *fakeResQueries) GetByID(_ context.Context, id int64) (*queries.ReservationView, error) {
	res, ok := q.store.reservations[id]
	if !ok {
		return nil, notFound("reservation not found")
	}
	return &queries.ReservationView{
		ID:         res.ID,
		ToolID:     res.ToolID,
		UserID:     res.UserID,
		StartDate:  res.StartDate.Format(reservation.DateLayout),
		EndDate:    res.EndDate.Format(reservation.DateLayout),
		Status:     res.Status,
		ApprovedAt: res.ApprovedAt,
		ApprovedBy: res.ApprovedBy,
	}, nil
}

type noopCache struct{}

func (noopCache) GetStatus(context.Context, int64, time.Time) (string, bool) { return "", false }
func (noopCache) SetStatus(context.Context, int64, time.Time, string)       {}
func (noopCache) Invalidate(context.Context, int64)                         {}

var fixedNow = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newCommands(store *fakeStore) commands.ReservationCommands {
	return commands.NewReservationCommands(
		&fakeUoW{store: store},
		&fakeResQueries{store: store},
		noopCache{},
		clock.NewMockClock(fixedNow),
	)
}

// ----------------------------------------------------------------------------
// Submit
// ----------------------------------------------------------------------------

func TestSubmit(t *testing.T) {
	ctx := context.Background()

	const (
		adminID  = int64(1)
		memberID = int64(2)
		toolID   = int64(10)
	)

	valid := commands.SubmitReservationInput{
		ToolID:    toolID,
		StartDate: "2026-06-10",
		EndDate:   "2026-06-15",
	}

	t.Run("valid request is stored as pending", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)

		view, err := newCommands(store).Submit(ctx, memberID, valid)
		require.NoError(t, err)

		assert.Equal(t, "pending", view.Status)
		assert.Equal(t, toolID, view.ToolID)
		assert.Equal(t, memberID, view.UserID)
		assert.Equal(t, "2026-06-10", view.StartDate)
		assert.Equal(t, "2026-06-15", view.EndDate)
	})

	t.Run("missing fields beat other validations", func(t *testing.T) {
		store := newFakeStore()
		cmds := newCommands(store)

		for _, in := range []commands.SubmitReservationInput{
			{ToolID: 0, StartDate: "2026-06-10", EndDate: "2026-06-15"},
			{ToolID: toolID, StartDate: "", EndDate: "2026-06-15"},
			{ToolID: toolID, StartDate: "2026-06-10", EndDate: ""},
		} {
			_, err := cmds.Submit(ctx, memberID, in)
			assert.ErrorIs(t, err, errs.ErrMissingFields)
		}
	})

	t.Run("invalid dates", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		cmds := newCommands(store)

		for _, in := range []commands.SubmitReservationInput{
			{ToolID: toolID, StartDate: "junk", EndDate: "2026-06-15"},
			{ToolID: toolID, StartDate: "2026-06-15", EndDate: "2026-06-10"},
			{ToolID: toolID, StartDate: "2026-06-10", EndDate: "2026-06-10"},
		} {
			_, err := cmds.Submit(ctx, memberID, in)
			assert.ErrorIs(t, err, errs.ErrInvalidDates)
		}
	})

	t.Run("unknown tool", func(t *testing.T) {
		store := newFakeStore()

		_, err := newCommands(store).Submit(ctx, memberID, valid)
		assert.ErrorIs(t, err, errs.ErrToolNotFound)
	})

	t.Run("owner cannot reserve own tool", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)

		_, err := newCommands(store).Submit(ctx, adminID, valid)
		assert.ErrorIs(t, err, errs.ErrOwnTool)
	})

	t.Run("overlap with approved reservation conflicts", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		store.addReservation(toolID, 3, "2026-06-12", "2026-06-20", "approved")

		_, err := newCommands(store).Submit(ctx, memberID, valid)
		assert.ErrorIs(t, err, errs.ErrDateConflict)
	})

	t.Run("overlap with pending reservation is allowed", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		store.addReservation(toolID, 3, "2026-06-12", "2026-06-20", "pending")

		view, err := newCommands(store).Submit(ctx, memberID, valid)
		require.NoError(t, err)
		assert.Equal(t, "pending", view.Status)
	})

	t.Run("overlap with closed reservation is allowed", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		store.addReservation(toolID, 3, "2026-06-12", "2026-06-20", "closed")

		_, err := newCommands(store).Submit(ctx, memberID, valid)
		assert.NoError(t, err)
	})
}

// ----------------------------------------------------------------------------
// Decide
// ----------------------------------------------------------------------------

func TestDecide(t *testing.T) {
	ctx := context.Background()

	const (
		adminID  = int64(1)
		otherID  = int64(9)
		memberID = int64(2)
		toolID   = int64(10)
	)

	t.Run("approving rejects all overlapping pendings atomically", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		target := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "pending")
		overlapping1 := store.addReservation(toolID, 3, "2026-06-12", "2026-06-20", "pending")
		overlapping2 := store.addReservation(toolID, 4, "2026-06-15", "2026-06-16", "pending")
		disjoint := store.addReservation(toolID, 5, "2026-06-20", "2026-06-25", "pending")

		view, err := newCommands(store).Decide(ctx, target, adminID, "approved")
		require.NoError(t, err)

		assert.Equal(t, "approved", view.Status)
		require.NotNil(t, view.ApprovedBy)
		assert.Equal(t, adminID, *view.ApprovedBy)
		require.NotNil(t, view.ApprovedAt)
		assert.Equal(t, fixedNow, *view.ApprovedAt)

		assert.Equal(t, "rejected", store.reservations[overlapping1].Status)
		assert.Equal(t, "rejected", store.reservations[overlapping2].Status)
		assert.Equal(t, "pending", store.reservations[disjoint].Status)
	})

	t.Run("pendings on other tools survive a cascade", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		store.addTool(11, adminID)
		target := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "pending")
		otherTool := store.addReservation(11, 3, "2026-06-10", "2026-06-15", "pending")

		_, err := newCommands(store).Decide(ctx, target, adminID, "approved")
		require.NoError(t, err)

		assert.Equal(t, "pending", store.reservations[otherTool].Status)
	})

	t.Run("invalid decision string", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		target := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "pending")

		_, err := newCommands(store).Decide(ctx, target, adminID, "pending")
		assert.ErrorIs(t, err, errs.ErrInvalidDecision)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		store := newFakeStore()

		_, err := newCommands(store).Decide(ctx, 999, adminID, "approved")
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})

	t.Run("only the tool owner can decide", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		target := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "pending")

		_, err := newCommands(store).Decide(ctx, target, otherID, "approved")
		assert.ErrorIs(t, err, errs.ErrNotToolOwner)
		assert.Equal(t, "pending", store.reservations[target].Status)
	})

	t.Run("rejected reservation cannot be approved", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		target := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "rejected")

		_, err := newCommands(store).Decide(ctx, target, adminID, "approved")
		assert.ErrorIs(t, err, errs.ErrNotPending)
	})

	t.Run("approval re-checks blocking overlap", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		target := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "pending")
		store.addReservation(toolID, 3, "2026-06-14", "2026-06-18", "approved")

		_, err := newCommands(store).Decide(ctx, target, adminID, "approved")
		assert.ErrorIs(t, err, errs.ErrDateConflict)
		assert.Equal(t, "pending", store.reservations[target].Status)
	})

	t.Run("reject leaves other pendings alone", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		target := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "pending")
		other := store.addReservation(toolID, 3, "2026-06-12", "2026-06-20", "pending")

		view, err := newCommands(store).Decide(ctx, target, adminID, "rejected")
		require.NoError(t, err)

		assert.Equal(t, "rejected", view.Status)
		assert.Equal(t, "pending", store.reservations[other].Status)
	})

	t.Run("activation requires an approved reservation", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		approved := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "approved")
		pending := store.addReservation(toolID, 3, "2026-06-20", "2026-06-25", "pending")

		view, err := newCommands(store).Decide(ctx, approved, adminID, "active")
		require.NoError(t, err)
		assert.Equal(t, "active", view.Status)

		_, err = newCommands(store).Decide(ctx, pending, adminID, "active")
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

// ----------------------------------------------------------------------------
// Close
// ----------------------------------------------------------------------------

func TestClose(t *testing.T) {
	ctx := context.Background()

	const (
		adminID  = int64(1)
		memberID = int64(2)
		toolID   = int64(10)
	)

	t.Run("approved reservation can be closed by its member", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		id := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "approved")

		view, err := newCommands(store).Close(ctx, id, memberID)
		require.NoError(t, err)
		assert.Equal(t, "closed", view.Status)
	})

	t.Run("active reservation can be closed", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		id := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "active")

		view, err := newCommands(store).Close(ctx, id, memberID)
		require.NoError(t, err)
		assert.Equal(t, "closed", view.Status)
	})

	t.Run("pending and closed reservations cannot be closed", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		pending := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "pending")
		closed := store.addReservation(toolID, memberID, "2026-07-10", "2026-07-15", "closed")

		cmds := newCommands(store)
		_, err := cmds.Close(ctx, pending, memberID)
		assert.ErrorIs(t, err, errs.ErrNotCloseable)
		_, err = cmds.Close(ctx, closed, memberID)
		assert.ErrorIs(t, err, errs.ErrNotCloseable)
	})

	t.Run("other members' reservations look absent", func(t *testing.T) {
		store := newFakeStore()
		store.addTool(toolID, adminID)
		id := store.addReservation(toolID, memberID, "2026-06-10", "2026-06-15", "approved")

		_, err := newCommands(store).Close(ctx, id, 99)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
		assert.Equal(t, "approved", store.reservations[id].Status)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		store := newFakeStore()

		_, err := newCommands(store).Close(ctx, 404, memberID)
		assert.ErrorIs(t, err, errs.ErrReservationNotFound)
	})
}
