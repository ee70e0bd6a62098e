//go:build integration

package uow_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"toolshed/internal/infra/cache"
	"toolshed/internal/infra/readstore"
	"toolshed/internal/infra/uow"
	"toolshed/internal/pkg/clock"
	"toolshed/internal/pkg/errs"
	"toolshed/internal/testhelper/dbtest"
	"toolshed/internal/usecase/commands"
	"toolshed/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedUser(t *testing.T, pool *pgxpool.Pool, name, email, role string) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, 'x', $3)
		RETURNING id`,
		name, email, role,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func seedTool(t *testing.T, pool *pgxpool.Pool, adminID int64, name string) int64 {
	t.Helper()
	var id int64
	err := pool.QueryRow(context.Background(), `
		INSERT INTO tools (admin_id, name, description, category)
		VALUES ($1, $2, 'desc', 'garden')
		RETURNING id`,
		adminID, name,
	).Scan(&id)
	require.NoError(t, err)
	return id
}

func reservationStatus(t *testing.T, pool *pgxpool.Pool, id int64) string {
	t.Helper()
	var status string
	err := pool.QueryRow(context.Background(),
		`SELECT status FROM reservations WHERE id = $1`, id).Scan(&status)
	require.NoError(t, err)
	return status
}

func newReservationCommands(pool *pgxpool.Pool) commands.ReservationCommands {
	u := uow.NewPostgresUoW(pool)
	q := queries.NewReservationQueries(readstore.NewReservationReadStore(pool))
	return commands.NewReservationCommands(u, q, cache.NewNoopAvailabilityCache(), clock.NewRealClock())
}

func TestSubmitAndApproveCascade(t *testing.T) {
	pool := dbtest.StartPostgres(t)
	ctx := context.Background()

	adminID := seedUser(t, pool, "admin", "admin@example.com", "admin")
	aliceID := seedUser(t, pool, "alice", "alice@example.com", "member")
	bobID := seedUser(t, pool, "bob", "bob@example.com", "member")
	toolID := seedTool(t, pool, adminID, "drill")

	cmds := newReservationCommands(pool)

	target, err := cmds.Submit(ctx, aliceID, commands.SubmitReservationInput{
		ToolID: toolID, StartDate: "2026-06-10", EndDate: "2026-06-15",
	})
	require.NoError(t, err)
	require.Equal(t, "pending", target.Status)

	overlapping, err := cmds.Submit(ctx, bobID, commands.SubmitReservationInput{
		ToolID: toolID, StartDate: "2026-06-14", EndDate: "2026-06-20",
	})
	require.NoError(t, err)

	disjoint, err := cmds.Submit(ctx, bobID, commands.SubmitReservationInput{
		ToolID: toolID, StartDate: "2026-07-01", EndDate: "2026-07-05",
	})
	require.NoError(t, err)

	view, err := cmds.Decide(ctx, target.ID, adminID, "approved")
	require.NoError(t, err)

	assert.Equal(t, "approved", view.Status)
	require.NotNil(t, view.ApprovedBy)
	assert.Equal(t, adminID, *view.ApprovedBy)
	assert.Equal(t, "rejected", reservationStatus(t, pool, overlapping.ID))
	assert.Equal(t, "pending", reservationStatus(t, pool, disjoint.ID))

	// An approved range blocks new overlapping submissions.
	_, err = cmds.Submit(ctx, bobID, commands.SubmitReservationInput{
		ToolID: toolID, StartDate: "2026-06-15", EndDate: "2026-06-18",
	})
	assert.ErrorIs(t, err, errs.ErrDateConflict)
}

// Two admins' sessions race to approve overlapping pendings; row locks must
// let exactly one through.
func TestConcurrentApprovalsSerialize(t *testing.T) {
	pool := dbtest.StartPostgres(t)
	ctx := context.Background()

	adminID := seedUser(t, pool, "admin", "admin@example.com", "admin")
	aliceID := seedUser(t, pool, "alice", "alice@example.com", "member")
	bobID := seedUser(t, pool, "bob", "bob@example.com", "member")
	toolID := seedTool(t, pool, adminID, "drill")

	cmds := newReservationCommands(pool)

	first, err := cmds.Submit(ctx, aliceID, commands.SubmitReservationInput{
		ToolID: toolID, StartDate: "2026-06-10", EndDate: "2026-06-15",
	})
	require.NoError(t, err)

	second, err := cmds.Submit(ctx, bobID, commands.SubmitReservationInput{
		ToolID: toolID, StartDate: "2026-06-12", EndDate: "2026-06-18",
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]error, 2)
	targets := []int64{first.ID, second.ID}

	for i, id := range targets {
		wg.Add(1)
		go func(i int, id int64) {
			defer wg.Done()
			approveCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			_, results[i] = cmds.Decide(approveCtx, id, adminID, "approved")
		}(i, id)
	}
	wg.Wait()

	var succeeded, failed int
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			failed++
			assert.ErrorIs(t, err, errs.ErrNotPending, "loser should find its target already rejected")
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one approval must win")
	assert.Equal(t, 1, failed)

	statuses := []string{
		reservationStatus(t, pool, first.ID),
		reservationStatus(t, pool, second.ID),
	}
	assert.ElementsMatch(t, []string{"approved", "rejected"}, statuses)
}

func TestCloseFreesTheDates(t *testing.T) {
	pool := dbtest.StartPostgres(t)
	ctx := context.Background()

	adminID := seedUser(t, pool, "admin", "admin@example.com", "admin")
	aliceID := seedUser(t, pool, "alice", "alice@example.com", "member")
	bobID := seedUser(t, pool, "bob", "bob@example.com", "member")
	toolID := seedTool(t, pool, adminID, "drill")

	cmds := newReservationCommands(pool)

	res, err := cmds.Submit(ctx, aliceID, commands.SubmitReservationInput{
		ToolID: toolID, StartDate: "2026-06-10", EndDate: "2026-06-15",
	})
	require.NoError(t, err)

	_, err = cmds.Decide(ctx, res.ID, adminID, "approved")
	require.NoError(t, err)

	closed, err := cmds.Close(ctx, res.ID, aliceID)
	require.NoError(t, err)
	assert.Equal(t, "closed", closed.Status)

	// The freed window is reservable again.
	again, err := cmds.Submit(ctx, bobID, commands.SubmitReservationInput{
		ToolID: toolID, StartDate: "2026-06-10", EndDate: "2026-06-15",
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", again.Status)
}
