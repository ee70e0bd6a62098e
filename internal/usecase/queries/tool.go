package queries

import (
	"context"
	"time"

	"toolshed/internal/pkg/clock"
	"toolshed/internal/usecase/shared"
)

type ToolQueries interface {
	// List returns the catalog with each tool's derived availability as of today.
	List(ctx context.Context) ([]*ToolView, error)
	// AvailabilityOf computes a single tool's availability for the given day.
	AvailabilityOf(ctx context.Context, toolID int64, asOf time.Time) (string, error)
	GetByID(ctx context.Context, id int64) (*ToolView, error)
}

type ToolReadStore interface {
	FindAllWithAvailability(ctx context.Context, asOf time.Time) ([]*ToolView, error)
	HasBlockingReservation(ctx context.Context, toolID int64, asOf time.Time) (bool, error)
	FindViewByID(ctx context.Context, id int64, asOf time.Time) (*ToolView, error)
}

type toolQueriesImpl struct {
	store ToolReadStore
	cache shared.AvailabilityCache
	clock clock.Clock
}

func NewToolQueries(store ToolReadStore, cache shared.AvailabilityCache, clk clock.Clock) ToolQueries {
	return &toolQueriesImpl{store: store, cache: cache, clock: clk}
}

func (q *toolQueriesImpl) List(ctx context.Context) ([]*ToolView, error) {
	return q.store.FindAllWithAvailability(ctx, q.clock.Now())
}

func (q *toolQueriesImpl) AvailabilityOf(ctx context.Context, toolID int64, asOf time.Time) (string, error) {
	if status, ok := q.cache.GetStatus(ctx, toolID, asOf); ok {
		return status, nil
	}

	inUse, err := q.store.HasBlockingReservation(ctx, toolID, asOf)
	if err != nil {
		return "", err
	}

	status := ToolAvailable
	if inUse {
		status = ToolInUse
	}
	q.cache.SetStatus(ctx, toolID, asOf, status)
	return status, nil
}

func (q *toolQueriesImpl) GetByID(ctx context.Context, id int64) (*ToolView, error) {
	return q.store.FindViewByID(ctx, id, q.clock.Now())
}
