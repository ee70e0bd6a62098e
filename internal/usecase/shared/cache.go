package shared

import (
	"context"
	"time"
)

// AvailabilityCache is a read-through cache for the availability projection.
// It is an optimization only: misses and failures fall back to the store, so
// the methods do not return errors.
type AvailabilityCache interface {
	GetStatus(ctx context.Context, toolID int64, day time.Time) (string, bool)
	SetStatus(ctx context.Context, toolID int64, day time.Time, status string)
	Invalidate(ctx context.Context, toolID int64)
}
