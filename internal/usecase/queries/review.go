package queries

import "context"

type ReviewQueries interface {
	ListByTool(ctx context.Context, toolID int64) ([]*ReviewView, error)
}

type ReviewReadStore interface {
	FindByToolID(ctx context.Context, toolID int64) ([]*ReviewView, error)
}

type reviewQueriesImpl struct {
	store ReviewReadStore
}

func NewReviewQueries(store ReviewReadStore) ReviewQueries {
	return &reviewQueriesImpl{store: store}
}

func (q *reviewQueriesImpl) ListByTool(ctx context.Context, toolID int64) ([]*ReviewView, error) {
	return q.store.FindByToolID(ctx, toolID)
}
