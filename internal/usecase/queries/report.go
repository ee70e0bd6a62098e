package queries

import "context"

type ReportQueries interface {
	ListAll(ctx context.Context) ([]*ReportView, error)
	// ListForAdmin restricts reports to tools owned by the caller.
	ListForAdmin(ctx context.Context, adminID int64) ([]*ReportView, error)
}

type ReportReadStore interface {
	FindAll(ctx context.Context) ([]*ReportView, error)
	FindByAdminID(ctx context.Context, adminID int64) ([]*ReportView, error)
}

type reportQueriesImpl struct {
	store ReportReadStore
}

func NewReportQueries(store ReportReadStore) ReportQueries {
	return &reportQueriesImpl{store: store}
}

func (q *reportQueriesImpl) ListAll(ctx context.Context) ([]*ReportView, error) {
	return q.store.FindAll(ctx)
}

func (q *reportQueriesImpl) ListForAdmin(ctx context.Context, adminID int64) ([]*ReportView, error) {
	return q.store.FindByAdminID(ctx, adminID)
}
