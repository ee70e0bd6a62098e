package queries

import "context"

type ReservationQueries interface {
	ListByUser(ctx context.Context, userID int64) ([]*ReservationListItem, error)
	ListPendingForAdmin(ctx context.Context, adminID int64) ([]*PendingReservationItem, error)
	ListForAdmin(ctx context.Context, adminID int64) ([]*ReservationView, error)
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
}

type ReservationReadStore interface {
	FindByUserID(ctx context.Context, userID int64) ([]*ReservationListItem, error)
	FindPendingByAdminID(ctx context.Context, adminID int64) ([]*PendingReservationItem, error)
	FindByAdminID(ctx context.Context, adminID int64) ([]*ReservationView, error)
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
}

type reservationQueriesImpl struct {
	store ReservationReadStore
}

func NewReservationQueries(store ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{store: store}
}

func (q *reservationQueriesImpl) ListByUser(ctx context.Context, userID int64) ([]*ReservationListItem, error) {
	return q.store.FindByUserID(ctx, userID)
}

func (q *reservationQueriesImpl) ListPendingForAdmin(ctx context.Context, adminID int64) ([]*PendingReservationItem, error) {
	return q.store.FindPendingByAdminID(ctx, adminID)
}

func (q *reservationQueriesImpl) ListForAdmin(ctx context.Context, adminID int64) ([]*ReservationView, error) {
	return q.store.FindByAdminID(ctx, adminID)
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	return q.store.FindByID(ctx, id)
}
