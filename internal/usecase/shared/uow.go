package shared

import (
	"context"
	"time"

	"toolshed/internal/domain/reservation"
	"toolshed/internal/infra/db"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Reservations() ReservationRepository
	Tools() ToolRepository
	Users() UserRepository
	Reviews() ReviewRepository
	Reports() ReportRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	ToolByID(ctx context.Context, id int64) (*ToolSnapshot, error)
	ReservationByID(ctx context.Context, id int64) (*ReservationSnapshot, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, db db.DBTX, res *reservation.Reservation) (int64, error)
	// FindForUpdate locks the single reservation row.
	FindForUpdate(ctx context.Context, db db.DBTX, id int64) (*ReservationSnapshot, error)
	// LockToolReservations serializes concurrent decisions on the same tool.
	// Rows are locked in id order so competing transactions cannot deadlock.
	LockToolReservations(ctx context.Context, db db.DBTX, toolID int64) error
	HasBlockingOverlap(ctx context.Context, db db.DBTX, toolID int64, dates reservation.DateRange, excludeID int64) (bool, error)
	RejectOverlappingPending(ctx context.Context, db db.DBTX, toolID, excludeID int64, dates reservation.DateRange) (int64, error)
	Approve(ctx context.Context, db db.DBTX, id, adminID int64, approvedAt time.Time) error
	UpdateStatus(ctx context.Context, db db.DBTX, id int64, status reservation.Status) error
}

type ToolRepository interface {
	Create(ctx context.Context, db db.DBTX, adminID int64, name, description, category string, imageURL *string) (int64, error)
	Delete(ctx context.Context, db db.DBTX, id int64) error
}

type UserRepository interface {
	Create(ctx context.Context, db db.DBTX, name, email, passwordHash, role string) (int64, error)
}

type ReviewRepository interface {
	Create(ctx context.Context, db db.DBTX, toolID, userID int64, rating int, comment *string) (int64, error)
}

type ReportRepository interface {
	Create(ctx context.Context, db db.DBTX, toolID, userID int64, description string, imageURL *string) (int64, error)
	ToolIDOf(ctx context.Context, db db.DBTX, id int64) (int64, error)
	Resolve(ctx context.Context, db db.DBTX, id int64) error
}
