package reservation

import (
	"time"

	"toolshed/internal/pkg/errs"
)

// ToolSpec carries the tool facts a request needs for validation. AdminID is
// read from the catalog and never re-derived here.
type ToolSpec struct {
	ID      int64
	AdminID int64
}

// Reservation is the write-side aggregate. IDs are assigned by the store.
type Reservation struct {
	id         int64
	toolID     int64
	userID     int64
	dates      DateRange
	status     Status
	createdAt  time.Time
	approvedAt *time.Time
	approvedBy *int64
}

// NewRequest validates a member's reservation request and yields a pending
// reservation. The overlap check against the store happens in the usecase
// transaction, not here.
func NewRequest(tool ToolSpec, userID int64, dates DateRange) (*Reservation, error) {
	if tool.AdminID == userID {
		return nil, errs.ErrOwnTool
	}
	return &Reservation{
		toolID: tool.ID,
		userID: userID,
		dates:  dates,
		status: StatusPending,
	}, nil
}

func Reconstruct(
	id, toolID, userID int64,
	dates DateRange,
	status Status,
	createdAt time.Time,
	approvedAt *time.Time,
	approvedBy *int64,
) *Reservation {
	return &Reservation{
		id:         id,
		toolID:     toolID,
		userID:     userID,
		dates:      dates,
		status:     status,
		createdAt:  createdAt,
		approvedAt: approvedAt,
		approvedBy: approvedBy,
	}
}

func (r *Reservation) ID() int64             { return r.id }
func (r *Reservation) ToolID() int64         { return r.toolID }
func (r *Reservation) UserID() int64         { return r.userID }
func (r *Reservation) Dates() DateRange      { return r.dates }
func (r *Reservation) Status() Status        { return r.status }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) ApprovedAt() *time.Time { return r.approvedAt }
func (r *Reservation) ApprovedBy() *int64    { return r.approvedBy }
