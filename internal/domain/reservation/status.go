package reservation

import "toolshed/internal/pkg/errs"

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
	StatusActive   Status = "active"
	StatusClosed   Status = "closed"
)

// NewDecision parses an admin decision. "pending" is deliberately excluded:
// once a reservation leaves pending it never returns.
func NewDecision(s string) (Status, error) {
	switch Status(s) {
	case StatusApproved, StatusRejected, StatusActive, StatusClosed:
		return Status(s), nil
	default:
		return "", errs.ErrInvalidDecision
	}
}

func (s Status) String() string {
	return string(s)
}

// Blocking statuses hold the tool for their date range and enforce the
// non-overlap invariant.
func (s Status) Blocks() bool {
	return s == StatusApproved || s == StatusActive
}

// Closeable statuses may be moved to closed by the owning member, covering
// both return and cancel.
func (s Status) Closeable() bool {
	return s == StatusApproved || s == StatusActive
}
