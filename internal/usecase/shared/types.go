package shared

import "time"

// Minimal snapshots for command-side validation reads.

type ToolSnapshot struct {
	ID       int64
	AdminID  int64
	Name     string
	ImageURL *string
}

type ReservationSnapshot struct {
	ID        int64
	ToolID    int64
	UserID    int64
	StartDate time.Time
	EndDate   time.Time
	Status    string
}
