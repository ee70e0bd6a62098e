package queries

import "time"

// Read models (DTO for read side). Dates are wire-formatted (YYYY-MM-DD)
// because reservations carry date-only granularity.

type ReservationView struct {
	ID         int64      `json:"id"`
	ToolID     int64      `json:"tool_id"`
	ToolName   string     `json:"tool_name"`
	UserID     int64      `json:"user_id"`
	UserName   string     `json:"user_name"`
	UserEmail  string     `json:"user_email"`
	StartDate  string     `json:"start_date"`
	EndDate    string     `json:"end_date"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	ApprovedBy *int64     `json:"approved_by,omitempty"`
}

type ReservationListItem struct {
	ID        int64  `json:"id"`
	ToolID    int64  `json:"tool_id"`
	ToolName  string `json:"tool_name"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

// PendingReservationItem enriches a pending request with requester contact
// details for the admin approval queue.
type PendingReservationItem struct {
	ID        int64  `json:"id"`
	ToolID    int64  `json:"tool_id"`
	ToolName  string `json:"tool_name"`
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Status    string `json:"status"`
}

const (
	ToolAvailable = "Available"
	ToolInUse     = "In Use"
)

type ToolView struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"image_url"`
	Status      string  `json:"status"`
}

type ReviewView struct {
	ID       int64   `json:"id"`
	Rating   int     `json:"rating"`
	Comment  *string `json:"comment"`
	UserID   int64   `json:"user_id"`
	UserName string  `json:"user_name"`
}

type ReportView struct {
	ID          int64     `json:"id"`
	ToolID      int64     `json:"tool_id"`
	ToolName    string    `json:"tool_name"`
	UserID      int64     `json:"user_id"`
	Reporter    string    `json:"reporter"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"image_url"`
	Resolved    bool      `json:"resolved"`
	CreatedAt   time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
