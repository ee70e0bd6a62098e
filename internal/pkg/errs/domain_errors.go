package errs

import "errors"

// Sentinel errors shared by the usecase layers. Handlers map these to HTTP
// status codes; nothing below the handler layer knows about HTTP.
var (
	// Reservation errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrMissingFields       = errors.New("missing fields")
	ErrInvalidDates        = errors.New("invalid dates")
	ErrDateConflict        = errors.New("tool already reserved for the selected dates")
	ErrOwnTool             = errors.New("admins cannot reserve their own tools")
	ErrInvalidDecision     = errors.New("invalid status")
	ErrNotPending          = errors.New("only pending reservations can be approved")
	ErrNotCloseable        = errors.New("only approved or active reservations can be actioned")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrNotToolOwner        = errors.New("no permission to manage reservations for this tool")

	// Tool errors
	ErrToolNotFound = errors.New("tool not found")

	// User / auth errors
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidRole        = errors.New("invalid role")

	// Review errors
	ErrInvalidRating = errors.New("rating must be 1-5")

	// Report errors
	ErrReportNotFound = errors.New("report not found")

	// Operation errors
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
