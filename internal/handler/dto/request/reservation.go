package request

// Field presence is validated in the usecase so the "missing fields" error
// keeps precedence over date validation.
type CreateReservationRequest struct {
	ToolID    int64  `json:"tool_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type DecideReservationRequest struct {
	Status string `json:"status" binding:"required"`
}
