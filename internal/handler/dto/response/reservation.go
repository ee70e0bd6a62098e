package response

import (
	"time"

	"toolshed/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID         int64      `json:"id"`
	ToolID     int64      `json:"toolId"`
	ToolName   string     `json:"toolName"`
	UserID     int64      `json:"userId"`
	UserName   string     `json:"userName"`
	UserEmail  string     `json:"userEmail"`
	StartDate  string     `json:"startDate"`
	EndDate    string     `json:"endDate"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
	ApprovedAt *time.Time `json:"approvedAt,omitempty"`
	ApprovedBy *int64     `json:"approvedBy,omitempty"`
}

type ReservationListResponse struct {
	ID        int64  `json:"id"`
	ToolID    int64  `json:"toolId"`
	ToolName  string `json:"toolName"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

type PendingReservationResponse struct {
	ID        int64  `json:"id"`
	ToolID    int64  `json:"toolId"`
	ToolName  string `json:"toolName"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromReservationList(rms []*queries.ReservationListItem) []*ReservationListResponse {
	resp := make([]*ReservationListResponse, 0, len(rms))
	_ = copier.Copy(&resp, &rms)
	return resp
}

func FromPendingReservationList(rms []*queries.PendingReservationItem) []*PendingReservationResponse {
	resp := make([]*PendingReservationResponse, 0, len(rms))
	_ = copier.Copy(&resp, &rms)
	return resp
}

func FromReservationViews(rms []*queries.ReservationView) []*ReservationResponse {
	resp := make([]*ReservationResponse, 0, len(rms))
	for _, rm := range rms {
		resp = append(resp, FromReservationView(rm))
	}
	return resp
}
