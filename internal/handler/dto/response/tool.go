package response

import (
	"toolshed/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ToolResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	ImageURL    *string `json:"imageUrl"`
	Status      string  `json:"status"`
}

type AvailabilityResponse struct {
	ToolID int64  `json:"toolId"`
	Date   string `json:"date"`
	Status string `json:"status"`
}

func FromToolView(rm *queries.ToolView) *ToolResponse {
	var resp ToolResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}

func FromToolList(rms []*queries.ToolView) []*ToolResponse {
	resp := make([]*ToolResponse, 0, len(rms))
	_ = copier.Copy(&resp, &rms)
	return resp
}
