package response

import (
	"time"

	"toolshed/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReportResponse struct {
	ID          int64     `json:"id"`
	ToolID      int64     `json:"toolId"`
	ToolName    string    `json:"toolName"`
	UserID      int64     `json:"userId"`
	Reporter    string    `json:"reporter"`
	Description string    `json:"description"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Resolved    bool      `json:"resolved"`
	CreatedAt   time.Time `json:"createdAt"`
}

func FromReportList(rms []*queries.ReportView) []*ReportResponse {
	resp := make([]*ReportResponse, 0, len(rms))
	_ = copier.Copy(&resp, &rms)
	return resp
}
