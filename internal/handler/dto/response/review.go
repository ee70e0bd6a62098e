package response

import (
	"toolshed/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ReviewResponse struct {
	ID       int64   `json:"id"`
	Rating   int     `json:"rating"`
	Comment  *string `json:"comment,omitempty"`
	UserID   int64   `json:"userId"`
	UserName string  `json:"userName"`
}

func FromReviewList(rms []*queries.ReviewView) []*ReviewResponse {
	resp := make([]*ReviewResponse, 0, len(rms))
	_ = copier.Copy(&resp, &rms)
	return resp
}
