package response

import (
	"toolshed/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type UserResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

func FromUserView(rm *queries.AuthorizedUserView) *UserResponse {
	var resp UserResponse
	_ = copier.Copy(&resp, rm)
	return &resp
}
