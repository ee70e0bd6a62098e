package user

import "toolshed/internal/pkg/errs"

// Role distinguishes borrowing members from tool-owning admins. The engine
// trusts the role claim carried by the token verbatim.
type Role string

const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin"
)

func NewRole(s string) (Role, error) {
	switch Role(s) {
	case RoleMember, RoleAdmin:
		return Role(s), nil
	default:
		return "", errs.ErrInvalidRole
	}
}

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}
