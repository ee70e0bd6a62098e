//go:build unit

package user_test

import (
	"testing"

	"toolshed/internal/domain/user"
	"toolshed/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRole(t *testing.T) {
	tests := []struct {
		input string
		want  user.Role
		errIs error
	}{
		{input: "member", want: user.RoleMember},
		{input: "admin", want: user.RoleAdmin},
		{input: "superuser", errIs: errs.ErrInvalidRole},
		{input: "Admin", errIs: errs.ErrInvalidRole},
		{input: "", errIs: errs.ErrInvalidRole},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := user.NewRole(tt.input)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoleIsAdmin(t *testing.T) {
	assert.True(t, user.RoleAdmin.IsAdmin())
	assert.False(t, user.RoleMember.IsAdmin())
}
