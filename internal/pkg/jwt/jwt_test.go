//go:build unit

package jwt_test

import (
	"testing"
	"time"

	"toolshed/internal/domain/user"
	"toolshed/internal/pkg/jwt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	token, err := svc.GenerateToken(42, user.RoleMember)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	want := &jwt.Claims{UserID: 42, Role: "member"}
	if diff := cmp.Diff(want, claims, cmpopts.IgnoreFields(jwt.Claims{}, "RegisteredClaims")); diff != "" {
		t.Errorf("claims mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.After(time.Now()))
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, err := jwt.NewService("secret-a", time.Hour).GenerateToken(42, user.RoleAdmin)
	require.NoError(t, err)

	_, err = jwt.NewService("secret-b", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}

func TestValidateTokenExpired(t *testing.T) {
	svc := jwt.NewService("test-secret", -time.Minute)

	token, err := svc.GenerateToken(42, user.RoleMember)
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.ErrorIs(t, err, jwt.ErrExpiredToken)
}

func TestValidateTokenGarbage(t *testing.T) {
	svc := jwt.NewService("test-secret", time.Hour)

	_, err := svc.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, jwt.ErrInvalidToken)
}
