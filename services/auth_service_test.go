package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomshop_server/lib"
	"ecomshop_server/structs"
)

func TestLoginSuccess(t *testing.T) {
	as := NewAuthService(testLogger(), testConfig())

	token, user, err := as.Login(&structs.LoginRequest{
		Email:    "admin@example.com",
		Password: "hunter2",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Role)

	claims, err := lib.ParseToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
}

func TestLoginWrongCredentials(t *testing.T) {
	as := NewAuthService(testLogger(), testConfig())

	cases := []structs.LoginRequest{
		{Email: "admin@example.com", Password: "wrong"},
		{Email: "other@example.com", Password: "hunter2"},
	}
	for _, c := range cases {
		_, _, err := as.Login(&c)
		assert.ErrorIs(t, err, lib.ErrInvalidCredentials)
	}
}

func TestLoginUnconfigured(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.AdminEmail = ""
	cfg.Auth.AdminPassword = ""
	as := NewAuthService(testLogger(), cfg)

	_, _, err := as.Login(&structs.LoginRequest{Email: "a@b.c", Password: "x"})
	assert.ErrorIs(t, err, lib.ErrAuthNotConfigured)
}

func TestVerifyTokenRealJWT(t *testing.T) {
	as := NewAuthService(testLogger(), testConfig())

	token, err := lib.GenerateAccessToken(&structs.AuthUser{
		UID: "admin", Email: "admin@example.com", Role: "admin",
	}, "test-secret", time.Hour)
	require.NoError(t, err)

	user, err := as.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", user.UID)
}

func TestVerifyTokenDevShortcut(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.AllowDevTokens = true
	as := NewAuthService(testLogger(), cfg)

	user, err := as.VerifyToken("any-token-longer-than-ten")
	require.NoError(t, err)
	assert.Equal(t, "dev-user", user.UID)

	// too short even for dev mode
	_, err = as.VerifyToken("short")
	assert.ErrorIs(t, err, lib.ErrInvalidToken)
}

func TestVerifyTokenDevShortcutDisabledByDefault(t *testing.T) {
	as := NewAuthService(testLogger(), testConfig())

	_, err := as.VerifyToken("any-token-longer-than-ten")
	assert.ErrorIs(t, err, lib.ErrInvalidToken)
}

func TestVerifyTokenDevShortcutIgnoredInProduction(t *testing.T) {
	cfg := testConfig()
	cfg.Auth.AllowDevTokens = true
	cfg.Server.Environment = "production"
	as := NewAuthService(testLogger(), cfg)

	_, err := as.VerifyToken("any-token-longer-than-ten")
	assert.ErrorIs(t, err, lib.ErrInvalidToken)
}
