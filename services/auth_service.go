package services

import (
	"crypto/subtle"
	"ecomshop_server/lib"
	"ecomshop_server/structs"

	"github.com/MonkyMars/gecho"
)

// devUser is the fixed identity bound when the development token shortcut
// is enabled. Never active in production.
var devUser = structs.AuthUser{
	UID:   "dev-user",
	Email: "admin@ecom-shop.example",
	Role:  "admin",
}

type AuthService struct {
	logger *gecho.Logger
	cfg    *structs.Config
}

func NewAuthService(logger *gecho.Logger, cfg *structs.Config) *AuthService {
	return &AuthService{
		logger: logger,
		cfg:    cfg,
	}
}

// Login checks the supplied credentials against the configured admin pair
// and mints an access token. There is exactly one admin account.
func (as *AuthService) Login(req *structs.LoginRequest) (string, *structs.AuthUser, error) {
	auth := as.cfg.Auth
	if auth.AdminEmail == "" || auth.AdminPassword == "" {
		as.logger.Error("ADMIN_EMAIL or ADMIN_PASSWORD is not configured")
		return "", nil, lib.ErrAuthNotConfigured
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(auth.AdminEmail)) == 1

	passwordOK, err := lib.VerifyAdminPassword(req.Password, auth.AdminPassword)
	if err != nil {
		as.logger.Error("Failed to verify admin password", gecho.Field("error", err))
		return "", nil, err
	}

	if !emailOK || !passwordOK {
		as.logger.Debug("Invalid admin login attempt", gecho.Field("email", req.Email))
		return "", nil, lib.ErrInvalidCredentials
	}

	user := &structs.AuthUser{
		UID:   "admin",
		Email: auth.AdminEmail,
		Role:  "admin",
	}

	token, err := lib.GenerateAccessToken(user, auth.AccessTokenSecret, auth.AccessTokenExpiry)
	if err != nil {
		as.logger.Error("Failed to generate access token", gecho.Field("error", err))
		return "", nil, err
	}

	return token, user, nil
}

// VerifyToken validates a bearer token and returns the identity it carries.
// When dev tokens are enabled outside production, any token longer than 10
// characters binds the fixed development identity instead of failing.
func (as *AuthService) VerifyToken(token string) (*structs.AuthUser, error) {
	claims, err := lib.ParseToken(token, as.cfg.Auth.AccessTokenSecret)
	if err == nil {
		return &structs.AuthUser{
			UID:   claims.Sub,
			Email: claims.Email,
			Role:  claims.Role,
		}, nil
	}

	if as.devTokensEnabled() && len(token) > 10 {
		as.logger.Warn("Dev token mode: accepting unverified token")
		u := devUser
		return &u, nil
	}

	return nil, lib.ErrInvalidToken
}

func (as *AuthService) devTokensEnabled() bool {
	return as.cfg.Auth.AllowDevTokens && as.cfg.Server.Environment != "production"
}
