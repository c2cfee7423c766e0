package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ecomshop_server/lib"
	"ecomshop_server/services"
	"ecomshop_server/structs"
)

func testMiddleware(t *testing.T) (*Middleware, string) {
	t.Helper()

	cfg := &structs.Config{
		Server: &structs.ServerConfig{Environment: "development"},
		Auth: &structs.AuthConfig{
			AccessTokenSecret: "test-secret",
			AccessTokenExpiry: time.Hour,
			AdminEmail:        "admin@example.com",
			AdminPassword:     "hunter2",
		},
		Cache:     &structs.CacheConfig{},
		Upload:    &structs.UploadConfig{MaxFileSize: 1 << 20, MaxFiles: 10},
		RateLimit: &structs.RateLimitConfig{},
	}
	logger := gecho.NewDefaultLogger()
	mw := NewMiddleware(cfg, logger, services.NewAuthService(logger, cfg), services.NewCacheService(logger, cfg))

	token, err := lib.GenerateAccessToken(&structs.AuthUser{
		UID: "admin", Email: cfg.Auth.AdminEmail, Role: "admin",
	}, cfg.Auth.AccessTokenSecret, time.Hour)
	require.NoError(t, err)

	return mw, token
}

func TestOptionalAuthAttachesUserWhenTokenValid(t *testing.T) {
	mw, token := testMiddleware(t)

	var got *structs.AuthUser
	var present bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, present = GetUserFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	r := httptest.NewRequest("GET", "/api/products", nil)
	r.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	mw.OptionalAuth(next).ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	require.True(t, present)
	assert.Equal(t, "admin@example.com", got.Email)
}

func TestOptionalAuthProceedsAnonymously(t *testing.T) {
	mw, _ := testMiddleware(t)

	cases := map[string]string{
		"no token":      "",
		"garbage token": "Bearer not-a-real-token",
		"wrong scheme":  "Basic YWRtaW46aHVudGVyMg==",
	}

	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			called := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				_, present := GetUserFromContext(r.Context())
				assert.False(t, present)
				w.WriteHeader(http.StatusNoContent)
			})

			r := httptest.NewRequest("GET", "/api/products", nil)
			if header != "" {
				r.Header.Set("Authorization", header)
			}
			w := httptest.NewRecorder()
			mw.OptionalAuth(next).ServeHTTP(w, r)

			assert.Equal(t, http.StatusNoContent, w.Code)
			assert.True(t, called)
		})
	}
}
