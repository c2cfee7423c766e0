package middleware

import (
	"context"
	"ecomshop_server/lib"
	"ecomshop_server/structs"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// Context keys for storing auth data in request context
type contextKey string

const UserContextKey contextKey = "user"

// RequireAuth protects mutating routes: requests without a valid bearer
// token are rejected before reaching the handler.
func (mw *Middleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := lib.ExtractBearerToken(r)
		if err != nil {
			gecho.Unauthorized(w, gecho.WithMessage("Missing access token"), gecho.Send())
			return
		}

		user, err := mw.authService.VerifyToken(token)
		if err != nil {
			mw.logger.Warn("Rejected bearer token", gecho.Field("error", err.Error()))
			gecho.Unauthorized(w, gecho.WithMessage("Invalid or expired access token"), gecho.Send())
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches the authenticated user to the request context when
// a valid bearer token is present. It never rejects: anonymous requests
// and requests with bad tokens proceed without an identity.
func (mw *Middleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token, err := lib.ExtractBearerToken(r); err == nil {
			if user, err := mw.authService.VerifyToken(token); err == nil {
				r = r.WithContext(context.WithValue(r.Context(), UserContextKey, user))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext extracts the authenticated user from request context.
func GetUserFromContext(ctx context.Context) (*structs.AuthUser, bool) {
	user, ok := ctx.Value(UserContextKey).(*structs.AuthUser)
	return user, ok
}
