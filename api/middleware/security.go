package middleware

import (
	"net/http"
	"strings"
)

func (mw *Middleware) SecurityHeaders() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("Permissions-Policy", "geolocation=(), camera=()")

			next.ServeHTTP(w, r)
		})
	}
}

// uploadBodyAllowance absorbs multipart boundaries and part headers so a
// file right at the per-file limit still fits in the request body.
const uploadBodyAllowance = 1 << 20

// BodyLimit caps request bodies at the per-file upload size. Upload routes
// carry whole multipart batches, so they get a cap sized for a full
// multi-upload request instead; the per-file limit is enforced in the
// upload service.
func (mw *Middleware) BodyLimit() func(http.Handler) http.Handler {
	perFile := mw.cfg.Upload.MaxFileSize
	batchCap := perFile*int64(mw.cfg.Upload.MaxFiles) + uploadBodyAllowance

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit := perFile
			if strings.HasPrefix(r.URL.Path, "/api/upload") {
				limit = batchCap
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
