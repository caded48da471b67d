package middleware

import (
	"net/http"

	"github.com/daap14/authprofile/internal/api/response"
)

// RequireRole returns middleware that rejects principals whose current role
// is not exactly role. It must run after Authenticate.
func RequireRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			principal := GetPrincipal(r.Context())
			if principal == nil {
				response.Err(w, http.StatusUnauthorized, response.CodeUnauthorized, "Bearer token is required", requestID)
				return
			}

			if principal.Role != role {
				response.Err(w, http.StatusForbidden, response.CodeForbidden, "Insufficient permissions", requestID)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
