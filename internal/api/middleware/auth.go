package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/daap14/authprofile/internal/api/response"
	"github.com/daap14/authprofile/internal/auth"
)

const principalKey contextKey = "principal"

// Authenticator resolves a raw bearer token to the principal it names.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.User, error)
}

// Authenticate is middleware that extracts the bearer token from the
// Authorization header and resolves it to a principal. Missing, malformed,
// expired or unknown-subject tokens return 401 and the next handler never runs.
func Authenticate(authenticator Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := GetRequestID(r.Context())

			token, ok := bearerToken(r.Header.Get("Authorization"))
			if !ok {
				response.Err(w, http.StatusUnauthorized, response.CodeUnauthorized, "Bearer token is required", requestID)
				return
			}

			user, err := authenticator.Authenticate(r.Context(), token)
			if err != nil {
				if errors.Is(err, auth.ErrUnauthorized) {
					slog.Debug("bearer token rejected", "error", err, "requestId", requestID)
					response.Err(w, http.StatusUnauthorized, response.CodeUnauthorized, "Invalid or expired token", requestID)
					return
				}
				slog.Error("authentication failed", "error", err, "requestId", requestID)
				response.Err(w, http.StatusInternalServerError, response.CodeInternal, "Authentication failed", requestID)
				return
			}

			ctx := WithPrincipal(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// WithPrincipal returns a copy of ctx carrying user as the authenticated principal.
func WithPrincipal(ctx context.Context, user *auth.User) context.Context {
	return context.WithValue(ctx, principalKey, user)
}

// GetPrincipal retrieves the authenticated principal from the request context.
func GetPrincipal(ctx context.Context) *auth.User {
	if u, ok := ctx.Value(principalKey).(*auth.User); ok {
		return u
	}
	return nil
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}
	return token, true
}
