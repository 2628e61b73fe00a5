package middleware

import (
	"context"
	"net/http"
	"strings"

	"lightningcath-stock-api/internal/service"
	"lightningcath-stock-api/pkg/apierror"
)

// SessionKey is the key for storing session data in request context.
const SessionKey contextKey = "admin_session"

// SessionToken extracts the admin session token from a request: X-Admin-Token
// first, Authorization: Bearer as a fallback. Every endpoint that reads the
// session token goes through here so both header forms work everywhere.
func SessionToken(r *http.Request) string {
	if token := r.Header.Get("X-Admin-Token"); token != "" {
		return token
	}
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// NewAdminAuth creates the middleware guarding the admin route group. Token
// service is passed via closure, no global state.
func NewAdminAuth(tokens *service.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := SessionToken(r)
			if token == "" {
				writeError(w, apierror.Unauthorized("admin session required"))
				return
			}

			session, err := tokens.Validate(r.Context(), token)
			if err != nil {
				writeError(w, apierror.Unauthorized("invalid or expired session"))
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, session)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeError writes an API error response.
func writeError(w http.ResponseWriter, err *apierror.Error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(err.StatusCode)
	w.Write(err.ToJSON())
}

// GetSession retrieves the admin session from request context.
func GetSession(ctx context.Context) *service.SessionData {
	if data, ok := ctx.Value(SessionKey).(*service.SessionData); ok {
		return data
	}
	return nil
}
