package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/elecmate/signup-recovery/internal/pkg/httputil"
	"github.com/elecmate/signup-recovery/internal/pkg/logger"
)

type contextKey string

// callerIDKey carries the authenticated admin's user id through the request.
const callerIDKey contextKey = "caller_id"

// CallerID returns the authenticated caller's user id, set by requireAdmin.
func CallerID(ctx context.Context) string {
	id, _ := ctx.Value(callerIDKey).(string)
	return id
}

// requireAdmin gates every workflow action. The check runs in full on every
// request: verify the bearer token, load the caller's profile, require the
// admin role. Nothing about the caller is ever cached across requests.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			httputil.Unauthorized(w, "missing authorization header")
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			httputil.Unauthorized(w, "missing authorization header")
			return
		}

		callerID, err := s.verifier.Verify(r.Context(), token)
		if err != nil {
			httputil.Unauthorized(w, "invalid token")
			return
		}

		profile, err := s.profiles.Get(r.Context(), callerID)
		if err != nil {
			logger.Warn("admin gate could not load caller profile", "caller_id", callerID, "error", err)
			httputil.Forbidden(w, "admin access required")
			return
		}
		if !profile.IsAdmin {
			httputil.Forbidden(w, "admin access required")
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), callerIDKey, callerID)))
	})
}
