// Package auth resolves the current user for a request from a persisted
// session. The rest of the application only ever asks "who is calling" via
// UserID; how the token travels (cookie or bearer header) stays here.
package auth

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dkwak/sleepcoach/internal/repository"
	"github.com/dkwak/sleepcoach/pkg/problem"
	"github.com/google/uuid"
)

// SessionCookie is the cookie carrying the opaque session token.
const SessionCookie = "sid"

// SessionTTL is how long a login stays valid.
const SessionTTL = 30 * 24 * time.Hour

type contextKey struct{}

// UserID returns the authenticated user id stored in the request context.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(contextKey{}).(uuid.UUID)
	return id, ok
}

// WithUserID returns a context carrying the authenticated user id.
// Exported for handler tests.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, contextKey{}, id)
}

// TokenFromRequest extracts the session token from the sid cookie or an
// Authorization: Bearer header. Returns false when neither is present.
func TokenFromRequest(r *http.Request) (uuid.UUID, bool) {
	if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
		if token, err := uuid.Parse(c.Value); err == nil {
			return token, true
		}
	}
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if token, err := uuid.Parse(raw); err == nil {
			return token, true
		}
	}
	return uuid.Nil, false
}

// Middleware rejects unauthenticated requests and stores the resolved user
// id in the request context for downstream handlers.
func Middleware(sessions repository.SessionRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := TokenFromRequest(r)
			if !ok {
				problem.Unauthorized("Authentication required").Write(w)
				return
			}

			session, err := sessions.GetValid(r.Context(), token, time.Now())
			if err != nil {
				problem.Unauthorized("Session expired or invalid").Write(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), session.UserID)))
		})
	}
}
