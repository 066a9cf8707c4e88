package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/prepit-kitchen/prepit/internal/logger"
	"github.com/prepit-kitchen/prepit/internal/models"
)

//go:generate mockgen -source=auth.go -destination=auth_mock.go -package=middlewares

// Tokener defines the minimal interface needed by the middleware
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSession(ctx context.Context, tokenString string) (*models.Session, error)
}

type sessionKey struct{}

// WithSession stores the authenticated session in the context.
func WithSession(ctx context.Context, s *models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the authenticated session, or nil.
func SessionFromContext(ctx context.Context) *models.Session {
	s, _ := ctx.Value(sessionKey{}).(*models.Session)
	return s
}

// AuthMiddleware returns a middleware that validates the bearer token and
// puts the session it carries into the request context.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			session, err := tokener.GetSession(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("authorization failed", "err", err)
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}

			setRequestUser(ctx, session.UserName)
			next.ServeHTTP(w, r.WithContext(WithSession(ctx, session)))
		})
	}
}

// RequireCapability rejects requests whose session lacks the capability.
// It must run after AuthMiddleware.
func RequireCapability(c models.Capability) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := SessionFromContext(r.Context())
			if session == nil {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			if !session.PrivLevel.Can(c) {
				logger.Log.Warnw("capability denied", "user_name", session.UserName, "priv_level", session.PrivLevel, "capability", c)
				writeError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
