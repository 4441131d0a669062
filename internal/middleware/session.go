package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"cadizaccesible/internal/domain"
)

type ctxKey string

const (
	emailKey ctxKey = "session_email"
	roleKey  ctxKey = "session_role"
)

// Session extracts the caller identity supplied by the identity provider
// in front of the service. An unknown role string falls back to CITIZEN;
// that fallback belongs here, at the session boundary, never inside the
// store's enum parsing.
func Session(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := r.Header.Get("X-User-Email")
			if email == "" {
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			}

			role, err := domain.ParseRole(r.Header.Get("X-User-Role"))
			if err != nil {
				logger.Warn("unknown session role, defaulting to citizen",
					slog.String("email", email),
					slog.String("role", r.Header.Get("X-User-Role")),
				)
				role = domain.RoleCitizen
			}

			ctx := context.WithValue(r.Context(), emailKey, email)
			ctx = context.WithValue(ctx, roleKey, role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin rejects non-admin sessions.
func RequireAdmin() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if SessionRole(r.Context()) != domain.RoleAdmin {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SessionEmail returns the authenticated caller's email, or "".
func SessionEmail(ctx context.Context) string {
	email, _ := ctx.Value(emailKey).(string)
	return email
}

// SessionRole returns the caller's role; missing sessions read as CITIZEN.
func SessionRole(ctx context.Context) domain.Role {
	role, ok := ctx.Value(roleKey).(domain.Role)
	if !ok {
		return domain.RoleCitizen
	}
	return role
}
