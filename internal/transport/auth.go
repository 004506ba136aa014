package transport

import (
	"context"
	"errors"
	"net/http"

	"github.com/rpggio/curriculum/internal/domain/admin"
)

// ErrUnauthorized indicates invalid or missing credentials.
var ErrUnauthorized = errors.New("unauthorized")

type adminKey struct{}

// AdminVerifier checks admin credentials.
type AdminVerifier interface {
	CheckPassword(ctx context.Context, email, password string) (*admin.User, error)
}

// AdminFromContext returns the authenticated admin, if present.
func AdminFromContext(ctx context.Context) (*admin.User, bool) {
	user, ok := ctx.Value(adminKey{}).(*admin.User)
	return user, ok
}

// AuthMiddleware enforces HTTP basic authentication against admin accounts.
func AuthMiddleware(verifier AdminVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email, password, ok := r.BasicAuth()
			if !ok || email == "" {
				w.Header().Set("WWW-Authenticate", `Basic realm="curriculum"`)
				http.Error(w, "missing credentials", http.StatusUnauthorized)
				return
			}

			user, err := verifier.CheckPassword(r.Context(), email, password)
			if err != nil || user == nil {
				http.Error(w, "invalid credentials", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), adminKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
