package middleware

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/hongminglow/contacts-be/internal/auth"
	"github.com/hongminglow/contacts-be/internal/http/respond"
	"github.com/hongminglow/contacts-be/internal/models"
	"github.com/hongminglow/contacts-be/internal/storage"
)

type contextKey struct{}

var userContextKey contextKey

// RequireUser validates the bearer token and loads the authenticated user
// into the request context. Requests without a valid token never reach the
// wrapped handler.
func RequireUser(tokens *auth.TokenManager, store storage.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			raw = strings.TrimSpace(raw)
			if !ok || raw == "" {
				respond.Error(w, http.StatusUnauthorized, "missing bearer token")
				return
			}

			userID, err := tokens.Parse(raw)
			if err != nil {
				respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			user, err := store.FindUserByID(r.Context(), userID)
			if err != nil {
				if errors.Is(err, storage.ErrNotFound) {
					respond.Error(w, http.StatusUnauthorized, "invalid or expired token")
					return
				}
				log.Printf("load user %d: %v", userID, err)
				respond.Error(w, http.StatusInternalServerError, "failed to load user")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser returns a context carrying the authenticated user.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// UserFrom returns the authenticated user stored by RequireUser.
func UserFrom(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(userContextKey).(models.User)
	return user, ok
}
