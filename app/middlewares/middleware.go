package middlewares

import (
	"context"
	"net/http"

	"shopfront/app/utils/sessions"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// CurrentUserMiddleware resolves the session user once per request and puts
// the id on the context; 0 means anonymous.
func CurrentUserMiddleware(store sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := store.GetUserID(r)
			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id, or 0.
func UserIDFromContext(ctx context.Context) uint {
	userID, _ := ctx.Value(UserIDKey).(uint)
	return userID
}
