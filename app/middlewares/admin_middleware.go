package middlewares

import (
	"log"
	"net/http"

	"shopfront/app/repositories"

	"github.com/unrolled/render"
)

// AdminAuthMiddleware guards the back-office mutation endpoints.
func AdminAuthMiddleware(userRepo repositories.UserRepositoryImpl, renderer *render.Render) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := UserIDFromContext(r.Context())
			if userID == 0 {
				renderer.JSON(w, http.StatusUnauthorized, map[string]string{"detail": "Authentication required"})
				return
			}

			user, err := userRepo.FindByID(r.Context(), userID)
			if err != nil || user == nil {
				log.Printf("AdminAuthMiddleware: error finding user %d: %v", userID, err)
				renderer.JSON(w, http.StatusUnauthorized, map[string]string{"detail": "Invalid session"})
				return
			}

			if !user.IsAdmin {
				renderer.JSON(w, http.StatusForbidden, map[string]string{"detail": "Admin access required"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
