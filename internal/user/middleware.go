package user

import (
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizmo-api/internal/auth"
	"github.com/saulo-duarte/quizmo-api/internal/config"
)

// RequireUser rejects authenticated requests whose account no longer exists.
// It must run after auth.AuthMiddleware.
func RequireUser(s Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := config.WithContext(r.Context())

			claims, err := auth.GetUserClaimsFromContext(r.Context())
			if err != nil {
				config.JSON(w, http.StatusUnauthorized, auth.ErrorResponse{
					Error:   "ACCESS_TOKEN_REQUIRED",
					Message: "Access token is required",
				})
				return
			}

			if _, err := s.GetByID(r.Context(), claims.UserID); err != nil {
				if errors.Is(err, ErrUserNotFound) {
					log.WithField("user_id", claims.UserID).Warn("Token for deleted user")
					config.JSON(w, http.StatusUnauthorized, auth.ErrorResponse{
						Error:   "USER_NOT_FOUND",
						Message: "User not found",
					})
					return
				}
				log.WithError(err).Error("Failed to load user")
				config.JSON(w, http.StatusInternalServerError, auth.ErrorResponse{
					Error:   "USER_LOOKUP_FAILED",
					Message: "Failed to verify user",
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
