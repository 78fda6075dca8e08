package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saulo-duarte/quizmo-api/internal/config"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// BearerToken returns the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := config.WithContext(r.Context())

		tokenStr := BearerToken(r)
		if tokenStr == "" {
			config.JSON(w, http.StatusUnauthorized, ErrorResponse{
				Error:   "ACCESS_TOKEN_REQUIRED",
				Message: "Access token is required",
			})
			return
		}

		claims, err := ValidateJWT(tokenStr)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				config.JSON(w, http.StatusUnauthorized, ErrorResponse{
					Error:   "TOKEN_EXPIRED",
					Message: "Token has expired",
				})
				return
			}
			log.WithError(err).Warn("Rejected invalid token")
			config.JSON(w, http.StatusForbidden, ErrorResponse{
				Error:   "INVALID_TOKEN",
				Message: "Invalid token",
			})
			return
		}

		next.ServeHTTP(w, r.WithContext(WithUserClaims(r.Context(), claims)))
	})
}
