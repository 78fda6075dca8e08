package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizmo-api/internal/auth"
	"github.com/saulo-duarte/quizmo-api/internal/config"
	"github.com/saulo-duarte/quizmo-api/internal/validation"
)

type Response struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message,omitempty"`
	Error   string                  `json:"error,omitempty"`
	Details []validation.FieldError `json:"details,omitempty"`
	Token   string                  `json:"token,omitempty"`
	User    *UserResponse           `json:"user,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, Response{Error: "VALIDATION_ERROR", Message: "invalid request body"})
		return
	}

	result, err := h.service.Register(r.Context(), dto)
	if err != nil {
		if writeValidation(w, err) {
			return
		}
		var exists *ExistsError
		if errors.As(err, &exists) {
			config.JSON(w, http.StatusBadRequest, Response{Error: "USER_EXISTS", Message: exists.Error()})
			return
		}
		log.WithError(err).Error("Registration failed")
		config.JSON(w, http.StatusInternalServerError, Response{
			Error:   "REGISTRATION_FAILED",
			Message: "Failed to create account. Please try again.",
		})
		return
	}

	config.JSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "User created successfully",
		Token:   result.Token,
		User:    &result.User,
	})
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		config.JSON(w, http.StatusBadRequest, Response{Error: "VALIDATION_ERROR", Message: "invalid request body"})
		return
	}

	result, err := h.service.Login(r.Context(), dto)
	if err != nil {
		if writeValidation(w, err) {
			return
		}
		if errors.Is(err, ErrInvalidCredentials) {
			config.JSON(w, http.StatusUnauthorized, Response{Error: "INVALID_CREDENTIALS", Message: "Invalid email or password"})
			return
		}
		log.WithError(err).Error("Login failed")
		config.JSON(w, http.StatusInternalServerError, Response{Error: "LOGIN_FAILED", Message: "Login failed. Please try again."})
		return
	}

	config.JSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Login successful",
		Token:   result.Token,
		User:    &result.User,
	})
}

func (h *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	token := auth.BearerToken(r)
	if token == "" {
		config.JSON(w, http.StatusUnauthorized, Response{Error: "TOKEN_MISSING", Message: "No token provided"})
		return
	}

	claims, err := auth.ValidateJWT(token)
	if err != nil {
		config.JSON(w, http.StatusUnauthorized, Response{Error: "INVALID_TOKEN", Message: "Invalid token"})
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			config.JSON(w, http.StatusUnauthorized, Response{Error: "USER_NOT_FOUND", Message: "User not found"})
			return
		}
		config.WithContext(r.Context()).WithError(err).Error("Failed to load user")
		config.JSON(w, http.StatusUnauthorized, Response{Error: "INVALID_TOKEN", Message: "Invalid token"})
		return
	}

	resp := toResponse(u)
	config.JSON(w, http.StatusOK, Response{Success: true, User: &resp})
}

func writeValidation(w http.ResponseWriter, err error) bool {
	if !errors.Is(err, ErrValidation) {
		return false
	}
	var details validation.Errors
	errors.As(err, &details)
	config.JSON(w, http.StatusBadRequest, Response{
		Error:   "VALIDATION_ERROR",
		Message: "Validation failed",
		Details: details,
	})
	return true
}
