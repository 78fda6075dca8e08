package history

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizmo-api/internal/auth"
	"github.com/saulo-duarte/quizmo-api/internal/config"
)

type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Error      string      `json:"error,omitempty"`
	Data       any         `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Deleted    *int64      `json:"deleted,omitempty"`
}

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func currentUserID(r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func unauthorized(w http.ResponseWriter) {
	config.JSON(w, http.StatusUnauthorized, Response{Error: "UNAUTHORIZED", Message: "Authentication required"})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := currentUserID(r)
	if !ok {
		log.Warn("User not authenticated")
		unauthorized(w)
		return
	}

	var dto CreateHistoryDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		config.JSON(w, http.StatusBadRequest, Response{Error: "VALIDATION_ERROR", Message: "invalid request body"})
		return
	}

	entry, err := h.service.RecordResult(r.Context(), userID, dto)
	if err != nil {
		if errors.Is(err, ErrInvalidResult) {
			config.JSON(w, http.StatusBadRequest, Response{Error: "VALIDATION_ERROR", Message: err.Error()})
			return
		}
		config.JSON(w, http.StatusInternalServerError, Response{Error: "SAVE_FAILED", Message: "Failed to save quiz result"})
		return
	}

	config.JSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Quiz result saved successfully",
		Data:    entry,
	})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := currentUserID(r)
	if !ok {
		log.Warn("User not authenticated")
		unauthorized(w)
		return
	}

	// unparsable values fall back to the defaults
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.service.List(r.Context(), userID, page, limit)
	if err != nil {
		config.JSON(w, http.StatusInternalServerError, Response{Error: "FETCH_FAILED", Message: "Failed to fetch quiz history"})
		return
	}

	config.JSON(w, http.StatusOK, Response{
		Success:    true,
		Data:       result.Items,
		Pagination: &result.Pagination,
	})
}

func (h *Handler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := currentUserID(r)
	if !ok {
		log.Warn("User not authenticated")
		unauthorized(w)
		return
	}

	n, err := h.service.DeleteAll(r.Context(), userID)
	if err != nil {
		config.JSON(w, http.StatusInternalServerError, Response{Error: "DELETE_ALL_FAILED", Message: "Failed to delete all quiz history"})
		return
	}

	config.JSON(w, http.StatusOK, Response{
		Success: true,
		Message: "All quiz history deleted.",
		Deleted: &n,
	})
}

func (h *Handler) DeleteOne(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := currentUserID(r)
	if !ok {
		log.Warn("User not authenticated")
		unauthorized(w)
		return
	}

	err := h.service.DeleteOne(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			config.JSON(w, http.StatusNotFound, Response{Message: "History entry not found or not authorized."})
			return
		}
		config.JSON(w, http.StatusInternalServerError, Response{Error: "DELETE_ONE_FAILED", Message: "Failed to delete quiz history entry"})
		return
	}

	config.JSON(w, http.StatusOK, Response{Success: true, Message: "Quiz history entry deleted."})
}
