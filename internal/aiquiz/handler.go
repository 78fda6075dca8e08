package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/quizmo-api/internal/config"
)

const (
	defaultDifficulty    = DifficultyEasy
	defaultQuestionCount = 3
	generateFailedMsg    = "Failed to generate Quiz. Please try again."
)

type ErrorResponse struct {
	Error string    `json:"error"`
	Code  ErrorKind `json:"code,omitempty"`
}

type generateBody struct {
	Topic         string `json:"topic"`
	Difficulty    string `json:"difficulty"`
	QuestionCount *int   `json:"questionCount"`
}

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var body generateBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: "invalid request body", Code: KindInvalidRequest})
		return
	}

	req := QuestionRequest{
		Topic:         body.Topic,
		Difficulty:    ParseDifficulty(body.Difficulty),
		QuestionCount: defaultQuestionCount,
	}
	if body.Difficulty == "" {
		req.Difficulty = defaultDifficulty
	}
	if body.QuestionCount != nil {
		req.QuestionCount = *body.QuestionCount
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		var genErr *GenerationError
		if errors.As(err, &genErr) && genErr.IsValidation() {
			config.JSON(w, http.StatusBadRequest, ErrorResponse{Error: genErr.Err.Error(), Code: genErr.Kind})
			return
		}
		log.WithError(err).Errorf("Failed to generate questions: %v", err)
		config.JSON(w, http.StatusInternalServerError, ErrorResponse{Error: generateFailedMsg, Code: KindOf(err)})
		return
	}

	config.JSON(w, http.StatusOK, questions)
}
