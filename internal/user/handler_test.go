package user

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/quizmo-api/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Error   string        `json:"error"`
	Token   string        `json:"token"`
	User    *UserResponse `json:"user"`
	Details []struct {
		Field string `json:"field"`
	} `json:"details"`
}

func do(t *testing.T, h http.Handler, method, target, body, token string) (int, apiResponse) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return rec.Code, resp
}

func TestAuthRoundTrip(t *testing.T) {
	svc := newTestService(t)
	router := Routes(NewHandler(svc))

	var token string

	t.Run("Register", func(t *testing.T) {
		code, resp := do(t, router, http.MethodPost, "/register",
			`{"username":"round_trip","email":"rt@example.com","password":"Secret1"}`, "")
		require.Equal(t, http.StatusCreated, code)
		assert.True(t, resp.Success)
		assert.Equal(t, "User created successfully", resp.Message)
		require.NotNil(t, resp.User)
		assert.Equal(t, "round_trip", resp.User.Username)
		token = resp.Token
	})

	t.Run("RegisterDuplicate", func(t *testing.T) {
		code, resp := do(t, router, http.MethodPost, "/register",
			`{"username":"someone_else","email":"rt@example.com","password":"Secret1"}`, "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "USER_EXISTS", resp.Error)
		assert.Equal(t, "User with this email already exists", resp.Message)
	})

	t.Run("RegisterInvalid", func(t *testing.T) {
		code, resp := do(t, router, http.MethodPost, "/register",
			`{"username":"x","email":"rt@example.com","password":"weak"}`, "")
		assert.Equal(t, http.StatusBadRequest, code)
		assert.Equal(t, "VALIDATION_ERROR", resp.Error)
		assert.NotEmpty(t, resp.Details)
	})

	t.Run("Login", func(t *testing.T) {
		code, resp := do(t, router, http.MethodPost, "/login", `{"email":"rt@example.com","password":"Secret1"}`, "")
		require.Equal(t, http.StatusOK, code)
		assert.Equal(t, "Login successful", resp.Message)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("LoginWrongPassword", func(t *testing.T) {
		code, resp := do(t, router, http.MethodPost, "/login", `{"email":"rt@example.com","password":"Nope123"}`, "")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "INVALID_CREDENTIALS", resp.Error)
	})

	t.Run("Verify", func(t *testing.T) {
		code, resp := do(t, router, http.MethodGet, "/verify", "", token)
		require.Equal(t, http.StatusOK, code)
		require.NotNil(t, resp.User)
		assert.Equal(t, "rt@example.com", resp.User.Email)
	})

	t.Run("VerifyMissingToken", func(t *testing.T) {
		code, resp := do(t, router, http.MethodGet, "/verify", "", "")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "TOKEN_MISSING", resp.Error)
	})

	t.Run("VerifyGarbageToken", func(t *testing.T) {
		code, resp := do(t, router, http.MethodGet, "/verify", "", "abc.def.ghi")
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "INVALID_TOKEN", resp.Error)
	})

	t.Run("VerifyUnknownUser", func(t *testing.T) {
		ghost, err := auth.GenerateJWT(uuid.NewString(), userRole, time.Hour)
		require.NoError(t, err)

		code, resp := do(t, router, http.MethodGet, "/verify", "", ghost)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "USER_NOT_FOUND", resp.Error)
	})
}

func TestRequireUser(t *testing.T) {
	svc := newTestService(t)
	reg, err := svc.Register(t.Context(), RegisterDTO{Username: "member", Email: "m@example.com", Password: "Secret1"})
	require.NoError(t, err)

	r := chi.NewRouter()
	r.Use(auth.AuthMiddleware, RequireUser(svc))
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true}`))
	})

	t.Run("KnownUser", func(t *testing.T) {
		code, resp := do(t, r, http.MethodGet, "/", "", reg.Token)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, resp.Success)
	})

	t.Run("DeletedUser", func(t *testing.T) {
		ghost, err := auth.GenerateJWT(uuid.NewString(), userRole, time.Hour)
		require.NoError(t, err)

		code, resp := do(t, r, http.MethodGet, "/", "", ghost)
		assert.Equal(t, http.StatusUnauthorized, code)
		assert.Equal(t, "USER_NOT_FOUND", resp.Error)
	})

	t.Run("StoreFailure", func(t *testing.T) {
		broken := chi.NewRouter()
		broken.Use(auth.AuthMiddleware, RequireUser(failingService{}))
		broken.Get("/", func(w http.ResponseWriter, r *http.Request) {})

		token, err := auth.GenerateJWT(uuid.NewString(), userRole, time.Hour)
		require.NoError(t, err)

		code, resp := do(t, broken, http.MethodGet, "/", "", token)
		assert.Equal(t, http.StatusInternalServerError, code)
		assert.Equal(t, "USER_LOOKUP_FAILED", resp.Error)
		assert.Equal(t, "Failed to verify user", resp.Message)
	})
}

type failingService struct{ Service }

func (failingService) GetByID(ctx context.Context, id string) (*User, error) {
	return nil, errors.New("connection refused")
}
