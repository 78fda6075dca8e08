package aiquiz_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/saulo-duarte/quizmo-api/internal/aiquiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveGenerate(t *testing.T, p *fakeProvider, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := aiquiz.NewHandler(aiquiz.NewService(p, aiquiz.Options{}))
	router := aiquiz.Routes(h)

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandlerGenerateQuestions(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		p := &fakeProvider{response: marshal(t, sampleQuestions(4))}

		rec := serveGenerate(t, p, `{"topic":"Space","difficulty":"medium","questionCount":4}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var got []aiquiz.Question
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Len(t, got, 4)
		assert.Contains(t, p.user, "MEDIUM")
	})

	t.Run("Defaults", func(t *testing.T) {
		p := &fakeProvider{response: marshal(t, sampleQuestions(3))}

		rec := serveGenerate(t, p, `{"topic":"Space"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, p.user, "Generate 3 multiple choice questions")
		assert.Contains(t, p.user, "EASY")
	})

	t.Run("EmptyTopic", func(t *testing.T) {
		p := &fakeProvider{}

		rec := serveGenerate(t, p, `{"topic":"  "}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)

		var resp aiquiz.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, aiquiz.KindEmptyTopic, resp.Code)
		assert.Equal(t, "topic is required", resp.Error)
		assert.Zero(t, p.calls)
	})

	t.Run("InvalidBody", func(t *testing.T) {
		rec := serveGenerate(t, &fakeProvider{}, `not json`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ExplicitZeroCount", func(t *testing.T) {
		p := &fakeProvider{}

		rec := serveGenerate(t, p, `{"topic":"Space","questionCount":0}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, p.calls)
	})

	t.Run("GenerationFailureHidesDetail", func(t *testing.T) {
		p := &fakeProvider{err: errors.New("quota exceeded for key sk-123")}

		rec := serveGenerate(t, p, `{"topic":"Space"}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp aiquiz.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Failed to generate Quiz. Please try again.", resp.Error)
		assert.Equal(t, aiquiz.KindProviderFailure, resp.Code)
		assert.NotContains(t, rec.Body.String(), "sk-123")
	})

	t.Run("ValidationFailureIs500", func(t *testing.T) {
		qs := sampleQuestions(3)
		qs[0].Answer = "nope"

		rec := serveGenerate(t, &fakeProvider{response: marshal(t, qs)}, `{"topic":"Space"}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp aiquiz.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, aiquiz.KindAnswerNotInOptions, resp.Code)
	})
}
