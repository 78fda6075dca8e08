package config_test

import (
	"testing"
	"time"

	"github.com/saulo-duarte/quizmo-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("MissingSecret", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "")

		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrMissingJWTSecret)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "segredo")

		s, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "5000", s.Server.Port)
		assert.Equal(t, "postgres", s.Database.Driver)
		assert.Equal(t, "gemini", s.AI.Provider)
		assert.Equal(t, 30*time.Second, s.AI.Timeout)
		assert.Equal(t, 50, s.AI.MaxQuestions)
		assert.Equal(t, 7*24*time.Hour, s.JWT.TTL)
		assert.Equal(t, []string{"https://quizmoai.vercel.app", "http://localhost:5173"}, s.CORS.AllowedOrigins)
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("JWT_SECRET", "segredo")
		t.Setenv("PORT", "8080")
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("AI_PROVIDER", "openai")
		t.Setenv("AI_TIMEOUT", "5s")
		t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")
		t.Setenv("RATE_LIMIT_WINDOW", "2m")

		s, err := config.Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", s.Server.Port)
		assert.Equal(t, "sqlite", s.Database.Driver)
		assert.Equal(t, "openai", s.AI.Provider)
		assert.Equal(t, 5*time.Second, s.AI.Timeout)
		assert.Equal(t, 2*time.Minute, s.RateLimit.Window)
		assert.Equal(t, []string{"http://a.test", "http://b.test"}, s.CORS.AllowedOrigins)
	})
}
