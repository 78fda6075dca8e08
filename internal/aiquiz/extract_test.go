package aiquiz_test

import (
	"testing"

	"github.com/saulo-duarte/quizmo-api/internal/aiquiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractJSONArray(t *testing.T) {
	t.Run("IsolatesBracketedSpan", func(t *testing.T) {
		text := `prefix [ {"question":"a"}, {"question":"b"} ] suffix`

		got, err := aiquiz.ExtractJSONArray(text)
		require.NoError(t, err)
		assert.Equal(t, `[ {"question":"a"}, {"question":"b"} ]`, got)
	})

	t.Run("CodeFence", func(t *testing.T) {
		text := "```json\n[{\"question\":\"q\"}]\n```"

		got, err := aiquiz.ExtractJSONArray(text)
		require.NoError(t, err)
		assert.Equal(t, `[{"question":"q"}]`, got)
	})

	t.Run("BracketsInsideStrings", func(t *testing.T) {
		text := `Here you go: [{"question":"What does a[0] return?","options":["]","[","x","y"],"answer":"x"}] Enjoy! [1]`

		got, err := aiquiz.ExtractJSONArray(text)
		require.NoError(t, err)
		assert.Equal(t, `[{"question":"What does a[0] return?","options":["]","[","x","y"],"answer":"x"}]`, got)
	})

	t.Run("EscapedQuoteInString", func(t *testing.T) {
		text := `[{"question":"say \"]\" now"}] trailing ]`

		got, err := aiquiz.ExtractJSONArray(text)
		require.NoError(t, err)
		assert.Equal(t, `[{"question":"say \"]\" now"}]`, got)
	})

	t.Run("NestedArrays", func(t *testing.T) {
		got, err := aiquiz.ExtractJSONArray(`x [[1,2],[3]] y`)
		require.NoError(t, err)
		assert.Equal(t, `[[1,2],[3]]`, got)
	})

	t.Run("MissingOpeningBracket", func(t *testing.T) {
		_, err := aiquiz.ExtractJSONArray(`{"question":"no array here"}]`)
		assert.Equal(t, aiquiz.KindNoJSONFound, aiquiz.KindOf(err))
	})

	t.Run("MissingClosingBracket", func(t *testing.T) {
		_, err := aiquiz.ExtractJSONArray(`[{"question":"cut off"`)
		assert.Equal(t, aiquiz.KindNoJSONFound, aiquiz.KindOf(err))
	})

	t.Run("EmptyText", func(t *testing.T) {
		_, err := aiquiz.ExtractJSONArray("")
		assert.ErrorIs(t, err, &aiquiz.GenerationError{Kind: aiquiz.KindNoJSONFound})
	})
}
