package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const optionsPerQuestion = 4

// ParseQuestions decodes the extracted array and checks it against the
// requested count. The first failing question stops validation.
func ParseQuestions(raw string, want int) ([]Question, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, newError(KindMalformedJSON, err)
	}

	if len(items) != want {
		return nil, newError(KindWrongLength, fmt.Errorf("got %d questions, want %d", len(items), want))
	}

	questions := make([]Question, 0, len(items))
	for i, item := range items {
		q, err := decodeQuestion(item)
		if err != nil {
			return nil, questionError(KindInvalidQuestion, i, err)
		}
		if err := validateQuestion(q); err != nil {
			var genErr *GenerationError
			if errors.As(err, &genErr) {
				genErr.Index = i
				return nil, genErr
			}
			return nil, questionError(KindInvalidQuestion, i, err)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// decodeQuestion reads the three fields by their exact names. encoding/json
// would otherwise accept "QUESTION" or "Answer" for the struct tags.
func decodeQuestion(item json.RawMessage) (Question, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(item, &fields); err != nil {
		return Question{}, err
	}

	var q Question
	for _, f := range []struct {
		key string
		dst any
	}{
		{"question", &q.Question},
		{"options", &q.Options},
		{"answer", &q.Answer},
	} {
		raw, ok := fields[f.key]
		if !ok {
			return Question{}, fmt.Errorf("missing %q field", f.key)
		}
		if err := json.Unmarshal(raw, f.dst); err != nil {
			return Question{}, fmt.Errorf("field %q: %w", f.key, err)
		}
	}
	return q, nil
}

func validateQuestion(q Question) error {
	if strings.TrimSpace(q.Question) == "" {
		return questionError(KindInvalidQuestion, -1, errors.New("question text is empty"))
	}
	if len(q.Options) != optionsPerQuestion {
		return questionError(KindInvalidQuestion, -1, fmt.Errorf("has %d options, want %d", len(q.Options), optionsPerQuestion))
	}

	seen := make(map[string]struct{}, len(q.Options))
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return questionError(KindInvalidQuestion, -1, errors.New("empty option"))
		}
		if _, dup := seen[opt]; dup {
			return questionError(KindInvalidQuestion, -1, fmt.Errorf("duplicate option %q", opt))
		}
		seen[opt] = struct{}{}
	}

	if strings.TrimSpace(q.Answer) == "" {
		return questionError(KindInvalidQuestion, -1, errors.New("answer is empty"))
	}
	if _, ok := seen[q.Answer]; !ok {
		return questionError(KindAnswerNotInOptions, -1, fmt.Errorf("answer %q is not one of the options", q.Answer))
	}
	return nil
}
