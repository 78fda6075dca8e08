package aiquiz

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	KindEmptyTopic         ErrorKind = "EMPTY_TOPIC"
	KindInvalidRequest     ErrorKind = "INVALID_REQUEST"
	KindProviderFailure    ErrorKind = "PROVIDER_FAILURE"
	KindNoJSONFound        ErrorKind = "NO_JSON_FOUND"
	KindMalformedJSON      ErrorKind = "MALFORMED_JSON"
	KindWrongLength        ErrorKind = "WRONG_LENGTH"
	KindInvalidQuestion    ErrorKind = "INVALID_QUESTION"
	KindAnswerNotInOptions ErrorKind = "ANSWER_NOT_IN_OPTIONS"
)

// GenerationError is the single failure type of the quiz pipeline. Index is
// the zero-based question position for per-question kinds and -1 otherwise.
type GenerationError struct {
	Kind  ErrorKind
	Index int
	Err   error
}

func newError(kind ErrorKind, err error) *GenerationError {
	return &GenerationError{Kind: kind, Index: -1, Err: err}
}

func questionError(kind ErrorKind, index int, err error) *GenerationError {
	return &GenerationError{Kind: kind, Index: index, Err: err}
}

func (e *GenerationError) Error() string {
	msg := string(e.Kind)
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s at question %d", msg, e.Index)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is matches any *GenerationError of the same kind, so callers can write
// errors.Is(err, &GenerationError{Kind: KindNoJSONFound}).
func (e *GenerationError) Is(target error) bool {
	t, ok := target.(*GenerationError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// IsValidation reports whether the failure is the caller's fault and no
// provider call was made.
func (e *GenerationError) IsValidation() bool {
	return e.Kind == KindEmptyTopic || e.Kind == KindInvalidRequest
}

func KindOf(err error) ErrorKind {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return ""
}
