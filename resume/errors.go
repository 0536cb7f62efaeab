package resume

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedInput is matched by every error that rejects the shape of the input.
var ErrMalformedInput = errors.New("malformed resume input")

// Problem is a single shape violation at a field path.
type Problem struct {
	Field   string
	Message string
}

// MalformedInputError reports why an input document cannot become a Resume.
type MalformedInputError struct {
	Problems []Problem
}

func (e *MalformedInputError) Error() string {
	if len(e.Problems) == 1 {
		p := e.Problems[0]
		return fmt.Sprintf("malformed resume input: %s: %s", p.Field, p.Message)
	}
	var sb strings.Builder
	sb.WriteString("malformed resume input:")
	for i, p := range e.Problems {
		sb.WriteString(fmt.Sprintf("\n  %d. %s: %s", i+1, p.Field, p.Message))
	}
	return sb.String()
}

func (e *MalformedInputError) Unwrap() error { return ErrMalformedInput }

func malformed(field, message string) *MalformedInputError {
	return &MalformedInputError{Problems: []Problem{{Field: field, Message: message}}}
}
