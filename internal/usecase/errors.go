package usecase

import (
	"errors"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// Import failures. Each is terminal for the run and leaves storage untouched.
var (
	ErrUpstreamFetch     = crerr.New("upstream fetch failed")
	ErrEmptyPayload      = crerr.New("upstream returned no records")
	ErrImportTransaction = crerr.New("import transaction failed")
)

// FieldViolation describes one invalid input field.
type FieldViolation struct {
	Field   string
	Rule    string
	Message string
}

// ValidationError reports every invalid field of a request at once. It
// matches ErrInvalidInput.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	if e == nil || len(e.Violations) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Field+": "+v.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *ValidationError) add(field, rule, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Rule: rule, Message: message})
}

func (e *ValidationError) empty() bool {
	return len(e.Violations) == 0
}
