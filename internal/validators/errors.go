package validators

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every [*ValidationError].
	ErrValidation = errors.New("validation failed")
)

// ValidationError carries one message per invalid field. Message repeats the
// first failure in field order, for clients that only show a single line.
type ValidationError struct {
	Message string
	Fields  map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) <= 1 {
		return e.Message
	}

	keys := slices.Sorted(maps.Keys(e.Fields))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}

	return strings.Join(parts, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// fieldErrors accumulates failures while preserving which came first.
type fieldErrors struct {
	first  string
	fields map[string]string
}

func (f *fieldErrors) add(field, message string) {
	if f.fields == nil {
		f.fields = make(map[string]string)
		f.first = message
	}
	if _, exists := f.fields[field]; !exists {
		f.fields[field] = message
	}
}

func (f *fieldErrors) err() error {
	if len(f.fields) == 0 {
		return nil
	}
	return &ValidationError{Message: f.first, Fields: f.fields}
}
