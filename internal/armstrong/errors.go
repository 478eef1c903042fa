package armstrong

import (
	"errors"
	"fmt"
	"strconv"
)

// InputError reports a value that could not be read as an integer.
type InputError struct {
	Field string
	Input string
	Err   error
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// SpanError reports a range wider than the configured limit.
type SpanError struct {
	Bounds  Bounds
	MaxSpan uint64
}

func (e *SpanError) Error() string {
	return fmt.Sprintf("range %d..%d exceeds max span %d", e.Bounds.Low, e.Bounds.High, e.MaxSpan)
}

// ParseInt parses s as a base-10 signed integer, returning an InputError
// naming field on failure.
func ParseInt(field, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &InputError{Field: field, Input: s, Err: err}
	}
	return n, nil
}

// IsInputError checks if an error is an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
