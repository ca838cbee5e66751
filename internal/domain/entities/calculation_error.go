package entities

import (
	"errors"
	"fmt"
)

// CalculationErrorKind classifies a failed price calculation.
type CalculationErrorKind string

const (
	CalculationErrorHTTP       CalculationErrorKind = "http"
	CalculationErrorMalformed  CalculationErrorKind = "malformed"
	CalculationErrorServer     CalculationErrorKind = "server"
	CalculationErrorTransport  CalculationErrorKind = "transport"
	CalculationErrorValidation CalculationErrorKind = "validation"
)

// CalculationError is the failure side of a price calculation. Message is
// what the configurator shows in its error state.
type CalculationError struct {
	Kind       CalculationErrorKind
	Message    string
	StatusCode int
	Err        error
}

func NewCalculationError(kind CalculationErrorKind, message string, err error) *CalculationError {
	return &CalculationError{Kind: kind, Message: message, Err: err}
}

func (e *CalculationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("price calculation failed (%s, status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("price calculation failed (%s): %s", e.Kind, e.Message)
}

func (e *CalculationError) Unwrap() error { return e.Err }

// AsCalculationError returns err as a *CalculationError. Errors of any other
// type are reported as transport failures.
func AsCalculationError(err error) *CalculationError {
	if err == nil {
		return nil
	}
	var ce *CalculationError
	if errors.As(err, &ce) {
		return ce
	}
	return NewCalculationError(CalculationErrorTransport, err.Error(), err)
}
