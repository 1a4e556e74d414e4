package mathhook

import "fmt"

// ErrorCode represents a MathHook error code
type ErrorCode int

const (
	// ErrUnknown represents an unknown error
	ErrUnknown ErrorCode = iota

	// ErrInvalidConfig represents an invalid engine configuration error
	ErrInvalidConfig

	// ErrInvalidInput represents an invalid input error
	ErrInvalidInput

	// ErrNotPolynomial represents a malformed polynomial description
	ErrNotPolynomial

	// ErrDivisionByZero represents a division by zero
	ErrDivisionByZero

	// ErrMaxIterationsExceeded represents an exhausted iteration budget:
	// the engine ran out of primes or evaluation points before the
	// reconstruction stabilized
	ErrMaxIterationsExceeded
)

// GcdError represents a MathHook error
type GcdError struct {
	Code    ErrorCode
	Message string

	// Operation and Limit describe the exhausted budget for
	// ErrMaxIterationsExceeded and are empty otherwise
	Operation string
	Limit     int

	Cause error
}

// Error returns the error message
func (e *GcdError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("mathhook error [%d]: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("mathhook error [%d]: %s", e.Code, e.Message)
}

// Unwrap returns the cause of the error
func (e *GcdError) Unwrap() error {
	return e.Cause
}

// Is checks if the error matches the target error
func (e *GcdError) Is(target error) bool {
	t, ok := target.(*GcdError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}
