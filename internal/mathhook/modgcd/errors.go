package modgcd

import "fmt"

// MaxIterationsError reports that a retry budget was exhausted before a
// verified result converged. It is the only way an incomplete computation
// surfaces: partial candidates are never returned.
type MaxIterationsError struct {
	Operation string
	Limit     int
}

// Error returns the error message
func (e *MaxIterationsError) Error() string {
	return fmt.Sprintf("%s exceeded the configured budget of %d iterations without verified convergence", e.Operation, e.Limit)
}
