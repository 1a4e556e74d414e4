package modgcd

import "fmt"

// Config governs the retry budgets and strategy choices of the modular GCD
// engine. All fields apply per top-level call; the engine keeps no state
// across calls.
type Config struct {
	// StabilityThreshold is the number of consecutive primes for which the
	// CRT reconstruction must stay unchanged before trial division is
	// attempted
	StabilityThreshold int

	// MaxPrimes bounds the number of prime trials per call
	MaxPrimes int

	// MaxEvalPoints bounds the number of evaluation points consumed by
	// multivariate interpolation per call
	MaxEvalPoints int

	// SparseThreshold is the density below which Zippel sparse
	// interpolation replaces dense Lagrange interpolation
	SparseThreshold float64

	// UseSparse enables sparse interpolation when the analyzer recommends it
	UseSparse bool

	// StartingPrimeIdx is the index into the prime table where selection
	// begins
	StartingPrimeIdx int

	// MaxVariables bounds the arity of multivariate inputs
	MaxVariables int

	// Workers is the number of concurrent prime trials; 1 means serial
	Workers int
}

// DefaultConfig returns the default engine configuration
func DefaultConfig() *Config {
	return &Config{
		StabilityThreshold: 2,
		MaxPrimes:          64,
		MaxEvalPoints:      2048,
		SparseThreshold:    0.3,
		UseSparse:          true,
		StartingPrimeIdx:   0,
		MaxVariables:       16,
		Workers:            1,
	}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.StabilityThreshold < 1 {
		return fmt.Errorf("stability threshold must be at least 1")
	}
	if c.MaxPrimes < c.StabilityThreshold {
		return fmt.Errorf("prime budget (%d) must be at least the stability threshold (%d)",
			c.MaxPrimes, c.StabilityThreshold)
	}
	if c.MaxEvalPoints <= 0 {
		return fmt.Errorf("evaluation point budget must be positive")
	}
	if c.SparseThreshold <= 0 || c.SparseThreshold > 1 {
		return fmt.Errorf("sparse threshold must be in (0, 1], got %g", c.SparseThreshold)
	}
	if c.StartingPrimeIdx < 0 {
		return fmt.Errorf("starting prime index must not be negative")
	}
	if c.MaxVariables < 1 {
		return fmt.Errorf("maximum variable count must be at least 1")
	}
	if c.Workers < 1 {
		return fmt.Errorf("worker count must be at least 1")
	}
	return nil
}
