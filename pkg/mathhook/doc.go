// Package mathhook provides exact polynomial GCD computation over the
// integers using modular arithmetic.
//
// The engine reduces each input modulo machine-word primes, computes GCD
// images over the resulting finite fields, and reconstructs the integer
// answer with the Chinese Remainder Theorem in the symmetric residue range.
// Every reconstructed candidate is confirmed by integer trial division
// before it is returned, so unlucky primes or evaluation points can cost
// time but never correctness.
//
// Univariate inputs use dense Euclidean GCDs per prime. Multivariate inputs
// additionally peel variables by evaluation and interpolation, choosing
// between dense Lagrange interpolation and Zippel's sparse interpolation
// based on how sparse the inputs are.
//
// # Quick Start
//
// Computing the GCD of two univariate polynomials:
//
//	engine, err := mathhook.NewEngine(nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// f = x^2 - 1, g = x^2 - 2x + 1, coefficients by ascending degree
//	f := mathhook.NewUnivariateInt64([]int64{-1, 0, 1})
//	g := mathhook.NewUnivariateInt64([]int64{1, -2, 1})
//
//	gcd, err := engine.PolynomialGCD(f, g)
//	if err != nil {
//		log.Fatal(err)
//	}
//	// gcd is x - 1
//
// Multivariate polynomials are described by sparse term lists:
//
//	f := mathhook.NewMultivariate([]string{"x", "y"}, []mathhook.Term{
//		{Exponents: []int{1, 1}, Coeff: big.NewInt(1)}, // x*y
//	})
//
// # Architecture
//
// - pkg/mathhook/: Public API (this package)
// - internal/mathhook/: Private implementation (not importable)
//
// # Error Handling
//
// All failures are reported as *GcdError values carrying an ErrorCode.
// Budget exhaustion (too few primes or evaluation points for the inputs)
// surfaces as ErrMaxIterationsExceeded with the exhausted operation and
// limit attached.
package mathhook
