package mathhook

import (
	"errors"
	"math/big"
	"testing"
)

func newTestEngine(t *testing.T) Engine {
	t.Helper()
	engine, err := NewEngine(nil)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	return engine
}

// TestEngineOptionsValidation tests rejection of bad options
func TestEngineOptionsValidation(t *testing.T) {
	opts := DefaultOptions()
	opts.StabilityThreshold = 0

	_, err := NewEngine(opts)
	if !errors.Is(err, &GcdError{Code: ErrInvalidConfig}) {
		t.Errorf("Expected ErrInvalidConfig, got %v", err)
	}
}

// TestPolynomialGCDUnivariate tests the public univariate path
func TestPolynomialGCDUnivariate(t *testing.T) {
	engine := newTestEngine(t)

	f := NewUnivariateInt64([]int64{-1, 0, 1}) // x^2 - 1
	g := NewUnivariateInt64([]int64{1, -2, 1}) // (x-1)^2

	gcd, err := engine.PolynomialGCD(f, g)
	if err != nil {
		t.Fatalf("PolynomialGCD failed: %v", err)
	}
	if gcd.Kind != KindUnivariate {
		t.Fatalf("Expected a univariate result, got %s", gcd.Kind)
	}
	if len(gcd.Coeffs) != 2 || gcd.Coeffs[0].Int64() != -1 || gcd.Coeffs[1].Int64() != 1 {
		t.Errorf("Expected x - 1, got coefficients %v", gcd.Coeffs)
	}
}

// TestPolynomialGCDConstants tests that two constants stay constant
func TestPolynomialGCDConstants(t *testing.T) {
	engine := newTestEngine(t)

	gcd, err := engine.PolynomialGCD(NewConstantInt64(12), NewConstantInt64(18))
	if err != nil {
		t.Fatalf("PolynomialGCD failed: %v", err)
	}
	if gcd.Kind != KindConstant {
		t.Fatalf("Expected a constant result, got %s", gcd.Kind)
	}
	if gcd.Constant.Int64() != 6 {
		t.Errorf("gcd(12, 18): expected 6, got %s", gcd.Constant)
	}
}

// TestPolynomialGCDConstantPromotion tests mixing a constant with a
// polynomial
func TestPolynomialGCDConstantPromotion(t *testing.T) {
	engine := newTestEngine(t)

	// gcd(4, 6x + 10) = 2
	gcd, err := engine.PolynomialGCD(NewConstantInt64(4), NewUnivariateInt64([]int64{10, 6}))
	if err != nil {
		t.Fatalf("PolynomialGCD failed: %v", err)
	}
	if gcd.Kind != KindUnivariate {
		t.Fatalf("Expected a univariate result, got %s", gcd.Kind)
	}
	if len(gcd.Coeffs) != 1 || gcd.Coeffs[0].Int64() != 2 {
		t.Errorf("Expected constant gcd 2, got %v", gcd.Coeffs)
	}
}

// TestPolynomialGCDMultivariate tests the public multivariate path
func TestPolynomialGCDMultivariate(t *testing.T) {
	engine := newTestEngine(t)
	vars := []string{"x", "y"}

	// f = x*y, g = x*y + x
	f := NewMultivariate(vars, []Term{
		{Exponents: []int{1, 1}, Coeff: big.NewInt(1)},
	})
	g := NewMultivariate(vars, []Term{
		{Exponents: []int{1, 1}, Coeff: big.NewInt(1)},
		{Exponents: []int{1, 0}, Coeff: big.NewInt(1)},
	})

	gcd, err := engine.PolynomialGCD(f, g)
	if err != nil {
		t.Fatalf("PolynomialGCD failed: %v", err)
	}
	if gcd.Kind != KindMultivariate {
		t.Fatalf("Expected a multivariate result, got %s", gcd.Kind)
	}
	if len(gcd.Terms) != 1 {
		t.Fatalf("Expected a single term, got %d", len(gcd.Terms))
	}
	term := gcd.Terms[0]
	if term.Coeff.Int64() != 1 || term.Exponents[0] != 1 || term.Exponents[1] != 0 {
		t.Errorf("Expected gcd x, got %+v", term)
	}
}

// TestPolynomialGCDVariableAlignment tests unification over different
// variable lists
func TestPolynomialGCDVariableAlignment(t *testing.T) {
	engine := newTestEngine(t)

	// f = x*y over (x, y); g = y over (y); the shared factor is y
	f := NewMultivariate([]string{"x", "y"}, []Term{
		{Exponents: []int{1, 1}, Coeff: big.NewInt(1)},
	})
	g := NewMultivariate([]string{"y"}, []Term{
		{Exponents: []int{1}, Coeff: big.NewInt(1)},
	})

	gcd, err := engine.PolynomialGCD(f, g)
	if err != nil {
		t.Fatalf("PolynomialGCD failed: %v", err)
	}
	if len(gcd.Vars) != 2 {
		t.Fatalf("Expected the union variable list, got %v", gcd.Vars)
	}
	if len(gcd.Terms) != 1 || gcd.Terms[0].Exponents[0] != 0 || gcd.Terms[0].Exponents[1] != 1 {
		t.Errorf("Expected gcd y, got %+v", gcd.Terms)
	}
}

// TestCofactorsRoundTrip tests the gcd times cofactor identity through the
// public API
func TestCofactorsRoundTrip(t *testing.T) {
	engine := newTestEngine(t)

	f := NewUnivariateInt64([]int64{-1, 0, 0, 1}) // x^3 - 1
	g := NewUnivariateInt64([]int64{-1, 1})       // x - 1

	res, err := engine.Cofactors(f, g)
	if err != nil {
		t.Fatalf("Cofactors failed: %v", err)
	}

	// f/gcd = x^2 + x + 1, g/gcd = 1
	if len(res.CofactorF.Coeffs) != 3 {
		t.Errorf("Expected quadratic cofactor, got %v", res.CofactorF.Coeffs)
	}
	if len(res.CofactorG.Coeffs) != 1 || res.CofactorG.Coeffs[0].Int64() != 1 {
		t.Errorf("Expected cofactor 1, got %v", res.CofactorG.Coeffs)
	}
}

// TestPolynomialLCM tests the LCM identity and its zero-input error
func TestPolynomialLCM(t *testing.T) {
	engine := newTestEngine(t)

	// lcm(2x+4, 6x+12) = 6x+12
	lcm, err := engine.PolynomialLCM(
		NewUnivariateInt64([]int64{4, 2}),
		NewUnivariateInt64([]int64{12, 6}),
	)
	if err != nil {
		t.Fatalf("PolynomialLCM failed: %v", err)
	}
	if len(lcm.Coeffs) != 2 || lcm.Coeffs[0].Int64() != 12 || lcm.Coeffs[1].Int64() != 6 {
		t.Errorf("Expected 6x + 12, got %v", lcm.Coeffs)
	}

	zero := NewUnivariateInt64([]int64{0})
	_, err = engine.PolynomialLCM(zero, zero)
	if !errors.Is(err, &GcdError{Code: ErrInvalidInput}) {
		t.Errorf("Expected ErrInvalidInput for lcm(0, 0), got %v", err)
	}
}

// TestAreCoprime tests coprimality across constants and polynomials
func TestAreCoprime(t *testing.T) {
	engine := newTestEngine(t)

	coprime, err := engine.AreCoprime(
		NewUnivariateInt64([]int64{1, 1}),
		NewUnivariateInt64([]int64{2, 1}),
	)
	if err != nil {
		t.Fatalf("AreCoprime failed: %v", err)
	}
	if !coprime {
		t.Error("x + 1 and x + 2 should be coprime")
	}

	shared, err := engine.AreCoprime(
		NewUnivariateInt64([]int64{-1, 0, 1}),
		NewUnivariateInt64([]int64{1, -2, 1}),
	)
	if err != nil {
		t.Fatalf("AreCoprime failed: %v", err)
	}
	if shared {
		t.Error("Polynomials sharing x - 1 should not be coprime")
	}

	// A non-zero constant gcd counts as coprime even when it exceeds 1
	content, err := engine.AreCoprime(
		NewUnivariateInt64([]int64{2, 2}),
		NewUnivariateInt64([]int64{4, 2}),
	)
	if err != nil {
		t.Fatalf("AreCoprime failed: %v", err)
	}
	if !content {
		t.Error("2x + 2 and 2x + 4 have constant gcd 2 and should be coprime")
	}

	constants, err := engine.AreCoprime(NewConstantInt64(2), NewConstantInt64(4))
	if err != nil {
		t.Fatalf("AreCoprime failed: %v", err)
	}
	if !constants {
		t.Error("2 and 4 have non-zero constant gcd and should be coprime")
	}

	zeros, err := engine.AreCoprime(NewConstantInt64(0), NewConstantInt64(0))
	if err != nil {
		t.Fatalf("AreCoprime failed: %v", err)
	}
	if zeros {
		t.Error("Two zero polynomials have gcd zero and should not be coprime")
	}
}

// TestMixedKindsRejected tests that a univariate input cannot meet a wide
// multivariate one
func TestMixedKindsRejected(t *testing.T) {
	engine := newTestEngine(t)

	f := NewUnivariateInt64([]int64{0, 1})
	g := NewMultivariate([]string{"x", "y"}, []Term{
		{Exponents: []int{1, 1}, Coeff: big.NewInt(1)},
	})

	_, err := engine.PolynomialGCD(f, g)
	if !errors.Is(err, &GcdError{Code: ErrInvalidInput}) {
		t.Errorf("Expected ErrInvalidInput, got %v", err)
	}
}
