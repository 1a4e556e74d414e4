package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mathhook/mathhook/pkg/mathhook"
)

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var (
	// fSpec and gSpec describe the two input polynomials.
	fSpec string
	gSpec string
	// varsSpec lists the variable names of multivariate inputs.
	varsSpec string
)

// gcdCmd computes the greatest common divisor.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var gcdCmd = &cobra.Command{
	Use:   "gcd",
	Short: "Compute the GCD of two polynomials",
	Long: `Compute the greatest common divisor of two integer polynomials.

Without --vars the inputs are dense univariate coefficient lists by
ascending degree. With --vars the inputs are sparse term lists.`,
	Example: `  mathhook-gcd gcd --f "-1,0,1" --g "1,-2,1"
  mathhook-gcd gcd --vars x,y --f "1:1,1" --g "1:1,1; 1:1,0"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, g, err := parseInputs()
		if err != nil {
			return err
		}
		gcd, err := engine.PolynomialGCD(f, g)
		if err != nil {
			logger.Error("gcd failed: %v", err)
			return err
		}
		cmd.Println(formatPolynomial(gcd))
		return nil
	},
}

// lcmCmd computes the least common multiple.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var lcmCmd = &cobra.Command{
	Use:     "lcm",
	Short:   "Compute the LCM of two polynomials",
	Example: `  mathhook-gcd lcm --f "0,1" --g "0,2"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, g, err := parseInputs()
		if err != nil {
			return err
		}
		lcm, err := engine.PolynomialLCM(f, g)
		if err != nil {
			logger.Error("lcm failed: %v", err)
			return err
		}
		cmd.Println(formatPolynomial(lcm))
		return nil
	},
}

// cofactorsCmd computes the GCD together with both cofactors.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var cofactorsCmd = &cobra.Command{
	Use:     "cofactors",
	Short:   "Compute the GCD and both cofactors",
	Example: `  mathhook-gcd cofactors --f "-1,0,1" --g "1,-2,1"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, g, err := parseInputs()
		if err != nil {
			return err
		}
		res, err := engine.Cofactors(f, g)
		if err != nil {
			logger.Error("cofactors failed: %v", err)
			return err
		}
		cmd.Println("gcd:  " + formatPolynomial(res.Gcd))
		cmd.Println("f/gcd: " + formatPolynomial(res.CofactorF))
		cmd.Println("g/gcd: " + formatPolynomial(res.CofactorG))
		return nil
	},
}

// coprimeCmd reports whether the inputs are coprime.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var coprimeCmd = &cobra.Command{
	Use:     "coprime",
	Short:   "Report whether two polynomials are coprime",
	Example: `  mathhook-gcd coprime --f "1,1" --g "-1,1"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, g, err := parseInputs()
		if err != nil {
			return err
		}
		coprime, err := engine.AreCoprime(f, g)
		if err != nil {
			logger.Error("coprime failed: %v", err)
			return err
		}
		if coprime {
			cmd.Println("coprime")
		} else {
			cmd.Println("not coprime")
		}
		return nil
	},
}

// parseInputs builds both polynomials from the shared flags
func parseInputs() (*mathhook.Polynomial, *mathhook.Polynomial, error) {
	if fSpec == "" || gSpec == "" {
		return nil, nil, fmt.Errorf("both --f and --g are required")
	}
	var vars []string
	if varsSpec != "" {
		for _, v := range strings.Split(varsSpec, ",") {
			vars = append(vars, strings.TrimSpace(v))
		}
	}
	f, err := parsePolynomial(fSpec, vars)
	if err != nil {
		return nil, nil, fmt.Errorf("parse --f: %w", err)
	}
	g, err := parsePolynomial(gSpec, vars)
	if err != nil {
		return nil, nil, fmt.Errorf("parse --g: %w", err)
	}
	return f, g, nil
}

func init() {
	for _, cmd := range []*cobra.Command{gcdCmd, lcmCmd, cofactorsCmd, coprimeCmd} {
		cmd.Flags().StringVar(&fSpec, "f", "", "first polynomial")
		cmd.Flags().StringVar(&gSpec, "g", "", "second polynomial")
		cmd.Flags().StringVar(&varsSpec, "vars", "", "comma-separated variable names for multivariate inputs")
	}
}
