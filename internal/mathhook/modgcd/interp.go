package modgcd

import (
	"fmt"

	"github.com/mathhook/mathhook/internal/mathhook/core"
)

// lagrangeLiftVar interpolates in one variable across sample images: given
// images of a polynomial at nodes b_0..b_d of x_v, it reconstructs the
// polynomial with its x_v dependence restored. The images must not depend
// on x_v themselves.
func lagrangeLiftVar(field *core.Field, images []*core.MultiPoly, nodes []*core.FieldElement, variable int) (*core.MultiPoly, error) {
	if len(images) == 0 || len(images) != len(nodes) {
		return nil, fmt.Errorf("interpolation needs matching non-empty image and node slices, got %d/%d", len(images), len(nodes))
	}

	nvars := images[0].NVars()
	result := core.NewMultiPoly(nvars)

	for j := range nodes {
		basis, err := lagrangeBasis(field, nodes, j)
		if err != nil {
			return nil, err
		}

		mons, coeffs := images[j].Terms()
		for i, m := range mons {
			c := field.NewElement(coeffs[i])
			for k, bk := range basis {
				if bk.IsZero() {
					continue
				}
				mon := m.Clone()
				mon[variable] += k
				result.AddTerm(mon, c.Mul(bk).Big())
			}
		}
	}
	return result.ReduceMod(field), nil
}

// lagrangeBasis returns the dense coefficients of the Lagrange basis
// polynomial L_j over the given nodes
func lagrangeBasis(field *core.Field, nodes []*core.FieldElement, j int) ([]*core.FieldElement, error) {
	basis := []*core.FieldElement{field.One()}
	denom := field.One()

	for m, node := range nodes {
		if m == j {
			continue
		}
		// basis *= (x - node)
		next := make([]*core.FieldElement, len(basis)+1)
		for i := range next {
			next[i] = field.Zero()
		}
		negNode := node.Neg()
		for i, b := range basis {
			next[i] = next[i].Add(b.Mul(negNode))
			next[i+1] = next[i+1].Add(b)
		}
		basis = next

		d := nodes[j].Sub(node)
		if d.IsZero() {
			return nil, fmt.Errorf("duplicate interpolation node %s", node)
		}
		denom = denom.Mul(d)
	}

	scale, err := denom.Inv()
	if err != nil {
		return nil, err
	}
	for i := range basis {
		basis[i] = basis[i].Mul(scale)
	}
	return basis, nil
}

// solveVandermonde solves the Zippel system sum_i c_i * node_i^(j+1) =
// values_j for j = 0..n-1 by Gaussian elimination over the field. The nodes
// must be pairwise distinct and non-zero or the system is singular.
func solveVandermonde(field *core.Field, nodes, values []*core.FieldElement) ([]*core.FieldElement, error) {
	n := len(nodes)
	if n == 0 || len(values) < n {
		return nil, fmt.Errorf("vandermonde system needs %d values, got %d", n, len(values))
	}

	// Row j holds node_i^(j+1)
	matrix := make([][]*core.FieldElement, n)
	rhs := make([]*core.FieldElement, n)
	powers := make([]*core.FieldElement, n)
	for i, node := range nodes {
		powers[i] = node
	}
	for j := 0; j < n; j++ {
		matrix[j] = make([]*core.FieldElement, n)
		for i := range powers {
			matrix[j][i] = powers[i]
			powers[i] = powers[i].Mul(nodes[i])
		}
		rhs[j] = values[j]
	}

	// Forward elimination with pivot search
	for col := 0; col < n; col++ {
		pivot := -1
		for row := col; row < n; row++ {
			if !matrix[row][col].IsZero() {
				pivot = row
				break
			}
		}
		if pivot < 0 {
			return nil, fmt.Errorf("singular vandermonde system at column %d", col)
		}
		matrix[col], matrix[pivot] = matrix[pivot], matrix[col]
		rhs[col], rhs[pivot] = rhs[pivot], rhs[col]

		pivotInv, err := matrix[col][col].Inv()
		if err != nil {
			return nil, err
		}
		for row := col + 1; row < n; row++ {
			if matrix[row][col].IsZero() {
				continue
			}
			factor := matrix[row][col].Mul(pivotInv)
			for k := col; k < n; k++ {
				matrix[row][k] = matrix[row][k].Sub(factor.Mul(matrix[col][k]))
			}
			rhs[row] = rhs[row].Sub(factor.Mul(rhs[col]))
		}
	}

	// Back substitution
	solution := make([]*core.FieldElement, n)
	for row := n - 1; row >= 0; row-- {
		sum := rhs[row]
		for k := row + 1; k < n; k++ {
			sum = sum.Sub(matrix[row][k].Mul(solution[k]))
		}
		inv, err := matrix[row][row].Inv()
		if err != nil {
			return nil, err
		}
		solution[row] = sum.Mul(inv)
	}
	return solution, nil
}
