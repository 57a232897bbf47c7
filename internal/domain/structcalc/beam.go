// Package structcalc provides the hand-check calculators engineers reach
// for during an inspection: simply supported beam formulas and a small 2D
// frame stiffness solver.
package structcalc

import "fmt"

func validatePositive(value float64, name string) error {
	if value <= 0 {
		return fmt.Errorf("%s must be positive; got %g", name, value)
	}
	return nil
}

func validatePosition(x, length float64) error {
	if x < 0 || x > length {
		return fmt.Errorf("x must be within [0, %g]; got %g", length, x)
	}
	return nil
}

// MaxDeflectionUDL returns the maximum deflection of a simply supported
// beam under a uniformly distributed load.
//
//	delta_max = 5 w L^4 / (384 E I)
func MaxDeflectionUDL(load, length, elasticity, inertia float64) (float64, error) {
	if err := validatePositive(load, "load per length"); err != nil {
		return 0, err
	}
	if err := validatePositive(length, "length"); err != nil {
		return 0, err
	}
	if err := validatePositive(elasticity, "elasticity"); err != nil {
		return 0, err
	}
	if err := validatePositive(inertia, "inertia"); err != nil {
		return 0, err
	}

	l4 := length * length * length * length
	return (5 * load * l4) / (384 * elasticity * inertia), nil
}

// BendingMomentUDL returns the bending moment at position x along a simply
// supported beam under a uniformly distributed load.
//
//	M(x) = w x (L - x) / 2
func BendingMomentUDL(load, length, x float64) (float64, error) {
	if err := validatePositive(load, "load per length"); err != nil {
		return 0, err
	}
	if err := validatePositive(length, "length"); err != nil {
		return 0, err
	}
	if err := validatePosition(x, length); err != nil {
		return 0, err
	}

	return load * x * (length - x) / 2, nil
}

// ShearForceUDL returns the shear force at position x along a simply
// supported beam under a uniformly distributed load.
//
//	V(x) = w (L/2 - x)
func ShearForceUDL(load, length, x float64) (float64, error) {
	if err := validatePositive(load, "load per length"); err != nil {
		return 0, err
	}
	if err := validatePositive(length, "length"); err != nil {
		return 0, err
	}
	if err := validatePosition(x, length); err != nil {
		return 0, err
	}

	return load * (length/2 - x), nil
}
