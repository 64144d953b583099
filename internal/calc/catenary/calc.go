package catenary

import "math"

// Params are the physical constants of the hanging line: horizontal tension
// H and weight per unit length w.
type Params struct {
	HorizontalTensionKN float64 `json:"horizontal_tension_kn"`
	WeightKNPerM        float64 `json:"weight_kn_per_m"`
}

// DefaultParams is the unit line used when a caller does not supply
// physical parameters.
func DefaultParams() Params {
	return Params{HorizontalTensionKN: 1.0, WeightKNPerM: 1.0}
}

// A is the catenary parameter a = H / w.
func (p Params) A() float64 {
	return p.HorizontalTensionKN / p.WeightKNPerM
}

// Y evaluates the sag y = a*(cosh(x/a)-1) at a single horizontal offset.
// There is no input validation: w = 0 propagates as Inf/NaN through the
// arithmetic rather than raising an error.
func Y(x float64, p Params) float64 {
	a := p.A()
	return a * (math.Cosh(x/a) - 1)
}

// Profile evaluates Y element-wise over x. The result has the same length
// and order as x; x is not modified.
func Profile(x []float64, p Params) []float64 {
	y := make([]float64, len(x))
	for i, v := range x {
		y[i] = Y(v, p)
	}
	return y
}
