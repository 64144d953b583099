package mooring

import (
	"errors"
	"fmt"
)

// ErrInvalidInput marks arguments outside the formula's domain.
var ErrInvalidInput = errors.New("invalid input")

type Input struct {
	LengthM          float64 `json:"length_m"`
	AxialStiffnessKN float64 `json:"axial_stiffness_kn"`
}

type Result struct {
	StiffnessKNPerM  float64 `json:"stiffness_kn_per_m"`
	ComplianceMPerKN float64 `json:"compliance_m_per_kn"`
	Notes            string  `json:"notes"`
}

// Calculate returns the linear stiffness of a single taut mooring line.
func Calculate(in Input) (Result, error) {
	if in.LengthM <= 0 {
		return Result{}, fmt.Errorf("non-positive line length: %w", ErrInvalidInput)
	}

	// Taut line axial stiffness: k = EA / L
	k := in.AxialStiffnessKN / in.LengthM

	return Result{
		StiffnessKNPerM:  k,
		ComplianceMPerKN: in.LengthM / in.AxialStiffnessKN,
		Notes:            "Axial stiffness of a single taut line, k = EA/L.",
	}, nil
}

// RequiredEA sizes the axial stiffness for a target line stiffness,
// EA = k * L. The inverse of Calculate for line design.
func RequiredEA(lengthM, targetKNPerM float64) (float64, error) {
	if lengthM <= 0 {
		return 0, fmt.Errorf("non-positive line length: %w", ErrInvalidInput)
	}
	return targetKNPerM * lengthM, nil
}
