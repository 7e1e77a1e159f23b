// Package physics provides the physical constants used by the field laws.
// Values are fixed at compile time and never change while the program runs.
package physics

import "math"

// Vacuum constants in SI units.
const (
	// Epsilon0 is the permittivity of free space (F/m).
	Epsilon0 = 8.85e-12

	// Mu0 is the permeability of free space (H/m), 4π×10⁻⁷.
	Mu0 = 4 * math.Pi * 1e-7
)
