package field

import (
	"fmt"
	"io"
	"math"

	"github.com/talgya/fieldlaws/internal/physics"
)

// MagneticField is a magnetic field sample. Its calculated field (T) is
// zero until CalculateMagneticField runs.
type MagneticField struct {
	Vector
	calculated float64
}

// NewMagneticField returns a sample with the given components.
func NewMagneticField(x, y, z float64) MagneticField {
	return MagneticField{Vector: NewVector(x, y, z)}
}

// CalculateMagneticField applies Ampère's Law for a long straight wire,
// B = μ₀ I / (2π r), replacing any previously calculated value.
// The sign of distance is kept, so a negative distance flips the result.
func (m *MagneticField) CalculateMagneticField(current, distance float64) {
	m.calculated = (physics.Mu0 * current) / (2 * math.Pi * distance)
	logCalculated("magnetic", "current", current, distance, m.calculated)
}

// CalculatedField returns the last value set by CalculateMagneticField.
func (m MagneticField) CalculatedField() float64 {
	return m.calculated
}

// PrintCalculatedField writes "Calculated Magnetic Field: <v> T".
func (m MagneticField) PrintCalculatedField(w io.Writer) {
	fmt.Fprintf(w, "Calculated Magnetic Field: %s T\n", FormatFloat(m.calculated))
}

// Add sums the components; the calculated field resets to zero.
func (m MagneticField) Add(other MagneticField) MagneticField {
	return MagneticField{Vector: m.Vector.add(other.Vector)}
}

func (m MagneticField) String() string {
	return describe("Magnetic Field", m)
}
