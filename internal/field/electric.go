package field

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/talgya/fieldlaws/internal/physics"
)

// ElectricField is an electric field sample. Its calculated field (N/C) is
// zero until CalculateElectricField runs.
type ElectricField struct {
	Vector
	calculated float64
}

// NewElectricField returns a sample with the given components.
func NewElectricField(x, y, z float64) ElectricField {
	return ElectricField{Vector: NewVector(x, y, z)}
}

// CalculateElectricField applies Gauss's Law for a point charge,
// E = Q / (4π r² ε₀), replacing any previously calculated value.
// A zero distance yields an infinity; a negative distance is squared away.
func (e *ElectricField) CalculateElectricField(charge, distance float64) {
	e.calculated = charge / (4 * math.Pi * math.Pow(distance, 2) * physics.Epsilon0)
	logCalculated("electric", "charge", charge, distance, e.calculated)
}

// CalculatedField returns the last value set by CalculateElectricField.
func (e ElectricField) CalculatedField() float64 {
	return e.calculated
}

// PrintCalculatedField writes "Calculated Electric Field: <v>N/C".
func (e ElectricField) PrintCalculatedField(w io.Writer) {
	fmt.Fprintf(w, "Calculated Electric Field: %sN/C\n", FormatFloat(e.calculated))
}

// Add sums the components. The result's calculated field is zero; call
// CalculateElectricField on it to derive a new one.
func (e ElectricField) Add(other ElectricField) ElectricField {
	return ElectricField{Vector: e.Vector.add(other.Vector)}
}

func (e ElectricField) String() string {
	return describe("Electric Field", e)
}

func logCalculated(kind, sourceKey string, source, distance, value float64) {
	attrs := []any{"kind", kind, sourceKey, source, "distance", distance, "field", value}
	if math.IsInf(value, 0) || math.IsNaN(value) {
		attrs = append(attrs, "non_finite", true)
	}
	slog.Debug("field calculated", attrs...)
}
