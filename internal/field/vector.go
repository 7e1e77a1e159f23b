// Package field models electric and magnetic field samples: a three-component
// vector plus a scalar magnitude derived from a textbook law.
package field

import (
	"fmt"
	"io"
)

// Sample is any field value with three vector components.
// Vector, ElectricField and MagneticField all satisfy it.
type Sample interface {
	Components() (x, y, z float64)
}

// Vector is the component triple shared by every field sample.
// The zero value is the all-zero sample.
type Vector struct {
	X, Y, Z float64
}

// NewVector stores the components verbatim. Non-finite values are accepted.
func NewVector(x, y, z float64) Vector {
	return Vector{X: x, Y: y, Z: z}
}

// Components returns the stored components.
func (v Vector) Components() (x, y, z float64) {
	return v.X, v.Y, v.Z
}

// PrintComponents writes "Field components: (x, y, z)" on its own line.
func (v Vector) PrintComponents(w io.Writer) {
	fmt.Fprintln(w, describe("Field", v))
}

func (v Vector) add(o Vector) Vector {
	return Vector{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// describe renders "<label> components: (x, y, z)".
func describe(label string, s Sample) string {
	x, y, z := s.Components()
	return fmt.Sprintf("%s components: (%s, %s, %s)",
		label, FormatFloat(x), FormatFloat(y), FormatFloat(z))
}
