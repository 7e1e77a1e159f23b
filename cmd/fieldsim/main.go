// Command fieldsim evaluates Gauss's Law and Ampère's Law on sample fields
// and demonstrates component-wise addition of field samples.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/talgya/fieldlaws/internal/field"
)

func main() {
	// stdout carries the results; diagnostics go to stderr.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	}))
	slog.SetDefault(logger)

	run(os.Stdout)
}

// run writes the demonstration to w. It is separate from main for testing.
func run(w io.Writer) {
	// ── Samples ───────────────────────────────────────────────────────
	e1 := field.NewElectricField(0.0, 1e5, 1e3)
	m1 := field.NewMagneticField(0.0, 2.0, 1.0)

	e1.PrintComponents(w)
	m1.PrintComponents(w)

	// ── Laws ──────────────────────────────────────────────────────────
	e1.CalculateElectricField(1e-6, 1.0)
	m1.CalculateMagneticField(10, 1.0)

	e1.PrintCalculatedField(w)
	m1.PrintCalculatedField(w)

	// ── Addition ──────────────────────────────────────────────────────
	e2 := field.NewElectricField(1.0, 2.0, 3.0)
	e3 := e1.Add(e2)
	fmt.Fprintln(w, e3)

	m2 := field.NewMagneticField(1.0, 2.0, 3.0)
	m3 := m1.Add(m2)
	fmt.Fprintln(w, m3)

	slog.Debug("demonstration complete",
		"electric_sum_field", e3.CalculatedField(),
		"magnetic_sum_field", m3.CalculatedField(),
	)
}
