package physics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEpsilon0 verifies the permittivity constant keeps its textbook value.
func TestEpsilon0(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8.85e-12, float64(Epsilon0))
}

// TestMu0_DerivedFromPi verifies Mu0 is 4π×10⁻⁷.
func TestMu0_DerivedFromPi(t *testing.T) {
	t.Parallel()

	assert.InDelta(t, 1.2566370614359173e-6, float64(Mu0), 1e-20)
	assert.InEpsilon(t, 2e-7, float64(Mu0)/(2*math.Pi), 1e-12)
}
