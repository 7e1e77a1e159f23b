package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRun_Output verifies the full demonstration output line by line.
func TestRun_Output(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	run(&out)

	want := []string{
		"Field components: (0, 100000, 1000)",
		"Field components: (0, 2, 1)",
		"Calculated Electric Field: 8991.8N/C",
		"Calculated Magnetic Field: 2e-06 T",
		"Electric Field components: (1, 100002, 1003)",
		"Magnetic Field components: (1, 4, 4)",
	}

	require.True(t, strings.HasSuffix(out.String(), "\n"))
	got := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	assert.Equal(t, want, got)
}

// TestRun_Deterministic verifies repeated runs produce identical output.
func TestRun_Deterministic(t *testing.T) {
	t.Parallel()

	var a, b bytes.Buffer
	run(&a)
	run(&b)
	assert.Equal(t, a.String(), b.String())
}
