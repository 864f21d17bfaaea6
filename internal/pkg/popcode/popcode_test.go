//go:build unit

package popcode_test

import (
	"testing"

	"vouch-backend/internal/pkg/popcode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	seen := make(map[string]struct{})
	for range 100 {
		code, err := popcode.New()
		require.NoError(t, err)
		assert.Len(t, code, popcode.Length)
		assert.True(t, popcode.Valid(code), "generated code %q should be valid", code)
		seen[code] = struct{}{}
	}
	// 100 draws from a 32-bit space colliding would be astonishing.
	assert.Greater(t, len(seen), 95)
}

func TestValid(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"A1B2C3D4", true},
		{"00000000", true},
		{"a1b2c3d4", false}, // lowercase is never generated
		{"A1B2C3", false},
		{"A1B2C3D4E5", false},
		{"G1B2C3D4", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, popcode.Valid(tt.in), "Valid(%q)", tt.in)
	}
}
