package pnr

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

var pnrPattern = regexp.MustCompile(`^PNR[A-Z0-9]{7}$`)

func TestGenerate_Format(t *testing.T) {
	gen := NewGenerator()

	for i := 0; i < 1000; i++ {
		code := gen.Generate()
		assert.Len(t, code, Length)
		assert.Regexp(t, pnrPattern, code)
	}
}

func TestGenerate_Varies(t *testing.T) {
	gen := NewGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		seen[gen.Generate()] = true
	}

	// 1000 draws from 36^7 combinations should essentially never repeat
	assert.Greater(t, len(seen), 990)
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		input string
		valid bool
		name  string
	}{
		{"PNRA1B2C3D", true, "Generated shape"},
		{"PNR0000000", true, "All digits"},
		{"PNRZZZZZZZ", true, "All letters"},
		{"", false, "Empty"},
		{"PNRA1B2C3", false, "Too short"},
		{"PNRA1B2C3DD", false, "Too long"},
		{"XYZA1B2C3D", false, "Wrong prefix"},
		{"PNRa1b2c3d", false, "Lowercase"},
		{"PNRA1B2C3!", false, "Symbol"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.valid, IsValid(tc.input))
		})
	}
}
