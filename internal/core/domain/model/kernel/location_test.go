package kernel_test

import (
	"math"
	"testing"

	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestLocation_Distance(t *testing.T) {
	tests := []struct {
		name     string
		a        kernel.Location
		b        kernel.Location
		expected float64
	}{
		{
			name:     "same point is zero",
			a:        kernel.NewLocation(3, 4),
			b:        kernel.NewLocation(3, 4),
			expected: 0,
		},
		{
			name:     "unit diagonal",
			a:        kernel.NewLocation(1, 2),
			b:        kernel.NewLocation(2, 3),
			expected: math.Sqrt2,
		},
		{
			name:     "pythagorean triple",
			a:        kernel.NewLocation(0, 0),
			b:        kernel.NewLocation(3, 4),
			expected: 5,
		},
		{
			name:     "negative coordinates",
			a:        kernel.NewLocation(-1, -1),
			b:        kernel.NewLocation(2, 3),
			expected: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, tt.a.Distance(tt.b), 1e-9)
			// Distance is symmetric.
			assert.InDelta(t, tt.expected, tt.b.Distance(tt.a), 1e-9)
		})
	}
}

func TestLocation_IsEqual(t *testing.T) {
	a := kernel.NewLocation(5, 7)
	b := kernel.NewLocation(5, 7)
	c := kernel.NewLocation(7, 5)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestLocation_String(t *testing.T) {
	assert.Equal(t, "Location(2,-3)", kernel.NewLocation(2, -3).String())
}
