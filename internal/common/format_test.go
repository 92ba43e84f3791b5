package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundAndFormat(t *testing.T) {
	assert.Equal(t, 3.14, Round(3.14159, 2))
	assert.Equal(t, 3.0, Round(2.6, 0))
	assert.Equal(t, "3.1", Format(3.14159, 1))
	assert.Equal(t, "12", Format(12.0, 2))

	// halves round up, also for negative numbers
	assert.Equal(t, "0.13", Format(0.125, 2))
	assert.Equal(t, "-0.12", Format(-0.125, 2))
	assert.Equal(t, -2.0, Round(-2.5, 0))
}

func TestTimeFormat(t *testing.T) {
	tests := []struct {
		seconds  float64
		expected string
	}{
		{0, "0s"},
		{42.9, "42s"},
		{60, "1min0s"},
		{185, "3min5s"},
		{3723, "1h2min3s"},
		{7200, "2h0min0s"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, TimeFormat(tt.seconds))
		})
	}
}
