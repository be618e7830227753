package shell

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{7, "7"},
		{-2.5, "-2.5"},
		{0.001, "0.001"},
		{999999, "999999"},
		{1e6, "1e6"},
		{1234567, "1.234567e6"},
		{-1.5e7, "-1.5e7"},
		{0.0009, "9e-4"},
		{1.25e-10, "1.25e-10"},
		{6.62607015e-34, "6.62607015e-34"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
		{math.NaN(), "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatValue(tt.in))
		})
	}
}

func TestFormatStack(t *testing.T) {
	assert.Equal(t, []string{"1", "2e6"}, FormatStack([]float64{1, 2e6}))
	assert.Empty(t, FormatStack(nil))
}
