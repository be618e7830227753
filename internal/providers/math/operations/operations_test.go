package operations

import (
	gomath "math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/GriffinCanCode/rpncalc/internal/providers/math/common"
)

func TestBinary(t *testing.T) {
	tests := []struct {
		name string
		op   common.Op
		x, y float64
		want float64
	}{
		{"add", common.OpAdd, 3, 4, 7},
		{"subtract keeps operand order", common.OpSub, 5, 3, 2},
		{"multiply", common.OpMul, 2.5, 4, 10},
		{"divide keeps operand order", common.OpDiv, 1, 4, 0.25},
		{"modulo takes sign of dividend", common.OpMod, -7, 3, -1},
		{"power", common.OpPow, 2, 10, 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Binary(tt.op, tt.x, tt.y)
			assert.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestBinaryIEEESemantics(t *testing.T) {
	t.Run("Divide by zero is infinite", func(t *testing.T) {
		got, ok := Binary(common.OpDiv, 1, 0)
		assert.True(t, ok)
		assert.True(t, gomath.IsInf(got, 1))

		got, _ = Binary(common.OpDiv, -1, 0)
		assert.True(t, gomath.IsInf(got, -1))
	})

	t.Run("Zero over zero is NaN", func(t *testing.T) {
		got, ok := Binary(common.OpDiv, 0, 0)
		assert.True(t, ok)
		assert.True(t, gomath.IsNaN(got))
	})

	t.Run("NaN propagates", func(t *testing.T) {
		got, _ := Binary(common.OpAdd, gomath.NaN(), 1)
		assert.True(t, gomath.IsNaN(got))
	})

	t.Run("Modulo by zero is NaN", func(t *testing.T) {
		got, _ := Binary(common.OpMod, 3, 0)
		assert.True(t, gomath.IsNaN(got))
	})
}

func TestBinaryRejectsUnary(t *testing.T) {
	_, ok := Binary(common.OpSin, 1, 2)
	assert.False(t, ok)
}

func TestEveryOperatorEvaluates(t *testing.T) {
	for op := common.OpInvalid + 1; op.String() != "invalid"; op++ {
		_, binOK := Binary(op, 2, 0.5)
		_, unOK := Unary(op, 0.5)
		assert.Equal(t, op.IsBinary(), binOK, op.String())
		assert.Equal(t, op.IsUnary(), unOK, op.String())
	}
}

func TestUnary(t *testing.T) {
	tests := []struct {
		name string
		op   common.Op
		x    float64
		want float64
	}{
		{"neg", common.OpNeg, 3, -3},
		{"inv", common.OpInv, 4, 0.25},
		{"abs", common.OpAbs, -2, 2},
		{"square", common.OpSquare, -3, 9},
		{"sqrt", common.OpSqrt, 16, 4},
		{"cube", common.OpCube, -2, -8},
		{"cube root of negative", common.OpCbrt, -27, -3},
		{"exp", common.OpExp, 0, 1},
		{"ln", common.OpLn, gomath.E, 1},
		{"log2", common.OpLog2, 8, 3},
		{"log10", common.OpLog10, 1000, 3},
		{"sin", common.OpSin, gomath.Pi / 2, 1},
		{"asin", common.OpAsin, 1, gomath.Pi / 2},
		{"cos", common.OpCos, 0, 1},
		{"acos", common.OpAcos, 1, 0},
		{"tan", common.OpTan, gomath.Pi / 4, 1},
		{"atan", common.OpAtan, 1, gomath.Pi / 4},
		{"sinh", common.OpSinh, 0, 0},
		{"asinh", common.OpAsinh, 0, 0},
		{"cosh", common.OpCosh, 0, 1},
		{"acosh", common.OpAcosh, 1, 0},
		{"tanh", common.OpTanh, 0, 0},
		{"atanh", common.OpAtanh, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Unary(tt.op, tt.x)
			assert.True(t, ok)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestUnaryOutOfDomain(t *testing.T) {
	for _, tc := range []struct {
		op common.Op
		x  float64
	}{
		{common.OpSqrt, -1},
		{common.OpAsin, 2},
		{common.OpAcosh, 0},
		{common.OpLn, -1},
	} {
		got, ok := Unary(tc.op, tc.x)
		assert.True(t, ok, tc.op.String())
		assert.True(t, gomath.IsNaN(got), tc.op.String())
	}

	got, _ := Unary(common.OpInv, 0)
	assert.True(t, gomath.IsInf(got, 1))
}

func TestUnaryRejectsBinary(t *testing.T) {
	_, ok := Unary(common.OpAdd, 1)
	assert.False(t, ok)
}

func TestAddSubtractRoundTrip(t *testing.T) {
	for _, x := range []float64{0, 1.5, -42, 1e10, 3.14159} {
		for _, y := range []float64{0.1, 7, -3.5} {
			sum, _ := Binary(common.OpAdd, x, y)
			back, _ := Binary(common.OpSub, sum, y)
			assert.InDelta(t, x, back, 1e-6)
		}
	}
}
