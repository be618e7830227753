package operations

import (
	gomath "math"

	"github.com/GriffinCanCode/rpncalc/internal/providers/math/common"
)

// Binary applies a two-operand operator. x is the deeper operand and y the
// one that was on top of the stack, so Binary(OpSub, 5, 3) is 2.
// The boolean is false when op is not a binary operator.
func Binary(op common.Op, x, y float64) (float64, bool) {
	switch op {
	case common.OpAdd:
		return x + y, true
	case common.OpSub:
		return x - y, true
	case common.OpMul:
		return x * y, true
	case common.OpDiv:
		return x / y, true
	case common.OpMod:
		return gomath.Mod(x, y), true
	case common.OpPow:
		return gomath.Pow(x, y), true
	default:
		return gomath.NaN(), false
	}
}

// Unary applies a one-operand operator.
// The boolean is false when op is not a unary operator.
func Unary(op common.Op, x float64) (float64, bool) {
	if op.IsTrig() {
		return trig(op, x)
	}

	switch op {
	case common.OpNeg:
		return -x, true
	case common.OpInv:
		return 1 / x, true
	case common.OpAbs:
		return gomath.Abs(x), true
	case common.OpSquare:
		return x * x, true
	case common.OpSqrt:
		return gomath.Sqrt(x), true
	case common.OpCube:
		return x * x * x, true
	case common.OpCbrt:
		// Real cube root, defined for negative inputs too
		return gomath.Cbrt(x), true
	case common.OpExp:
		return gomath.Exp(x), true
	case common.OpLn:
		return gomath.Log(x), true
	case common.OpLog2:
		return gomath.Log2(x), true
	case common.OpLog10:
		return gomath.Log10(x), true
	default:
		return gomath.NaN(), false
	}
}
