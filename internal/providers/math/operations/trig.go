package operations

import (
	gomath "math"

	"github.com/GriffinCanCode/rpncalc/internal/providers/math/common"
)

// trig evaluates the trigonometric and hyperbolic family. Arguments are in
// radians; out-of-domain inputs (asin(2), acosh(0)) yield NaN.
func trig(op common.Op, x float64) (float64, bool) {
	switch op {
	case common.OpSin:
		return gomath.Sin(x), true
	case common.OpAsin:
		return gomath.Asin(x), true
	case common.OpCos:
		return gomath.Cos(x), true
	case common.OpAcos:
		return gomath.Acos(x), true
	case common.OpTan:
		return gomath.Tan(x), true
	case common.OpAtan:
		return gomath.Atan(x), true
	case common.OpSinh:
		return gomath.Sinh(x), true
	case common.OpAsinh:
		return gomath.Asinh(x), true
	case common.OpCosh:
		return gomath.Cosh(x), true
	case common.OpAcosh:
		return gomath.Acosh(x), true
	case common.OpTanh:
		return gomath.Tanh(x), true
	case common.OpAtanh:
		return gomath.Atanh(x), true
	default:
		return gomath.NaN(), false
	}
}
