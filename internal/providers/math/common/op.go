package common

// Op identifies an arithmetic operator
type Op uint8

const (
	OpInvalid Op = iota

	// Binary operators
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow

	// Unary algebraic operators
	OpNeg
	OpInv
	OpAbs
	OpSquare
	OpSqrt
	OpCube
	OpCbrt
	OpExp
	OpLn
	OpLog2
	OpLog10

	// Unary trigonometric operators
	OpSin
	OpAsin
	OpCos
	OpAcos
	OpTan
	OpAtan
	OpSinh
	OpAsinh
	OpCosh
	OpAcosh
	OpTanh
	OpAtanh

	opCount
)

var opNames = [opCount]string{
	OpInvalid: "invalid",
	OpAdd:     "+",
	OpSub:     "-",
	OpMul:     "*",
	OpDiv:     "/",
	OpMod:     "%",
	OpPow:     "pow",
	OpNeg:     "neg",
	OpInv:     "inv",
	OpAbs:     "abs",
	OpSquare:  "sq",
	OpSqrt:    "sqrt",
	OpCube:    "cub",
	OpCbrt:    "cubrt",
	OpExp:     "exp",
	OpLn:      "ln",
	OpLog2:    "log2",
	OpLog10:   "log10",
	OpSin:     "sin",
	OpAsin:    "asin",
	OpCos:     "cos",
	OpAcos:    "acos",
	OpTan:     "tan",
	OpAtan:    "atan",
	OpSinh:    "sinh",
	OpAsinh:   "asinh",
	OpCosh:    "cosh",
	OpAcosh:   "acosh",
	OpTanh:    "tanh",
	OpAtanh:   "atanh",
}

// String returns the canonical verb for the operator
func (o Op) String() string {
	if o >= opCount {
		return opNames[OpInvalid]
	}
	return opNames[o]
}

// Arity returns how many operands the operator consumes (0 for OpInvalid)
func (o Op) Arity() int {
	switch {
	case o >= OpAdd && o <= OpPow:
		return 2
	case o >= OpNeg && o < opCount:
		return 1
	default:
		return 0
	}
}

// IsBinary reports whether the operator consumes two operands
func (o Op) IsBinary() bool { return o.Arity() == 2 }

// IsUnary reports whether the operator consumes one operand
func (o Op) IsUnary() bool { return o.Arity() == 1 }

// IsTrig reports whether the operator belongs to the trigonometric family
func (o Op) IsTrig() bool { return o >= OpSin && o < opCount }
