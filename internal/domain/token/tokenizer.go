package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/GriffinCanCode/rpncalc/internal/providers/math/common"
	"github.com/GriffinCanCode/rpncalc/internal/providers/math/statistics"
	"github.com/GriffinCanCode/rpncalc/internal/providers/math/utilities"
)

// Family groups verbs for the help listing
type Family string

const (
	FamilyBinary   Family = "binary"
	FamilyUnary    Family = "unary"
	FamilyConstant Family = "constant"
	FamilyReduce   Family = "reduce"
	FamilyStack    Family = "stack"
	FamilyHistory  Family = "history"
	FamilyUndo     Family = "undo"
	FamilySession  Family = "session"
	FamilyControl  Family = "control"
)

// Verb describes one entry of the verb table
type Verb struct {
	Names       []string
	Family      Family
	Usage       string
	Description string
	// Extension marks verbs beyond the classic command set
	Extension   bool

	parse func(raw string, args []string) Command
}

var (
	verbs  []Verb
	lookup map[string]*Verb
)

func init() {
	verbs = buildVerbs()
	lookup = make(map[string]*Verb)
	for i := range verbs {
		for _, name := range verbs[i].Names {
			lookup[name] = &verbs[i]
		}
	}
}

// Tokenize maps one word to a command. It never fails: unrecognized input
// is reported as a KindInvalid command.
func Tokenize(word string) Command {
	raw := strings.TrimSpace(word)
	if raw == "" {
		return invalid(raw, "empty input")
	}

	if x, ok := parseNumber(raw); ok {
		return Command{Kind: KindNumber, Raw: raw, Value: x}
	}

	parts := strings.Split(raw, ":")
	v, ok := lookup[parts[0]]
	if !ok {
		return invalid(raw, "unknown command")
	}
	return v.parse(raw, parts[1:])
}

// Verbs returns a copy of the verb table in display order
func Verbs() []Verb {
	out := make([]Verb, len(verbs))
	copy(out, verbs)
	return out
}

// parseNumber accepts decimal literals with an optional sign and exponent,
// plus inf and nan. Hex floats and digit separators are rejected. Overflowing
// literals such as 1e400 become ±Inf rather than being rejected.
func parseNumber(s string) (float64, bool) {
	if strings.ContainsRune(s, '_') {
		return 0, false
	}
	unsigned := strings.TrimLeft(s, "+-")
	if strings.HasPrefix(unsigned, "0x") || strings.HasPrefix(unsigned, "0X") {
		return 0, false
	}

	x, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return x, true
	}
	var numErr *strconv.NumError
	if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
		return x, true
	}
	return 0, false
}

func parseInt(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

func invalid(raw, reason string) Command {
	return Command{Kind: KindInvalid, Raw: raw, Reason: reason}
}

func arityError(raw string) Command {
	return invalid(raw, "wrong number of arguments")
}

// bare builds a parser for verbs that take no ':' arguments
func bare(cmd Command) func(string, []string) Command {
	return func(raw string, args []string) Command {
		if len(args) != 0 {
			return arityError(raw)
		}
		c := cmd
		c.Raw = raw
		return c
	}
}

func operator(op common.Op) func(string, []string) Command {
	kind := KindUnary
	if op.IsBinary() {
		kind = KindBinary
	}
	return bare(Command{Kind: kind, Op: op})
}

func constant(name string) func(string, []string) Command {
	value, ok := utilities.Lookup(name)
	if !ok {
		panic(fmt.Sprintf("token: unknown constant %q", name))
	}
	return bare(Command{Kind: KindNumber, Value: value})
}

func reduction(r statistics.Reduction) func(string, []string) Command {
	return bare(Command{Kind: KindReduce, Reduction: r})
}

// counted builds a parser for verbs with an optional integer suffix.
// sign is applied to the parsed value so redo:n can be stored as undo:-n.
func counted(kind Kind, def, sign int) func(string, []string) Command {
	return func(raw string, args []string) Command {
		switch len(args) {
		case 0:
			return Command{Kind: kind, Raw: raw, N: sign * def}
		case 1:
			n, err := parseInt(args[0])
			if err != nil {
				return invalid(raw, fmt.Sprintf("invalid number %q", args[0]))
			}
			return Command{Kind: kind, Raw: raw, N: sign * n}
		default:
			return arityError(raw)
		}
	}
}

func named(kind Kind) func(string, []string) Command {
	return func(raw string, args []string) Command {
		if len(args) != 1 {
			return arityError(raw)
		}
		if args[0] == "" {
			return invalid(raw, "session name required")
		}
		return Command{Kind: kind, Raw: raw, Name: args[0]}
	}
}

func parseInsert(raw string, args []string) Command {
	if len(args) != 2 {
		return arityError(raw)
	}
	n, err := parseInt(args[0])
	if err != nil {
		return invalid(raw, fmt.Sprintf("invalid index %q", args[0]))
	}
	v, ok := parseNumber(args[1])
	if !ok {
		return invalid(raw, fmt.Sprintf("invalid value %q", args[1]))
	}
	return Command{Kind: KindInsert, Raw: raw, N: n, Value: v}
}

func buildVerbs() []Verb {
	return []Verb{
		// Binary operators
		{Names: []string{"+"}, Family: FamilyBinary, Usage: "+", Description: "Add x and y", parse: operator(common.OpAdd)},
		{Names: []string{"-"}, Family: FamilyBinary, Usage: "-", Description: "Subtract y from x", parse: operator(common.OpSub)},
		{Names: []string{"*"}, Family: FamilyBinary, Usage: "*", Description: "Multiply x by y", parse: operator(common.OpMul)},
		{Names: []string{"/"}, Family: FamilyBinary, Usage: "/", Description: "Divide x by y", parse: operator(common.OpDiv)},
		{Names: []string{"%"}, Family: FamilyBinary, Usage: "%", Description: "Remainder of x / y", parse: operator(common.OpMod)},
		{Names: []string{"pow", "^"}, Family: FamilyBinary, Usage: "pow", Description: "Raise x to the power y", parse: operator(common.OpPow)},

		// Unary operators
		{Names: []string{"neg"}, Family: FamilyUnary, Usage: "neg", Description: "Negate", parse: operator(common.OpNeg)},
		{Names: []string{"inv"}, Family: FamilyUnary, Usage: "inv", Description: "Reciprocal", parse: operator(common.OpInv)},
		{Names: []string{"abs"}, Family: FamilyUnary, Usage: "abs", Description: "Absolute value", parse: operator(common.OpAbs)},
		{Names: []string{"sq", "square"}, Family: FamilyUnary, Usage: "sq", Description: "Square", parse: operator(common.OpSquare)},
		{Names: []string{"sqrt"}, Family: FamilyUnary, Usage: "sqrt", Description: "Square root", parse: operator(common.OpSqrt)},
		{Names: []string{"cub", "cube"}, Family: FamilyUnary, Usage: "cub", Description: "Cube", parse: operator(common.OpCube)},
		{Names: []string{"cubrt", "cubert"}, Family: FamilyUnary, Usage: "cubrt", Description: "Cube root", parse: operator(common.OpCbrt)},
		{Names: []string{"exp"}, Family: FamilyUnary, Usage: "exp", Description: "e raised to x", parse: operator(common.OpExp)},
		{Names: []string{"ln"}, Family: FamilyUnary, Usage: "ln", Description: "Natural logarithm", parse: operator(common.OpLn)},
		{Names: []string{"log2"}, Family: FamilyUnary, Usage: "log2", Description: "Base-2 logarithm", parse: operator(common.OpLog2)},
		{Names: []string{"log10"}, Family: FamilyUnary, Usage: "log10", Description: "Base-10 logarithm", parse: operator(common.OpLog10)},
		{Names: []string{"sin"}, Family: FamilyUnary, Usage: "sin", Description: "Sine (radians)", parse: operator(common.OpSin)},
		{Names: []string{"asin"}, Family: FamilyUnary, Usage: "asin", Description: "Arcsine", parse: operator(common.OpAsin)},
		{Names: []string{"cos"}, Family: FamilyUnary, Usage: "cos", Description: "Cosine (radians)", parse: operator(common.OpCos)},
		{Names: []string{"acos"}, Family: FamilyUnary, Usage: "acos", Description: "Arccosine", parse: operator(common.OpAcos)},
		{Names: []string{"tan"}, Family: FamilyUnary, Usage: "tan", Description: "Tangent (radians)", parse: operator(common.OpTan)},
		{Names: []string{"atan"}, Family: FamilyUnary, Usage: "atan", Description: "Arctangent", parse: operator(common.OpAtan)},
		{Names: []string{"sinh"}, Family: FamilyUnary, Usage: "sinh", Description: "Hyperbolic sine", parse: operator(common.OpSinh)},
		{Names: []string{"asinh"}, Family: FamilyUnary, Usage: "asinh", Description: "Inverse hyperbolic sine", parse: operator(common.OpAsinh)},
		{Names: []string{"cosh"}, Family: FamilyUnary, Usage: "cosh", Description: "Hyperbolic cosine", parse: operator(common.OpCosh)},
		{Names: []string{"acosh"}, Family: FamilyUnary, Usage: "acosh", Description: "Inverse hyperbolic cosine", parse: operator(common.OpAcosh)},
		{Names: []string{"tanh"}, Family: FamilyUnary, Usage: "tanh", Description: "Hyperbolic tangent", parse: operator(common.OpTanh)},
		{Names: []string{"atanh"}, Family: FamilyUnary, Usage: "atanh", Description: "Inverse hyperbolic tangent", parse: operator(common.OpAtanh)},

		// Constants
		{Names: []string{"pi"}, Family: FamilyConstant, Usage: "pi", Description: "Push π", parse: constant("pi")},
		{Names: []string{"e"}, Family: FamilyConstant, Usage: "e", Description: "Push Euler's number", parse: constant("e")},
		{Names: []string{"c"}, Family: FamilyConstant, Usage: "c", Description: "Push the speed of light (m/s)", parse: constant("c")},
		{Names: []string{"h"}, Family: FamilyConstant, Usage: "h", Description: "Push the Planck constant (J·s)", parse: constant("h")},
		{Names: []string{"h_bar"}, Family: FamilyConstant, Usage: "h_bar", Description: "Push the reduced Planck constant (J·s)", parse: constant("h_bar")},

		// Reductions
		{Names: []string{"sum"}, Family: FamilyReduce, Usage: "sum", Description: "Replace the stack with its sum", Extension: true, parse: reduction(statistics.ReduceSum)},
		{Names: []string{"prod"}, Family: FamilyReduce, Usage: "prod", Description: "Replace the stack with its product", Extension: true, parse: reduction(statistics.ReduceProd)},
		{Names: []string{"mean"}, Family: FamilyReduce, Usage: "mean", Description: "Replace the stack with its mean", Extension: true, parse: reduction(statistics.ReduceMean)},
		{Names: []string{"stdev"}, Family: FamilyReduce, Usage: "stdev", Description: "Replace the stack with its sample standard deviation", Extension: true, parse: reduction(statistics.ReduceStdev)},
		{Names: []string{"min"}, Family: FamilyReduce, Usage: "min", Description: "Replace the stack with its minimum", Extension: true, parse: reduction(statistics.ReduceMin)},
		{Names: []string{"max"}, Family: FamilyReduce, Usage: "max", Description: "Replace the stack with its maximum", Extension: true, parse: reduction(statistics.ReduceMax)},

		// Stack edits
		{Names: []string{"swap"}, Family: FamilyStack, Usage: "swap", Description: "Exchange the top two values", parse: bare(Command{Kind: KindSwap})},
		{Names: []string{"cyc", "cycle"}, Family: FamilyStack, Usage: "cyc[:n]", Description: "Rotate right n times (left when negative)", parse: counted(KindCycle, 1, 1)},
		{Names: []string{"del", "delete"}, Family: FamilyStack, Usage: "del[:n]", Description: "Drop the top n values", parse: counted(KindDelete, 1, 1)},
		{Names: []string{"clear"}, Family: FamilyStack, Usage: "clear", Description: "Empty the stack", parse: bare(Command{Kind: KindClear})},
		{Names: []string{"get"}, Family: FamilyStack, Usage: "get[:n]", Description: "Move the value at index n to the top", parse: counted(KindGet, 0, 1)},
		{Names: []string{"insert"}, Family: FamilyStack, Usage: "insert:n:v", Description: "Insert v at index n", parse: parseInsert},
		{Names: []string{"copy", "cpy"}, Family: FamilyStack, Usage: "copy[:n]", Description: "Push the top value n more times", parse: counted(KindCopy, 1, 1)},

		// History
		{Names: []string{"sess"}, Family: FamilyHistory, Usage: "sess", Description: "List sessions", parse: bare(Command{Kind: KindSessions})},
		{Names: []string{"hist"}, Family: FamilyHistory, Usage: "hist", Description: "Show the session history", parse: bare(Command{Kind: KindHistory})},
		{Names: []string{"hist_clear"}, Family: FamilyHistory, Usage: "hist_clear", Description: "Clear the session history", parse: bare(Command{Kind: KindClearHistory})},

		// Undo
		{Names: []string{"undo"}, Family: FamilyUndo, Usage: "undo[:n]", Description: "Undo n operations", parse: counted(KindUndo, 1, 1)},
		{Names: []string{"redo"}, Family: FamilyUndo, Usage: "redo[:n]", Description: "Redo n operations", parse: counted(KindUndo, 1, -1)},

		// Session management
		{Names: []string{"new"}, Family: FamilySession, Usage: "new:name", Description: "Create a session", parse: named(KindNewSession)},
		{Names: []string{"change_to", "go_to", "goto"}, Family: FamilySession, Usage: "goto:name", Description: "Switch to a session", parse: named(KindSwitchSession)},
		{Names: []string{"rm"}, Family: FamilySession, Usage: "rm:name", Description: "Remove a session", parse: named(KindRemoveSession)},
		{Names: []string{"reset"}, Family: FamilySession, Usage: "reset", Description: "Reset the current session", parse: bare(Command{Kind: KindReset})},

		// Control
		{Names: []string{"help"}, Family: FamilyControl, Usage: "help", Description: "List commands", Extension: true, parse: bare(Command{Kind: KindHelp})},
		{Names: []string{"quit", "exit"}, Family: FamilyControl, Usage: "quit", Description: "Leave the calculator", parse: bare(Command{Kind: KindQuit})},
	}
}
