package token

import (
	"github.com/GriffinCanCode/rpncalc/internal/providers/math/common"
	"github.com/GriffinCanCode/rpncalc/internal/providers/math/statistics"
)

// Kind classifies a tokenized word
type Kind uint8

const (
	KindInvalid Kind = iota
	KindNumber
	KindBinary
	KindUnary
	KindReduce
	KindSwap
	KindCycle
	KindDelete
	KindClear
	KindGet
	KindInsert
	KindCopy
	KindUndo
	KindNewSession
	KindSwitchSession
	KindRemoveSession
	KindReset
	KindSessions
	KindHistory
	KindClearHistory
	KindHelp
	KindQuit
)

var kindNames = map[Kind]string{
	KindInvalid:       "invalid",
	KindNumber:        "number",
	KindBinary:        "binary",
	KindUnary:         "unary",
	KindReduce:        "reduce",
	KindSwap:          "swap",
	KindCycle:         "cycle",
	KindDelete:        "delete",
	KindClear:         "clear",
	KindGet:           "get",
	KindInsert:        "insert",
	KindCopy:          "copy",
	KindUndo:          "undo",
	KindNewSession:    "new_session",
	KindSwitchSession: "switch_session",
	KindRemoveSession: "remove_session",
	KindReset:         "reset",
	KindSessions:      "sessions",
	KindHistory:       "history",
	KindClearHistory:  "clear_history",
	KindHelp:          "help",
	KindQuit:          "quit",
}

// String returns a stable label for the kind, used in logs and metrics
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Command is the typed form of one word.
//
// Only the fields relevant to Kind are set: Value for numbers and inserts,
// N for counts and indices, Op for operators, Reduction for reductions and
// Name for session management. A redo of n is an undo with N = -n.
type Command struct {
	Kind      Kind
	Raw       string
	Value     float64
	N         int
	Op        common.Op
	Reduction statistics.Reduction
	Name      string
	Reason    string
}

// IsSessionCommand reports whether the manager handles the command itself
// rather than routing it to the active session
func (c Command) IsSessionCommand() bool {
	switch c.Kind {
	case KindNewSession, KindSwitchSession, KindRemoveSession, KindSessions, KindHelp, KindQuit:
		return true
	default:
		return false
	}
}
