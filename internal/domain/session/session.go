package session

import (
	"fmt"
	"time"

	"github.com/GriffinCanCode/rpncalc/internal/providers/math/common"
	"github.com/GriffinCanCode/rpncalc/internal/providers/math/operations"
	"github.com/GriffinCanCode/rpncalc/internal/providers/math/statistics"
	"github.com/GriffinCanCode/rpncalc/internal/shared/id"
)

// Session is one isolated calculator: a stack, its history and its
// checkpoint log. A Session is not safe for concurrent use; the Manager
// serializes access to it.
type Session struct {
	name string
	id   id.SessionID

	stack   []float64
	history History
	log     *checkpointLog
}

// NewSession creates an empty session
func NewSession(name string) *Session {
	return &Session{
		name:  name,
		id:    id.NewSessionID(),
		stack: []float64{},
		log:   newCheckpointLog(),
	}
}

// Name returns the session name
func (s *Session) Name() string { return s.name }

// ID returns the unique id of this session instance
func (s *Session) ID() id.SessionID { return s.id }

// CreatedAt returns when the session was created, read back from its id
func (s *Session) CreatedAt() time.Time {
	ts, err := s.id.Timestamp()
	if err != nil {
		return time.Time{}
	}
	return ts
}

// Stack returns a copy of the stack, bottom first
func (s *Session) Stack() []float64 { return snapshot(s.stack) }

// Depth returns the number of values on the stack
func (s *Session) Depth() int { return len(s.stack) }

// History returns a copy of the recorded words
func (s *Session) History() []string { return s.history.Get() }

// Checkpoints returns the number of entries in the checkpoint log,
// including the initial empty state
func (s *Session) Checkpoints() int { return len(s.log.states) }

// Redoable returns how many undone states can be redone
func (s *Session) Redoable() int { return len(s.log.undone) }

// Record appends a raw word to the history
func (s *Session) Record(word string) { s.history.Add(word) }

// ClearHistory forgets the recorded words. The stack and the checkpoint
// log are untouched.
func (s *Session) ClearHistory() { s.history.Clear() }

func (s *Session) commit() { s.log.commit(s.stack) }

// Push puts x on top of the stack
func (s *Session) Push(x float64) {
	s.stack = append(s.stack, x)
	s.commit()
}

// Binary pops y then x and pushes op(x, y)
func (s *Session) Binary(op common.Op) error {
	if !op.IsBinary() {
		return fmt.Errorf("%s is not a binary operator: %w", op, ErrInvalidToken)
	}
	if len(s.stack) < 2 {
		return fmt.Errorf("%s needs at least two numbers on the stack: %w", op, ErrInsufficientOperands)
	}
	n := len(s.stack)
	result, ok := operations.Binary(op, s.stack[n-2], s.stack[n-1])
	if !ok {
		return fmt.Errorf("%s has no binary evaluation: %w", op, ErrInvalidToken)
	}
	s.stack = append(s.stack[:n-2], result)
	s.commit()
	return nil
}

// Unary pops x and pushes op(x)
func (s *Session) Unary(op common.Op) error {
	if !op.IsUnary() {
		return fmt.Errorf("%s is not a unary operator: %w", op, ErrInvalidToken)
	}
	if len(s.stack) < 1 {
		return fmt.Errorf("%s needs at least one number on the stack: %w", op, ErrInsufficientOperands)
	}
	n := len(s.stack)
	result, ok := operations.Unary(op, s.stack[n-1])
	if !ok {
		return fmt.Errorf("%s has no unary evaluation: %w", op, ErrInvalidToken)
	}
	s.stack[n-1] = result
	s.commit()
	return nil
}

// Reduce replaces the whole stack with a single value computed from it
func (s *Session) Reduce(r statistics.Reduction) error {
	if need := r.MinOperands(); len(s.stack) < need {
		return fmt.Errorf("%s needs at least %d numbers on the stack: %w", r, need, ErrInsufficientOperands)
	}
	result, err := statistics.Reduce(r, s.stack)
	if err != nil {
		return fmt.Errorf("%v: %w", err, ErrInvalidToken)
	}
	s.stack = append(s.stack[:0], result)
	s.commit()
	return nil
}

// Swap exchanges the top two values
func (s *Session) Swap() error {
	n := len(s.stack)
	if n < 2 {
		return fmt.Errorf("swap needs at least two numbers on the stack: %w", ErrInsufficientOperands)
	}
	s.stack[n-1], s.stack[n-2] = s.stack[n-2], s.stack[n-1]
	s.commit()
	return nil
}

// Cycle rotates the stack. For n >= 0 the top value moves to the bottom n
// times; for n < 0 the bottom value moves to the top |n| times.
func (s *Session) Cycle(n int) error {
	size := len(s.stack)
	if size < 2 {
		return fmt.Errorf("cyclic permutation needs at least two numbers on the stack: %w", ErrInsufficientOperands)
	}

	// Rotating right by n is the same as rotating left by size-n
	shift := ((-n % size) + size) % size
	rotated := make([]float64, 0, size)
	rotated = append(rotated, s.stack[shift:]...)
	rotated = append(rotated, s.stack[:shift]...)
	s.stack = rotated
	s.commit()
	return nil
}

// Delete drops the top n values
func (s *Session) Delete(n int) error {
	if n < 0 {
		return fmt.Errorf("cannot delete %d numbers: %w", n, ErrDeleteExceedsStack)
	}
	if n > len(s.stack) {
		return fmt.Errorf("cannot delete %d numbers from a stack of %d: %w", n, len(s.stack), ErrDeleteExceedsStack)
	}
	s.stack = s.stack[:len(s.stack)-n]
	s.commit()
	return nil
}

// Clear empties the stack
func (s *Session) Clear() {
	s.stack = s.stack[:0]
	s.commit()
}

// resolve maps a possibly negative index onto [0, limit). Negative indices
// count from the top: -1 is the last element.
func (s *Session) resolve(n, limit int) (int, bool) {
	size := len(s.stack)
	switch {
	case n >= 0 && n < limit:
		return n, true
	case n < 0 && -n <= size:
		return size + n, true
	default:
		return 0, false
	}
}

// Get moves the value at index n to the top of the stack
func (s *Session) Get(n int) error {
	i, ok := s.resolve(n, len(s.stack))
	if !ok {
		return fmt.Errorf("get:%d on a stack of %d: %w", n, len(s.stack), ErrIndexOutOfRange)
	}
	x := s.stack[i]
	s.stack = append(s.stack[:i], s.stack[i+1:]...)
	s.stack = append(s.stack, x)
	s.commit()
	return nil
}

// Insert places v at index n. An index equal to the stack length appends v
// on top.
func (s *Session) Insert(n int, v float64) error {
	i, ok := s.resolve(n, len(s.stack)+1)
	if !ok {
		return fmt.Errorf("insert:%d on a stack of %d: %w", n, len(s.stack), ErrIndexOutOfRange)
	}
	s.stack = append(s.stack, 0)
	copy(s.stack[i+1:], s.stack[i:])
	s.stack[i] = v
	s.commit()
	return nil
}

// Copy pushes the top value n more times
func (s *Session) Copy(n int) error {
	if len(s.stack) == 0 {
		return fmt.Errorf("cannot copy the latest value of an empty stack: %w", ErrInsufficientOperands)
	}
	if n < 0 {
		return fmt.Errorf("copy:%d: %w", n, ErrNegativeCount)
	}
	top := s.stack[len(s.stack)-1]
	for i := 0; i < n; i++ {
		s.stack = append(s.stack, top)
	}
	s.commit()
	return nil
}

// Undo rewinds n checkpoints, or redoes |n| of them when n is negative.
// The live stack is reloaded from the checkpoint log; no new checkpoint is
// appended.
func (s *Session) Undo(n int) error {
	var ok bool
	if n >= 0 {
		ok = s.log.rewind(n)
	} else {
		ok = s.log.advance(-n)
	}
	if !ok {
		return fmt.Errorf("undo:%d with %d checkpoints and %d redoable: %w",
			n, len(s.log.states), len(s.log.undone), ErrUndoRedoExhausted)
	}
	s.stack = s.log.current()
	return nil
}

// Redo re-applies n undone checkpoints
func (s *Session) Redo(n int) error {
	return s.Undo(-n)
}

// Reset returns the session to its freshly created state, keeping its name
// and id
func (s *Session) Reset() {
	s.stack = []float64{}
	s.history.Clear()
	s.log.reset()
}
