package session

import "errors"

// Diagnostics reported by Session and Manager operations
var (
	ErrInsufficientOperands = errors.New("insufficient operands")
	ErrIndexOutOfRange      = errors.New("value exceeds length of stack")
	ErrDeleteExceedsStack   = errors.New("cannot delete more numbers than the stack holds")
	ErrNegativeCount        = errors.New("count must not be negative")
	ErrUndoRedoExhausted    = errors.New("exceeded the number of operations to undo/redo")
	ErrUnknownSession       = errors.New("session does not exist")
	ErrProtectedSession     = errors.New("session cannot be removed")
	ErrInvalidToken         = errors.New("invalid input")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInsufficientOperands, "insufficient_operands"},
	{ErrIndexOutOfRange, "index_out_of_range"},
	{ErrDeleteExceedsStack, "delete_exceeds_stack"},
	{ErrNegativeCount, "negative_count"},
	{ErrUndoRedoExhausted, "undo_redo_exhausted"},
	{ErrUnknownSession, "unknown_session"},
	{ErrProtectedSession, "protected_session"},
	{ErrInvalidToken, "invalid_token"},
}

// Kind returns a stable label for a diagnostic, "none" for nil and
// "unknown" for errors that wrap none of the sentinels
func Kind(err error) string {
	if err == nil {
		return "none"
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "unknown"
}
