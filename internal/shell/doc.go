// Package shell implements the calculator's read-eval-print loop.
//
// Each input line is split on whitespace and every word is dispatched to
// the session manager in order. Diagnostics never stop the loop. After the
// line the active session's stack is rendered, either as text:
//
//	Current Session: default
//	Stack:
//	7
//
// or, in JSON mode, as one object per view:
//
//	{"view":"stack","session":"default","stack":["7"]}
package shell
