// Package session implements the calculator's session state machine.
//
// A Session owns one numeric stack, the raw history of words typed into it,
// and a checkpoint log that backs undo and redo. The Manager owns every
// Session by name, tracks which one is active, and routes tokenized commands
// to it.
//
// Components:
//   - Session: stack engine (push, operators, swap, cycle, get, insert, ...)
//   - checkpointLog: full-stack snapshots plus the redo branch
//   - History: append-only record of raw words
//   - Manager: session lifecycle (new, goto, rm) and command dispatch
//
// Checkpoint rules:
//  1. The log starts with the empty stack and is never empty.
//  2. Every successful mutation appends a copy of the new stack and drops
//     the redo branch.
//  3. A failed guard mutates nothing and appends nothing.
//  4. Undo and redo move snapshots between the log and the redo branch and
//     then reload the live stack from the log's last entry.
//
// Diagnostics are ordinary errors wrapping the sentinels in errors.go. None
// of them is fatal; the caller reports them and carries on with the next word.
//
// Example Usage:
//
//	mgr := session.NewManager(session.WithLogger(logger.Logger))
//	stop, errs := mgr.Execute("3 4 + new:alt goto:alt 10")
//	fmt.Println(mgr.Current(), mgr.Stack())
package session
