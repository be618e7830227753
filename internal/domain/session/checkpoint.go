package session

// checkpointLog keeps a full copy of every stack state. states is never
// empty and its last entry mirrors the live stack; undone holds snapshots
// removed by undo, most recent last.
type checkpointLog struct {
	states [][]float64
	undone [][]float64
}

func newCheckpointLog() *checkpointLog {
	return &checkpointLog{states: [][]float64{{}}}
}

// commit records a new stack state and discards the redo branch
func (l *checkpointLog) commit(stack []float64) {
	l.states = append(l.states, snapshot(stack))
	l.undone = l.undone[:0]
}

// rewind moves n snapshots onto the redo branch. The initial empty state
// can never be rewound, so len(states) must exceed n.
func (l *checkpointLog) rewind(n int) bool {
	if n < 0 || len(l.states) <= n {
		return false
	}
	for i := 0; i < n; i++ {
		last := len(l.states) - 1
		l.undone = append(l.undone, l.states[last])
		l.states = l.states[:last]
	}
	return true
}

// advance moves n snapshots from the redo branch back onto the log
func (l *checkpointLog) advance(n int) bool {
	if n < 0 || len(l.undone) < n {
		return false
	}
	for i := 0; i < n; i++ {
		last := len(l.undone) - 1
		l.states = append(l.states, l.undone[last])
		l.undone = l.undone[:last]
	}
	return true
}

// current returns a copy of the newest state
func (l *checkpointLog) current() []float64 {
	return snapshot(l.states[len(l.states)-1])
}

func (l *checkpointLog) reset() {
	l.states = [][]float64{{}}
	l.undone = nil
}

func snapshot(stack []float64) []float64 {
	out := make([]float64, len(stack))
	copy(out, stack)
	return out
}
