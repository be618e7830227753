package session

// History is the append-only record of raw words typed into a session
type History struct {
	words []string
}

// Add appends a word. Every word is kept, valid or not, in arrival order.
func (h *History) Add(word string) {
	h.words = append(h.words, word)
}

// Get returns a copy of the history
func (h *History) Get() []string {
	out := make([]string, len(h.words))
	copy(out, h.words)
	return out
}

// Clear forgets every recorded word
func (h *History) Clear() {
	h.words = nil
}
