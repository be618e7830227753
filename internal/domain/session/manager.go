package session

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/rpncalc/internal/domain/token"
)

// DefaultSession is created with every Manager and can never be removed
const DefaultSession = "default"

// Outcome tells the caller what to do after a word has been dispatched
type Outcome int

const (
	// Continue with the next word
	Continue Outcome = iota
	// Quit stops the input loop
	Quit
	// ShowHistory asks the caller to print the active session's history
	ShowHistory
	// ShowSessions asks the caller to print the session names
	ShowSessions
	// ShowHelp asks the caller to print the verb table
	ShowHelp
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Quit:
		return "quit"
	case ShowHistory:
		return "show_history"
	case ShowSessions:
		return "show_sessions"
	case ShowHelp:
		return "show_help"
	default:
		return "unknown"
	}
}

// Recorder receives dispatch statistics
type Recorder interface {
	CommandDispatched(kind string)
	DiagnosticRaised(kind string)
	SessionsActive(n int)
	StackDepth(session string, depth int)
	SessionRemoved(session string)
}

type nopRecorder struct{}

func (nopRecorder) CommandDispatched(string) {}
func (nopRecorder) DiagnosticRaised(string)  {}
func (nopRecorder) SessionsActive(int)       {}
func (nopRecorder) StackDepth(string, int)   {}
func (nopRecorder) SessionRemoved(string)    {}

// Manager owns every Session by name and routes commands to the active one
type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	current  string
	logger   *zap.Logger
	recorder Recorder
}

// Option configures a Manager
type Option func(*Manager)

// WithLogger sets the logger used for lifecycle events and diagnostics
func WithLogger(logger *zap.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithRecorder sets the sink for dispatch statistics
func WithRecorder(r Recorder) Option {
	return func(m *Manager) {
		if r != nil {
			m.recorder = r
		}
	}
}

// NewManager creates a manager holding only the default session
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		sessions: make(map[string]*Session),
		current:  DefaultSession,
		logger:   zap.NewNop(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(m)
	}

	m.sessions[DefaultSession] = NewSession(DefaultSession)
	m.recorder.SessionsActive(len(m.sessions))
	m.recorder.StackDepth(DefaultSession, 0)
	return m
}

// Create adds an empty session. An existing session with the same name is
// left untouched.
func (m *Manager) Create(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.create(name)
}

func (m *Manager) create(name string) {
	if _, ok := m.sessions[name]; ok {
		m.logger.Debug("Session already exists", zap.String("session", name))
		return
	}
	sess := NewSession(name)
	m.sessions[name] = sess
	m.recorder.SessionsActive(len(m.sessions))
	m.recorder.StackDepth(name, 0)
	m.logger.Info("Session created",
		zap.String("session", name),
		zap.String("id", sess.ID().String()),
		zap.Time("created_at", sess.CreatedAt()))
}

// Switch makes name the active session
func (m *Manager) Switch(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.switchTo(name)
}

func (m *Manager) switchTo(name string) error {
	if _, ok := m.sessions[name]; !ok {
		return fmt.Errorf("session %s was not created, please create it by entering new:%s: %w",
			name, name, ErrUnknownSession)
	}
	m.logger.Debug("Session switched",
		zap.String("from", m.current),
		zap.String("to", name))
	m.current = name
	return nil
}

// Remove deletes a session. The default session and the active session
// cannot be removed.
func (m *Manager) Remove(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.remove(name)
}

func (m *Manager) remove(name string) error {
	switch {
	case name == DefaultSession:
		return fmt.Errorf("the default session cannot be deleted: %w", ErrProtectedSession)
	case name == m.current:
		return fmt.Errorf("the current session cannot be deleted: %w", ErrProtectedSession)
	}

	sess, ok := m.sessions[name]
	if !ok {
		return fmt.Errorf("cannot remove %s: %w", name, ErrUnknownSession)
	}
	delete(m.sessions, name)
	m.recorder.SessionsActive(len(m.sessions))
	m.recorder.SessionRemoved(name)
	m.logger.Info("Session removed",
		zap.String("session", name),
		zap.String("id", sess.ID().String()))
	return nil
}

// Current returns the name of the active session
func (m *Manager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.current
}

// Names returns every session name in sorted order
func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	names := make([]string, 0, len(m.sessions))
	for name := range m.sessions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stack returns a copy of the active session's stack
func (m *Manager) Stack() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active().Stack()
}

// History returns a copy of the active session's history
func (m *Manager) History() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active().History()
}

// StackOf returns a copy of the named session's stack
func (m *Manager) StackOf(name string) ([]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[name]
	if !ok {
		return nil, fmt.Errorf("session %s: %w", name, ErrUnknownSession)
	}
	return sess.Stack(), nil
}

// WithSession runs fn with exclusive access to the named session. fn must
// not call back into the Manager.
func (m *Manager) WithSession(name string, fn func(*Session) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	sess, ok := m.sessions[name]
	if !ok {
		return fmt.Errorf("session %s: %w", name, ErrUnknownSession)
	}
	return fn(sess)
}

func (m *Manager) active() *Session {
	return m.sessions[m.current]
}

// Dispatch records word in the active session's history, tokenizes it and
// executes it. The returned error is a diagnostic for the user; it never
// means the manager is unusable.
func (m *Manager) Dispatch(word string) (Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmd := token.Tokenize(word)
	m.active().Record(cmd.Raw)
	m.recorder.CommandDispatched(cmd.Kind.String())

	outcome, err := m.apply(cmd)
	if err != nil {
		m.recorder.DiagnosticRaised(Kind(err))
		m.logger.Debug("Command rejected",
			zap.String("session", m.current),
			zap.String("word", cmd.Raw),
			zap.String("kind", Kind(err)),
			zap.Error(err))
	}
	m.recorder.StackDepth(m.current, m.active().Depth())
	return outcome, err
}

// Execute dispatches every whitespace-separated word of line in order. It
// stops early when a word asks to quit and reports whether that happened,
// along with the diagnostics raised on the way.
func (m *Manager) Execute(line string) (bool, []error) {
	var errs []error
	for _, word := range strings.Fields(line) {
		outcome, err := m.Dispatch(word)
		if err != nil {
			errs = append(errs, err)
		}
		if outcome == Quit {
			return true, errs
		}
	}
	return false, errs
}

func (m *Manager) apply(cmd token.Command) (Outcome, error) {
	if cmd.IsSessionCommand() {
		return m.applyManager(cmd)
	}
	return m.applySession(m.active(), cmd)
}

// applyManager handles lifecycle and listing commands
func (m *Manager) applyManager(cmd token.Command) (Outcome, error) {
	switch cmd.Kind {
	case token.KindNewSession:
		m.create(cmd.Name)
	case token.KindSwitchSession:
		return Continue, m.switchTo(cmd.Name)
	case token.KindRemoveSession:
		return Continue, m.remove(cmd.Name)
	case token.KindSessions:
		return ShowSessions, nil
	case token.KindHelp:
		return ShowHelp, nil
	case token.KindQuit:
		return Quit, nil
	}
	return Continue, nil
}

// applySession routes stack, history and undo commands to sess
func (m *Manager) applySession(sess *Session, cmd token.Command) (Outcome, error) {
	switch cmd.Kind {
	case token.KindNumber:
		sess.Push(cmd.Value)
	case token.KindBinary:
		return Continue, sess.Binary(cmd.Op)
	case token.KindUnary:
		return Continue, sess.Unary(cmd.Op)
	case token.KindReduce:
		return Continue, sess.Reduce(cmd.Reduction)
	case token.KindSwap:
		return Continue, sess.Swap()
	case token.KindCycle:
		return Continue, sess.Cycle(cmd.N)
	case token.KindDelete:
		return Continue, sess.Delete(cmd.N)
	case token.KindClear:
		sess.Clear()
	case token.KindGet:
		return Continue, sess.Get(cmd.N)
	case token.KindInsert:
		return Continue, sess.Insert(cmd.N, cmd.Value)
	case token.KindCopy:
		return Continue, sess.Copy(cmd.N)
	case token.KindUndo:
		return Continue, sess.Undo(cmd.N)
	case token.KindReset:
		sess.Reset()
	case token.KindClearHistory:
		sess.ClearHistory()
	case token.KindHistory:
		return ShowHistory, nil
	default:
		return Continue, fmt.Errorf("%s is an invalid input (%s): %w", cmd.Raw, cmd.Reason, ErrInvalidToken)
	}
	return Continue, nil
}
