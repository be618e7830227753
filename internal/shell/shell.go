package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/rpncalc/internal/domain/session"
	"github.com/GriffinCanCode/rpncalc/internal/infrastructure/config"
)

// maxLineBytes bounds a single input line
const maxLineBytes = 1 << 20

// Shell is the interactive loop around a session.Manager
type Shell struct {
	mgr    *session.Manager
	cfg    config.ShellConfig
	logger *zap.Logger
	in     io.Reader
	render renderer
}

// New creates a shell reading words from in and writing views to out
func New(mgr *session.Manager, cfg config.ShellConfig, logger *zap.Logger, in io.Reader, out io.Writer) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Shell{
		mgr:    mgr,
		cfg:    cfg,
		logger: logger,
		in:     in,
		render: newRenderer(cfg.Output, cfg.Prompt, out),
	}
}

type line struct {
	text string
	err  error
	eof  bool
}

// Run reads lines until quit, end of input or cancellation. It returns nil
// on quit and EOF, the read error otherwise, and ctx.Err() when ctx is
// cancelled.
func (s *Shell) Run(ctx context.Context) error {
	if s.cfg.Banner {
		if err := s.render.Banner(); err != nil {
			return err
		}
	}

	lines := make(chan line)
	go s.read(ctx, lines)

	for {
		if err := s.render.Prompt(s.mgr.Current()); err != nil {
			return err
		}

		var l line
		select {
		case <-ctx.Done():
			return ctx.Err()
		case l = <-lines:
		}

		switch {
		case l.err != nil:
			return fmt.Errorf("read input: %w", l.err)
		case l.eof:
			s.logger.Debug("Input closed")
			return nil
		}

		quit, err := s.RunLine(l.text)
		if err != nil {
			return err
		}
		if quit {
			s.logger.Debug("Quit requested", zap.String("session", s.mgr.Current()))
			return nil
		}
	}
}

// read feeds lines to the loop. A blocked reader can outlive a cancelled
// Run; it exits on the next line or at EOF.
func (s *Shell) read(ctx context.Context, lines chan<- line) {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 4096), maxLineBytes)

	send := func(l line) bool {
		select {
		case lines <- l:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for scanner.Scan() {
		if !send(line{text: scanner.Text()}) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		send(line{err: err})
		return
	}
	send(line{eof: true})
}

// RunLine dispatches every word of text, renders diagnostics and requested
// views, then renders the stack of the session active at the end of the
// line. The stack is not rendered when a word asks to quit. A non-nil error
// means output could not be written.
func (s *Shell) RunLine(text string) (bool, error) {
	for _, word := range strings.Fields(text) {
		outcome, derr := s.mgr.Dispatch(word)
		if derr != nil {
			if err := s.render.Diagnostic(derr); err != nil {
				return false, err
			}
		}

		var err error
		switch outcome {
		case session.Quit:
			return true, nil
		case session.ShowHistory:
			err = s.render.History(s.mgr.Current(), s.mgr.History())
		case session.ShowSessions:
			err = s.render.Sessions(s.mgr.Current(), s.mgr.Names())
		case session.ShowHelp:
			err = s.render.Help()
		}
		if err != nil {
			return false, err
		}
	}

	return false, s.render.Stack(s.mgr.Current(), s.mgr.Stack())
}
