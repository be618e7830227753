package shell

import (
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/GriffinCanCode/rpncalc/internal/domain/session"
	"github.com/GriffinCanCode/rpncalc/internal/domain/token"
	"github.com/GriffinCanCode/rpncalc/internal/infrastructure/config"
	"github.com/GriffinCanCode/rpncalc/internal/providers/math/utilities"
)

// renderer draws every view the shell can show
type renderer interface {
	Banner() error
	Prompt(session string) error
	Diagnostic(err error) error
	Stack(session string, stack []float64) error
	History(session string, words []string) error
	Sessions(current string, names []string) error
	Help() error
}

func newRenderer(format, prompt string, out io.Writer) renderer {
	if format == config.OutputJSON {
		return &jsonRenderer{out: out}
	}
	return &textRenderer{out: out, prompt: prompt}
}

// textRenderer writes human readable output
type textRenderer struct {
	out    io.Writer
	prompt string
}

func (r *textRenderer) Banner() error {
	_, err := fmt.Fprintln(r.out, `Type "exit" or "quit" to quit`)
	return err
}

func (r *textRenderer) Prompt(session string) error {
	_, err := fmt.Fprintf(r.out, "%s%s", session, r.prompt)
	return err
}

func (r *textRenderer) Diagnostic(err error) error {
	_, werr := fmt.Fprintf(r.out, "%s\n", err)
	return werr
}

func (r *textRenderer) Stack(session string, stack []float64) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\nCurrent Session: %s\nStack:\n", session)
	for _, v := range FormatStack(stack) {
		b.WriteString(v)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *textRenderer) History(_ string, words []string) error {
	return r.list("History", words)
}

func (r *textRenderer) Sessions(_ string, names []string) error {
	return r.list("Sessions", names)
}

func (r *textRenderer) list(title string, items []string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "\n%s:\n", title)
	for _, item := range items {
		b.WriteString(item)
		b.WriteByte('\n')
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

func (r *textRenderer) Help() error {
	var b strings.Builder
	b.WriteString("\nCommands:\n")
	for _, v := range token.Verbs() {
		desc := v.Description
		if v.Extension {
			desc += " [extension]"
		}
		fmt.Fprintf(&b, "  %-22s %s\n", v.Usage, desc)
	}
	b.WriteString("\nConstants:\n")
	for _, c := range utilities.Constants() {
		fmt.Fprintf(&b, "  %-22s %s (%s)\n", c.Name, c.Description, FormatValue(c.Value))
	}
	_, err := io.WriteString(r.out, b.String())
	return err
}

// jsonRenderer writes one JSON object per view. Numbers are emitted as
// their display strings so NaN and infinities stay representable.
type jsonRenderer struct {
	out io.Writer
}

type stackView struct {
	View    string   `json:"view"`
	Session string   `json:"session"`
	Stack   []string `json:"stack"`
}

type historyView struct {
	View    string   `json:"view"`
	Session string   `json:"session"`
	History []string `json:"history"`
}

type sessionsView struct {
	View     string   `json:"view"`
	Current  string   `json:"current"`
	Sessions []string `json:"sessions"`
}

type diagnosticView struct {
	View    string `json:"view"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type verbView struct {
	Names       []string `json:"names"`
	Usage       string   `json:"usage"`
	Description string   `json:"description"`
	Extension   bool     `json:"extension,omitempty"`
}

type constantView struct {
	Name        string `json:"name"`
	Value       string `json:"value"`
	Description string `json:"description"`
}

type helpView struct {
	View      string         `json:"view"`
	Verbs     []verbView     `json:"verbs"`
	Constants []constantView `json:"constants"`
}

func (r *jsonRenderer) write(v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %T: %w", v, err)
	}
	data = append(data, '\n')
	_, err = r.out.Write(data)
	return err
}

func (r *jsonRenderer) Banner() error       { return nil }
func (r *jsonRenderer) Prompt(string) error { return nil }

func (r *jsonRenderer) Diagnostic(err error) error {
	return r.write(diagnosticView{View: "diagnostic", Kind: session.Kind(err), Message: err.Error()})
}

func (r *jsonRenderer) Stack(name string, stack []float64) error {
	return r.write(stackView{View: "stack", Session: name, Stack: FormatStack(stack)})
}

func (r *jsonRenderer) History(name string, words []string) error {
	if words == nil {
		words = []string{}
	}
	return r.write(historyView{View: "history", Session: name, History: words})
}

func (r *jsonRenderer) Sessions(current string, names []string) error {
	return r.write(sessionsView{View: "sessions", Current: current, Sessions: names})
}

func (r *jsonRenderer) Help() error {
	verbs := token.Verbs()
	view := helpView{
		View:      "help",
		Verbs:     make([]verbView, 0, len(verbs)),
		Constants: []constantView{},
	}
	for _, v := range verbs {
		view.Verbs = append(view.Verbs, verbView{
			Names:       v.Names,
			Usage:       v.Usage,
			Description: v.Description,
			Extension:   v.Extension,
		})
	}
	for _, c := range utilities.Constants() {
		view.Constants = append(view.Constants, constantView{Name: c.Name, Value: FormatValue(c.Value), Description: c.Description})
	}
	return r.write(view)
}
