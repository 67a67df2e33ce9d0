package notify

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/custodia-labs/evsearch/internal/core/domain"
	"github.com/custodia-labs/evsearch/internal/core/ports/driven"
)

// Ensure the prompters implement the interface.
var (
	_ driven.Prompter = (*TerminalPrompter)(nil)
	_ driven.Prompter = StaticPrompter(false)
)

// confirmModel is the bubbletea model of a yes/no prompt.
type confirmModel struct {
	prompt  domain.Prompt
	keys    *KeyMap
	styles  *Styles
	focusOK bool
	done    bool
	answer  bool
}

func newConfirmModel(p domain.Prompt, keys *KeyMap, styles *Styles) confirmModel {
	return confirmModel{
		prompt:  p,
		keys:    keys,
		styles:  styles,
		focusOK: true,
	}
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Accept):
		return m.finish(true)
	case key.Matches(keyMsg, m.keys.Dismiss):
		return m.finish(false)
	case key.Matches(keyMsg, m.keys.Select):
		return m.finish(m.focusOK)
	case key.Matches(keyMsg, m.keys.Toggle):
		m.focusOK = !m.focusOK
	}
	return m, nil
}

func (m confirmModel) finish(answer bool) (tea.Model, tea.Cmd) {
	m.answer = answer
	m.done = true
	return m, tea.Quit
}

func (m confirmModel) View() string {
	if m.done {
		return ""
	}

	accept, dismiss := m.styles.Button, m.styles.ActiveButton
	if m.focusOK {
		accept, dismiss = m.styles.ActiveButton, m.styles.Button
	}

	var help []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}

	body := strings.Join([]string{
		m.styles.Title.Render(m.prompt.Title),
		"",
		m.prompt.Message,
		"",
		accept.Render(m.prompt.AcceptLabel()) + " " + dismiss.Render(m.prompt.DismissLabel()),
		"",
		m.styles.Help.Render(strings.Join(help, " • ")),
	}, "\n")
	return m.styles.Box.Render(body) + "\n"
}

// TerminalPrompter asks yes/no questions on the terminal. On a TTY it runs
// an interactive prompt; otherwise it reads a y/N answer line from input.
type TerminalPrompter struct {
	in     io.Reader
	out    io.Writer
	isTTY  func() bool
	keys   *KeyMap
	styles *Styles
}

// NewTerminalPrompter reads from os.Stdin and writes to os.Stderr.
func NewTerminalPrompter() *TerminalPrompter {
	return &TerminalPrompter{
		in:     os.Stdin,
		out:    os.Stderr,
		isTTY:  stdioIsTerminal,
		keys:   DefaultKeyMap(),
		styles: NewStyles(nil),
	}
}

func stdioIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

// Confirm implements driven.Prompter.
func (p *TerminalPrompter) Confirm(ctx context.Context, prompt domain.Prompt) (bool, error) {
	if p.isTTY != nil && p.isTTY() {
		return p.confirmInteractive(ctx, prompt)
	}
	return p.confirmLine(prompt)
}

func (p *TerminalPrompter) confirmInteractive(ctx context.Context, prompt domain.Prompt) (bool, error) {
	program := tea.NewProgram(
		newConfirmModel(prompt, p.keys, p.styles),
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	final, err := program.Run()
	if err != nil {
		return false, fmt.Errorf("run prompt: %w", err)
	}
	m, ok := final.(confirmModel)
	return ok && m.answer, nil
}

// confirmLine prints the prompt and reads one line. Anything other than
// y or yes declines.
func (p *TerminalPrompter) confirmLine(prompt domain.Prompt) (bool, error) {
	fmt.Fprintf(p.out, "%s\n%s\n%s? [y/N] ", prompt.Title, prompt.Message, prompt.AcceptLabel())

	line, err := bufio.NewReader(p.in).ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// StaticPrompter answers every prompt with a fixed value. It backs
// --yes and unattended modes such as the MCP server.
type StaticPrompter bool

// Confirm implements driven.Prompter.
func (s StaticPrompter) Confirm(_ context.Context, _ domain.Prompt) (bool, error) {
	return bool(s), nil
}
