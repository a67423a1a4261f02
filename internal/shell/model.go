// File: model.go
// Title: Interactive Shell Model
// Description: Bubbletea model for the interactive command shell. Reads
//              command strings, dispatches them through the engine, renders
//              results and warnings, and gates destructive commands behind
//              an inline y/n confirmation. Input history lives for the
//              session only.
// Author: beamctl contributors
// Version: v0.1.0
// Created: 2025-08-25
// Modified: 2025-08-25
//
// Change History:
// - 2025-08-25 v0.1.0: Initial implementation

package shell

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/beamctl/beamctl/cmdlang"
	"github.com/beamctl/beamctl/cmdlang/dispatch"
	"github.com/beamctl/beamctl/utils/stringx"
)

// maxEchoLen bounds echoed transcript lines so one long paste cannot wreck
// the layout
const maxEchoLen = 160

// Model is the bubbletea model for the interactive shell
type Model struct {
	engine *cmdlang.Engine

	input   textinput.Model
	lines   []string
	width   int
	height  int
	waiting bool

	// pendingConfirm holds the destructive command awaiting y/n
	pendingConfirm string
	confirmReason  string

	// Session-only input history
	history      []string
	historyIndex int
	currentInput string

	quitting bool
}

// New creates the shell model around an engine
func New(engine *cmdlang.Engine) Model {
	ti := textinput.New()
	ti.Placeholder = "Fixture 1 At 50"
	ti.Prompt = PromptStyle.Render("beamctl> ")
	ti.CharLimit = 512
	ti.Focus()

	return Model{
		engine:       engine,
		input:        ti,
		historyIndex: -1,
		lines: []string{
			TitleStyle.Render("beamctl interactive shell"),
			HintStyle.Render("type a console command, 'help' for built-ins, 'exit' to leave"),
		},
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			m.quitting = true
			return m, tea.Quit

		case tea.KeyUp:
			return m.historyBack(), nil

		case tea.KeyDown:
			return m.historyForward(), nil

		case tea.KeyEnter:
			if m.waiting {
				return m, nil
			}
			line := strings.TrimSpace(m.input.Value())
			m.input.SetValue("")
			if m.pendingConfirm != "" {
				return m.handleConfirmation(line)
			}
			if stringx.IsEmpty(line) {
				return m, nil
			}
			return m.handleLine(line)
		}

	case resultMsg:
		m.waiting = false
		return m.renderResult(msg), nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the transcript, the input line, and the footer
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	for _, line := range m.lines {
		b.WriteString(line)
		b.WriteByte('\n')
	}

	if m.pendingConfirm != "" {
		b.WriteString(ConfirmStyle.Render(fmt.Sprintf("execute %q? (y/n) ", m.pendingConfirm)))
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.input.View())
	}
	b.WriteByte('\n')
	b.WriteString(FooterStyle.Render("enter: run • up/down: history • ctrl+c: quit"))
	return b.String()
}

// handleLine routes a submitted line to a built-in or to the dispatcher
func (m Model) handleLine(line string) (Model, tea.Cmd) {
	m.history = append(m.history, line)
	m.historyIndex = -1
	m.echo(line)

	switch strings.ToLower(line) {
	case "exit", "quit":
		m.quitting = true
		return m, tea.Quit
	case "help":
		return m.showHelp(), nil
	case "history":
		return m.showHistory(), nil
	case "templates":
		return m.showTemplates(), nil
	case "clear":
		m.lines = nil
		return m, nil
	}

	m.waiting = true
	return m, m.dispatch(line, false)
}

// handleConfirmation consumes the y/n answer for a pending destructive
// command
func (m Model) handleConfirmation(answer string) (Model, tea.Cmd) {
	command := m.pendingConfirm
	m.pendingConfirm = ""
	m.confirmReason = ""

	switch strings.ToLower(answer) {
	case "y", "yes":
		m.waiting = true
		return m, m.dispatch(command, true)
	default:
		m.lines = append(m.lines, HintStyle.Render("canceled"))
		return m, nil
	}
}

// dispatch runs the command through the engine off the update loop
func (m Model) dispatch(command string, confirmed bool) tea.Cmd {
	engine := m.engine
	return func() tea.Msg {
		var result *dispatch.Result
		var err error
		if confirmed {
			result, err = engine.ExecuteConfirmed(context.Background(), command)
		} else {
			result, err = engine.Execute(context.Background(), command)
		}
		return resultMsg{command: command, result: result, err: err}
	}
}

// renderResult appends the outcome of a dispatched command to the transcript
func (m Model) renderResult(msg resultMsg) Model {
	if msg.err != nil {
		m.lines = append(m.lines, ErrorStyle.Render("error: "+msg.err.Error()))
		return m
	}

	result := msg.result
	for _, warning := range result.Validation.Warnings {
		m.lines = append(m.lines, WarningStyle.Render("warning: "+warning))
	}

	switch result.State {
	case dispatch.StateSucceeded:
		m.lines = append(m.lines, ResultStyle.Render(stringx.FirstNonBlank(result.Output, "ok")))

	case dispatch.StateNeedsConfirmation:
		m.pendingConfirm = msg.command
		m.confirmReason = result.ConfirmationReason
		m.lines = append(m.lines, WarningStyle.Render("destructive: "+result.ConfirmationReason))

	default:
		if result.Err != nil {
			m.lines = append(m.lines, ErrorStyle.Render("error: "+result.Err.Error()))
			if s := result.Err.Suggestion(); s != "" {
				m.lines = append(m.lines, HintStyle.Render("hint: "+s))
			}
		}
	}
	for _, suggestion := range result.Validation.Suggestions {
		m.lines = append(m.lines, HintStyle.Render("hint: "+suggestion))
	}
	return m
}

// echo writes the submitted line into the transcript
func (m *Model) echo(line string) {
	m.lines = append(m.lines, EchoStyle.Render("beamctl> "+stringx.Truncate(line, maxEchoLen, "...")))
}

// showHelp lists the shell built-ins
func (m Model) showHelp() Model {
	m.lines = append(m.lines,
		HintStyle.Render("built-ins:"),
		HintStyle.Render("  help        show this help"),
		HintStyle.Render("  history     show session input history"),
		HintStyle.Render("  templates   list registered command templates"),
		HintStyle.Render("  clear       clear the transcript"),
		HintStyle.Render("  exit        leave the shell"),
	)
	return m
}

// showHistory lists the session's inputs
func (m Model) showHistory() Model {
	if len(m.history) == 0 {
		m.lines = append(m.lines, HintStyle.Render("no history yet"))
		return m
	}
	for i, entry := range m.history {
		m.lines = append(m.lines, HintStyle.Render(fmt.Sprintf("%3d  %s", i+1, entry)))
	}
	return m
}

// showTemplates lists the registered templates with their patterns
func (m Model) showTemplates() Model {
	registry := m.engine.Templates()
	for _, name := range registry.Names() {
		tpl, err := registry.Get(name)
		if err != nil {
			continue
		}
		m.lines = append(m.lines, HintStyle.Render(fmt.Sprintf("%-16s %s", name, tpl.Pattern())))
	}
	return m
}

// historyBack navigates to the previous history entry
func (m Model) historyBack() Model {
	if len(m.history) == 0 {
		return m
	}
	if m.historyIndex == -1 {
		m.currentInput = m.input.Value()
		m.historyIndex = len(m.history) - 1
	} else if m.historyIndex > 0 {
		m.historyIndex--
	}
	m.input.SetValue(m.history[m.historyIndex])
	m.input.CursorEnd()
	return m
}

// historyForward navigates toward the newest entry and restores the
// in-progress input past the end
func (m Model) historyForward() Model {
	if m.historyIndex == -1 {
		return m
	}
	if m.historyIndex < len(m.history)-1 {
		m.historyIndex++
		m.input.SetValue(m.history[m.historyIndex])
	} else {
		m.historyIndex = -1
		m.input.SetValue(m.currentInput)
	}
	m.input.CursorEnd()
	return m
}

// Run starts the shell and blocks until it exits
func Run(engine *cmdlang.Engine) error {
	program := tea.NewProgram(New(engine))
	_, err := program.Run()
	return err
}
