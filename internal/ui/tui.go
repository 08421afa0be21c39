// Package ui provides the terminal interface.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nibzard/todoapp-go/internal/config"
	"github.com/nibzard/todoapp-go/internal/todo"
)

// TUIOption configures the TUI behavior.
type TUIOption func(*tuiConfig)

// tuiConfig holds TUI configuration.
type tuiConfig struct {
	logger      *log.Logger
	programOpts []tea.ProgramOption
	skipTTY     bool
}

// WithLogger sets the logger used for UI events.
func WithLogger(logger *log.Logger) TUIOption {
	return func(c *tuiConfig) {
		c.logger = logger
	}
}

// WithProgramOptions passes extra options to the bubbletea program.
// Supplying custom input and output also lifts the TTY requirement.
func WithProgramOptions(opts ...tea.ProgramOption) TUIOption {
	return func(c *tuiConfig) {
		c.programOpts = append(c.programOpts, opts...)
		c.skipTTY = true
	}
}

// RunTUI starts the TUI over store and blocks until the user quits or ctx
// is cancelled.
func RunTUI(ctx context.Context, cfg *config.Config, store *todo.Store, opts ...TUIOption) error {
	c := &tuiConfig{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}

	if !c.skipTTY && !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	programOpts = append(programOpts, c.programOpts...)

	model := NewModel(store, cfg.Title, c.logger)
	program := tea.NewProgram(model, programOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// Model is the bubbletea model for the task list screen.
type Model struct {
	store    *todo.Store
	logger   *log.Logger
	title    string
	tasks    []todo.Task
	cursor   int
	form     *taskForm // nil unless the New Task form is open
	showHelp bool
	width    int
}

// NewModel creates the list screen model.
func NewModel(store *todo.Store, title string, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	m := &Model{
		store:  store,
		logger: logger,
		title:  title,
	}
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case tea.KeyMsg:
		if m.form != nil {
			return m, m.updateForm(msg)
		}
		return m, m.updateList(msg)
	}

	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

func (m *Model) updateList(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c", "q":
		return tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		if len(m.tasks) > 0 {
			m.cursor = len(m.tasks) - 1
		}
	case " ", "enter", "x":
		if len(m.tasks) == 0 {
			return nil
		}
		m.store.ToggleComplete(m.tasks[m.cursor].ID)
		m.refresh()
	case "a", "+":
		m.form = newTaskForm()
		m.showHelp = false
		return m.form.open()
	case "?", "h":
		m.showHelp = !m.showHelp
	}
	return nil
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "esc":
		m.logger.Debug("new task cancelled")
		m.form = nil
		return nil
	case "tab", "down":
		return m.form.move(1)
	case "shift+tab", "up":
		return m.form.move(-1)
	case "enter":
		if !m.form.canSubmit() {
			m.logger.Debug("add ignored: empty title")
			return nil
		}
		m.store.Add(m.form.title(), m.form.description())
		m.form = nil
		m.refresh()
		m.cursor = len(m.tasks) - 1
		return nil
	}
	return m.form.update(msg)
}

// refresh re-reads the task list after a mutation.
func (m *Model) refresh() {
	m.tasks = m.store.List()
	if m.cursor >= len(m.tasks) {
		m.cursor = len(m.tasks) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	if m.form != nil {
		box := m.form.view()
		if m.width > 0 {
			return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, box) + "\n"
		}
		return box + "\n"
	}

	var b strings.Builder
	writeHeader(&b, m.title, m.tasks)

	if m.showHelp {
		writeHelp(&b)
		writeFooter(&b)
		return b.String()
	}

	if len(m.tasks) == 0 {
		b.WriteString("  No tasks yet. Press a to add one.\n\n")
		writeFooter(&b)
		return b.String()
	}

	for i, task := range m.tasks {
		b.WriteString(formatTask(task, i == m.cursor))
	}
	b.WriteString("\n")
	writeFooter(&b)
	return b.String()
}

func writeHeader(b *strings.Builder, title string, tasks []todo.Task) {
	done := 0
	for _, t := range tasks {
		if t.IsComplete {
			done++
		}
	}
	b.WriteString(headerStyle.Render(title))
	b.WriteString("  ")
	b.WriteString(countsStyle.Render(fmt.Sprintf("%d open / %d done", len(tasks)-done, done)))
	b.WriteString("\n\n")
}

func writeHelp(b *strings.Builder) {
	b.WriteString("Keyboard Shortcuts\n\n")
	b.WriteString("  up/k, down/j      Move selection\n")
	b.WriteString("  space, enter, x   Toggle complete\n")
	b.WriteString("  a, +              New task\n")
	b.WriteString("  ?, h              Toggle this help screen\n")
	b.WriteString("  q, ctrl+c         Quit\n\n")
	b.WriteString("New Task form\n\n")
	b.WriteString("  tab, shift+tab    Switch field\n")
	b.WriteString("  enter             Add (needs a title)\n")
	b.WriteString("  esc               Cancel\n\n")
}

func writeFooter(b *strings.Builder) {
	b.WriteString(hintStyle.Render("a add | space toggle | ? help | q quit"))
	b.WriteString("\n")
}

func formatTask(t todo.Task, selected bool) string {
	pointer := "  "
	if selected {
		pointer = cursorStyle.Render("> ")
	}
	mark := openMark.Render(markIncomplete)
	if t.IsComplete {
		mark = doneMark.Render(markComplete)
	}

	line := pointer + mark + " " + taskTitle.Render(t.Title) + "\n"
	if t.Description != "" {
		line += "    " + taskDesc.Render(t.Description) + "\n"
	}
	return line
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}
