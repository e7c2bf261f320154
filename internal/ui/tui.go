// Package ui provides the interactive terminal checklist.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Chriiiiiss/to-do-lit/internal/config"
	"github.com/Chriiiiiss/to-do-lit/internal/list"
	"github.com/Chriiiiiss/to-do-lit/internal/task"
)

// Run starts the interactive checklist over an existing service.
func Run(ctx context.Context, svc *list.Service, cfg *config.Config) error {
	if !IsTTY(os.Stdout) {
		return fmt.Errorf("tui requires a TTY")
	}

	model := newModel(svc, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	// Debounced toggles land on a timer goroutine; route them back
	// into the single-threaded update loop.
	svc.SetOnToggle(func(id string, err error) {
		program.Send(toggleAppliedMsg{id: id, err: err})
	})
	defer svc.SetOnToggle(nil)

	_, err := program.Run()
	return err
}

// toggleAppliedMsg reports a debounced toggle that has been applied
// and persisted.
type toggleAppliedMsg struct {
	id  string
	err error
}

type styles struct {
	title  lipgloss.Style
	cursor lipgloss.Style
	done   lipgloss.Style
	dim    lipgloss.Style
	errMsg lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor {
		plain := lipgloss.NewStyle()
		return styles{title: plain, cursor: plain, done: plain, dim: plain, errMsg: plain}
	}
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		cursor: lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		done:   lipgloss.NewStyle().Faint(true).Strikethrough(true),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		errMsg: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

type model struct {
	svc *list.Service
	st  styles

	rows   task.List
	cursor int

	adding bool
	input  textinput.Model

	status    string
	statusErr bool

	width  int
	height int
}

func newModel(svc *list.Service, cfg *config.Config) *model {
	input := textinput.New()
	input.Placeholder = "What needs doing?"
	input.CharLimit = 256

	m := &model{
		svc:   svc,
		st:    newStyles(cfg.NoColor),
		input: input,
	}
	m.refresh()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case toggleAppliedMsg:
		m.refresh()
		if msg.err != nil {
			m.setStatus(fmt.Sprintf("save failed: %v", msg.err), true)
		} else {
			m.setStatus("", false)
		}
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateNormal(msg)
	}

	return m, nil
}

func (m *model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.adding = false
		m.input.Blur()
		return m, nil
	case "enter":
		added, ok, err := m.svc.Add(m.input.Value())
		if !ok {
			// Rejected title: field stays untouched.
			return m, nil
		}
		m.input.Reset()
		m.adding = false
		m.input.Blur()
		m.refresh()
		m.moveCursorTo(added.ID)
		if err != nil {
			m.setStatus(fmt.Sprintf("save failed: %v", err), true)
		} else {
			m.setStatus(fmt.Sprintf("added %q", added.Title), false)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "a":
		m.adding = true
		m.setStatus("", false)
		return m, m.input.Focus()
	case "j", "down":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
		return m, nil
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case " ", "x":
		if t, ok := m.current(); ok {
			m.svc.ToggleRequest(t.ID)
			m.setStatus(fmt.Sprintf("toggling %q...", t.Title), false)
		}
		return m, nil
	case "d", "delete":
		if t, ok := m.current(); ok {
			err := m.svc.Delete(t.ID)
			m.refresh()
			if err != nil {
				m.setStatus(fmt.Sprintf("save failed: %v", err), true)
			} else {
				m.setStatus(fmt.Sprintf("deleted %q", t.Title), false)
			}
		}
		return m, nil
	}
	return m, nil
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString(m.st.title.Render("to-do-lit"))
	b.WriteString("\n\n")

	if m.adding {
		b.WriteString("  " + m.input.View() + "\n\n")
	}

	if len(m.rows) == 0 {
		b.WriteString(m.st.dim.Render("  Nothing to do. Press 'a' to add a task."))
		b.WriteString("\n")
	}
	for i, t := range m.rows {
		marker := "  "
		if i == m.cursor {
			marker = m.st.cursor.Render("> ")
		}
		box := "[ ]"
		title := t.Title
		if t.Completed {
			box = "[x]"
			title = m.st.done.Render(title)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", marker, box, title))
	}

	b.WriteString("\n")
	if m.status != "" {
		line := m.status
		if m.statusErr {
			line = m.st.errMsg.Render(line)
		} else {
			line = m.st.dim.Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString(m.st.dim.Render("a add · space toggle · d delete · j/k move · q quit"))
	b.WriteString("\n")

	return b.String()
}

// refresh pulls a fresh display ordering and keeps the cursor in range.
func (m *model) refresh() {
	m.rows = m.svc.Display()
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *model) current() (task.Task, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return task.Task{}, false
	}
	return m.rows[m.cursor], true
}

func (m *model) moveCursorTo(id string) {
	for i, t := range m.rows {
		if t.ID == id {
			m.cursor = i
			return
		}
	}
}

func (m *model) setStatus(s string, isErr bool) {
	m.status = s
	m.statusErr = isErr
}

// IsTTY returns true if w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	info, _ := f.Stat()
	return (info.Mode() & os.ModeCharDevice) != 0
}
