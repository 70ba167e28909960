package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lean2go/lean2go/exports"
	"github.com/lean2go/lean2go/invoke"
	"github.com/lean2go/lean2go/pipeline"
	"github.com/lean2go/lean2go/runtime"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	symbolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectExport modelState = iota
	stateInputArgs
	stateShowResult
)

type interactiveModel struct {
	err      error
	input    string
	opts     pipeline.Options
	lib      *runtime.SharedLibrary
	binDir   string
	exports  []exports.Export
	argInput textinput.Model
	result   string
	selected int
	state    modelState
}

func newInteractiveModel(input string, opts pipeline.Options) *interactiveModel {
	return &interactiveModel{
		input: input,
		opts:  opts,
		state: stateSelectExport,
	}
}

type builtMsg struct {
	err     error
	lib     *runtime.SharedLibrary
	binDir  string
	exports []exports.Export
}

type callResultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return m.buildAndLoad
}

func (m *interactiveModel) buildAndLoad() tea.Msg {
	ctx := context.Background()

	result, err := pipeline.Run(ctx, m.input, m.opts)
	if err != nil {
		return builtMsg{err: err}
	}
	if result.LibPath == "" {
		return builtMsg{err: fmt.Errorf("no shared library produced; build it and set LEAN2GO_LIB")}
	}

	lib, err := runtime.Open(result.LibPath)
	if err != nil {
		return builtMsg{err: err}
	}

	return builtMsg{
		lib:     lib,
		binDir:  pipeline.LeanBinDir(ctx, m.input, true),
		exports: result.Exports,
	}
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			if m.state != stateInputArgs || msg.String() == "ctrl+c" {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectExport && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectExport && m.selected < len(m.exports)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectExport:
				if len(m.exports) == 0 {
					break
				}
				ti := textinput.New()
				ti.Placeholder = "1, 2, 3"
				ti.Prompt = "values: "
				ti.Width = 40
				ti.Focus()
				m.argInput = ti
				m.state = stateInputArgs

			case stateInputArgs:
				return m, m.callExport

			case stateShowResult:
				m.state = stateSelectExport
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputArgs, stateShowResult:
				m.state = stateSelectExport
				m.result = ""
				m.err = nil
			}
		}

	case builtMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.lib = msg.lib
		m.binDir = msg.binDir
		m.exports = msg.exports

	case callResultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputArgs {
		var cmd tea.Cmd
		m.argInput, cmd = m.argInput.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) callExport() tea.Msg {
	values, err := parseU32List(m.argInput.Value())
	if err != nil {
		return callResultMsg{err: err}
	}

	e := m.exports[m.selected]
	result, err := invoke.CallArrayFlexible(m.lib, nil, e.Symbol, values, m.binDir)
	if err != nil {
		return callResultMsg{err: err}
	}
	return callResultMsg{result: fmt.Sprintf("%v", result)}
}

func parseU32List(s string) ([]uint32, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []uint32{}, nil
	}
	parts := strings.Split(s, ",")
	out := make([]uint32, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 32)
		if err != nil {
			return nil, fmt.Errorf("not a uint32: %q", strings.TrimSpace(p))
		}
		out = append(out, uint32(v))
	}
	return out, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil && m.state != stateShowResult {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	if len(m.exports) == 0 {
		return "Building Lean project..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("lean2go"))
	b.WriteString(" ")
	b.WriteString(m.input)
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectExport:
		b.WriteString("Select an export to call:\n\n")
		for i, e := range m.exports {
			line := e.Symbol + " (def " + e.LeanName + ")"
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + symbolStyle.Render(e.Symbol) + " (def " + e.LeanName + ")")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter call • q quit"))

	case stateInputArgs:
		e := m.exports[m.selected]
		b.WriteString(fmt.Sprintf("Calling %s with Array UInt32\n\n", symbolStyle.Render(e.Symbol)))
		b.WriteString(m.argInput.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("comma-separated uint32 values • enter call • esc back"))

	case stateShowResult:
		e := m.exports[m.selected]
		b.WriteString(fmt.Sprintf("Result of %s:\n\n", symbolStyle.Render(e.Symbol)))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive(input string, opts pipeline.Options) error {
	p := tea.NewProgram(newInteractiveModel(input, opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
