package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	attrs "github.com/wippyai/hhbc-attrs"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	ctxStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	maskStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type contextChoice struct {
	name string
	ctx  attrs.Context
}

var contextChoices = []contextChoice{
	{"class", attrs.Class},
	{"func", attrs.Func},
	{"prop", attrs.Prop},
	{"trait_import", attrs.TraitImport},
	{"alias", attrs.Alias},
	{"parameter", attrs.Parameter},
	{"constant", attrs.Constant},
}

type modelState int

const (
	stateSelectContext modelState = iota
	stateInputMask
	stateShowResult
)

type interactiveModel struct {
	input    textinput.Model
	result   string
	residual attrs.Attr
	parseErr error
	selected int
	state    modelState
}

func newInteractiveModel() *interactiveModel {
	ti := textinput.New()
	ti.Placeholder = "0x300"
	ti.Prompt = "mask: "
	ti.Width = 24
	return &interactiveModel{
		input: ti,
		state: stateSelectContext,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputMask {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectContext && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectContext && m.selected < len(contextChoices)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectContext:
				m.input.SetValue("")
				m.input.Focus()
				m.state = stateInputMask

			case stateInputMask:
				m.decode()
				m.state = stateShowResult

			case stateShowResult:
				m.state = stateSelectContext
				m.result = ""
				m.residual = 0
				m.parseErr = nil
			}

		case "esc":
			switch m.state {
			case stateInputMask:
				m.input.Blur()
				m.state = stateSelectContext
			case stateShowResult:
				m.state = stateSelectContext
				m.result = ""
				m.residual = 0
				m.parseErr = nil
			}
		}
	}

	if m.state == stateInputMask {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) decode() {
	ctx := contextChoices[m.selected].ctx
	mask, err := parseMask(strings.TrimSpace(m.input.Value()), 32)
	if err != nil {
		m.parseErr = err
		return
	}
	a := attrs.Attr(mask)
	m.result = attrs.String(ctx, a)
	m.residual = attrs.Residual(ctx, a)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("HHBC Attr Inspector"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectContext:
		b.WriteString("Select a declaration context:\n\n")
		for i, c := range contextChoices {
			cursor := "  "
			line := c.name
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + line))
			} else {
				b.WriteString(cursor + ctxStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputMask:
		c := contextChoices[m.selected]
		b.WriteString(fmt.Sprintf("Context %s\n\n", ctxStyle.Render(c.name)))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString("Attributes valid here:\n")
		for _, e := range attrs.Registry() {
			if e.Contexts&c.ctx == 0 {
				continue
			}
			b.WriteString("  ")
			b.WriteString(ctxStyle.Render(e.Name))
			b.WriteString(" ")
			b.WriteString(maskStyle.Render(fmt.Sprintf("0x%x", uint32(e.Bit))))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter decode • esc back"))

	case stateShowResult:
		c := contextChoices[m.selected]
		b.WriteString(fmt.Sprintf("Decoded under %s:\n\n", ctxStyle.Render(c.name)))
		switch {
		case m.parseErr != nil:
			b.WriteString(warnStyle.Render(fmt.Sprintf("Error: %v", m.parseErr)))
		case m.result == "":
			b.WriteString(helpStyle.Render("(no tokens)"))
		default:
			b.WriteString(resultStyle.Render(m.result))
		}
		if m.residual != 0 {
			b.WriteString("\n\n")
			b.WriteString(warnStyle.Render(
				fmt.Sprintf("residual bits 0x%x have no entry in this context", uint32(m.residual))))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	p := tea.NewProgram(newInteractiveModel(), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
