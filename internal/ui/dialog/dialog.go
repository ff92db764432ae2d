// Package dialog is a modal confirm dialog drawn over the rest of the screen.
package dialog

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/kyaoi/colview/internal/controller"
)

var (
	boxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7"))
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c0caf5"))
	descStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6"))
	primaryBtn = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#1a1b26")).
			Background(lipgloss.Color("#7aa2f7")).
			Bold(true)
	secondaryBtn = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("#c0caf5")).
			Background(lipgloss.Color("#283457"))
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
)

// Model hosts at most one dialog at a time.
type Model struct {
	visible bool
	current controller.Dialog
	body    func() string
	hint    string
	width   int
}

// New returns a hidden dialog host.
func New() *Model {
	return &Model{}
}

type handle struct {
	m *Model
}

func (h handle) Hide() { h.m.visible = false }

// Show implements controller.DialogHost.
func (m *Model) Show(d controller.Dialog) controller.Handle {
	m.current = d
	m.visible = true
	return handle{m: m}
}

// SetBody sets the function rendering the dialog body.
func (m *Model) SetBody(body func() string) {
	m.body = body
}

// SetHint sets the key hint shown under the buttons.
func (m *Model) SetHint(hint string) {
	m.hint = hint
}

// SetWidth sets the screen width the dialog must fit in.
func (m *Model) SetWidth(width int) {
	m.width = width
}

// Visible reports whether a dialog is showing.
func (m *Model) Visible() bool {
	return m.visible
}

// Title returns the title of the current dialog.
func (m *Model) Title() string {
	return m.current.Props.Title
}

// Confirm runs the confirm callback.
func (m *Model) Confirm() {
	if !m.visible {
		return
	}
	if m.current.OnConfirm != nil {
		m.current.OnConfirm()
		return
	}
	m.visible = false
}

// Cancel runs the cancel callback.
func (m *Model) Cancel() {
	if !m.visible {
		return
	}
	if m.current.OnCancel != nil {
		m.current.OnCancel()
		return
	}
	m.visible = false
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model. It handles enter and esc only.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.visible {
		switch key.String() {
		case "enter":
			m.Confirm()
		case "esc":
			m.Cancel()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if !m.visible {
		return ""
	}
	props := m.current.Props

	var sections []string
	if props.Title != "" {
		sections = append(sections, titleStyle.Render(props.Title))
	}
	if props.Description != "" {
		sections = append(sections, descStyle.Render(props.Description))
	}
	if m.body != nil {
		sections = append(sections, m.body())
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		secondaryBtn.Render(props.CancelText),
		"  ",
		primaryBtn.Render(props.ConfirmText),
	)
	sections = append(sections, buttons)
	if m.hint != "" {
		sections = append(sections, hintStyle.Render(m.hint))
	}

	content := strings.Join(sections, "\n\n")
	style := boxStyle
	if width := m.boxWidth(content); width > 0 {
		style = style.Width(width)
	}
	return style.Render(content)
}

func (m *Model) boxWidth(content string) int {
	width := m.current.Props.Width
	if m.current.WidthMode != "fixed" {
		natural := lipgloss.Width(content) + boxStyle.GetHorizontalPadding()
		if width <= 0 || natural < width {
			width = natural
		}
	}
	if m.width > 0 {
		width = min(width, m.width-boxStyle.GetHorizontalBorderSize())
	}
	return width
}

// Place draws the dialog centred over background.
func (m *Model) Place(background tea.Model) string {
	if !m.visible {
		return background.View()
	}
	return overlay.New(m, background, overlay.Center, overlay.Center, 0, 0).View()
}

// Static wraps a rendered string as a tea.Model for use as a backdrop.
type Static string

func (s Static) Init() tea.Cmd                       { return nil }
func (s Static) Update(tea.Msg) (tea.Model, tea.Cmd) { return s, nil }
func (s Static) View() string                        { return string(s) }
