// Package checkbox renders a group of checkboxes with a "select all" header.
package checkbox

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Option is a single checkbox.
type Option struct {
	Label    string
	Value    string
	Disabled bool
	Depth    int
}

// ChangeType tells whether an option was checked or unchecked.
type ChangeType string

const (
	Check   ChangeType = "check"
	Uncheck ChangeType = "uncheck"
)

// ChangeMsg reports that the user checked or unchecked Current. It carries
// no selection: the owner applies it to its value when the message arrives,
// so toggles made before earlier messages were handled are not lost.
type ChangeMsg struct {
	Type    ChangeType
	Current string
	Key     tea.KeyMsg
}

// Apply returns value with the change applied. Checked values are appended.
func (msg ChangeMsg) Apply(value []string) []string {
	out := slices.Clone(value)
	if msg.Type == Check {
		if !slices.Contains(out, msg.Current) {
			out = append(out, msg.Current)
		}
		return out
	}
	return slices.DeleteFunc(out, func(v string) bool { return v == msg.Current })
}

// ToggleAllMsg reports a click on the "select all" header.
type ToggleAllMsg struct {
	Checked bool
	Key     tea.KeyMsg
}

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#1a1b26")).Background(lipgloss.Color("#7aa2f7")).Bold(true)
	optionStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#c0caf5"))
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#7dcfff")).Bold(true)
)

// Mark returns the box for a checkbox state.
func Mark(checked, indeterminate bool) string {
	switch {
	case indeterminate:
		return "[-]"
	case checked:
		return "[x]"
	default:
		return "[ ]"
	}
}

// Group is a list of checkboxes. Its value is owned by the caller, which
// answers ChangeMsg and ToggleAllMsg by calling SetValue and SetHeader.
// Until it does, the group shows the toggle it reported.
type Group struct {
	options []Option
	value   []string
	set     map[string]struct{}
	columns int
	cursor  int

	selectAll     string
	checked       bool
	indeterminate bool
}

// New creates a group. selectAll labels the header row; an empty label hides
// it.
func New(selectAll string) Group {
	return Group{selectAll: selectAll, set: map[string]struct{}{}}
}

// SetOptions replaces the options, keeping the cursor in range.
func (g *Group) SetOptions(options []Option) {
	g.options = slices.Clone(options)
	g.cursor = clamp(g.cursor, g.firstRow(), g.lastRow())
}

// SetValue replaces the checked values.
func (g *Group) SetValue(value []string) {
	g.value = slices.Clone(value)
	g.set = make(map[string]struct{}, len(value))
	for _, v := range value {
		g.set[v] = struct{}{}
	}
}

// SetHeader sets the state of the "select all" checkbox.
func (g *Group) SetHeader(checked, indeterminate bool) {
	g.checked = checked
	g.indeterminate = indeterminate
}

// SetColumns sets the number of option columns.
func (g *Group) SetColumns(n int) {
	g.columns = n
}

// Checked reports whether value is checked.
func (g Group) Checked(value string) bool {
	_, ok := g.set[value]
	return ok
}

// Value returns the checked values in the order they were set.
func (g Group) Value() []string {
	return slices.Clone(g.value)
}

// Cursor returns the option under the cursor, or nil on the header row.
func (g Group) Cursor() *Option {
	i := g.cursor - 1
	if i < 0 || i >= len(g.options) {
		return nil
	}
	opt := g.options[i]
	return &opt
}

// Focus moves the cursor onto the option with the given value.
func (g *Group) Focus(value string) {
	for i, opt := range g.options {
		if opt.Value == value {
			g.cursor = i + 1
			return
		}
	}
}

// Update handles navigation and toggling keys.
func (g *Group) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "j", "down", "tab":
		g.cursor = clamp(g.cursor+1, g.firstRow(), g.lastRow())
	case "k", "up", "shift+tab":
		g.cursor = clamp(g.cursor-1, g.firstRow(), g.lastRow())
	case "g", "home":
		g.cursor = g.firstRow()
	case "G", "end":
		g.cursor = g.lastRow()
	case " ", "x":
		return g.toggle(key)
	}
	return nil
}

func (g *Group) toggle(key tea.KeyMsg) tea.Cmd {
	if g.cursor == 0 {
		if g.selectAll == "" {
			return nil
		}
		msg := ToggleAllMsg{Checked: !g.checked, Key: key}
		g.SetHeader(msg.Checked, false)
		return func() tea.Msg { return msg }
	}
	opt := g.Cursor()
	if opt == nil || opt.Disabled {
		return nil
	}

	msg := ChangeMsg{Type: Check, Current: opt.Value, Key: key}
	if g.Checked(opt.Value) {
		msg.Type = Uncheck
	}
	g.SetValue(msg.Apply(g.value))
	return func() tea.Msg { return msg }
}

// View renders the header and the options.
func (g Group) View() string {
	var lines []string
	if g.selectAll != "" {
		line := Mark(g.checked, g.indeterminate) + " " + g.selectAll
		if g.cursor == 0 {
			lines = append(lines, cursorStyle.Render(line))
		} else {
			lines = append(lines, headerStyle.Render(line))
		}
		lines = append(lines, "")
	}

	cells := make([]string, len(g.options))
	width := 0
	for i, opt := range g.options {
		cell := Mark(g.Checked(opt.Value), false) + " " + opt.Label
		if g.columns <= 1 {
			cell = strings.Repeat("  ", opt.Depth) + cell
		}
		cells[i] = cell
		width = max(width, lipgloss.Width(cell))
	}

	perRow := max(g.columns, 1)
	for start := 0; start < len(cells); start += perRow {
		end := min(start+perRow, len(cells))
		var row []string
		for i := start; i < end; i++ {
			text := cells[i]
			if perRow > 1 {
				text += strings.Repeat(" ", width-lipgloss.Width(text)+2)
			}
			switch {
			case i+1 == g.cursor:
				row = append(row, cursorStyle.Render(text))
			case g.options[i].Disabled:
				row = append(row, disabledStyle.Render(text))
			default:
				row = append(row, optionStyle.Render(text))
			}
		}
		lines = append(lines, strings.Join(row, ""))
	}
	return strings.Join(lines, "\n")
}

func (g Group) firstRow() int {
	if g.selectAll == "" && len(g.options) > 0 {
		return 1
	}
	return 0
}

func (g Group) lastRow() int {
	return max(len(g.options), g.firstRow())
}

func clamp(value, low, high int) int {
	if value < low {
		return low
	}
	if value > high {
		return high
	}
	return value
}
