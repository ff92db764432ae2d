package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	styles "github.com/charmbracelet/glamour/styles"
	"github.com/charmbracelet/lipgloss"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/colview/internal/column"
	"github.com/kyaoi/colview/internal/controller"
	"github.com/kyaoi/colview/internal/document"
	"github.com/kyaoi/colview/internal/logger"
	"github.com/kyaoi/colview/internal/ui/checkbox"
	"github.com/kyaoi/colview/internal/ui/dialog"
)

const (
	statusHeight      = 1
	minContentWidth   = 20
	minTreePanelWidth = 18
	defaultTreeWidth  = 28
)

var (
	treeBlurBorderColor  = lipgloss.Color("#3b4261")
	treeFocusBorderColor = lipgloss.Color("#7aa2f7")
	treeLineStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#a9b1d6"))
	treeHiddenStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#565f89"))
	treeSelectedActive   = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1a1b26")).
				Background(lipgloss.Color("#7aa2f7")).
				Bold(true)
	treeSelectedInactive = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#c0caf5")).
				Background(lipgloss.Color("#283457"))
	helpBoxStyle = lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7aa2f7")).
			Background(lipgloss.Color("#1f2335"))
	statusBarStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#a9b1d6")).
			Background(lipgloss.Color("#1f2335"))
	triggerStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("#1a1b26")).
			Background(lipgloss.Color("#9ece6a"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff6b6b"))
)

const dialogHint = "j/k move · space toggle · a select all · enter confirm · esc cancel"

// Model implements the Bubble Tea program for the table viewer.
type Model struct {
	contentVP          viewport.Model
	treeVP             viewport.Model
	renderer           *glamour.TermRenderer
	style              string
	rawContent         string
	renderedContent    string
	headerPath         string
	status             string
	treeVisible        bool
	treePreferredWidth int
	treeContentWidth   int
	treeFocus          bool
	showHelp           bool
	pendingKey         string
	ready              bool
	width              int
	height             int
	err                error

	doc         *document.Document
	ctl         *controller.Controller
	flow        *controller.Workflow
	dialog      *dialog.Model
	group       checkbox.Group
	dialogWidth int

	flatTree      []treeLine
	treeSelection int
	collapsed     map[*column.Node]bool

	searchInput  textinput.Model
	searchActive bool
	search       tableSearch

	watchEnabled     bool
	watcher          *fsnotify.Watcher
	watchDir         string
	watchedFile      string
	watchChan        chan tea.Msg
	initialWatchPath string
}

type treeLine struct {
	entry *column.Node
	label string
	shown bool
}

type fileEventMsg struct {
	path string
	op   fsnotify.Op
}

type fileWatchErrMsg struct {
	err error
}

// NewModel constructs the viewer model with the provided initial state.
func NewModel(state State) *Model {
	contentVP := viewport.New(0, 0)
	contentVP.Style = lipgloss.NewStyle().Padding(0, 1)
	contentVP.SetHorizontalStep(2)

	treeVP := viewport.New(0, 0)
	treeVP.Style = treePanelStyle(treeBlurBorderColor)
	treeVP.MouseWheelEnabled = false

	style := state.Style
	if style == "" {
		style = styles.TokyoNightStyle
	}

	m := &Model{
		contentVP:          contentVP,
		treeVP:             treeVP,
		style:              style,
		headerPath:         state.HeaderPath,
		treeVisible:        state.TreeVisible,
		treePreferredWidth: state.TreePreferredWidth,
		doc:                state.Document,
		dialog:             dialog.New(),
		dialogWidth:        state.DialogWidth,
		collapsed:          make(map[*column.Node]bool),
		search:             newTableSearch(),
		watchEnabled:       state.Watch,
	}

	searchInput := textinput.New()
	searchInput.Prompt = "/"
	searchInput.CharLimit = 256
	searchInput.Placeholder = "search"
	searchInput.CursorEnd()
	searchInput.Blur()
	m.searchInput = searchInput

	m.dialog.SetHint(dialogHint)
	m.newController()

	if m.headerPath == "" {
		m.headerPath = m.doc.Title()
	}
	if m.watchEnabled && m.doc.Path != "" {
		m.initialWatchPath = m.doc.Path
	}

	m.rawContent = m.doc.Markdown(m.ctl.Visible())
	m.refreshTreeView()
	m.updateTreePanelStyle()

	if state.FocusTree && m.treeVisible {
		m.focusTree()
	}

	return m
}

// Controller exposes the column controller driving the table.
func (m *Model) Controller() *controller.Controller {
	return m.ctl
}

func (m *Model) newController() {
	props := controller.Props{
		Columns:               m.doc.Columns,
		Config:                m.controllerConfig(m.doc),
		DefaultDisplayColumns: m.doc.Header.DefaultDisplayColumns,
		OnColumnChange:        m.onColumnChange,
	}
	if m.doc.Controlled() {
		props.DisplayColumns = m.doc.DisplayColumns()
		props.OnDisplayColumnsChange = m.saveDisplayColumns
	} else {
		props.OnDisplayColumnsChange = m.applyDisplayColumns
	}
	m.ctl = controller.New(props)
	m.flow = controller.NewWorkflow(m.ctl, m.dialog)
	m.group = checkbox.New(m.ctl.Config().Dialog.WithDefaults().SelectAllText)
	m.dialog.SetBody(m.groupView)
}

func (m *Model) groupView() string {
	return m.group.View()
}

func (m *Model) controllerConfig(doc *document.Document) controller.Config {
	cfg := doc.Header.Controller
	if cfg.Dialog.Width == 0 {
		cfg.Dialog.Width = m.dialogWidth
	}
	return cfg
}

func (m *Model) saveDisplayColumns(value []string, change controller.DisplayChange) {
	if err := document.SaveDisplayColumns(m.doc.Path, value); err != nil {
		logger.Error("failed to save display columns", "path", m.doc.Path, "error", err)
		m.err = err
		return
	}
	logger.Info("display columns saved", "path", m.doc.Path, "trigger", change.Trigger)
	m.doc.SetDisplayColumns(value)
	m.ctl.SetDisplayColumns(value)
	m.status = fmt.Sprintf("saved %d columns to %s", len(value), filepath.Base(m.doc.Path))
}

func (m *Model) applyDisplayColumns(value []string, _ controller.DisplayChange) {
	m.status = fmt.Sprintf("showing %d columns", len(value))
}

func (m *Model) onColumnChange(change controller.ColumnChange) {
	switch {
	case change.CurrentColumn != nil:
		m.status = fmt.Sprintf("%s %s", change.Type, change.CurrentColumn.Label())
	default:
		m.status = fmt.Sprintf("%s all", change.Type)
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.initialWatchPath != "" {
		path := m.initialWatchPath
		m.initialWatchPath = ""
		return m.startWatching(path)
	}
	return nil
}

// View implements tea.Model.
func (m *Model) View() string {
	body := m.contentVP.View()
	if m.treeVisible {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.treeVP.View(), body)
	}

	if m.err != nil {
		errLine := errorStyle.Render(m.err.Error())
		body = lipgloss.JoinVertical(lipgloss.Left, errLine, body)
	}

	if m.showHelp {
		helpContent := strings.Join([]string{
			"Help (? / Esc to close)",
			"Ctrl+h / Ctrl+l : focus column tree / table",
			"j / k            : move / scroll the focused pane",
			"Ctrl+d / Ctrl+u : half page (table focus)",
			"Ctrl+f / Ctrl+b : half page (tree focus)",
			"gg / G           : top / bottom",
			"h / l            : collapse / expand groups, scroll sideways",
			"Enter / Space    : edit the selected column (tree focus)",
			"c                : choose displayed columns",
			"y                : copy displayed column keys",
			"r                : reload the document",
			"/                : search",
			"n / N            : next / previous match",
			"t                : toggle the column tree",
			"q / Ctrl+c       : quit",
		}, "\n")
		helpOverlay := helpBoxStyle.Render(helpContent)
		if m.width > 0 && m.height > 0 {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, helpOverlay)
		}
		return helpOverlay
	}

	if m.searchActive {
		body = lipgloss.JoinVertical(lipgloss.Left, body, statusBarStyle.Render(m.searchInput.View()))
	} else {
		body = lipgloss.JoinVertical(lipgloss.Left, body, m.statusLine())
	}

	if m.dialog.Visible() {
		m.dialog.SetWidth(m.width)
		return m.dialog.Place(dialog.Static(body))
	}
	return body
}

func (m *Model) statusLine() string {
	trigger := triggerStyle.Render("⚙ Columns (c)")
	parts := []string{
		m.headerPath,
		fmt.Sprintf("%d/%d columns", len(m.ctl.Visible()), len(column.Visible(m.doc.Columns, column.Set(m.ctl.Keys())))),
	}
	if m.ctl.Controlled() {
		parts = append(parts, "synced")
	}
	if search := m.searchStatusLine(); search != "" {
		parts = append(parts, search)
	}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, trigger, statusBarStyle.Render(strings.Join(parts, " · ")))
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case fileEventMsg:
		return m, m.handleFileEvent(msg)
	case fileWatchErrMsg:
		m.err = msg.err
		return m, m.waitForFileEvent()
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case checkbox.ChangeMsg:
		if !m.ctl.IsOpen() {
			return m, nil
		}
		m.ctl.ApplyGroupChange(msg.Apply(m.ctl.Draft()), controller.GroupChange{
			Type:    controller.ChangeType(msg.Type),
			Current: msg.Current,
			Event:   msg.Key,
		})
		m.syncGroup()
		return m, nil
	case checkbox.ToggleAllMsg:
		if !m.ctl.IsOpen() {
			return m, nil
		}
		m.ctl.ToggleAll(msg.Checked, msg.Key)
		m.syncGroup()
		return m, nil

	case tea.KeyMsg:
		if m.dialog.Visible() {
			return m, m.handleDialogKey(msg)
		}

		if m.searchActive {
			switch msg.Type {
			case tea.KeyEnter:
				query := strings.TrimSpace(m.searchInput.Value())
				m.exitSearchMode()
				if query == "" {
					m.clearSearch()
					return m, nil
				}
				m.performSearch(query)
				return m, nil
			case tea.KeyEsc, tea.KeyCtrlC:
				m.exitSearchMode()
				return m, nil
			}
			var cmd tea.Cmd
			m.searchInput, cmd = m.searchInput.Update(msg)
			return m, cmd
		}

		key := msg.String()
		if key != "g" {
			m.pendingKey = ""
		}

		if m.showHelp {
			m.pendingKey = ""
			switch key {
			case "q", "?", "esc":
				m.showHelp = false
			}
			return m, nil
		}

		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			m.pendingKey = ""
			return m, nil
		case "ctrl+h":
			if m.treeVisible {
				m.focusTree()
			}
			return m, nil
		case "ctrl+l":
			m.blurTree()
			return m, nil
		case "t":
			m.treeVisible = !m.treeVisible
			if !m.treeVisible {
				m.blurTree()
			}
			m.resize(m.width, m.height)
			return m, nil
		case "c":
			m.openColumns("")
			return m, nil
		case "y":
			m.copyDisplayColumns()
			return m, nil
		case "r":
			m.reloadDocument()
			return m, nil
		case "/":
			return m, m.enterSearchMode()
		case "n":
			if len(m.search.matches) > 0 {
				m.stepSearch(1)
				return m, nil
			}
		case "N":
			if len(m.search.matches) > 0 {
				m.stepSearch(-1)
				return m, nil
			}
		}

		if m.treeFocus && m.treeVisible {
			m.handleTreeKey(key)
			return m, nil
		}

		if m.handleContentKey(key) {
			return m, nil
		}

		var cmd tea.Cmd
		m.contentVP, cmd = m.contentVP.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.contentVP, cmd = m.contentVP.Update(msg)
	return m, cmd
}

func (m *Model) handleDialogKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "ctrl+c":
		return tea.Quit
	case "enter":
		m.dialog.Confirm()
		m.refreshTable()
		return nil
	case "esc", "q":
		m.dialog.Cancel()
		return nil
	case "a":
		m.ctl.ToggleAll(!m.ctl.HeaderState().Checked, msg)
		m.syncGroup()
		return nil
	}
	return m.group.Update(msg)
}

func (m *Model) openColumns(focus string) {
	if !m.flow.Open() {
		return
	}
	m.pendingKey = ""
	m.syncGroup()
	if focus != "" {
		m.group.Focus(focus)
	}
}

func (m *Model) syncGroup() {
	opts := m.ctl.Options()
	options := make([]checkbox.Option, len(opts))
	for i, opt := range opts {
		options[i] = checkbox.Option{
			Label:    opt.Label,
			Value:    opt.Value,
			Disabled: opt.Disabled,
			Depth:    opt.Depth,
		}
	}
	m.group.SetOptions(options)
	m.group.SetValue(m.ctl.Draft())
	state := m.ctl.HeaderState()
	m.group.SetHeader(state.Checked, state.Indeterminate)
	m.group.SetColumns(m.ctl.Config().Checkbox.Columns)
}

func (m *Model) copyDisplayColumns() {
	keys := m.ctl.DisplayColumns()
	if err := clipboard.WriteAll(strings.Join(keys, ",")); err != nil {
		m.err = err
		return
	}
	m.status = fmt.Sprintf("copied %d column keys", len(keys))
}

func (m *Model) refreshTable() {
	m.rawContent = m.doc.Markdown(m.ctl.Visible())
	offset := m.contentVP.YOffset
	m.renderMarkdown()
	if m.err == nil {
		m.contentVP.SetYOffset(offset)
	}
	m.refreshTreeView()
}

func (m *Model) handleContentKey(key string) bool {
	switch key {
	case "j":
		m.contentVP.ScrollDown(1)
	case "k":
		m.contentVP.ScrollUp(1)
	case "ctrl+d":
		m.contentVP.HalfPageDown()
	case "ctrl+u":
		m.contentVP.HalfPageUp()
	case "h":
		m.contentVP.ScrollLeft(max(2, m.contentVP.Width/6))
	case "l":
		m.contentVP.ScrollRight(max(2, m.contentVP.Width/6))
	case "g":
		if m.pendingKey == "g" {
			m.contentVP.GotoTop()
			m.pendingKey = ""
		} else {
			m.pendingKey = "g"
		}
		return true
	case "G":
		m.pendingKey = ""
		m.contentVP.GotoBottom()
	default:
		return false
	}
	m.pendingKey = ""
	return true
}

func (m *Model) handleTreeKey(key string) {
	switch key {
	case "j":
		m.moveTreeSelection(1)
	case "k":
		m.moveTreeSelection(-1)
	case "ctrl+d":
		m.moveTreeSelection(max(1, m.treeVP.Height/2))
	case "ctrl+u":
		m.moveTreeSelection(-max(1, m.treeVP.Height/2))
	case "ctrl+j":
		m.contentVP.ScrollDown(1)
	case "ctrl+k":
		m.contentVP.ScrollUp(1)
	case "ctrl+f":
		m.contentVP.ScrollDown(max(1, m.contentVP.Height/2))
	case "ctrl+b":
		m.contentVP.ScrollUp(max(1, m.contentVP.Height/2))
	case "l", "right":
		m.expandOrDescend()
	case "h", "left":
		m.collapseOrAscend()
	case "enter", " ":
		if entry := m.currentTreeEntry(); entry != nil {
			m.openColumns(firstKey(entry))
		}
	case "g":
		if m.pendingKey == "g" {
			m.pendingKey = ""
			if len(m.flatTree) > 0 {
				m.treeSelection = 0
				m.updateTreeContent(m.treeContentWidth)
			}
		} else {
			m.pendingKey = "g"
		}
	case "G":
		m.pendingKey = ""
		if len(m.flatTree) > 0 {
			m.treeSelection = len(m.flatTree) - 1
			m.updateTreeContent(m.treeContentWidth)
		}
	default:
		m.pendingKey = ""
	}
}

// firstKey returns the key of node or, for keyless groups, of its first keyed
// descendant.
func firstKey(node *column.Node) string {
	if node.Key != "" {
		return node.Key
	}
	if keys := column.Keys(node.Children); len(keys) > 0 {
		return keys[0]
	}
	return ""
}

func (m *Model) resize(width, height int) {
	if width <= 0 || height <= statusHeight {
		return
	}

	m.width = width
	m.height = height
	m.ready = true

	treeWidth := m.treeWidth(width)
	contentWidth := width - treeWidth
	if m.treeVisible && treeWidth > 0 {
		contentWidth--
	}
	if contentWidth < minContentWidth {
		contentWidth = minContentWidth
	}

	contentHeight := max(height-statusHeight, 1)
	m.contentVP.Width = contentWidth
	m.contentVP.Height = contentHeight

	wrapWidth := max(contentWidth-m.contentVP.Style.GetHorizontalFrameSize(), 0)
	renderer, err := newRenderer(wrapWidth, m.style)
	if err != nil {
		m.err = err
		return
	}
	m.renderer = renderer
	m.renderMarkdown()

	if m.treeVisible && treeWidth > 0 {
		m.treeVP.Width = treeWidth
		m.treeVP.Height = contentHeight
		m.ensureSelectionVisible()
	} else {
		m.treeVP.Width = 0
		m.treeVP.Height = contentHeight
	}
}

func (m *Model) treeWidth(totalWidth int) int {
	if !m.treeVisible {
		return 0
	}
	preferred := m.treePreferredWidth
	if preferred <= 0 {
		preferred = defaultTreeWidth
	}

	frame := m.treeVP.Style.GetHorizontalFrameSize()
	minPanel := max(minTreePanelWidth-frame, 0)
	maxPanel := max(totalWidth/2-frame, minPanel)
	panelContentWidth := clamp(preferred, minPanel, maxPanel)

	width := panelContentWidth + frame
	if totalWidth-width < minContentWidth {
		width = max(totalWidth-minContentWidth, 0)
	}
	return min(width, totalWidth)
}

func (m *Model) moveTreeSelection(delta int) {
	if len(m.flatTree) == 0 {
		return
	}
	m.treeSelection = clamp(m.treeSelection+delta, 0, len(m.flatTree)-1)
	m.updateTreeContent(m.treeContentWidth)
}

func (m *Model) expandOrDescend() {
	entry := m.currentTreeEntry()
	if entry == nil || !entry.IsGroup() {
		return
	}
	if m.collapsed[entry] {
		delete(m.collapsed, entry)
		m.refreshTreeViewWithSelection(entry)
		return
	}
	m.moveTreeSelection(1)
}

func (m *Model) collapseOrAscend() {
	entry := m.currentTreeEntry()
	if entry == nil {
		return
	}
	if entry.IsGroup() && !m.collapsed[entry] {
		m.collapsed[entry] = true
		m.refreshTreeViewWithSelection(entry)
		return
	}
	if entry.Parent != nil {
		m.refreshTreeViewWithSelection(entry.Parent)
	}
}

func (m *Model) currentTreeEntry() *column.Node {
	if len(m.flatTree) == 0 || m.treeSelection < 0 || m.treeSelection >= len(m.flatTree) {
		return nil
	}
	return m.flatTree[m.treeSelection].entry
}

func (m *Model) renderMarkdown() {
	if m.renderer == nil {
		return
	}
	rendered, err := m.renderer.Render(m.rawContent)
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.contentVP.SetContent(rendered)
	m.renderedContent = rendered
	m.onContentChanged()
}

func (m *Model) refreshTreeView() {
	m.refreshTreeViewWithSelection(m.currentTreeEntry())
}

func (m *Model) refreshTreeViewWithSelection(selected *column.Node) {
	maxWidth := m.rebuildFlatTree()
	if len(m.flatTree) > 0 {
		if idx := m.indexForNode(selected); idx >= 0 {
			m.treeSelection = idx
		} else {
			m.treeSelection = clamp(m.treeSelection, 0, len(m.flatTree)-1)
		}
	} else {
		m.treeSelection = 0
	}
	m.treeContentWidth = maxWidth
	m.updateTreeContent(maxWidth)
}

func (m *Model) rebuildFlatTree() int {
	shown := column.Set(m.ctl.DisplayColumns())
	var lines []treeLine
	maxWidth := 0
	column.Walk(m.doc.Columns, func(node *column.Node, depth int) bool {
		_, isShown := shown[node.Key]
		label := formatTreeLabel(node, depth, m.collapsed[node], isShown, node.Key == "" || m.ctl.IsEnabled(node.Key))
		if w := lipgloss.Width(label); w > maxWidth {
			maxWidth = w
		}
		lines = append(lines, treeLine{entry: node, label: label, shown: isShown || node.Key == ""})
		return !m.collapsed[node]
	})
	m.flatTree = lines
	return maxWidth
}

func (m *Model) updateTreeContent(width int) {
	if width <= 0 {
		width = minTreePanelWidth
	}
	var builder strings.Builder
	for i, line := range m.flatTree {
		text := line.label
		switch {
		case i == m.treeSelection && m.treeFocus:
			builder.WriteString(treeSelectedActive.Render(text))
		case i == m.treeSelection:
			builder.WriteString(treeSelectedInactive.Render(text))
		case !line.shown:
			builder.WriteString(treeHiddenStyle.Render(text))
		default:
			builder.WriteString(treeLineStyle.Render(text))
		}
		if i < len(m.flatTree)-1 {
			builder.WriteByte('\n')
		}
	}
	m.treePreferredWidth = max(width+4, minTreePanelWidth)
	m.treeVP.SetContent(builder.String())
	m.ensureSelectionVisible()
}

func (m *Model) indexForNode(node *column.Node) int {
	if node == nil {
		return -1
	}
	for i, line := range m.flatTree {
		if line.entry == node {
			return i
		}
	}
	return -1
}

func (m *Model) ensureSelectionVisible() {
	if len(m.flatTree) == 0 || m.treeVP.Height == 0 {
		return
	}
	if m.treeSelection < m.treeVP.YOffset {
		m.treeVP.SetYOffset(m.treeSelection)
		return
	}
	bottom := m.treeVP.YOffset + m.treeVP.Height - 1
	if m.treeSelection > bottom {
		m.treeVP.SetYOffset(m.treeSelection - m.treeVP.Height + 1)
	}
}

func (m *Model) focusTree() {
	m.treeFocus = true
	m.updateTreePanelStyle()
	m.updateTreeContent(m.treeContentWidth)
}

func (m *Model) blurTree() {
	m.treeFocus = false
	m.updateTreePanelStyle()
	m.updateTreeContent(m.treeContentWidth)
}

func (m *Model) updateTreePanelStyle() {
	color := treeBlurBorderColor
	if m.treeFocus {
		color = treeFocusBorderColor
	}
	m.treeVP.Style = treePanelStyle(color)
}

func treePanelStyle(color lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Padding(0, 1).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(color)
}

func formatTreeLabel(entry *column.Node, depth int, collapsed, shown, enabled bool) string {
	indent := strings.Repeat("  ", depth)
	indicator := "  "
	if entry.IsGroup() {
		if collapsed {
			indicator = "+ "
		} else {
			indicator = "- "
		}
	}
	mark := ""
	if entry.Key != "" {
		mark = checkbox.Mark(shown, false) + " "
	}
	label := indent + indicator + mark + entry.Label()
	if !enabled {
		label += " (locked)"
	}
	return label
}

func newRenderer(width int, style string) (*glamour.TermRenderer, error) {
	return glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
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
