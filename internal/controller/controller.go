// Package controller decides which table columns are displayed. It keeps the
// applied selection in sync with the host and holds the draft selection that
// the column dialog edits.
package controller

import (
	"slices"

	"github.com/kyaoi/colview/internal/column"
	"github.com/kyaoi/colview/internal/logger"
)

// ChangeType tags a column change event.
type ChangeType string

const (
	ChangeCheck   ChangeType = "check"
	ChangeUncheck ChangeType = "uncheck"
)

// ColumnChange is sent to the host whenever the draft selection changes.
type ColumnChange struct {
	Columns       []string
	Type          ChangeType
	CurrentColumn *column.Node
	Event         any
}

// GroupChange is what the checkbox group reports alongside a new selection.
type GroupChange struct {
	Type    ChangeType
	Current string
	Event   any
}

// TitleFunc renders the label of a column option. index is the position of
// node among its siblings.
type TitleFunc func(node *column.Node, index int) string

// Option is a single entry of the column checkbox group.
type Option struct {
	Label    string
	Value    string
	Disabled bool
	Depth    int
}

// HeaderState is the state of the "select all" checkbox.
type HeaderState struct {
	Checked       bool
	Indeterminate bool
}

// Props configures a Controller.
type Props struct {
	Columns []*column.Node
	Config  Config

	// DisplayColumns and OnDisplayColumnsChange together make the applied
	// value controlled by the host.
	DisplayColumns         []string
	DefaultDisplayColumns  []string
	OnDisplayColumnsChange DisplayChangeFunc
	OnColumnChange         func(ColumnChange)

	Title TitleFunc
}

// Controller owns the applied and draft column selections.
type Controller struct {
	columns        []*column.Node
	config         Config
	title          TitleFunc
	onColumnChange func(ColumnChange)

	value *Value
	draft []string
	open  bool

	keys        []string
	enabled     map[string]struct{}
	options     []Option
	checked     []string
	headerState HeaderState
}

// New creates a controller in the closed state.
func New(props Props) *Controller {
	c := &Controller{
		columns:        props.Columns,
		config:         props.Config,
		title:          props.Title,
		onColumnChange: props.OnColumnChange,
	}
	if c.title == nil {
		c.title = func(node *column.Node, _ int) string { return node.Label() }
	}
	c.recomputeKeys()

	fallback := props.DefaultDisplayColumns
	if fallback == nil {
		fallback = c.keys
	}
	c.value = NewValue(props.DisplayColumns, fallback, props.OnDisplayColumnsChange)
	c.draft = c.value.Get()
	c.recompute()
	return c
}

// Controlled reports whether the applied value belongs to the host.
func (c *Controller) Controlled() bool {
	return c.value.Controlled()
}

// Columns returns the column tree.
func (c *Controller) Columns() []*column.Node {
	return c.columns
}

// Config returns the active configuration.
func (c *Controller) Config() Config {
	return c.config
}

// Keys returns the deduplicated keys of the column tree.
func (c *Controller) Keys() []string {
	return slices.Clone(c.keys)
}

// DisplayColumns returns the applied selection.
func (c *Controller) DisplayColumns() []string {
	return c.value.Get()
}

// Draft returns the selection being edited.
func (c *Controller) Draft() []string {
	return slices.Clone(c.draft)
}

// IsOpen reports whether the editing surface is showing.
func (c *Controller) IsOpen() bool {
	return c.open
}

// EnabledKeys returns the keys the user may toggle.
func (c *Controller) EnabledKeys() map[string]struct{} {
	out := make(map[string]struct{}, len(c.enabled))
	for key := range c.enabled {
		out[key] = struct{}{}
	}
	return out
}

// IsEnabled reports whether key may be toggled.
func (c *Controller) IsEnabled(key string) bool {
	_, ok := c.enabled[key]
	return ok
}

// Options returns the checkbox group options in column order.
func (c *Controller) Options() []Option {
	return slices.Clone(c.options)
}

// Intersection returns the draft keys that are also enabled, in draft order.
func (c *Controller) Intersection() []string {
	return slices.Clone(c.checked)
}

// HeaderState returns the "select all" checkbox state.
func (c *Controller) HeaderState() HeaderState {
	return c.headerState
}

// Visible returns the leaf columns to render for the applied selection.
func (c *Controller) Visible() []*column.Node {
	return column.Visible(c.columns, column.Set(c.value.Get()))
}

// SetColumns replaces the column tree and recomputes derived state.
func (c *Controller) SetColumns(columns []*column.Node) {
	c.columns = columns
	c.recomputeKeys()
	c.recompute()
}

// SetConfig replaces the configuration and recomputes derived state.
func (c *Controller) SetConfig(config Config) {
	c.config = config
	c.recomputeKeys()
	c.recompute()
}

// SetDisplayColumns feeds a new host value into a controlled controller.
// While the editing surface is closed the draft follows it.
func (c *Controller) SetDisplayColumns(value []string) {
	if !c.value.Sync(value) {
		return
	}
	logger.Debug("display columns changed externally", "columns", value, "open", c.open)
	if !c.open {
		c.draft = c.value.Get()
		c.recompute()
	}
}

// ToggleAll handles the "select all" checkbox. Checking selects every column,
// including locked ones. Unchecking keeps only the locked columns, since their
// checkboxes cannot be cleared.
func (c *Controller) ToggleAll(checked bool, event any) {
	change := ColumnChange{Event: event}
	if checked {
		c.draft = slices.Clone(c.keys)
		change.Type = ChangeCheck
	} else {
		locked := []string{}
		for _, opt := range c.options {
			if opt.Disabled {
				locked = append(locked, opt.Value)
			}
		}
		c.draft = locked
		change.Type = ChangeUncheck
	}
	c.recompute()
	change.Columns = slices.Clone(c.draft)
	c.emit(change)
}

// ApplyGroupChange replaces the draft with selection as reported by the
// checkbox group.
func (c *Controller) ApplyGroupChange(selection []string, ctx GroupChange) {
	c.draft = slices.Clone(selection)
	c.recompute()
	c.emit(ColumnChange{
		Columns:       slices.Clone(c.draft),
		Type:          ctx.Type,
		CurrentColumn: column.Find(c.columns, ctx.Current),
		Event:         ctx.Event,
	})
}

func (c *Controller) emit(change ColumnChange) {
	logger.Debug("column change", "type", change.Type, "columns", change.Columns)
	if c.onColumnChange != nil {
		c.onColumnChange(change)
	}
}

func (c *Controller) begin() {
	c.draft = c.value.Get()
	c.open = true
	c.recompute()
}

func (c *Controller) commit() {
	c.open = false
	c.value.Set(c.draft, DisplayChange{Trigger: TriggerConfirm})
	logger.Info("display columns committed", "columns", c.draft, "controlled", c.value.Controlled())
}

func (c *Controller) discard() {
	c.open = false
	c.draft = c.value.Get()
	c.recompute()
}

func (c *Controller) recomputeKeys() {
	c.keys = column.UniqueKeys(c.columns)
	all := column.Set(c.keys)
	if c.config.Fields == nil {
		c.enabled = all
		return
	}
	c.enabled = make(map[string]struct{}, len(c.config.Fields))
	for _, key := range c.config.Fields {
		if _, ok := all[key]; ok {
			c.enabled[key] = struct{}{}
		}
	}
}

func (c *Controller) recompute() {
	c.options = make([]Option, 0, len(c.keys))
	var visit func(nodes []*column.Node, depth int)
	visit = func(nodes []*column.Node, depth int) {
		for i, node := range nodes {
			if node.Key != "" {
				c.options = append(c.options, Option{
					Label:    c.title(node, i),
					Value:    node.Key,
					Disabled: !c.IsEnabled(node.Key),
					Depth:    depth,
				})
			}
			visit(node.Children, depth+1)
		}
	}
	visit(c.columns, 0)

	c.checked = make([]string, 0, len(c.draft))
	seen := make(map[string]struct{}, len(c.draft))
	for _, key := range c.draft {
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		if c.IsEnabled(key) {
			c.checked = append(c.checked, key)
		}
	}

	total := len(c.enabled)
	n := len(c.checked)
	c.headerState = HeaderState{
		Checked:       n == total,
		Indeterminate: n > 0 && n < total,
	}
}
