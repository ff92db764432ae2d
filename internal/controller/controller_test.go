package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/colview/internal/column"
)

func testColumns() []*column.Node {
	tree := []*column.Node{
		{Key: "a", Title: "A"},
		{Key: "b", Title: "B", Children: []*column.Node{{Key: "c", Title: "C"}}},
		{Title: "Group", Children: []*column.Node{{Key: "d"}}},
	}
	column.Link(tree)
	return tree
}

func keysOf(set map[string]struct{}) []string {
	var out []string
	for k := range set {
		out = append(out, k)
	}
	return out
}

func TestEnabledKeys_DefaultsToAllKeys(t *testing.T) {
	c := New(Props{Columns: testColumns()})
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, keysOf(c.EnabledKeys()))
}

func TestEnabledKeys_UsesFields(t *testing.T) {
	c := New(Props{
		Columns: testColumns(),
		Config:  Config{Fields: []string{"c", "a", "", "zz"}},
	})
	assert.ElementsMatch(t, []string{"a", "c"}, keysOf(c.EnabledKeys()))
	assert.True(t, c.IsEnabled("a"))
	assert.False(t, c.IsEnabled("b"))
}

func TestEnabledKeys_RecomputedOnChange(t *testing.T) {
	c := New(Props{Columns: testColumns()})
	c.SetConfig(Config{Fields: []string{"a"}})
	assert.ElementsMatch(t, []string{"a"}, keysOf(c.EnabledKeys()))

	c.SetConfig(Config{})
	c.SetColumns([]*column.Node{{Key: "x"}})
	assert.ElementsMatch(t, []string{"x"}, keysOf(c.EnabledKeys()))
	assert.Equal(t, []string{"x"}, c.Keys())
}

func TestOptions(t *testing.T) {
	c := New(Props{
		Columns: testColumns(),
		Config:  Config{Fields: []string{"a", "c"}},
		Title: func(node *column.Node, index int) string {
			return node.Label() + "#" + string(rune('0'+index))
		},
	})

	want := []Option{
		{Label: "A#0", Value: "a", Disabled: false, Depth: 0},
		{Label: "B#1", Value: "b", Disabled: true, Depth: 0},
		{Label: "C#0", Value: "c", Disabled: false, Depth: 1},
		{Label: "d#0", Value: "d", Disabled: true, Depth: 1},
	}
	assert.Equal(t, want, c.Options())
}

func TestOptions_EmptyTree(t *testing.T) {
	c := New(Props{})
	assert.Empty(t, c.Options())
	assert.Empty(t, c.Keys())
	assert.Empty(t, c.DisplayColumns())
}

func TestHeaderState(t *testing.T) {
	tree := []*column.Node{{Key: "a"}, {Key: "b"}, {Key: "c"}, {Key: "locked"}}
	tests := []struct {
		name  string
		draft []string
		want  HeaderState
		inter []string
	}{
		{name: "some", draft: []string{"a", "b"}, want: HeaderState{Indeterminate: true}, inter: []string{"a", "b"}},
		{name: "all", draft: []string{"c", "b", "a"}, want: HeaderState{Checked: true}, inter: []string{"c", "b", "a"}},
		{name: "only locked", draft: []string{"locked"}, want: HeaderState{}, inter: []string{}},
		{name: "duplicates count once", draft: []string{"a", "a", "b", "b"}, want: HeaderState{Indeterminate: true}, inter: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Props{
				Columns: tree,
				Config:  Config{Fields: []string{"a", "b", "c"}},
			})
			c.ApplyGroupChange(tt.draft, GroupChange{Type: ChangeCheck})
			assert.Equal(t, tt.want, c.HeaderState())
			assert.Equal(t, tt.inter, c.Intersection())
		})
	}
}

func TestToggleAll_CheckedSelectsEveryKey(t *testing.T) {
	var events []ColumnChange
	c := New(Props{
		Columns:               testColumns(),
		Config:                Config{Fields: []string{"a"}},
		DefaultDisplayColumns: []string{},
		OnColumnChange:        func(e ColumnChange) { events = append(events, e) },
	})

	c.ToggleAll(true, "evt")

	assert.Equal(t, []string{"a", "b", "c", "d"}, c.Draft())
	require.Len(t, events, 1)
	assert.Equal(t, ChangeCheck, events[0].Type)
	assert.Equal(t, []string{"a", "b", "c", "d"}, events[0].Columns)
	assert.Equal(t, "evt", events[0].Event)
	assert.True(t, c.HeaderState().Checked)
}

func TestToggleAll_UncheckedKeepsLocked(t *testing.T) {
	var events []ColumnChange
	c := New(Props{
		Columns:        testColumns(),
		Config:         Config{Fields: []string{"a", "c"}},
		OnColumnChange: func(e ColumnChange) { events = append(events, e) },
	})

	c.ToggleAll(false, nil)

	assert.Equal(t, []string{"b", "d"}, c.Draft())
	require.Len(t, events, 1)
	assert.Equal(t, ChangeUncheck, events[0].Type)
	assert.Equal(t, []string{"b", "d"}, events[0].Columns)
	assert.Equal(t, HeaderState{}, c.HeaderState())
}

func TestToggleAll_UncheckedWithNothingLocked(t *testing.T) {
	c := New(Props{Columns: testColumns()})
	c.ToggleAll(false, nil)
	assert.Empty(t, c.Draft())
	assert.NotNil(t, c.Draft())
}

func TestApplyGroupChange(t *testing.T) {
	var got ColumnChange
	c := New(Props{
		Columns:        testColumns(),
		OnColumnChange: func(e ColumnChange) { got = e },
	})

	c.ApplyGroupChange([]string{"d", "a"}, GroupChange{Type: ChangeUncheck, Current: "c", Event: 42})

	assert.Equal(t, []string{"d", "a"}, c.Draft())
	assert.Equal(t, []string{"d", "a"}, got.Columns)
	assert.Equal(t, ChangeUncheck, got.Type)
	require.NotNil(t, got.CurrentColumn)
	assert.Equal(t, "c", got.CurrentColumn.Key)
	assert.Equal(t, 42, got.Event)

	c.ApplyGroupChange(nil, GroupChange{Current: "nope"})
	assert.Nil(t, got.CurrentColumn)
}

func TestCallbacksAreOptional(t *testing.T) {
	c := New(Props{Columns: testColumns()})
	w := NewWorkflow(c, nil)

	assert.NotPanics(t, func() {
		w.Open()
		c.ToggleAll(true, nil)
		c.ApplyGroupChange([]string{"a"}, GroupChange{Type: ChangeCheck, Current: "a"})
		w.Confirm()
	})
	assert.Equal(t, []string{"a"}, c.DisplayColumns())
}

func TestDefaultDisplayColumns(t *testing.T) {
	c := New(Props{Columns: testColumns(), DefaultDisplayColumns: []string{"b"}})
	assert.Equal(t, []string{"b"}, c.DisplayColumns())
	assert.Equal(t, []string{"b"}, c.Draft())
	assert.False(t, c.Controlled())

	c = New(Props{Columns: testColumns()})
	assert.Equal(t, []string{"a", "b", "c", "d"}, c.DisplayColumns())
}

func TestVisible(t *testing.T) {
	c := New(Props{Columns: testColumns(), DefaultDisplayColumns: []string{"a", "c", "d"}})
	var keys []string
	for _, leaf := range c.Visible() {
		keys = append(keys, leaf.Key)
	}
	assert.Equal(t, []string{"a", "d"}, keys)
}
