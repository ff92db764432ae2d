package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandle struct {
	hidden int
}

func (h *fakeHandle) Hide() { h.hidden++ }

type fakeHost struct {
	shown   []Dialog
	handles []*fakeHandle
}

func (h *fakeHost) Show(d Dialog) Handle {
	h.shown = append(h.shown, d)
	handle := &fakeHandle{}
	h.handles = append(h.handles, handle)
	return handle
}

func TestWorkflow_OpenShowsDialog(t *testing.T) {
	host := &fakeHost{}
	c := New(Props{
		Columns: testColumns(),
		Config: Config{
			DisplayType: DisplayFixedWidth,
			Dialog:      DialogProps{Title: "Columns"},
			Checkbox:    CheckboxProps{Columns: 2},
		},
	})
	w := NewWorkflow(c, host)

	assert.Equal(t, Closed, w.State())
	require.True(t, w.Open())
	assert.Equal(t, Open, w.State())
	assert.False(t, w.Open(), "open twice")

	require.Len(t, host.shown, 1)
	d := host.shown[0]
	assert.Equal(t, "Columns", d.Props.Title)
	assert.Equal(t, defaultConfirmText, d.Props.ConfirmText)
	assert.Equal(t, "fixed", d.WidthMode)
	assert.Equal(t, 2, d.Checkbox.Columns)
}

func TestWorkflow_ConfirmCommitsOnce(t *testing.T) {
	host := &fakeHost{}
	var commits [][]string
	c := New(Props{
		Columns:                testColumns(),
		OnDisplayColumnsChange: func(v []string, change DisplayChange) { commits = append(commits, v); assert.Equal(t, TriggerConfirm, change.Trigger) },
	})
	w := NewWorkflow(c, host)

	w.Open()
	c.ApplyGroupChange([]string{"a", "c"}, GroupChange{Type: ChangeUncheck, Current: "b"})
	require.True(t, w.Confirm())

	assert.Equal(t, [][]string{{"a", "c"}}, commits)
	assert.Equal(t, []string{"a", "c"}, c.DisplayColumns())
	assert.Equal(t, []string{"a", "c"}, c.Draft())
	assert.Equal(t, Closed, w.State())
	assert.Equal(t, 1, host.handles[0].hidden)

	assert.False(t, w.Confirm(), "confirm while closed")
	assert.Len(t, commits, 1)
	assert.Equal(t, 1, host.handles[0].hidden)
}

func TestWorkflow_ConfirmThroughDialogCallback(t *testing.T) {
	host := &fakeHost{}
	c := New(Props{Columns: testColumns()})
	w := NewWorkflow(c, host)

	w.Open()
	c.ToggleAll(false, nil)
	host.shown[0].OnConfirm()

	assert.Empty(t, c.DisplayColumns())
	assert.Equal(t, 1, host.handles[0].hidden)
}

func TestWorkflow_CancelKeepsApplied(t *testing.T) {
	host := &fakeHost{}
	c := New(Props{Columns: testColumns(), DefaultDisplayColumns: []string{"a", "b"}})
	w := NewWorkflow(c, host)

	w.Open()
	c.ToggleAll(true, nil)
	host.shown[0].OnCancel()

	assert.Equal(t, Closed, w.State())
	assert.Equal(t, []string{"a", "b"}, c.DisplayColumns())
	assert.Equal(t, 1, host.handles[0].hidden)

	w.Open()
	assert.Equal(t, []string{"a", "b"}, c.Draft())
	require.True(t, w.Cancel())
	assert.False(t, w.Cancel(), "cancel while closed")
}

func TestWorkflow_ControlledProposesOnly(t *testing.T) {
	var proposed []string
	c := New(Props{
		Columns:                testColumns(),
		DisplayColumns:         []string{"a"},
		OnDisplayColumnsChange: func(v []string, _ DisplayChange) { proposed = v },
	})
	require.True(t, c.Controlled())
	w := NewWorkflow(c, nil)

	w.Open()
	c.ApplyGroupChange([]string{"a", "b"}, GroupChange{Type: ChangeCheck, Current: "b"})
	w.Confirm()

	assert.Equal(t, []string{"a", "b"}, proposed)
	assert.Equal(t, []string{"a"}, c.DisplayColumns(), "host has not accepted yet")

	c.SetDisplayColumns(proposed)
	assert.Equal(t, []string{"a", "b"}, c.DisplayColumns())
}

func TestWorkflow_ExternalChangeWhileClosedResyncsDraft(t *testing.T) {
	c := New(Props{
		Columns:                testColumns(),
		DisplayColumns:         []string{"a"},
		OnDisplayColumnsChange: func([]string, DisplayChange) {},
	})
	w := NewWorkflow(c, nil)

	w.Open()
	c.ApplyGroupChange([]string{"d"}, GroupChange{Type: ChangeCheck, Current: "d"})
	w.Cancel()

	c.SetDisplayColumns([]string{"b", "c"})
	assert.Equal(t, []string{"b", "c"}, c.Draft())

	w.Open()
	assert.Equal(t, []string{"b", "c"}, c.Draft())
}

func TestWorkflow_ExternalChangeWhileOpenKeepsDraft(t *testing.T) {
	c := New(Props{
		Columns:                testColumns(),
		DisplayColumns:         []string{"a"},
		OnDisplayColumnsChange: func([]string, DisplayChange) {},
	})
	w := NewWorkflow(c, nil)

	w.Open()
	c.ApplyGroupChange([]string{"d"}, GroupChange{Type: ChangeCheck, Current: "d"})
	c.SetDisplayColumns([]string{"b"})

	assert.Equal(t, []string{"d"}, c.Draft())
	assert.Equal(t, []string{"b"}, c.DisplayColumns())
}

func TestValue(t *testing.T) {
	t.Run("needs value and setter to be controlled", func(t *testing.T) {
		assert.False(t, NewValue([]string{"a"}, nil, nil).Controlled())
		assert.False(t, NewValue(nil, []string{"a"}, func([]string, DisplayChange) {}).Controlled())
		assert.True(t, NewValue([]string{}, nil, func([]string, DisplayChange) {}).Controlled())
	})

	t.Run("uncontrolled stores and notifies", func(t *testing.T) {
		var got []string
		v := NewValue(nil, []string{"a"}, func(value []string, _ DisplayChange) { got = value })
		v.Set([]string{"b"}, DisplayChange{})
		assert.Equal(t, []string{"b"}, v.Get())
		assert.Equal(t, []string{"b"}, got)
		assert.False(t, v.Sync([]string{"z"}))
		assert.Equal(t, []string{"b"}, v.Get())
	})

	t.Run("get returns a copy", func(t *testing.T) {
		v := NewValue(nil, []string{"a"}, nil)
		got := v.Get()
		got[0] = "mutated"
		assert.Equal(t, []string{"a"}, v.Get())
	})

	t.Run("sync reports change", func(t *testing.T) {
		v := NewValue([]string{"a"}, nil, func([]string, DisplayChange) {})
		assert.False(t, v.Sync([]string{"a"}))
		assert.True(t, v.Sync([]string{"a", "b"}))
		assert.Equal(t, []string{"a", "b"}, v.Get())
	})
}
