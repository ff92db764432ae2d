package dialog

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/colview/internal/controller"
)

func TestShowAndHide(t *testing.T) {
	m := New()
	assert.False(t, m.Visible())
	assert.Empty(t, m.View())

	h := m.Show(controller.Dialog{Props: controller.DialogProps{}.WithDefaults()})
	assert.True(t, m.Visible())

	h.Hide()
	assert.False(t, m.Visible())
}

func TestKeysRunCallbacks(t *testing.T) {
	m := New()
	var confirmed, cancelled int
	var h controller.Handle
	h = m.Show(controller.Dialog{
		OnConfirm: func() { confirmed++; h.Hide() },
		OnCancel:  func() { cancelled++; h.Hide() },
	})

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, confirmed)
	assert.False(t, m.Visible())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, confirmed, "hidden dialog ignores keys")

	h = m.Show(controller.Dialog{
		OnConfirm: func() { confirmed++; h.Hide() },
		OnCancel:  func() { cancelled++; h.Hide() },
	})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, 1, cancelled)
	assert.False(t, m.Visible())
}

func TestWithoutCallbacksCloses(t *testing.T) {
	m := New()
	m.Show(controller.Dialog{})
	m.Confirm()
	assert.False(t, m.Visible())
}

func TestView(t *testing.T) {
	m := New()
	m.SetBody(func() string { return "BODY" })
	m.SetHint("space toggle")
	m.Show(controller.Dialog{Props: controller.DialogProps{Title: "Columns"}.WithDefaults()})

	view := ansi.Strip(m.View())
	assert.Contains(t, view, "Columns")
	assert.Contains(t, view, "BODY")
	assert.Contains(t, view, "Confirm")
	assert.Contains(t, view, "Cancel")
	assert.Contains(t, view, "space toggle")
}

func TestPlace(t *testing.T) {
	m := New()
	bg := Static("background")
	assert.Equal(t, "background", m.Place(bg))

	m.Show(controller.Dialog{Props: controller.DialogProps{Title: "T"}})
	require.True(t, m.Visible())
	background := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 60)+"\n", 20), "\n")
	view := ansi.Strip(m.Place(Static(background)))
	assert.Contains(t, view, "T")
	assert.Contains(t, view, "....")
}

func TestBoxWidth(t *testing.T) {
	m := New()
	m.Show(controller.Dialog{Props: controller.DialogProps{Width: 50}, WidthMode: "fixed"})
	assert.Equal(t, 50, m.boxWidth("short"))

	m.SetWidth(30)
	assert.Equal(t, 28, m.boxWidth("short"))

	m = New()
	m.Show(controller.Dialog{Props: controller.DialogProps{Width: 50}, WidthMode: "auto"})
	assert.Equal(t, 5+4, m.boxWidth("short"))
}
