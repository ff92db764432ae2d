package ui

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"

	"github.com/kyaoi/colview/internal/controller"
	"github.com/kyaoi/colview/internal/document"
	"github.com/kyaoi/colview/internal/logger"
)

func (m *Model) startWatching(path string) tea.Cmd {
	if path == "" {
		return nil
	}
	path = filepath.Clean(path)
	if err := m.ensureWatcher(); err != nil {
		m.err = err
		return nil
	}

	// Editors often replace the file instead of writing it, so the
	// directory is watched and events are filtered by name.
	dir := filepath.Dir(path)
	if dir != m.watchDir {
		if m.watchDir != "" {
			_ = m.watcher.Remove(m.watchDir)
		}
		if err := m.watcher.Add(dir); err != nil {
			m.err = err
			return nil
		}
		m.watchDir = dir
	}

	m.watchedFile = path
	logger.Debug("watching document", "path", path)
	return m.waitForFileEvent()
}

func (m *Model) ensureWatcher() error {
	if m.watcher != nil {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	m.watcher = watcher
	m.watchChan = make(chan tea.Msg, 10)

	go m.watchLoop()
	return nil
}

func (m *Model) watchLoop() {
	for {
		select {
		case event, ok := <-m.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			m.watchChan <- fileEventMsg{path: event.Name, op: event.Op}
		case err, ok := <-m.watcher.Errors:
			if !ok {
				return
			}
			m.watchChan <- fileWatchErrMsg{err: err}
		}
	}
}

func (m *Model) waitForFileEvent() tea.Cmd {
	if m.watchChan == nil {
		return nil
	}
	return func() tea.Msg {
		msg, ok := <-m.watchChan
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) handleFileEvent(msg fileEventMsg) tea.Cmd {
	if m.watchedFile == "" || filepath.Clean(msg.path) != m.watchedFile {
		return m.waitForFileEvent()
	}
	// A removed file is usually about to be replaced; keep the current view.
	if msg.op&fsnotify.Remove != 0 {
		return m.waitForFileEvent()
	}
	m.reloadDocument()
	return m.waitForFileEvent()
}

// reloadDocument re-reads the document from disk and pushes its columns,
// settings and, when the file owns it, the displayed column list into the
// controller.
func (m *Model) reloadDocument() {
	if m.doc.Path == "" {
		return
	}
	doc, err := document.Load(m.doc.Path)
	if err != nil {
		logger.Warn("reload failed", "path", m.doc.Path, "error", err)
		m.err = err
		return
	}
	m.err = nil

	wasControlled := m.ctl.Controlled()
	m.doc = doc
	if doc.Controlled() != wasControlled {
		// The file gained or lost displayColumns; ownership of the value
		// cannot change on a live controller.
		if m.flow.State() == controller.Open {
			m.flow.Cancel()
		}
		m.newController()
	} else {
		m.ctl.SetColumns(doc.Columns)
		m.ctl.SetConfig(m.controllerConfig(doc))
		if doc.Controlled() {
			m.ctl.SetDisplayColumns(doc.DisplayColumns())
		}
	}
	logger.Info("document reloaded", "path", doc.Path, "controlled", m.ctl.Controlled())

	if m.dialog.Visible() {
		m.syncGroup()
	}
	m.refreshTable()
}
