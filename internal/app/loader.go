package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/kyaoi/colview/internal/config"
	"github.com/kyaoi/colview/internal/document"
	"github.com/kyaoi/colview/internal/logger"
	"github.com/kyaoi/colview/internal/ui"
)

// ResolveDocument turns target into the path of a table document. A directory
// resolves to the first document found below it.
func ResolveDocument(target string) (string, error) {
	if target == "" {
		target = "."
	}
	absTarget, err := filepath.Abs(target)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(absTarget)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return absTarget, nil
	}

	found, err := document.Discover(absTarget)
	if err != nil {
		return "", err
	}
	if len(found) == 0 {
		return "", fmt.Errorf("no table documents (*.csv, *.table.md) found in %s", filepath.Base(absTarget))
	}
	logger.Debug("discovered documents", "root", absTarget, "count", len(found))
	return filepath.Join(absTarget, filepath.FromSlash(found[0])), nil
}

// LoadDocument resolves target and parses the document it points at.
func LoadDocument(target string) (*document.Document, error) {
	path, err := ResolveDocument(target)
	if err != nil {
		return nil, err
	}
	return document.Load(path)
}

// LoadInitialState analyses the target path and prepares the UI state.
func LoadInitialState(target string, cfg *config.Config) (ui.State, error) {
	doc, err := LoadDocument(target)
	if err != nil {
		return ui.State{}, err
	}

	headerPath := doc.Path
	if wd, err := os.Getwd(); err == nil {
		if rel, err := filepath.Rel(wd, doc.Path); err == nil {
			headerPath = rel
		}
	}
	headerPath = filepath.ToSlash(headerPath)
	if doc.Header.Title != "" {
		headerPath = doc.Header.Title + " (" + headerPath + ")"
	}

	return ui.State{
		Document:           doc,
		HeaderPath:         headerPath,
		TreeVisible:        cfg.ShowTree,
		TreePreferredWidth: cfg.TreeWidth,
		Style:              cfg.Style,
		DialogWidth:        cfg.DialogWidth,
		Watch:              cfg.Watch,
	}, nil
}
