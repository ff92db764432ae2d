package ui

import "github.com/kyaoi/colview/internal/document"

// State contains the data required to bootstrap the Bubble Tea model.
type State struct {
	Document           *document.Document
	HeaderPath         string
	TreeVisible        bool
	TreePreferredWidth int
	Style              string
	DialogWidth        int
	Watch              bool
	FocusTree          bool
}
