// Package document reads table documents: a CSV body below an optional YAML
// front matter that declares the column tree and the column controller.
package document

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/adrg/frontmatter"

	"github.com/kyaoi/colview/internal/column"
	"github.com/kyaoi/colview/internal/controller"
)

// ErrEmptyBody is returned when a document has no CSV header row.
var ErrEmptyBody = errors.New("document has no header row")

// Header is the front matter of a table document.
type Header struct {
	Title                 string            `yaml:"title,omitempty"`
	Columns               []*column.Node    `yaml:"columns,omitempty"`
	Controller            controller.Config `yaml:"columnController,omitempty"`
	DisplayColumns        *[]string         `yaml:"displayColumns,omitempty"`
	DefaultDisplayColumns []string          `yaml:"defaultDisplayColumns,omitempty"`
}

// Document is a parsed table document.
type Document struct {
	Path    string
	Header  Header
	Columns []*column.Node
	Fields  []string
	Rows    [][]string

	front []byte
	body  []byte
	index map[string]int
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// Parse parses document bytes.
func Parse(data []byte) (*Document, error) {
	var header Header
	body, err := frontmatter.Parse(bytes.NewReader(data), &header)
	if err != nil {
		return nil, fmt.Errorf("parse front matter: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(body))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	fields, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyBody
	}
	if err != nil {
		return nil, fmt.Errorf("parse header row: %w", err)
	}
	for i := range fields {
		fields[i] = column.NormalizePath(fields[i])
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse rows: %w", err)
	}

	doc := &Document{
		front:  splitFrontMatter(data),
		Header: header,
		Fields: fields,
		Rows:   rows,
		body:   body,
		index:  make(map[string]int, len(fields)),
	}
	for i, field := range fields {
		if _, ok := doc.index[field]; !ok {
			doc.index[field] = i
		}
	}

	if len(header.Columns) > 0 {
		doc.Columns = header.Columns
		column.Link(doc.Columns)
	} else {
		doc.Columns = column.Build(fields)
	}
	return doc, nil
}

// Title returns the document title, falling back to its path.
func (d *Document) Title() string {
	if d.Header.Title != "" {
		return d.Header.Title
	}
	return d.Path
}

// Controlled reports whether the document declares the displayed columns
// itself, making it the source of truth for the column controller.
func (d *Document) Controlled() bool {
	return d.Header.DisplayColumns != nil
}

// DisplayColumns returns the declared display columns, or nil.
func (d *Document) DisplayColumns() []string {
	if d.Header.DisplayColumns == nil {
		return nil
	}
	out := make([]string, len(*d.Header.DisplayColumns))
	copy(out, *d.Header.DisplayColumns)
	return out
}

// Cell returns the value of the given column in row, or "".
func (d *Document) Cell(row int, key string) string {
	if row < 0 || row >= len(d.Rows) {
		return ""
	}
	i, ok := d.index[key]
	if !ok || i >= len(d.Rows[row]) {
		return ""
	}
	return d.Rows[row][i]
}
