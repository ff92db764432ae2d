package document

import (
	"strings"

	"github.com/kyaoi/colview/internal/column"
)

// Markdown renders the rows as a markdown table restricted to leaves.
func (d *Document) Markdown(leaves []*column.Node) string {
	var b strings.Builder
	if title := d.Header.Title; title != "" {
		b.WriteString("# ")
		b.WriteString(title)
		b.WriteString("\n\n")
	}
	if len(leaves) == 0 {
		b.WriteString("_No columns selected._\n")
		return b.String()
	}

	b.WriteString("|")
	for _, leaf := range leaves {
		b.WriteString(" ")
		b.WriteString(escapeCell(headerLabel(leaf)))
		b.WriteString(" |")
	}
	b.WriteString("\n|")
	for range leaves {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")

	for row := range d.Rows {
		b.WriteString("|")
		for _, leaf := range leaves {
			b.WriteString(" ")
			b.WriteString(escapeCell(d.Cell(row, leaf.Key)))
			b.WriteString(" |")
		}
		b.WriteString("\n")
	}
	return b.String()
}

// Records returns the header labels and cell values for leaves.
func (d *Document) Records(leaves []*column.Node) ([]string, [][]string) {
	header := make([]string, len(leaves))
	for i, leaf := range leaves {
		header[i] = headerLabel(leaf)
	}
	rows := make([][]string, len(d.Rows))
	for row := range d.Rows {
		values := make([]string, len(leaves))
		for i, leaf := range leaves {
			values[i] = d.Cell(row, leaf.Key)
		}
		rows[row] = values
	}
	return header, rows
}

func headerLabel(leaf *column.Node) string {
	if leaf.Parent == nil {
		return leaf.Label()
	}
	return strings.ReplaceAll(leaf.Path(), "/", " / ")
}

func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
