package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/kyaoi/colview/internal/column"
	"github.com/kyaoi/colview/internal/controller"
	"github.com/kyaoi/colview/internal/document"
	"github.com/kyaoi/colview/internal/logger"
)

func newPrintCommand() *cobra.Command {
	var (
		columns []string
		format  string
	)
	cmd := &cobra.Command{
		Use:   "print [file|dir]",
		Short: "Print the table with the displayed columns",
		Long: `Print renders the document's table using the columns it would show in
the viewer. --columns replaces the displayed columns for this run only.

Example:
  colview print people.table.md
  colview print people.csv --columns id,email --format markdown`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := LoadDocument(targetArg(args))
			if err != nil {
				return err
			}
			var override []string
			if cmd.Flags().Changed("columns") {
				override = columns
			}
			return printTable(cmd.OutOrStdout(), doc, override, format)
		},
	}
	cmd.Flags().StringSliceVar(&columns, "columns", nil, "comma separated column keys to show")
	cmd.Flags().StringVar(&format, "format", "table", "output format (table|markdown|csv)")
	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"table", "markdown", "csv"}, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

// newController builds a read-only controller whose applied value is
// override, or what the document would show when override is nil.
func newController(doc *document.Document, override []string) *controller.Controller {
	initial := override
	if initial == nil {
		initial = doc.DisplayColumns()
	}
	if initial == nil {
		initial = doc.Header.DefaultDisplayColumns
	}
	return controller.New(controller.Props{
		Columns:               doc.Columns,
		Config:                doc.Header.Controller,
		DefaultDisplayColumns: initial,
	})
}

func printTable(w io.Writer, doc *document.Document, override []string, format string) error {
	for _, key := range override {
		if column.Find(doc.Columns, key) == nil {
			return fmt.Errorf("unknown column %q", key)
		}
	}
	ctl := newController(doc, override)

	leaves := ctl.Visible()
	if len(leaves) == 0 {
		_, _ = fmt.Fprintln(w, "(no columns selected)")
		return nil
	}
	header, rows := doc.Records(leaves)
	logger.Debug("printing table", "path", doc.Path, "format", format, "columns", len(leaves), "rows", len(rows))

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if doc.Header.Title != "" && format == "table" {
		t.SetTitle(doc.Header.Title)
	}
	t.AppendHeader(toRow(header))
	for _, row := range rows {
		t.AppendRow(toRow(row))
	}

	switch strings.ToLower(format) {
	case "table", "":
		t.Render()
	case "md", "markdown":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

func newKeysCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keys [file|dir]",
		Short: "List column keys and whether they can be toggled",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := LoadDocument(targetArg(args))
			if err != nil {
				return err
			}
			printKeys(cmd.OutOrStdout(), doc)
			return nil
		},
	}
}

func printKeys(w io.Writer, doc *document.Document) {
	ctl := newController(doc, nil)
	shown := column.Set(ctl.DisplayColumns())

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Key", "Column", "Status", "Shown"})
	count := 0
	for _, opt := range ctl.Options() {
		status := "enabled"
		if opt.Disabled {
			status = "locked"
		}
		mark := "no"
		if _, ok := shown[opt.Value]; ok {
			mark = "yes"
			count++
		}
		label := strings.Repeat("  ", opt.Depth) + opt.Label
		t.AppendRow(table.Row{opt.Value, label, status, mark})
	}
	t.AppendFooter(table.Row{"", fmt.Sprintf("%d columns", len(ctl.Keys())), "", fmt.Sprintf("%d shown", count)})
	t.Render()
}

func toRow(values []string) table.Row {
	row := make(table.Row, len(values))
	for i, v := range values {
		row[i] = v
	}
	return row
}
