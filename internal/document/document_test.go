package document

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kyaoi/colview/internal/column"
	"github.com/kyaoi/colview/internal/controller"
)

const sampleDoc = `---
title: People
columns:
  - key: id
    title: ID
  - title: Contact
    children:
      - key: email
        title: Email
      - key: phone
columnController:
  fields: [email, phone]
  displayType: fixed-width
  dialogProps:
    title: Pick columns
displayColumns: [id, email]
---
id,email,phone
1,ann@example.com,555-0101
2,bob@example.com,"555|0102"
`

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	doc, err := Load(writeDoc(t, "people.table.md", sampleDoc))
	require.NoError(t, err)

	assert.Equal(t, "People", doc.Title())
	assert.Equal(t, []string{"id", "email", "phone"}, doc.Fields)
	assert.Len(t, doc.Rows, 2)
	assert.Equal(t, []string{"id", "email", "phone"}, column.Keys(doc.Columns))
	assert.Equal(t, "Contact/Email", column.Find(doc.Columns, "email").Path())

	assert.Equal(t, []string{"email", "phone"}, doc.Header.Controller.Fields)
	assert.Equal(t, controller.DisplayFixedWidth, doc.Header.Controller.DisplayType)
	assert.Equal(t, "Pick columns", doc.Header.Controller.Dialog.Title)

	assert.True(t, doc.Controlled())
	assert.Equal(t, []string{"id", "email"}, doc.DisplayColumns())

	assert.Equal(t, "bob@example.com", doc.Cell(1, "email"))
	assert.Empty(t, doc.Cell(5, "email"))
	assert.Empty(t, doc.Cell(0, "missing"))
}

func TestParse_PlainCSVBuildsTree(t *testing.T) {
	doc, err := Parse([]byte("id,contact/email,contact/phone\n1,a@x,1\n"))
	require.NoError(t, err)

	assert.False(t, doc.Controlled())
	assert.Nil(t, doc.DisplayColumns())
	require.Len(t, doc.Columns, 2)
	assert.Empty(t, doc.Columns[1].Key)
	assert.Equal(t, []string{"id", "contact/email", "contact/phone"}, column.Keys(doc.Columns))
	assert.Equal(t, "a@x", doc.Cell(0, "contact/email"))
}

func TestParse_EmptyBody(t *testing.T) {
	_, err := Parse([]byte("---\ntitle: x\n---\n"))
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestMarkdown(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	leaves := column.Visible(doc.Columns, column.Set([]string{"id", "phone"}))
	md := doc.Markdown(leaves)

	assert.Contains(t, md, "# People")
	assert.Contains(t, md, "| ID | Contact / phone |")
	assert.Contains(t, md, "| --- | --- |")
	assert.Contains(t, md, `| 2 | 555\|0102 |`)

	assert.Contains(t, doc.Markdown(nil), "_No columns selected._")
}

func TestRecords(t *testing.T) {
	doc, err := Parse([]byte(sampleDoc))
	require.NoError(t, err)

	header, rows := doc.Records(column.Visible(doc.Columns, column.Set([]string{"email"})))
	assert.Equal(t, []string{"Contact / Email"}, header)
	assert.Equal(t, [][]string{{"ann@example.com"}, {"bob@example.com"}}, rows)
}

func TestSaveDisplayColumns(t *testing.T) {
	path := writeDoc(t, "people.table.md", sampleDoc)

	require.NoError(t, SaveDisplayColumns(path, []string{"phone"}))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"phone"}, doc.DisplayColumns())
	assert.Equal(t, []string{"id", "email", "phone"}, column.Keys(doc.Columns))
	assert.Equal(t, []string{"email", "phone"}, doc.Header.Controller.Fields)
	assert.Len(t, doc.Rows, 2)
	assert.Equal(t, "555|0102", doc.Cell(1, "phone"))
}

func TestSaveDisplayColumns_EmptyStaysControlled(t *testing.T) {
	path := writeDoc(t, "people.table.md", sampleDoc)

	require.NoError(t, SaveDisplayColumns(path, nil))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.True(t, doc.Controlled())
	assert.Empty(t, doc.DisplayColumns())
}

const exportDoc = `---
# exported nightly, edit displayColumns only
title: Leads
source: crm-export
columnController:
  fields: []
displayColumns: [id] # shown in the viewer
---
id,name
1,Ann
`

func TestSaveDisplayColumns_KeepsFrontMatter(t *testing.T) {
	path := writeDoc(t, "leads.table.md", exportDoc)

	require.NoError(t, SaveDisplayColumns(path, []string{"id", "name"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "# exported nightly, edit displayColumns only")
	assert.Contains(t, text, "source: crm-export")
	assert.Contains(t, text, "fields: []")
	assert.Contains(t, text, "[id, name]")
	assert.Contains(t, text, "# shown in the viewer")
	assert.True(t, strings.HasSuffix(text, "---\nid,name\n1,Ann\n"))

	doc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"id", "name"}, doc.DisplayColumns())
	assert.NotNil(t, doc.Header.Controller.Fields)
	assert.Empty(t, doc.Header.Controller.Fields)
}

func TestEncode_AddsDisplayColumns(t *testing.T) {
	doc, err := Parse([]byte("---\ntitle: Plain\n---\nid\n1\n"))
	require.NoError(t, err)
	doc.SetDisplayColumns([]string{"id"})

	data, err := doc.Encode()
	require.NoError(t, err)
	assert.Equal(t, "---\ntitle: Plain\ndisplayColumns: [id]\n---\nid\n1\n", string(data))

	doc, err = Parse([]byte("id\n1\n"))
	require.NoError(t, err)
	doc.SetDisplayColumns(nil)
	data, err = doc.Encode()
	require.NoError(t, err)
	reparsed, err := Parse(data)
	require.NoError(t, err)
	assert.True(t, reparsed.Controlled())
	assert.Equal(t, []string{"id"}, reparsed.Fields)
}

func TestParse_NormalizesHeaderPaths(t *testing.T) {
	doc, err := Parse([]byte("id, contact / email/\n1,a@x\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "contact/email"}, column.Keys(doc.Columns))
	assert.Equal(t, "a@x", doc.Cell(0, "contact/email"))
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"b.csv", "A.table.md", "notes.md", "sub/c.CSV", ".git/x.csv"} {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("id\n"), 0o644))
	}

	found, err := Discover(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"A.table.md", "b.csv", "sub/c.CSV"}, found)
}
