package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// cellSeparator divides the cells of a rendered table row.
const cellSeparator = "│"

// cellMatch is a hit in the rendered table. column is the header of the
// cell the hit falls in, or empty outside table rows.
type cellMatch struct {
	line   int
	column string
}

// tableSearch is the last query and its hits, in reading order.
type tableSearch struct {
	query   string
	matches []cellMatch
	index   int
}

func newTableSearch() tableSearch {
	return tableSearch{index: -1}
}

func (s *tableSearch) current() (cellMatch, bool) {
	if s.index < 0 || s.index >= len(s.matches) {
		return cellMatch{}, false
	}
	return s.matches[s.index], true
}

// step moves delta matches forward, wrapping around the table.
func (s *tableSearch) step(delta int) bool {
	n := len(s.matches)
	if n == 0 {
		return false
	}
	if s.index < 0 {
		s.index = 0
		if delta < 0 {
			s.index = n - 1
		}
		return true
	}
	s.index = ((s.index+delta)%n + n) % n
	return true
}

// retarget replaces the matches and selects the one closest to prev,
// preferring hits in the same column.
func (s *tableSearch) retarget(matches []cellMatch, prev cellMatch, hadPrev bool) {
	s.matches = matches
	switch {
	case len(matches) == 0:
		s.index = -1
	case !hadPrev:
		s.index = 0
	default:
		s.index = closestMatch(matches, prev)
	}
}

func (s tableSearch) status() string {
	if s.query == "" {
		return ""
	}
	hit, ok := s.current()
	if !ok {
		return fmt.Sprintf("/%s (0/0)", s.query)
	}
	line := fmt.Sprintf("/%s (%d/%d)", s.query, s.index+1, len(s.matches))
	if hit.column != "" {
		line += " in " + hit.column
	}
	return line
}

func (m *Model) enterSearchMode() tea.Cmd {
	m.searchActive = true
	m.pendingKey = ""
	m.searchInput.SetValue(m.search.query)
	m.searchInput.CursorEnd()
	return m.searchInput.Focus()
}

func (m *Model) exitSearchMode() {
	m.searchActive = false
	m.searchInput.Blur()
}

func (m *Model) clearSearch() {
	m.search = newTableSearch()
	m.err = nil
}

func (m *Model) searchStatusLine() string {
	return m.search.status()
}

func (m *Model) performSearch(query string) {
	m.search = newTableSearch()
	m.search.query = strings.TrimSpace(query)
	m.search.retarget(m.findMatches(), cellMatch{}, false)
	m.afterSearch()
}

func (m *Model) stepSearch(delta int) {
	if m.search.step(delta) {
		m.err = nil
		m.gotoSearchMatch()
	}
}

func (m *Model) gotoSearchMatch() {
	hit, ok := m.search.current()
	if !ok {
		return
	}
	totalLines := strings.Count(m.renderedContent, "\n") + 1
	maxOffset := max(totalLines-m.contentVP.Height, 0)
	m.contentVP.SetYOffset(clamp(hit.line, 0, maxOffset))
}

// onContentChanged searches the re-rendered table again and stays near the
// previous hit, in the same column when it is still shown.
func (m *Model) onContentChanged() {
	if m.search.query == "" {
		return
	}
	prev, ok := m.search.current()
	m.search.retarget(m.findMatches(), prev, ok)
	m.afterSearch()
}

func (m *Model) afterSearch() {
	if len(m.search.matches) == 0 {
		m.err = fmt.Errorf("no match for %q", m.search.query)
		return
	}
	m.err = nil
	m.gotoSearchMatch()
}

func (m *Model) findMatches() []cellMatch {
	headers, _ := m.doc.Records(m.ctl.Visible())
	return findCellMatches(m.renderedContent, m.search.query, headers)
}

// findCellMatches returns every case-insensitive occurrence of query in the
// rendered table, with the header of the cell it falls in.
func findCellMatches(content, query string, headers []string) []cellMatch {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" || content == "" {
		return nil
	}

	var matches []cellMatch
	for i, line := range strings.Split(strings.ToLower(ansi.Strip(content)), "\n") {
		for offset := 0; ; {
			pos := strings.Index(line[offset:], needle)
			if pos == -1 {
				break
			}
			pos += offset
			matches = append(matches, cellMatch{line: i, column: columnAt(line, pos, headers)})
			offset = pos + len(needle)
		}
	}
	return matches
}

// columnAt maps a position in a table row to its column header by counting
// the separators before it.
func columnAt(line string, pos int, headers []string) string {
	if !strings.Contains(line, cellSeparator) {
		return ""
	}
	cell := strings.Count(line[:pos], cellSeparator)
	if strings.HasPrefix(strings.TrimSpace(line), cellSeparator) {
		cell--
	}
	if cell < 0 || cell >= len(headers) {
		return ""
	}
	return headers[cell]
}

func closestMatch(matches []cellMatch, prev cellMatch) int {
	best := -1
	for i, hit := range matches {
		if best >= 0 && !closer(hit, matches[best], prev) {
			continue
		}
		best = i
	}
	return best
}

func closer(a, b, prev cellMatch) bool {
	sameA, sameB := a.column == prev.column, b.column == prev.column
	if sameA != sameB {
		return sameA
	}
	return absInt(a.line-prev.line) < absInt(b.line-prev.line)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
