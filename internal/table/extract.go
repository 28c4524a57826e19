package table

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// headerRepeatClass marks rows that duplicate the column header inside the
// body of long tables. The same class appears on legitimate header rows
// inside <thead>, so section context decides whether a row is dropped.
const headerRepeatClass = "thead"

// ReplaceCommentMarkers replaces every literal comment delimiter with a
// single space. Basketball-Reference wraps table markup in comments to
// defeat naive scrapers; deleting the delimiters outright could fuse two
// adjacent tokens across a comment boundary, so each marker becomes
// whitespace instead.
func ReplaceCommentMarkers(doc string) string {
	doc = strings.ReplaceAll(doc, "<!--", " ")
	return strings.ReplaceAll(doc, "-->", " ")
}

// Extract scans doc for the table whose id attribute equals tableID and
// returns its header row and data rows.
//
// It returns ErrNotFound if no such table appears, and ErrEmpty if the
// table exists but no row matches the header width.
func Extract(doc, tableID string) (Table, error) {
	doc = ReplaceCommentMarkers(doc)

	s := newScanner(tableID)
	s.run(doc)

	// Fallback: the id may only appear as text at scan time (for example
	// when the table markup sits inside a script or escaped region). Slice
	// out the nearest <table>...</table> around the id token and re-scan.
	if len(s.headers) == 0 {
		if snippet, ok := sliceAroundID(doc, tableID); ok {
			s = newScanner(tableID)
			s.run(snippet)
		}
	}
	if len(s.headers) == 0 {
		return Table{}, fmt.Errorf("table %q: %w", tableID, ErrNotFound)
	}

	// Drop rows that do not line up with the header (merged-cell dividers,
	// ad rows). This runs once, after the scan.
	rows := make([][]string, 0, len(s.rows))
	for _, row := range s.rows {
		if len(row) == len(s.headers) {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return Table{}, fmt.Errorf("table %q: %w", tableID, ErrEmpty)
	}

	return Table{Headers: s.headers, Rows: rows}, nil
}

// sliceAroundID locates the textual occurrence of the id attribute and
// slices from the nearest preceding <table to the following </table>.
func sliceAroundID(doc, tableID string) (string, bool) {
	idx := strings.Index(doc, `id="`+tableID+`"`)
	if idx < 0 {
		return "", false
	}
	start := strings.LastIndex(doc[:idx], "<table")
	if start < 0 {
		return "", false
	}
	end := strings.Index(doc[idx:], "</table>")
	if end < 0 {
		return "", false
	}
	return doc[start : idx+end+len("</table>")], true
}

// scanState is the position of the scanner within the target table.
type scanState int

const (
	stateSeeking scanState = iota // target table not yet opened
	stateInTable                  // between rows
	stateInRow                    // between cells
	stateInCell                   // capturing cell text
)

// section is the part of the table the scanner is currently inside.
type section int

const (
	sectionNone section = iota
	sectionHead
	sectionBody
)

// scanner is the transient state machine for one extraction pass. The
// first open/close pair of the matching table defines the scope; nested
// tables are not handled and later tables on the page are ignored.
type scanner struct {
	targetID string

	state   scanState
	section section
	skipRow bool
	done    bool

	headers []string
	rows    [][]string
	row     []string
	cell    strings.Builder
}

func newScanner(tableID string) *scanner {
	return &scanner{targetID: tableID}
}

// run feeds doc through the tokenizer and applies the transition function
// until the target table closes or input ends.
func (s *scanner) run(doc string) {
	z := html.NewTokenizer(strings.NewReader(doc))
	for !s.done {
		switch z.Next() {
		case html.ErrorToken:
			return
		case html.StartTagToken, html.SelfClosingTagToken:
			t := z.Token()
			s.startTag(t.Data, t.Attr)
		case html.EndTagToken:
			t := z.Token()
			s.endTag(t.Data)
		case html.TextToken:
			if s.state == stateInCell {
				s.cell.Write(z.Text())
			}
		}
	}
}

// startTag handles an opening (or self-closing) element.
func (s *scanner) startTag(name string, attrs []html.Attribute) {
	if s.state == stateSeeking {
		if name == "table" && attrValue(attrs, "id") == s.targetID {
			s.state = stateInTable
		}
		return
	}
	switch name {
	case "thead":
		s.section = sectionHead
	case "tbody":
		s.section = sectionBody
	case "tr":
		// A header-repeat row only counts as noise inside the body;
		// thead rows legitimately reuse the marker class.
		s.skipRow = s.section == sectionBody && hasClass(attrs, headerRepeatClass)
		s.row = nil
		s.state = stateInRow
	case "th", "td":
		if s.state != stateInRow || s.skipRow {
			return
		}
		s.cell.Reset()
		s.state = stateInCell
	case "br":
		// A line break separates two visual fragments; keep a boundary
		// so they do not concatenate.
		if s.state == stateInCell {
			s.cell.WriteByte(' ')
		}
	}
}

// endTag handles a closing element.
func (s *scanner) endTag(name string) {
	if s.state == stateSeeking {
		return
	}
	switch name {
	case "table":
		s.done = true
	case "thead", "tbody":
		s.section = sectionNone
	case "tr":
		if !s.skipRow && len(s.row) > 0 {
			switch s.section {
			case sectionHead:
				// Only the last header row scanned is kept.
				s.headers = s.row
			case sectionBody:
				s.rows = append(s.rows, s.row)
			}
		}
		s.row = nil
		s.skipRow = false
		s.state = stateInTable
	case "th", "td":
		if s.state == stateInCell {
			s.row = append(s.row, strings.TrimSpace(s.cell.String()))
			s.cell.Reset()
			s.state = stateInRow
		}
	}
}

func attrValue(attrs []html.Attribute, key string) string {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(attrs []html.Attribute, class string) bool {
	for _, c := range strings.Fields(attrValue(attrs, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
