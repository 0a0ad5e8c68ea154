package textbuf

import "strings"

// Document is an ordered sequence of Lines addressed by 1-based row number.
// A document is built once per conversion, edited in place, rendered, and
// discarded; nothing persists across conversions.
type Document struct {
	lines []*Line
}

// FromText splits text on line feeds. A trailing line feed yields a final
// empty row, so rendering with Text is an exact round trip.
func FromText(text string) *Document {
	return FromLines(strings.Split(text, "\n"))
}

// FromLines builds a Document from already-split lines.
func FromLines(lines []string) *Document {
	d := &Document{lines: make([]*Line, len(lines))}
	for i, s := range lines {
		d.lines[i] = NewLine(s)
	}
	return d
}

// LineCount returns the number of rows.
func (d *Document) LineCount() int {
	return len(d.lines)
}

// CharAt returns the rune at (row, col). The second return is false when
// the row does not exist or col is past the end of the row's line.
func (d *Document) CharAt(row, col int) (rune, bool) {
	if row < 1 || row > len(d.lines) {
		return 0, false
	}
	return d.lines[row-1].CharAt(col)
}

// Substring returns the text covering [startCol, endCol] on row, clipped to
// the line length. The row must exist.
func (d *Document) Substring(row, startCol, endCol int) string {
	return d.lines[row-1].Substring(startCol, endCol)
}

// ReplaceRange replaces [startCol, endCol] on row with text.
func (d *Document) ReplaceRange(row, startCol, endCol int, text string) {
	d.lines[row-1].ReplaceRange(startCol, endCol, text)
}

// Replace overwrites the single column col on row with text.
func (d *Document) Replace(row, col int, text string) {
	d.lines[row-1].Replace(col, text)
}

// Line returns the rendered content of row.
func (d *Document) Line(row int) string {
	return d.lines[row-1].String()
}

// Text renders the whole document, rows joined with line feeds.
func (d *Document) Text() string {
	rendered := d.Lines()
	return strings.Join(rendered, "\n")
}

// Lines renders every row in order.
func (d *Document) Lines() []string {
	out := make([]string, len(d.lines))
	for i, l := range d.lines {
		out[i] = l.String()
	}
	return out
}
