package boxes

import "github.com/superhawk610/ascii-blocks/internal/textbuf"

// Minimum border run length: '+' + at least three fill runes + '+'. Shorter
// runs like "++" and "+-+" are too small to be a box top.
const minRunLen = 5

// rewrite walks the document top to bottom converting every box outline it
// finds. Edits happen in place, so later candidates see the glyphs earlier
// conversions left behind.
func rewrite(doc *textbuf.Document) {
	for row := 1; row <= doc.LineCount(); row++ {
		scanRow(doc, row)
	}
}

// scanRow finds each border run on row in turn. The row is re-rendered after
// every conversion and the search resumes past the previous run's end column,
// so a rewritten span is never matched twice.
func scanRow(doc *textbuf.Document, row int) {
	offset := 0
	for {
		view := []rune(doc.Line(row))[offset:]
		s, e := findRun(view)
		if s < 0 {
			return
		}
		startCol := offset + s + 1
		endCol := offset + e + 1
		convertBox(doc, row, startCol, endCol)
		offset += e + 1
	}
}

// findRun locates the leftmost horizontal border run in r and returns its
// inclusive rune index bounds, or (-1, -1). A run is maximal: it opens at a
// '+', spans fill runes, and closes at the last '+' at least minRunLen-1
// positions along.
func findRun(r []rune) (int, int) {
	for i := 0; i < len(r); i++ {
		if r[i] != '+' {
			continue
		}
		j := i + 1
		for j < len(r) && isFill(r[j]) {
			j++
		}
		for m := j - 1; m >= i+minRunLen-1; m-- {
			if r[m] == '+' {
				return i, m
			}
		}
		// No closing '+' far enough out; nothing inside this fill run can
		// open a longer match, so skip past it entirely.
		i = j - 1
	}
	return -1, -1
}

// convertBox checks whether the run at row, columns [s, e], is a genuine box
// top and if so rewrites the whole outline: top border, both walls row by
// row, then the bottom border. A run with nothing box-like beneath its start
// column is left untouched.
func convertBox(doc *textbuf.Document, row, s, e int) {
	below, ok := doc.CharAt(row+1, s)
	if !ok || (below != '|' && !isCrossing(below)) {
		return
	}

	doc.ReplaceRange(row, s, e, convertBorder(doc.Substring(row, s, e), topLeft, topRight))

	// Walk down the left wall. A crossing character is still "inside" the box
	// when a wall continues beneath it, which lets the loop run through
	// intersections with other boxes and stop on this box's own bottom row.
	cur := row + 1
	for {
		c, ok := doc.CharAt(cur, s)
		if !ok {
			break
		}
		if c != '|' {
			if !isCrossing(c) {
				break
			}
			next, ok := doc.CharAt(cur+1, s)
			if !ok || next != '|' {
				break
			}
		}
		rewriteWall(doc, cur, s)
		rewriteWall(doc, cur, e)
		cur++
	}

	// The loop stops on the bottom border row. A top whose walls run off the
	// end of the document has no bottom row to rewrite.
	if cur <= doc.LineCount() {
		doc.ReplaceRange(cur, s, e, convertBorder(doc.Substring(cur, s, e), bottomLeft, bottomRight))
	}
}

// rewriteWall replaces the single character at (row, col) with the vertical
// wall glyph, or with a junction when another box's border crosses here.
func rewriteWall(doc *textbuf.Document, row, col int) {
	c, ok := doc.CharAt(row, col)
	if !ok {
		return
	}
	if c == '|' {
		doc.Replace(row, col, string(vertical))
	} else {
		doc.Replace(row, col, string(junction))
	}
}
