package textbuf

import "strings"

// Line holds one logical line of text as an ordered sequence of string
// segments whose concatenation is the line's content. Keeping the line
// segmented means a replacement only touches the segments it overlaps,
// instead of rebuilding the whole line string — a line crossed by several
// box walls is edited many times per conversion.
//
// Columns are 1-based, inclusive, and measured in runes, not bytes.
type Line struct {
	segs []string
}

// NewLine creates a Line from its full text as a single initial segment. An
// empty line is a valid line with one empty segment.
func NewLine(text string) *Line {
	return &Line{segs: []string{text}}
}

// Len returns the line length in runes.
func (l *Line) Len() int {
	n := 0
	for _, s := range l.segs {
		n += len([]rune(s))
	}
	return n
}

// CharAt returns the rune at col. The second return is false when col is
// past the end of the line (or not positive).
func (l *Line) CharAt(col int) (rune, bool) {
	if col < 1 {
		return 0, false
	}
	pos := 0
	for _, s := range l.segs {
		r := []rune(s)
		if col <= pos+len(r) {
			return r[col-pos-1], true
		}
		pos += len(r)
	}
	return 0, false
}

// Substring returns the text covering [startCol, endCol], clipped to the
// line length when endCol runs past it. startCol must be <= endCol.
func (l *Line) Substring(startCol, endCol int) string {
	var sb strings.Builder
	pos := 0
	for _, s := range l.segs {
		r := []rune(s)
		segStart := pos + 1
		segEnd := pos + len(r)
		pos = segEnd
		if segEnd < startCol {
			continue
		}
		if segStart > endCol {
			break
		}
		from := 0
		if startCol > segStart {
			from = startCol - segStart
		}
		to := len(r)
		if endCol < segEnd {
			to = endCol - segStart + 1
		}
		sb.WriteString(string(r[from:to]))
	}
	return sb.String()
}

// ReplaceRange replaces the runes in [startCol, endCol] with text, which may
// differ in length from the replaced span. Callers must keep the range
// within the line; the scanner only replaces spans it has already read.
//
// When the range spans several segments they are merged into one first, so
// the split below always operates on a single segment. The containing
// segment is then split into up to three parts: the runes before startCol,
// the replacement, and the runes after endCol (empty ends are dropped).
func (l *Line) ReplaceRange(startCol, endCol int, text string) {
	first, firstStart := l.segmentAt(startCol)
	if first < 0 {
		return
	}
	last, _ := l.segmentAt(endCol)
	if last < 0 {
		last = len(l.segs) - 1
	}

	if last > first {
		merged := strings.Join(l.segs[first:last+1], "")
		l.segs = append(l.segs[:first+1], l.segs[last+1:]...)
		l.segs[first] = merged
	}

	r := []rune(l.segs[first])
	before := string(r[:startCol-firstStart])
	var after string
	if tail := endCol - firstStart + 1; tail < len(r) {
		after = string(r[tail:])
	}

	parts := make([]string, 0, 3)
	if before != "" {
		parts = append(parts, before)
	}
	if text != "" {
		parts = append(parts, text)
	}
	if after != "" {
		parts = append(parts, after)
	}

	segs := make([]string, 0, len(l.segs)+len(parts)-1)
	segs = append(segs, l.segs[:first]...)
	segs = append(segs, parts...)
	segs = append(segs, l.segs[first+1:]...)
	if len(segs) == 0 {
		segs = []string{""}
	}
	l.segs = segs
}

// Replace overwrites the single column col with text.
func (l *Line) Replace(col int, text string) {
	l.ReplaceRange(col, col, text)
}

// String returns the line's full content.
func (l *Line) String() string {
	if len(l.segs) == 1 {
		return l.segs[0]
	}
	return strings.Join(l.segs, "")
}

// segmentAt returns the index of the segment containing col and the column
// at which that segment starts, or (-1, 0) when col is past the end.
func (l *Line) segmentAt(col int) (int, int) {
	pos := 0
	for i, s := range l.segs {
		n := len([]rune(s))
		if col <= pos+n {
			return i, pos + 1
		}
		pos += n
	}
	return -1, 0
}
