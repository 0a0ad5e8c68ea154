// Package boxes detects rectangular ASCII-art box outlines drawn with '+',
// '-' and '|' and rewrites their borders in place with Unicode box-drawing
// glyphs. Everything that is not a box border — text inside a box, text to
// the right of one, and '+'/'-' runs that never form a box — is left alone.
//
// Detection is by classification, not validation: a character run either
// looks like a box top with a wall beneath it and gets fully converted, or
// it is skipped. One known quirk is inherited deliberately: two stacked
// border rows with no wall rows between them (a "zero-height" box) pass the
// wall check, because the row below the top starts with '+', and convert.
package boxes

import "github.com/superhawk610/ascii-blocks/internal/textbuf"

// Convert rewrites every box outline in text, lines separated by line feeds.
// The output has exactly the same line count as the input; a trailing line
// feed is preserved.
func Convert(text string) string {
	doc := textbuf.FromText(text)
	rewrite(doc)
	return doc.Text()
}

// ConvertLines rewrites every box outline across an ordered sequence of
// lines, returning the converted lines. The input slice is not modified.
func ConvertLines(lines []string) []string {
	doc := textbuf.FromLines(lines)
	rewrite(doc)
	return doc.Lines()
}

// Buffer is the minimal surface of a host text buffer: a snapshot read of
// all lines and a full replacement write. Anything from an in-memory slice
// to an editor buffer can sit behind it.
type Buffer interface {
	Lines() ([]string, error)
	SetLines(lines []string) error
}

// ConvertBuffer reads buf once, converts, and writes the result back only
// when something changed. It reports whether a write happened.
func ConvertBuffer(buf Buffer) (bool, error) {
	lines, err := buf.Lines()
	if err != nil {
		return false, err
	}
	converted := ConvertLines(lines)
	changed := false
	for i := range lines {
		if converted[i] != lines[i] {
			changed = true
			break
		}
	}
	if !changed {
		return false, nil
	}
	return true, buf.SetLines(converted)
}
