package boxes

// Unicode box-drawing glyphs emitted in place of ASCII border characters.
const (
	topLeft     = '┌'
	topRight    = '┐'
	bottomLeft  = '└'
	bottomRight = '┘'
	horizontal  = '─'
	vertical    = '│'
	junction    = '┼'
)

// isFill reports whether r may appear strictly between the two '+' delimiters
// of a horizontal border run. The junction glyph is included so a border that
// crosses an already-converted wall still matches.
func isFill(r rune) bool {
	return r == '-' || r == '+' || r == junction
}

// isCrossing reports whether r marks a point where another box's border
// crosses a vertical wall: either a raw '+' or a junction left behind by an
// earlier conversion on the same document.
func isCrossing(r rune) bool {
	return r == '+' || r == junction
}

// convertBorder rewrites one horizontal border run: the delimiters become the
// given corner glyphs, '-' becomes the horizontal wall, '+' becomes a
// junction, and anything else (including prior junctions) is kept as is.
func convertBorder(run string, left, right rune) string {
	r := []rune(run)
	if len(r) < 2 {
		return run
	}
	out := make([]rune, len(r))
	out[0] = left
	out[len(r)-1] = right
	for i, c := range r[1 : len(r)-1] {
		switch c {
		case '-':
			out[i+1] = horizontal
		case '+':
			out[i+1] = junction
		default:
			out[i+1] = c
		}
	}
	return string(out)
}
