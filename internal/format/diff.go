package format

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// How many unchanged lines to keep around each changed region.
const contextLines = 2

// FormatDiff renders a colored line-by-line diff between oldText and
// newText: removed lines in red with a '-' marker, added lines in green with
// '+', and unchanged lines dimmed, trimmed to a little context around each
// change. Lines wider than the terminal are clipped.
func FormatDiff(oldText, newText string) string {
	dmp := diffmatchpatch.New()
	a, b, lineArr := dmp.DiffLinesToChars(oldText, newText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lineArr)

	maxW := TermWidth() - 2
	var out []string

	for i, d := range diffs {
		lines := diffLines(d.Text)
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			for _, l := range lines {
				out = append(out, Red+"- "+clip(l, maxW)+Reset)
			}
		case diffmatchpatch.DiffInsert:
			for _, l := range lines {
				out = append(out, Green+"+ "+clip(l, maxW)+Reset)
			}
		case diffmatchpatch.DiffEqual:
			out = append(out, contextFor(lines, i == 0, i == len(diffs)-1, maxW)...)
		}
	}

	return strings.Join(out, "\n")
}

// contextFor trims an equal stretch down to the lines adjacent to the
// surrounding changes: up to contextLines after a preceding change and up to
// contextLines before a following one, with an elision marker in between.
func contextFor(lines []string, first, last bool, maxW int) []string {
	head, tail := contextLines, contextLines
	if first {
		head = 0
	}
	if last {
		tail = 0
	}

	var out []string
	if len(lines) <= head+tail {
		for _, l := range lines {
			out = append(out, Dim+"  "+clip(l, maxW)+Reset)
		}
		return out
	}

	for _, l := range lines[:head] {
		out = append(out, Dim+"  "+clip(l, maxW)+Reset)
	}
	hidden := len(lines) - head - tail
	word := "lines"
	if hidden == 1 {
		word = "line"
	}
	out = append(out, fmt.Sprintf("%s  … %d unchanged %s%s", Dim, hidden, word, Reset))
	for _, l := range lines[len(lines)-tail:] {
		out = append(out, Dim+"  "+clip(l, maxW)+Reset)
	}
	return out
}

// diffLines splits a diff chunk into lines, dropping the empty trailer a
// chunk ending in '\n' produces.
func diffLines(text string) []string {
	lines := strings.Split(text, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

func clip(s string, w int) string {
	r := []rune(s)
	if w > 0 && len(r) > w {
		return string(r[:w-1]) + "…"
	}
	return s
}
