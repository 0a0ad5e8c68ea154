package cmd

import (
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/superhawk610/ascii-blocks/internal/boxes"
	"github.com/superhawk610/ascii-blocks/internal/format"
	"github.com/superhawk610/ascii-blocks/internal/hostbuf"
	"github.com/superhawk610/ascii-blocks/internal/journal"
)

// convertMode selects what RunConvert does with a changed file.
type convertMode int

const (
	modePrint convertMode = iota // converted text to stdout
	modeWrite                    // rewrite the file in place
	modeDiff                     // preview the change as a diff
	modeCheck                    // list files that would change
)

// RunConvert handles the default mode: convert boxes in files or stdin.
func RunConvert(args []string) {
	fs := flag.NewFlagSet("ascii-blocks", flag.ExitOnError)

	write := fs.Bool("w", false, "Rewrite files in place (restorable with 'ascii-blocks undo')")
	showDiff := fs.Bool("diff", false, "Preview changes as a diff, don't write anything")
	check := fs.Bool("check", false, "List files whose boxes would be converted; exit 1 if any")
	noUndo := fs.Bool("no-undo", false, "With -w: skip the undo journal snapshot")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, `ascii-blocks: rewrite ASCII box diagrams with Unicode box-drawing glyphs.

Usage:
    ascii-blocks [file ...]            # convert, print to stdout
    ascii-blocks -w <file ...>         # rewrite files in place
    ascii-blocks --diff <file ...>     # preview changes without writing
    ascii-blocks --check <file ...>    # exit 1 if any file would change
    ascii-blocks undo <file ...>       # restore the last in-place rewrite
    ascii-blocks < in.txt > out.txt    # filter mode (e.g. :%%!ascii-blocks)

Flags:
`)
		fs.PrintDefaults()
	}
	fs.Parse(args)

	mode := modePrint
	switch {
	case *showDiff:
		mode = modeDiff
	case *check:
		mode = modeCheck
	case *write:
		mode = modeWrite
	}

	files := fs.Args()
	if len(files) == 0 {
		if mode == modeWrite || mode == modeCheck {
			fmt.Fprintln(os.Stderr, "Error: -w and --check need at least one file")
			os.Exit(1)
		}
		if err := convertStdin(os.Stdout, mode); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		return
	}

	var j *journal.Journal
	if mode == modeWrite && !*noUndo {
		path, err := journal.DefaultPath()
		if err == nil {
			j, err = journal.Open(path)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening undo journal: %v\n", err)
			os.Exit(1)
		}
		defer j.Close()
	}

	anyChanged := false
	for _, file := range files {
		changed, err := convertFile(os.Stdout, file, mode, j)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
		anyChanged = anyChanged || changed
	}
	if mode == modeCheck && anyChanged {
		os.Exit(1)
	}
}

// convertFile converts one file according to mode, reporting whether the
// conversion changed anything. In write mode the original content is
// journaled (when j is non-nil) before the file is touched.
func convertFile(out io.Writer, path string, mode convertMode, j *journal.Journal) (bool, error) {
	buf := hostbuf.NewFile(path)
	before, err := buf.Lines()
	if err != nil {
		return false, err
	}
	after := boxes.ConvertLines(before)
	changed := !slices.Equal(before, after)

	switch mode {
	case modeDiff:
		if changed {
			fmt.Fprintf(out, "%s%s%s\n", format.Bold, path, format.Reset)
			fmt.Fprintln(out, format.FormatDiff(strings.Join(before, "\n"), strings.Join(after, "\n")))
		}
	case modeCheck:
		if changed {
			fmt.Fprintln(out, path)
		}
	case modeWrite:
		if changed {
			if j != nil {
				if _, err := j.Record(path, strings.Join(before, "\n")); err != nil {
					return false, fmt.Errorf("journal %s: %w", path, err)
				}
			}
			if err := buf.SetLines(after); err != nil {
				return false, err
			}
		}
	default:
		io.WriteString(out, strings.Join(after, "\n"))
	}
	return changed, nil
}

// convertStdin runs filter mode: stdin through the converter to stdout, or
// to a diff preview with --diff.
func convertStdin(out io.Writer, mode convertMode) error {
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("read stdin: %w", err)
	}
	text := string(data)
	converted := boxes.Convert(text)
	if mode == modeDiff {
		if converted != text {
			fmt.Fprintln(out, format.FormatDiff(text, converted))
		}
		return nil
	}
	_, err = io.WriteString(out, converted)
	return err
}
