package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/superhawk610/ascii-blocks/internal/journal"
)

// RunUndo handles the "undo" subcommand: restore each file's most recent
// pre-rewrite snapshot from the journal.
func RunUndo(args []string) {
	fs := flag.NewFlagSet("undo", flag.ExitOnError)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: ascii-blocks undo <file ...>")
	}
	fs.Parse(args)

	files := fs.Args()
	if len(files) == 0 {
		fs.Usage()
		os.Exit(1)
	}

	path, err := journal.DefaultPath()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	j, err := journal.Open(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
	defer j.Close()

	for _, file := range files {
		if err := undoFile(j, file); err != nil {
			fmt.Fprintln(os.Stderr, "Error:", err)
			os.Exit(1)
		}
	}
}

// undoFile writes the newest journal snapshot for path back to disk.
func undoFile(j *journal.Journal, path string) error {
	content, ok, err := j.Restore(path)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no snapshot recorded for %s", path)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("restore %s: %w", path, err)
	}
	fmt.Println("Restored", path)
	return nil
}
