// Package hostbuf provides concrete text buffers behind the conversion
// engine's buffer interface: a file on disk and an in-memory slice.
package hostbuf

import (
	"fmt"
	"os"
	"strings"
)

// File is a buffer backed by a file on disk. Reading splits the file on line
// feeds; a file ending in a line feed yields a final empty line, so writing
// the same lines back reproduces the file byte for byte.
type File struct {
	Path string
}

// NewFile returns a buffer over the file at path.
func NewFile(path string) *File {
	return &File{Path: path}
}

// Lines reads the whole file and returns its lines.
func (f *File) Lines() ([]string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", f.Path, err)
	}
	return strings.Split(string(data), "\n"), nil
}

// SetLines replaces the file's content with the given lines, keeping the
// file's existing permissions when it already exists.
func (f *File) SetLines(lines []string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(f.Path); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(f.Path, []byte(strings.Join(lines, "\n")), mode); err != nil {
		return fmt.Errorf("write %s: %w", f.Path, err)
	}
	return nil
}

// Memory is an in-memory buffer, used by tests and anywhere lines are
// already in hand.
type Memory struct {
	lines []string
}

// NewMemory returns a buffer holding a copy of lines.
func NewMemory(lines []string) *Memory {
	m := &Memory{lines: make([]string, len(lines))}
	copy(m.lines, lines)
	return m
}

// Lines returns a copy of the buffer's current lines.
func (m *Memory) Lines() ([]string, error) {
	out := make([]string, len(m.lines))
	copy(out, m.lines)
	return out, nil
}

// SetLines replaces the buffer's content.
func (m *Memory) SetLines(lines []string) error {
	m.lines = make([]string, len(lines))
	copy(m.lines, lines)
	return nil
}
