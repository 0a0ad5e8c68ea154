package textbuf

import (
	"reflect"
	"testing"
)

func TestFromText(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLines []string
	}{
		{name: "single line", text: "hello", wantLines: []string{"hello"}},
		{name: "two lines", text: "a\nb", wantLines: []string{"a", "b"}},
		{name: "trailing newline keeps empty row", text: "a\nb\n", wantLines: []string{"a", "b", ""}},
		{name: "empty text is one empty row", text: "", wantLines: []string{""}},
		{name: "blank interior line", text: "a\n\nb", wantLines: []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromText(tt.text)
			if got := d.LineCount(); got != len(tt.wantLines) {
				t.Fatalf("LineCount() = %d, want %d", got, len(tt.wantLines))
			}
			if got := d.Lines(); !reflect.DeepEqual(got, tt.wantLines) {
				t.Errorf("Lines() = %q, want %q", got, tt.wantLines)
			}
			if got := d.Text(); got != tt.text {
				t.Errorf("Text() round trip = %q, want %q", got, tt.text)
			}
		})
	}
}

func TestDocumentCharAt(t *testing.T) {
	d := FromLines([]string{"abc", "de"})

	if c, ok := d.CharAt(1, 2); !ok || c != 'b' {
		t.Errorf("CharAt(1, 2) = %q, %v; want 'b', true", c, ok)
	}
	if _, ok := d.CharAt(2, 3); ok {
		t.Error("CharAt(2, 3) ok = true, want false for column past end")
	}
	if _, ok := d.CharAt(3, 1); ok {
		t.Error("CharAt(3, 1) ok = true, want false for missing row")
	}
	if _, ok := d.CharAt(0, 1); ok {
		t.Error("CharAt(0, 1) ok = true, want false for row zero")
	}
}

func TestDocumentEdits(t *testing.T) {
	d := FromLines([]string{"+---+", "|   |", "+---+"})

	d.ReplaceRange(1, 1, 5, "┌───┐")
	d.Replace(2, 1, "│")
	d.Replace(2, 5, "│")
	d.ReplaceRange(3, 1, 5, "└───┘")

	want := []string{"┌───┐", "│   │", "└───┘"}
	if got := d.Lines(); !reflect.DeepEqual(got, want) {
		t.Errorf("Lines() = %q, want %q", got, want)
	}
	if got := d.Line(2); got != "│   │" {
		t.Errorf("Line(2) = %q, want %q", got, "│   │")
	}
}

func TestDocumentSubstring(t *testing.T) {
	d := FromLines([]string{"xx +---+ yy"})
	if got := d.Substring(1, 4, 8); got != "+---+" {
		t.Errorf("Substring(1, 4, 8) = %q, want %q", got, "+---+")
	}
	if got := d.Substring(1, 10, 50); got != "yy" {
		t.Errorf("Substring clipped = %q, want %q", got, "yy")
	}
}
