package journal

import (
	"fmt"
	"path/filepath"
	"testing"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "journal.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func TestRecordAndRestore(t *testing.T) {
	j := openTestJournal(t)

	id, err := j.Record("/tmp/some/file.txt", "original content\n")
	if err != nil {
		t.Fatalf("Record() error: %v", err)
	}
	if id == "" {
		t.Error("Record() returned an empty ID")
	}

	content, ok, err := j.Restore("/tmp/some/file.txt")
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if !ok {
		t.Fatal("Restore() found nothing")
	}
	if content != "original content\n" {
		t.Errorf("Restore() = %q, want %q", content, "original content\n")
	}
}

func TestRestorePopsNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	for i := 1; i <= 3; i++ {
		if _, err := j.Record("/tmp/f.txt", fmt.Sprintf("version %d", i)); err != nil {
			t.Fatal(err)
		}
	}

	for want := 3; want >= 1; want-- {
		content, ok, err := j.Restore("/tmp/f.txt")
		if err != nil {
			t.Fatal(err)
		}
		if !ok {
			t.Fatalf("Restore() found nothing at version %d", want)
		}
		if content != fmt.Sprintf("version %d", want) {
			t.Errorf("Restore() = %q, want version %d", content, want)
		}
	}

	if _, ok, _ := j.Restore("/tmp/f.txt"); ok {
		t.Error("journal should be empty after restoring every snapshot")
	}
}

func TestRestoreUnknownFile(t *testing.T) {
	j := openTestJournal(t)

	_, ok, err := j.Restore("/tmp/never-recorded.txt")
	if err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if ok {
		t.Error("Restore() ok = true for a file never recorded")
	}
}

func TestRecordPrunesOldSnapshots(t *testing.T) {
	j := openTestJournal(t)

	total := keepPerFile + 5
	for i := 1; i <= total; i++ {
		if _, err := j.Record("/tmp/f.txt", fmt.Sprintf("version %d", i)); err != nil {
			t.Fatal(err)
		}
	}

	var count int
	if err := j.db.QueryRow(`SELECT COUNT(*) FROM snapshots`).Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != keepPerFile {
		t.Errorf("snapshot count = %d, want %d", count, keepPerFile)
	}

	// The survivors must be the newest ones.
	content, ok, err := j.Restore("/tmp/f.txt")
	if err != nil || !ok {
		t.Fatalf("Restore() = %v, %v", ok, err)
	}
	if want := fmt.Sprintf("version %d", total); content != want {
		t.Errorf("newest snapshot = %q, want %q", content, want)
	}
}

func TestSnapshotsArePerFile(t *testing.T) {
	j := openTestJournal(t)

	if _, err := j.Record("/tmp/a.txt", "content a"); err != nil {
		t.Fatal(err)
	}
	if _, err := j.Record("/tmp/b.txt", "content b"); err != nil {
		t.Fatal(err)
	}

	content, ok, err := j.Restore("/tmp/a.txt")
	if err != nil || !ok {
		t.Fatalf("Restore(a) = %v, %v", ok, err)
	}
	if content != "content a" {
		t.Errorf("Restore(a) = %q, want %q", content, "content a")
	}
}
