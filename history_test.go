package lineedit

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestHistoryAdd(t *testing.T) {
	tests := []struct {
		name   string
		maxLen int
		lines  []string
		want   []string
	}{
		{"In order", 10, []string{"a", "b", "c"}, []string{"a", "b", "c"}},
		{"Consecutive duplicates collapse", 10, []string{"a", "a", "b", "b", "b"}, []string{"a", "b"}},
		{"Non-consecutive duplicates kept", 10, []string{"a", "b", "a"}, []string{"a", "b", "a"}},
		{"Oldest evicted at capacity", 3, []string{"a", "b", "c", "d"}, []string{"b", "c", "d"}},
		{"Zero capacity discards", 0, []string{"a", "b"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHistory(tt.maxLen)
			for _, line := range tt.lines {
				if st := h.add(line); st != Success {
					t.Fatalf("add(%q) returned %v", line, st)
				}
			}
			if !reflect.DeepEqual(h.entries, tt.want) {
				t.Errorf("Expected entries %v, got %v", tt.want, h.entries)
			}
		})
	}
}

func TestHistoryPop(t *testing.T) {
	h := newHistory(10)
	h.add("a")
	h.add("b")

	h.pop()
	if want := []string{"a"}; !reflect.DeepEqual(h.entries, want) {
		t.Errorf("Expected entries %v, got %v", want, h.entries)
	}

	h.pop()
	h.pop() // pop on empty history must not panic
	if h.length() != 0 {
		t.Errorf("Expected empty history, got %v", h.entries)
	}
}

func TestHistorySetMaxLen(t *testing.T) {
	h := newHistory(10)
	for _, line := range []string{"a", "b", "c", "d"} {
		h.add(line)
	}

	h.setMaxLen(2)
	if want := []string{"c", "d"}; !reflect.DeepEqual(h.entries, want) {
		t.Errorf("Expected newest entries %v after shrink, got %v", want, h.entries)
	}

	h.setMaxLen(0)
	if h.length() != 0 {
		t.Errorf("Expected cleared history, got %v", h.entries)
	}
	if st := h.add("e"); st != Success || h.length() != 0 {
		t.Errorf("Expected add to be inert at zero capacity, got %v %v", st, h.entries)
	}
}

func TestHistorySaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")

	h := newHistory(10)
	h.add("first")
	h.add("")
	h.add("second command")
	if st := h.save(path); st != Success {
		t.Fatalf("save returned %v", st)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("Expected mode 0600, got %o", perm)
	}

	loaded := newHistory(10)
	if st := loaded.load(path); st != Success {
		t.Fatalf("load returned %v", st)
	}
	// The empty entry is skipped on save
	if want := []string{"first", "second command"}; !reflect.DeepEqual(loaded.entries, want) {
		t.Errorf("Expected entries %v, got %v", want, loaded.entries)
	}
}

func TestHistoryLoadMissingFile(t *testing.T) {
	h := newHistory(10)
	if st := h.load(filepath.Join(t.TempDir(), "absent")); st != NoFile {
		t.Errorf("Expected NoFile, got %v", st)
	}
}

func TestHistorySaveBadPath(t *testing.T) {
	h := newHistory(10)
	h.add("a")
	if st := h.save(filepath.Join(t.TempDir(), "no", "such", "dir")); st != NoFile {
		t.Errorf("Expected NoFile, got %v", st)
	}
}

func TestHistoryLoadFiltersControlBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.txt")
	raw := "fo\to\nbar\x01baz\x7f\npartial"
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatal(err)
	}

	h := newHistory(10)
	if st := h.load(path); st != Success {
		t.Fatalf("load returned %v", st)
	}
	// Control bytes dropped, unterminated trailing line discarded
	if want := []string{"foo", "barbaz"}; !reflect.DeepEqual(h.entries, want) {
		t.Errorf("Expected entries %v, got %v", want, h.entries)
	}
}
