package lineedit

import "testing"

func TestLineBufferInsert(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		at      int
		c       byte
		want    string
	}{
		{"Into empty", "", 0, 'a', "a"},
		{"At start", "bc", 0, 'a', "abc"},
		{"In middle", "ac", 1, 'b', "abc"},
		{"At end", "ab", 2, 'c', "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b lineBuffer
			b.set(tt.initial)
			b.insert(tt.at, tt.c)
			if got := b.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLineBufferDelete(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		at      int
		want    string
	}{
		{"First byte", "abc", 0, "bc"},
		{"Middle byte", "abc", 1, "ac"},
		{"Last byte", "abc", 2, "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b lineBuffer
			b.set(tt.initial)
			b.delete(tt.at)
			if got := b.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestLineBufferTruncateAndReset(t *testing.T) {
	var b lineBuffer
	b.set("abcdef")

	b.truncate(3)
	if got := b.String(); got != "abc" {
		t.Errorf("Expected %q after truncate, got %q", "abc", got)
	}

	b.reset()
	if b.length() != 0 {
		t.Errorf("Expected empty buffer after reset, got %q", b.String())
	}
}

func TestLineBufferSetReusesAllocation(t *testing.T) {
	var b lineBuffer
	b.set("abcdef")
	b.set("xy")
	if got := b.String(); got != "xy" {
		t.Errorf("Expected %q, got %q", "xy", got)
	}
	b.appendByte('z')
	if got := b.String(); got != "xyz" {
		t.Errorf("Expected %q, got %q", "xyz", got)
	}
}
