package lineedit

import (
	"bufio"
	"io"
	"os"
)

// history is a bounded, ordered collection of past input lines. The oldest
// entry is evicted when the capacity is reached. During an active edit the
// newest slot mirrors the line currently being edited so that recall can
// restore it; editSubmit and editEOF pop that slot again.
type history struct {
	maxLen  int
	entries []string
}

func newHistory(maxLen int) *history {
	return &history{maxLen: maxLen}
}

func (h *history) length() int {
	return len(h.entries)
}

// add appends a copy of line, suppressing consecutive duplicates and
// evicting the oldest entry at capacity. A zero maxLen disables history.
func (h *history) add(line string) Status {
	if h.maxLen == 0 {
		return Success
	}

	if n := len(h.entries); n > 0 && h.entries[n-1] == line {
		return Success
	}

	if len(h.entries) == h.maxLen {
		h.entries = append(h.entries[:0], h.entries[1:]...)
	}
	h.entries = append(h.entries, line)
	return Success
}

// pop discards the newest entry, used to remove the live-line placeholder
// on submit, abort, or end of input.
func (h *history) pop() {
	if len(h.entries) > 0 {
		h.entries = h.entries[:len(h.entries)-1]
	}
}

// setMaxLen resizes the capacity, discarding the oldest excess entries when
// shrinking below the current count.
func (h *history) setMaxLen(n int) {
	h.maxLen = n
	if n == 0 {
		h.entries = nil
		return
	}
	if len(h.entries) > n {
		h.entries = append(h.entries[:0:0], h.entries[len(h.entries)-n:]...)
	}
}

// save writes each entry followed by a newline, creating or truncating the
// file with owner-only permissions. Empty entries are skipped.
func (h *history) save(path string) Status {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
	if err != nil {
		return NoFile
	}

	w := bufio.NewWriter(f)
	for _, entry := range h.entries {
		if entry == "" {
			continue
		}
		if _, err := w.WriteString(entry); err != nil {
			f.Close()
			return BadWrite
		}
		if err := w.WriteByte('\n'); err != nil {
			f.Close()
			return BadWrite
		}
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return BadWrite
	}
	if err := f.Close(); err != nil {
		return BadWrite
	}
	return Success
}

// load reads the file byte by byte, feeding each newline-terminated line
// through add. Control bytes are dropped. Trailing content without a final
// newline is discarded.
func (h *history) load(path string) Status {
	f, err := os.Open(path)
	if err != nil {
		return NoFile
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var line []byte
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			return Success
		}
		if err != nil {
			return BadRead
		}

		if c == '\n' && len(line) > 0 {
			h.add(string(line))
			line = line[:0]
		} else if c >= 0x20 && c != keyDelete {
			line = append(line, c)
		}
	}
}
