package lineedit

import (
	"bytes"
	"fmt"
)

// refreshFlags select which halves of a refresh to perform. Hide is an
// erase with no write; Show is a write with no erase.
type refreshFlags uint

const (
	refreshClean refreshFlags = 1 << iota
	refreshWrite
)

const refreshAll = refreshClean | refreshWrite

var (
	seqEraseRight  = []byte("\x1b[0K")
	seqClearScreen = []byte("\x1b[H\x1b[2J")
	seqBell        = []byte{7}
)

// display is what the renderer should paint: normally the live buffer and
// cursor, or a completion candidate being previewed in their place.
type display struct {
	text []byte
	pos  int
}

func (s *Session) liveDisplay() display {
	return display{text: s.buf.data, pos: s.pos}
}

// appendLineText writes the visible form of text: asterisks in masked mode,
// the literal bytes otherwise.
func appendLineText(out *bytes.Buffer, text []byte, masked bool) {
	if masked {
		for range text {
			out.WriteByte('*')
		}
	} else {
		out.Write(text)
	}
}

// refreshSingleLine redraws the prompt and line on a single terminal row.
// When the cursor would pass the right edge the visible window is shifted
// so it stays on screen, and the displayed text is truncated to fit. The
// whole update is flushed with one write to avoid flicker.
func (s *Session) refreshSingleLine(d display, flags refreshFlags) Status {
	text := d.text
	pos := d.pos
	if s.promptLen+pos >= s.cols {
		offset := s.promptLen + pos + 1 - s.cols
		text = text[offset:]
		pos -= offset
	}
	if s.promptLen+len(text) > s.cols {
		text = text[:s.cols-s.promptLen]
	}

	var out bytes.Buffer

	// Move cursor to the left edge
	out.WriteByte('\r')

	if flags&refreshWrite != 0 {
		out.WriteString(s.prompt)
		appendLineText(&out, text, s.masked)
	}

	// Erase to the right
	out.Write(seqEraseRight)

	if flags&refreshWrite != 0 {
		// Put the cursor back at its column
		fmt.Fprintf(&out, "\r\x1b[%dC", pos+s.promptLen)
	}

	return writeAll(s.ofd, out.Bytes())
}

// refreshMultiLine redraws a line that wraps across several terminal rows.
// It first erases the rows used by the previous rendering (tracked in
// oldpos/oldrows), then repaints and walks the cursor up to its target row
// and column. One write for the whole update.
func (s *Session) refreshMultiLine(d display, flags refreshFlags) Status {
	// Relative row the cursor was left on by the previous refresh
	rpos := (s.promptLen + s.oldpos + s.cols) / s.cols
	oldRows := s.oldrows

	// Rows the current content occupies
	rows := (s.promptLen + len(d.text) + s.cols - 1) / s.cols
	s.oldrows = rows

	var out bytes.Buffer

	if flags&refreshClean != 0 {
		// Go down to the last row of the previous rendering
		if oldRows > rpos {
			fmt.Fprintf(&out, "\x1b[%dB", oldRows-rpos)
		}

		// Clear each row above the first, moving up as we go
		for j := 1; j < oldRows; j++ {
			out.WriteString("\r\x1b[0K\x1b[1A")
		}
	}

	if flags&refreshWrite != 0 {
		out.WriteByte('\r')
		out.WriteString(s.prompt)
		appendLineText(&out, d.text, s.masked)
		out.Write(seqEraseRight)

		// A cursor at the end of the buffer that lands exactly on a column
		// boundary must be shown at the start of the next row
		if d.pos > 0 && d.pos == len(d.text) && (d.pos+s.promptLen)%s.cols == 0 {
			out.WriteString("\n\r")
			rows++
			if rows > s.oldrows {
				s.oldrows = rows
			}
		}

		// Move up to the cursor's row
		rpos2 := (s.promptLen + d.pos + s.cols) / s.cols
		if rows > rpos2 {
			fmt.Fprintf(&out, "\x1b[%dA", rows-rpos2)
		}

		// And over to its column
		if col := (s.promptLen + d.pos) % s.cols; col > 0 {
			fmt.Fprintf(&out, "\r\x1b[%dC", col)
		} else {
			out.WriteByte('\r')
		}
	}

	s.oldpos = d.pos

	return writeAll(s.ofd, out.Bytes())
}

func (s *Session) refreshWithFlags(d display, flags refreshFlags) Status {
	if s.multiLine {
		return s.refreshMultiLine(d, flags)
	}
	return s.refreshSingleLine(d, flags)
}

// refreshLine erases the previous rendering and repaints the live buffer.
func (s *Session) refreshLine() Status {
	return s.refreshWithFlags(s.liveDisplay(), refreshAll)
}

// beep rings the terminal bell. A failed bell does not corrupt any state,
// so the write status is ignored.
func (s *Session) beep() {
	writeAll(s.ofd, seqBell)
}

// ClearScreen clears the whole screen and homes the cursor.
func (s *Session) ClearScreen() Status {
	return writeAll(s.ofd, seqClearScreen)
}

// Hide erases the pending input line from the screen so the caller can
// write unrelated output. Show repaints it afterwards.
func (s *Session) Hide() Status {
	return s.refreshWithFlags(s.liveDisplay(), refreshClean)
}

// Show repaints the prompt and the in-progress line, including a
// completion preview if a completion round is active.
func (s *Session) Show() Status {
	if s.inCompletion && s.buf.length() > 0 && s.completionCallback != nil {
		var lc Completions
		s.completionCallback(s.buf.String(), &lc)
		return s.refreshCompletion(&lc, refreshWrite)
	}
	return s.refreshWithFlags(s.liveDisplay(), refreshWrite)
}
