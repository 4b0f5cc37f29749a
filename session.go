package lineedit

import "strings"

// ModeFlag configures the presentation of the command line.
type ModeFlag uint

const (
	// ModeMasked displays an asterisk for every buffer byte (passwords).
	ModeMasked ModeFlag = 1 << iota

	// ModeMultiLine wraps long lines across terminal rows instead of
	// scrolling them horizontally within a single row.
	ModeMultiLine
)

// Terminal types known not to support cursor-movement escape sequences.
// Sessions on these fall back to plain character echo.
var unsupportedTerm = []string{"dumb", "cons25", "emacs"}

func isUnsupportedTerm(term string) bool {
	for _, t := range unsupportedTerm {
		if strings.EqualFold(term, t) {
			return true
		}
	}
	return false
}

// Session is the state of one command-line editing session bound to a
// terminal. A program may have several, but only one should exist per
// terminal. Sessions are not safe for concurrent use.
type Session struct {
	ifd  int // terminal input descriptor
	ofd  int // terminal output descriptor
	cols int // cached terminal width

	masked    bool
	multiLine bool
	rawMode   bool
	dumb      bool

	cooked termios // attributes before raw mode, for restoration

	history      *history
	historyIndex int // steps back from the newest entry; 0 is the live line

	buf       lineBuffer
	prompt    string
	promptLen int
	pos       int // cursor offset into buf, in [0, buf.length()]

	completionCallback CompletionCallback
	inCompletion       bool
	completionIdx      int

	// Multi-line refresh bookkeeping: what the previous refresh painted,
	// so the next one can erase exactly that many rows
	oldpos  int
	oldrows int
}

// New creates a session bound to a terminal. The term string is matched
// case-insensitively against known feature-less terminal types; maxHistory
// bounds the history (zero disables it). This may exchange escape
// sequences with the terminal to determine its width, but causes no other
// output.
func New(inFd, outFd int, term string, maxHistory int) *Session {
	return &Session{
		ifd:     inFd,
		ofd:     outFd,
		dumb:    isUnsupportedTerm(term),
		cols:    getColumns(inFd, outFd),
		history: newHistory(maxHistory),
	}
}

// Close releases the terminal, restoring its original mode if an edit is
// still in progress. No output is written, not even a trailing newline.
func (s *Session) Close() {
	s.disableRawMode()
}

// SetMode sets the masked and multi-line flags from the given combination.
// The change takes effect on the next refresh.
func (s *Session) SetMode(flags ModeFlag) Status {
	s.masked = flags&ModeMasked != 0
	s.multiLine = flags&ModeMultiLine != 0
	return Success
}

// Text returns the current line content: the completed line after a
// successful read, or the partial line mid-edit.
func (s *Session) Text() string {
	return s.buf.String()
}

// InputFd returns the input descriptor, for callers running their own
// readiness loop around EditFeed.
func (s *Session) InputFd() int {
	return s.ifd
}

// HistoryAdd appends a line to the history, suppressing consecutive
// duplicates. The line must not contain a newline.
func (s *Session) HistoryAdd(line string) Status {
	return s.history.add(line)
}

// HistorySave writes the history to path, one entry per line.
func (s *Session) HistorySave(path string) Status {
	return s.history.save(path)
}

// HistoryLoad reads newline-separated entries from path into the history.
func (s *Session) HistoryLoad(path string) Status {
	return s.history.load(path)
}

// HistorySetMaxLen resizes the history capacity, discarding the oldest
// entries if it shrinks below the current count.
func (s *Session) HistorySetMaxLen(n int) {
	s.history.setMaxLen(n)
}

// EditStart begins a non-blocking edit: enters raw mode, resets the line
// state, and writes the prompt. Input is then consumed by EditFeed, and
// EditStop must be called exactly once after a terminal status.
func (s *Session) EditStart(prompt string) Status {
	if st := s.enableRawMode(); st != Success {
		return st
	}

	s.buf.reset()
	s.pos = 0
	s.oldpos = 0
	s.oldrows = 0
	s.historyIndex = 0

	// The newest history entry mirrors the live line so recall can return
	// to it; popped again on submit, abort, or end of input
	s.history.add("")

	s.prompt = prompt
	s.promptLen = len(prompt)
	return writeAll(s.ofd, []byte(prompt))
}

// EditFeed reads and applies one keystroke (or escape sequence). It
// returns Editing while the line is still being edited, Success when a
// complete line is available via Text, End or Interrupted when the user
// stopped, or an error status.
func (s *Session) EditFeed() Status {
	c, st := readByte(s.ifd)
	if st != Success {
		return st
	}

	if s.dumb {
		return s.feedDumb(c)
	}

	if (s.inCompletion || c == keyTab) && s.completionCallback != nil {
		c = s.completeLine(c)
		if c == 0 {
			return Editing
		}
	}

	if c == keyLineFeed || c == keyReturn {
		return s.editSubmit()
	}

	switch {
	case c < 0x20:
		return controlStatus(s.editControl(c))
	case c == keyDelete:
		return controlStatus(s.editBackspace())
	default:
		return controlStatus(s.editInsert(c))
	}
}

// EditStop finishes an edit: leaves raw mode and writes the trailing
// newline. The entered line, if any, remains available via Text.
func (s *Session) EditStop() Status {
	if st := s.disableRawMode(); st != Success {
		return st
	}
	return writeAll(s.ofd, []byte{'\n'})
}

// ReadLine performs a whole blocking edit: start, feed until a terminal
// status, stop. Start and feed errors take priority over stop errors.
func (s *Session) ReadLine(prompt string) Status {
	st := s.EditStart(prompt)
	if st != Success {
		return st
	}

	for st = s.EditFeed(); st == Editing; st = s.EditFeed() {
	}

	stopSt := s.EditStop()
	if st != Success {
		return st
	}
	return stopSt
}

// feedDumb handles input on terminals with no escape-sequence support:
// Enter, Ctrl-C, and Ctrl-D are recognized, everything else is echoed
// verbatim and appended.
func (s *Session) feedDumb(c byte) Status {
	switch c {
	case keyCtrlC:
		return Interrupted
	case keyCtrlD:
		return End
	case keyLineFeed, keyReturn:
		return Success
	}

	writeAll(s.ofd, []byte{c})
	s.buf.appendByte(c)
	s.pos = s.buf.length()
	return Editing
}

// controlStatus maps the Success of a non-terminal editing operation to
// Editing; every other status passes through.
func controlStatus(st Status) Status {
	if st == Success {
		return Editing
	}
	return st
}

// editControl dispatches a control byte to its editing operation.
// Unmapped codes are inert.
func (s *Session) editControl(c byte) Status {
	switch c {
	case keyCtrlA:
		return s.editMoveHome()
	case keyCtrlB:
		return s.editMoveLeft()
	case keyCtrlC:
		return Interrupted
	case keyCtrlD:
		return s.editEOF()
	case keyCtrlE:
		return s.editMoveEnd()
	case keyCtrlF:
		return s.editMoveRight()
	case keyCtrlH:
		return s.editBackspace()
	case keyCtrlK:
		return s.editClearToEndOfLine()
	case keyCtrlL:
		return s.editClearScreen()
	case keyCtrlN:
		return s.editHistoryNext()
	case keyCtrlP:
		return s.editHistoryPrev()
	case keyCtrlT:
		return s.editTranspose()
	case keyCtrlU:
		return s.editClearLine()
	case keyCtrlW:
		return s.editDeletePrevWord()
	case keyEscape:
		return s.editEscape()
	}
	return Success
}

// editEscape decodes an escape sequence: two bytes, plus one more for
// ESC [ <digit> forms. Unrecognized sequences resolve to a no-op; only
// read failures are errors.
func (s *Session) editEscape() Status {
	seq0, st := readByte(s.ifd)
	if st != Success {
		return BadRead
	}
	seq1, st := readByte(s.ifd)
	if st != Success {
		return BadRead
	}

	if seq0 == '[' {
		if seq1 >= '0' && seq1 <= '9' {
			// Extended escape, one more byte
			seq2, st := readByte(s.ifd)
			if st != Success {
				return BadRead
			}
			if seq1 == '3' && seq2 == '~' { // Delete key
				return s.editDelete()
			}
			return Success
		}

		switch seq1 {
		case 'A':
			return s.editHistoryPrev()
		case 'B':
			return s.editHistoryNext()
		case 'C':
			return s.editMoveRight()
		case 'D':
			return s.editMoveLeft()
		case 'H':
			return s.editMoveHome()
		case 'F':
			return s.editMoveEnd()
		}
	} else if seq0 == 'O' {
		switch seq1 {
		case 'H':
			return s.editMoveHome()
		case 'F':
			return s.editMoveEnd()
		}
	}

	return Success
}

// editInsert places a printable byte at the cursor. Appending to a line
// that fits within the width skips the full refresh and echoes the single
// (mask-aware) byte in place.
func (s *Session) editInsert(c byte) Status {
	if s.pos == s.buf.length() {
		s.buf.appendByte(c)
		s.pos++
		if (!s.multiLine || s.oldrows <= 1) && s.promptLen+s.buf.length() < s.cols {
			d := c
			if s.masked {
				d = '*'
			}
			return writeAll(s.ofd, []byte{d})
		}
	} else {
		s.buf.insert(s.pos, c)
		s.pos++
	}
	return s.refreshLine()
}

func (s *Session) editMoveLeft() Status {
	if s.pos > 0 {
		s.pos--
		return s.refreshLine()
	}
	return Success
}

func (s *Session) editMoveRight() Status {
	if s.pos != s.buf.length() {
		s.pos++
		return s.refreshLine()
	}
	return Success
}

func (s *Session) editMoveHome() Status {
	if s.pos != 0 {
		s.pos = 0
		return s.refreshLine()
	}
	return Success
}

func (s *Session) editMoveEnd() Status {
	if s.pos != s.buf.length() {
		s.pos = s.buf.length()
		return s.refreshLine()
	}
	return Success
}

// editTranspose swaps the byte under the cursor with the one before it and
// advances, unless already on the final byte.
func (s *Session) editTranspose() Status {
	if s.pos > 0 && s.pos < s.buf.length() {
		s.buf.data[s.pos-1], s.buf.data[s.pos] = s.buf.data[s.pos], s.buf.data[s.pos-1]
		if s.pos != s.buf.length()-1 {
			s.pos++
		}
		return s.refreshLine()
	}
	return Success
}

// editDelete removes the byte under the cursor.
func (s *Session) editDelete() Status {
	if s.pos < s.buf.length() {
		s.buf.delete(s.pos)
		return s.refreshLine()
	}
	return Success
}

// editBackspace removes the byte before the cursor.
func (s *Session) editBackspace() Status {
	if s.pos > 0 {
		s.buf.delete(s.pos - 1)
		s.pos--
		return s.refreshLine()
	}
	return Success
}

// editEOF ends input on an empty line, otherwise deletes forward.
func (s *Session) editEOF() Status {
	if s.buf.length() == 0 {
		s.popLivePlaceholder()
		return End
	}
	return s.editDelete()
}

// editDeletePrevWord removes the trailing spaces before the cursor and the
// non-space run before them.
func (s *Session) editDeletePrevWord() Status {
	oldPos := s.pos
	for s.pos > 0 && s.buf.data[s.pos-1] == ' ' {
		s.pos--
	}
	for s.pos > 0 && s.buf.data[s.pos-1] != ' ' {
		s.pos--
	}
	s.buf.data = append(s.buf.data[:s.pos], s.buf.data[oldPos:]...)
	return s.refreshLine()
}

func (s *Session) editClearScreen() Status {
	if st := s.ClearScreen(); st != Success {
		return st
	}
	return s.refreshLine()
}

func (s *Session) editClearLine() Status {
	s.buf.reset()
	s.pos = 0
	return s.refreshLine()
}

func (s *Session) editClearToEndOfLine() Status {
	if s.pos < s.buf.length() {
		s.buf.truncate(s.pos)
		return s.refreshLine()
	}
	return Success
}

// editSubmit completes the line: the live placeholder leaves the history,
// and in multi-line mode the cursor moves to the end so the trailing
// newline lands after the last row.
func (s *Session) editSubmit() Status {
	s.popLivePlaceholder()
	if s.multiLine {
		s.editMoveEnd()
	}
	return Success
}

func (s *Session) popLivePlaceholder() {
	s.history.pop()
	s.historyIndex = 0
}

type historyDirection int

const (
	historyNext historyDirection = iota
	historyPrev
)

// editHistoryStep replaces the buffer with the next or previous history
// entry. The entry being left snapshots the current buffer first, so
// recall is reversible until submission; stepping past either end clamps.
func (s *Session) editHistoryStep(dir historyDirection) Status {
	h := s.history
	if h.length() <= 1 {
		return Success
	}

	// Preserve edits to the entry currently shown
	h.entries[h.length()-1-s.historyIndex] = s.buf.String()

	if dir == historyNext {
		if s.historyIndex == 0 {
			return Success
		}
		s.historyIndex--
	} else {
		s.historyIndex++
	}
	if s.historyIndex >= h.length() {
		s.historyIndex = h.length() - 1
		return Success
	}

	s.buf.set(h.entries[h.length()-1-s.historyIndex])
	s.pos = s.buf.length()
	return s.refreshLine()
}

func (s *Session) editHistoryPrev() Status {
	return s.editHistoryStep(historyPrev)
}

func (s *Session) editHistoryNext() Status {
	return s.editHistoryStep(historyNext)
}
