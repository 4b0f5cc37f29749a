//go:build unix

package lineedit

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type termios = unix.Termios

// enableRawMode switches the input descriptor to raw (unbuffered, no echo,
// no signal keys) input, saving the previous attributes for restoration.
// A non-terminal input descriptor succeeds as a no-op so that sessions can
// be driven from pipes.
func (s *Session) enableRawMode() Status {
	if !term.IsTerminal(s.ifd) {
		return Success
	}

	cooked, err := unix.IoctlGetTermios(s.ifd, ioctlReadTermios)
	if err != nil {
		return BadTerminal
	}
	s.cooked = *cooked

	raw := *cooked
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	raw.Cc[unix.VMIN] = 1
	raw.Cc[unix.VTIME] = 0

	if err := unix.IoctlSetTermios(s.ifd, ioctlWriteTermios, &raw); err != nil {
		return BadTerminal
	}
	s.rawMode = true
	return Success
}

// disableRawMode restores the attributes captured by enableRawMode.
// Idempotent.
func (s *Session) disableRawMode() Status {
	if s.rawMode {
		if err := unix.IoctlSetTermios(s.ifd, ioctlWriteTermios, &s.cooked); err != nil {
			return BadTerminal
		}
		s.rawMode = false
	}
	return Success
}

// writeAll retries partial writes until all of p is sent.
func writeAll(fd int, p []byte) Status {
	for len(p) > 0 {
		n, err := unix.Write(fd, p)
		if err != nil {
			return BadWrite
		}
		p = p[n:]
	}
	return Success
}

// readByte returns exactly one byte from fd. A zero-length read is End.
func readByte(fd int) (byte, Status) {
	var b [1]byte
	n, err := unix.Read(fd, b[:])
	if err != nil {
		return 0, BadRead
	}
	if n == 0 {
		return 0, End
	}
	return b[0], Success
}

// getCursorPosition asks the terminal to report the cursor location and
// parses the ESC [ rows ; cols R reply. Returns -1 if the exchange fails.
func getCursorPosition(ifd, ofd int) int {
	if writeAll(ofd, []byte("\x1b[6n")) != Success {
		return -1
	}

	var buf [32]byte
	i := 0
	for i+1 < len(buf) {
		c, st := readByte(ifd)
		if st != Success {
			break
		}
		buf[i] = c
		if c == 'R' {
			break
		}
		i++
	}

	if i < 2 || buf[0] != keyEscape || buf[1] != '[' {
		return -1
	}

	var rows, cols int
	if _, err := fmt.Sscanf(string(buf[2:i]), "%d;%d", &rows, &cols); err != nil {
		return -1
	}
	return cols
}

// getColumns reports the terminal width. It prefers the window-size ioctl;
// if that is unavailable or reports zero it probes interactively by moving
// the cursor to column 999 and comparing reported positions. Everything
// falls back to 80.
func getColumns(ifd, ofd int) int {
	if !term.IsTerminal(ofd) {
		return 80
	}

	ws, err := unix.IoctlGetWinsize(ofd, unix.TIOCGWINSZ)
	if err == nil && ws.Col != 0 {
		return int(ws.Col)
	}

	// Get the initial position so it can be restored afterwards
	start := getCursorPosition(ifd, ofd)
	if start == -1 {
		return 80
	}

	// Go to the right margin and see where the cursor lands
	if writeAll(ofd, []byte("\x1b[999C")) != Success {
		return 80
	}
	cols := getCursorPosition(ifd, ofd)
	if cols == -1 {
		return 80
	}

	if cols > start {
		// Best effort, the width is known either way
		writeAll(ofd, fmt.Appendf(nil, "\x1b[%dD", cols-start))
	}
	return cols
}
