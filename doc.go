// Package lineedit implements an interactive line editor for POSIX
// terminals: raw-mode keyboard input, in-place editing commands, history
// recall, tab-completion, and password masking, rendered either on a
// single terminal line or across wrapped rows in multi-line mode.
//
// A Session is bound to a pair of file descriptors and can be driven two
// ways. The blocking protocol is a single call:
//
//	s := lineedit.New(0, 1, os.Getenv("TERM"), 100)
//	defer s.Close()
//	if st := s.ReadLine("> "); st == lineedit.Success {
//		fmt.Printf("got %q\n", s.Text())
//	}
//
// The non-blocking protocol gives the caller ownership of the read loop:
// call EditStart once, EditFeed whenever the input descriptor is readable
// (it returns Editing while more input is needed), and EditStop exactly
// once after any other status. Between feeds, Hide and Show let the caller
// interleave unrelated output with the in-progress line.
//
// Terminals whose type is known not to support escape sequences fall back
// to plain character echo with no cursor movement.
package lineedit
