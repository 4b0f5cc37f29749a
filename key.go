package lineedit

// Control bytes recognized by the editing state machine.
const (
	keyNull     byte = 0   // ^@
	keyCtrlA    byte = 1   // move to start of line
	keyCtrlB    byte = 2   // move left
	keyCtrlC    byte = 3   // interrupt
	keyCtrlD    byte = 4   // delete forward, or end of input when empty
	keyCtrlE    byte = 5   // move to end of line
	keyCtrlF    byte = 6   // move right
	keyCtrlH    byte = 8   // backspace
	keyTab      byte = 9   // completion trigger
	keyLineFeed byte = 10  // ^J, submit
	keyCtrlK    byte = 11  // clear to end of line
	keyCtrlL    byte = 12  // clear screen and redraw
	keyReturn   byte = 13  // ^M, submit
	keyCtrlN    byte = 14  // history next
	keyCtrlP    byte = 16  // history previous
	keyCtrlT    byte = 20  // transpose
	keyCtrlU    byte = 21  // clear whole line
	keyCtrlW    byte = 23  // delete previous word
	keyEscape   byte = 27  // escape sequence entry
	keyDelete   byte = 127 // ^?, usually the Backspace key
)
