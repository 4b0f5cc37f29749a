package lineedit

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TCGETS

	// TCSETSF drains output and flushes pending input before applying,
	// matching tcsetattr with TCSAFLUSH.
	ioctlWriteTermios = unix.TCSETSF
)
