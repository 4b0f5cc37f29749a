//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package lineedit

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TIOCGETA

	// TIOCSETAF drains output and flushes pending input before applying,
	// matching tcsetattr with TCSAFLUSH.
	ioctlWriteTermios = unix.TIOCSETAF
)
