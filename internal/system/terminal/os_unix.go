// Released under an MIT license. See LICENSE.

//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package terminal

import (
	"golang.org/x/sys/unix"
)

// raw disables line buffering and echo. Signals and output processing are
// left alone so that ^C still interrupts and newlines still return.
func raw(fd int) error {
	t, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}

	t.Lflag &^= unix.ICANON | unix.ECHO
	t.Cc[unix.VMIN] = 1
	t.Cc[unix.VTIME] = 0

	return unix.IoctlSetTermios(fd, ioctlWriteTermios, t)
}
