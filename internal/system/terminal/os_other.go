// Released under an MIT license. See LICENSE.

//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd

package terminal

// raw leaves the terminal alone where termios is not available.
func raw(int) error {
	return nil
}
