//go:build unix

package stdio

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

const (
	fdStdout = 1
	fdStderr = 2
)

// Isolate redirects fd 1 to /dev/null, or to stderr when passthrough is set,
// and fd 2 to /dev/null unless passthrough is set.
func Isolate(passthrough bool) (*Streams, error) {
	outFd, err := unix.Dup(fdStdout)
	if err != nil {
		return nil, fmt.Errorf("dup stdout: %w", err)
	}
	errFd, err := unix.Dup(fdStderr)
	if err != nil {
		unix.Close(outFd)
		return nil, fmt.Errorf("dup stderr: %w", err)
	}
	unix.CloseOnExec(outFd)
	unix.CloseOnExec(errFd)

	devnull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		unix.Close(outFd)
		unix.Close(errFd)
		return nil, err
	}

	target := int(devnull.Fd())
	if passthrough {
		target = errFd
	}
	if err := dup2(target, fdStdout); err != nil {
		devnull.Close()
		unix.Close(outFd)
		unix.Close(errFd)
		return nil, fmt.Errorf("redirect stdout: %w", err)
	}
	if !passthrough {
		if err := dup2(target, fdStderr); err != nil {
			_ = dup2(outFd, fdStdout)
			devnull.Close()
			unix.Close(outFd)
			unix.Close(errFd)
			return nil, fmt.Errorf("redirect stderr: %w", err)
		}
	}

	s := &Streams{
		Stdout: os.NewFile(uintptr(outFd), "stdout"),
		Stderr: os.NewFile(uintptr(errFd), "stderr"),
	}
	s.restore = func() error {
		return errors.Join(
			dup2(outFd, fdStdout),
			dup2(errFd, fdStderr),
			devnull.Close(),
			s.Stdout.Close(),
			s.Stderr.Close(),
		)
	}
	return s, nil
}
