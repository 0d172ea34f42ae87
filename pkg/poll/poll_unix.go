//go:build unix

package poll

import (
	"golang.org/x/sys/unix"
	"os"
	"time"
)

// WaitRead waits until fd is readable or timeout elapses. ready is false with
// a nil error when the full bound elapsed with nothing to read.
func WaitRead(fd int, timeout time.Duration) (ready bool, err error) {
	return wait(fd, unix.POLLIN, timeout)
}

// WaitWrite waits until fd is writable or timeout elapses.
func WaitWrite(fd int, timeout time.Duration) (ready bool, err error) {
	return wait(fd, unix.POLLOUT, timeout)
}

func wait(fd int, events int16, timeout time.Duration) (ready bool, err error) {
	deadline := time.Now().Add(timeout)
	for {
		ms := int((time.Until(deadline) + time.Millisecond - 1) / time.Millisecond)
		if ms < 0 {
			ms = 0
		}
		fds := []unix.PollFd{{Fd: int32(fd), Events: events}}
		n, pollErr := unix.Poll(fds, ms)
		if pollErr != nil {
			if pollErr == unix.EINTR {
				continue
			}
			err = os.NewSyscallError("poll", pollErr)
			return
		}
		if n == 0 {
			return
		}
		if fds[0].Revents&unix.POLLNVAL != 0 {
			err = os.NewSyscallError("poll", unix.EBADF)
			return
		}
		// POLLHUP and POLLERR count as ready, the following read or write
		// observes the condition itself.
		ready = true
		return
	}
}
