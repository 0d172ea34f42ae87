//go:build unix

package fdio

import (
	"github.com/brickingsoft/errors"
	"github.com/brickingsoft/fdio/pkg/bytebuffers"
	"github.com/brickingsoft/fdio/pkg/poll"
	"golang.org/x/sys/unix"
	"os"
	"time"
)

// NewFdWriter returns a Writer over an open descriptor. As with NewFdReader
// the descriptor is not owned and timeout bounds each writability wait, not
// the whole call.
func NewFdWriter(name string, fd int, timeout time.Duration) Writer {
	if fd < 0 {
		panic("fdio: new fd writer with a negative descriptor")
	}
	return &fdWriter{
		name:    name,
		fd:      fd,
		timeout: timeout,
	}
}

type fdWriter struct {
	name    string
	fd      int
	timeout time.Duration
}

func (w *fdWriter) Write(buf bytebuffers.Buffer) (n int, err error) {
	for buf.Len() > 0 {
		ready, waitErr := poll.WaitWrite(w.fd, w.timeout)
		if waitErr != nil {
			err = errors.From(
				ErrReadinessWait,
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithMeta(errMetaNameKey, w.name),
				errors.WithWrap(waitErr),
			)
			return
		}
		if !ready {
			err = errors.From(
				ErrWriteTimeout,
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithMeta(errMetaNameKey, w.name),
				errors.WithMeta(errMetaTimeoutKey, w.timeout.String()),
			)
			return
		}
		p := buf.Peek(buf.Len())
		wn, writeErr := unix.Write(w.fd, p)
		for writeErr != nil && errors.Is(writeErr, unix.EINTR) {
			wn, writeErr = unix.Write(w.fd, p)
		}
		if writeErr != nil {
			err = errors.From(
				ErrWrite,
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithMeta(errMetaNameKey, w.name),
				errors.WithWrap(os.NewSyscallError("write", writeErr)),
			)
			return
		}
		_ = buf.Discard(wn)
		n += wn
	}
	return
}

func (w *fdWriter) Fd() (fd int) {
	return w.fd
}
