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

// NewFdReader returns a blocking Reader over an open descriptor. The
// descriptor is not owned, it is neither opened nor closed here. name is used
// only in error messages. Every readiness wait is bounded by timeout and the
// bound is re-armed on each attempt, so a blocking read over a slow stream
// can take longer than timeout in total.
func NewFdReader(name string, fd int, timeout time.Duration) Reader {
	if fd < 0 {
		panic("fdio: new fd reader with a negative descriptor")
	}
	return &fdReader{
		name:    name,
		fd:      fd,
		timeout: timeout,
	}
}

type fdReader struct {
	name    string
	fd      int
	timeout time.Duration
	eof     bool
}

func (r *fdReader) Read(buf bytebuffers.Buffer, block bool) (n int, err error) {
	if buf.Full() {
		panic("fdio: read into a full buffer")
	}
	if r.eof {
		return
	}
	for {
		ready, waitErr := poll.WaitRead(r.fd, r.timeout)
		if waitErr != nil {
			n = 0
			err = errors.From(
				ErrReadinessWait,
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithMeta(errMetaNameKey, r.name),
				errors.WithWrap(waitErr),
			)
			return
		}
		if !ready {
			n = 0
			err = errors.From(
				ErrReadTimeout,
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithMeta(errMetaNameKey, r.name),
				errors.WithMeta(errMetaTimeoutKey, r.timeout.String()),
			)
			return
		}
		p, allocateErr := buf.Allocate(buf.Remaining())
		if allocateErr != nil {
			n = 0
			err = errors.From(
				ErrRead,
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithMeta(errMetaNameKey, r.name),
				errors.WithWrap(allocateErr),
			)
			return
		}
		rn, readErr := unix.Read(r.fd, p)
		for readErr != nil && errors.Is(readErr, unix.EINTR) {
			rn, readErr = unix.Read(r.fd, p)
		}
		if readErr != nil {
			_ = buf.AllocatedWrote(0)
			n = 0
			err = errors.From(
				ErrRead,
				errors.WithMeta(errMetaPkgKey, errMetaPkgVal),
				errors.WithMeta(errMetaNameKey, r.name),
				errors.WithWrap(os.NewSyscallError("read", readErr)),
			)
			return
		}
		_ = buf.AllocatedWrote(rn)
		n = rn
		if rn == 0 {
			r.eof = true
		}
		if buf.Remaining() > 0 && !r.eof && block {
			continue
		}
		return
	}
}

func (r *fdReader) EOF() (ok bool) {
	return r.eof
}

func (r *fdReader) Fd() (fd int) {
	return r.fd
}

func (r *fdReader) Blocking() (ok bool) {
	return true
}
