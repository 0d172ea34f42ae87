package fdio

import (
	"github.com/brickingsoft/errors"
)

var (
	// ErrReadinessWait means the readiness wait facility itself failed,
	// waiting for readability and writability alike.
	ErrReadinessWait = errors.Define("descriptor readiness wait failed")
	// ErrReadTimeout means no data became readable within the timeout.
	ErrReadTimeout = errors.Define("read timed out")
	// ErrRead means the read call failed, either in the underlying read
	// operation or in the buffer refusing its writable tail.
	ErrRead = errors.Define("read failed")
	// ErrWriteTimeout means the descriptor did not become writable within the timeout.
	ErrWriteTimeout = errors.Define("write timed out")
	// ErrWrite means the underlying write operation failed.
	ErrWrite = errors.Define("write failed")
)

func IsReadinessWaitError(err error) bool {
	return errors.Is(err, ErrReadinessWait)
}

func IsReadTimeoutError(err error) bool {
	return errors.Is(err, ErrReadTimeout)
}

func IsReadError(err error) bool {
	return errors.Is(err, ErrRead)
}

func IsWriteTimeoutError(err error) bool {
	return errors.Is(err, ErrWriteTimeout)
}

func IsWriteError(err error) bool {
	return errors.Is(err, ErrWrite)
}

const (
	errMetaPkgKey = "pkg"
	errMetaPkgVal = "fdio"
)

const (
	errMetaNameKey    = "name"
	errMetaTimeoutKey = "timeout"
)
