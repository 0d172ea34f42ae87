package bytebuffers

import (
	"errors"
)

// Buffer is a bounded byte window used as the target of descriptor reads and
// the source of descriptor writes. Allocate hands out the writable tail,
// AllocatedWrote records how much of it was actually filled, zero cancels the
// pending allocation. Capacity is fixed at construction, Full reports that no
// writable tail remains.
type Buffer interface {
	Len() (n int)
	Cap() (n int)
	Remaining() (n int)
	Full() (ok bool)
	Peek(n int) (p []byte)
	Next(n int) (p []byte, err error)
	Read(p []byte) (n int, err error)
	Discard(n int) (err error)
	Write(p []byte) (n int, err error)
	Allocate(size int) (p []byte, err error)
	AllocatedWrote(n int) (err error)
	WritePending() (ok bool)
	Reset()
}

var (
	ErrNoCapacity                = errors.New("bytebuffers: no remaining capacity")
	ErrWriteBeforeAllocatedWrote = errors.New("bytebuffers: cannot write before AllocatedWrote(), prev Allocate() was not finished")
	ErrAllocateZero              = errors.New("bytebuffers: cannot allocate zero")
)
