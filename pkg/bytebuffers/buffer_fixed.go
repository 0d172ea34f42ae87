package bytebuffers

import (
	"io"
)

// NewBuffer constructs a Buffer with a fixed capacity.
func NewBuffer(capacity int) Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return &buffer{
		b: make([]byte, capacity),
	}
}

type buffer struct {
	b []byte
	r int
	w int
	a int
}

func (buf *buffer) Len() (n int) { return buf.w - buf.r }

func (buf *buffer) Cap() (n int) { return len(buf.b) }

func (buf *buffer) Remaining() (n int) { return len(buf.b) - buf.a }

func (buf *buffer) Full() (ok bool) { return buf.a == len(buf.b) }

func (buf *buffer) Peek(n int) (p []byte) {
	bLen := buf.Len()
	if n < 1 || bLen == 0 {
		return
	}
	if n > bLen {
		n = bLen
	}
	p = buf.b[buf.r : buf.r+n]
	return
}

func (buf *buffer) Next(n int) (p []byte, err error) {
	if n < 1 {
		return
	}
	bLen := buf.Len()
	if bLen == 0 {
		err = io.EOF
		return
	}
	if n > bLen {
		n = bLen
	}
	p = make([]byte, n)
	copy(p, buf.b[buf.r:buf.r+n])
	buf.r += n

	buf.tryReset()
	return
}

func (buf *buffer) Read(p []byte) (n int, err error) {
	bLen := buf.Len()
	if bLen == 0 {
		err = io.EOF
		return
	}
	if len(p) == 0 {
		return
	}
	n = copy(p, buf.b[buf.r:buf.w])
	buf.r += n

	buf.tryReset()
	return
}

func (buf *buffer) Discard(n int) (err error) {
	if n < 1 {
		return
	}
	bLen := buf.Len()
	if n > bLen {
		n = bLen
	}
	buf.r += n

	buf.tryReset()
	return
}

func (buf *buffer) Write(p []byte) (n int, err error) {
	if buf.WritePending() {
		err = ErrWriteBeforeAllocatedWrote
		return
	}
	pLen := len(p)
	if pLen == 0 {
		return
	}
	if buf.Full() {
		err = ErrNoCapacity
		return
	}
	n = copy(buf.b[buf.w:], p)
	buf.w += n
	buf.a = buf.w
	if n < pLen {
		err = ErrNoCapacity
	}
	return
}

func (buf *buffer) Allocate(size int) (p []byte, err error) {
	if buf.WritePending() {
		err = ErrWriteBeforeAllocatedWrote
		return
	}
	if size < 1 {
		err = ErrAllocateZero
		return
	}
	if remaining := buf.Remaining(); size > remaining {
		if remaining == 0 {
			err = ErrNoCapacity
			return
		}
		size = remaining
	}
	buf.a += size
	p = buf.b[buf.w : buf.w+size]
	return
}

func (buf *buffer) AllocatedWrote(n int) (err error) {
	if buf.a == buf.w {
		return
	}
	if n == 0 {
		buf.a = buf.w
	} else {
		buf.w += n
		buf.a = buf.w
	}
	return
}

func (buf *buffer) WritePending() (ok bool) { return buf.a != buf.w }

func (buf *buffer) Reset() {
	buf.r = 0
	buf.w = 0
	buf.a = 0
}

func (buf *buffer) tryReset() {
	if buf.r == buf.w && buf.a == buf.w {
		buf.Reset()
	}
}
