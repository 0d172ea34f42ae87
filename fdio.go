// Package fdio provides pull and push byte-stream drivers over raw file
// descriptors. Drivers move bytes between a descriptor and a caller supplied
// buffer, bound every wait for readiness by a timeout, and surface OS level
// failures as typed errors. They never open or close the descriptor, its
// lifecycle belongs to the owning resource.
package fdio

import (
	"github.com/brickingsoft/fdio/pkg/bytebuffers"
)

// Reader is the pull side of a byte stream. Implementations are bound to one
// transport each, a raw descriptor here, encrypted sockets or decompression
// layers elsewhere.
//
// Read delivers bytes into buf's writable tail and advances its used length.
// When block is true it keeps reading until buf is full or the stream ends,
// otherwise it performs exactly one attempt. The returned count is the byte
// count of the last underlying read of the call, the buffer's own length
// reports the total. EOF reports whether the end of the stream has been
// observed, once true it never reverts. Blocking reports whether the
// implementation honors block=true.
type Reader interface {
	Read(buf bytebuffers.Buffer, block bool) (n int, err error)
	EOF() (ok bool)
	Fd() (fd int)
	Blocking() (ok bool)
}

// Writer is the push side of a byte stream. Write drains buf's readable
// bytes into the descriptor and returns the total written.
type Writer interface {
	Write(buf bytebuffers.Buffer) (n int, err error)
	Fd() (fd int)
}
