//go:build unix

package fdio_test

import (
	"github.com/brickingsoft/fdio"
	"github.com/brickingsoft/fdio/pkg/bytebuffers"
	"golang.org/x/sys/unix"
	"testing"
	"time"
)

func TestFdWriter_Write(t *testing.T) {
	r, w := newPipe(t)
	defer r.Close()
	defer w.Close()

	wr := fdio.NewFdWriter("test", int(w.Fd()), time.Second)
	buf := bytebuffers.NewBuffer(16)
	_, _ = buf.Write([]byte("0123456789"))
	n, err := wr.Write(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 10 || buf.Len() != 0 {
		t.Fatal(n, buf.Len())
	}
	p := make([]byte, 16)
	rn, rErr := r.Read(p)
	if rErr != nil {
		t.Fatal(rErr)
	}
	if string(p[:rn]) != "0123456789" {
		t.Fatal(string(p[:rn]))
	}
}

func TestFdWriter_EmptyBuffer(t *testing.T) {
	r, w := newPipe(t)
	defer r.Close()
	defer w.Close()

	wr := fdio.NewFdWriter("test", int(w.Fd()), time.Second)
	n, err := wr.Write(bytebuffers.NewBuffer(8))
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Fatal(n)
	}
}

func TestFdWriter_Timeout(t *testing.T) {
	r, w := newPipe(t)
	defer r.Close()
	defer w.Close()

	// stuff the pipe so the descriptor never becomes writable
	wfd := int(w.Fd())
	if err := unix.SetNonblock(wfd, true); err != nil {
		t.Fatal(err)
	}
	junk := make([]byte, 65536)
	for {
		if _, err := unix.Write(wfd, junk); err != nil {
			break
		}
	}

	wr := fdio.NewFdWriter("test", wfd, 100*time.Millisecond)
	buf := bytebuffers.NewBuffer(8)
	_, _ = buf.Write([]byte("01234"))
	begin := time.Now()
	_, err := wr.Write(buf)
	if !fdio.IsWriteTimeoutError(err) {
		t.Fatal(err)
	}
	if elapsed := time.Since(begin); elapsed < 90*time.Millisecond {
		t.Fatal(elapsed)
	}
	// nothing was drained
	if buf.Len() != 5 {
		t.Fatal(buf.Len())
	}
}

func TestFdWriter_WriteError(t *testing.T) {
	// a read only regular file polls writable but write(2) refuses it
	fd, openErr := unix.Open("go.mod", unix.O_RDONLY, 0)
	if openErr != nil {
		t.Fatal(openErr)
	}
	defer unix.Close(fd)

	wr := fdio.NewFdWriter("test", fd, time.Second)
	buf := bytebuffers.NewBuffer(8)
	_, _ = buf.Write([]byte("01234"))
	_, err := wr.Write(buf)
	if !fdio.IsWriteError(err) {
		t.Fatal(err)
	}
	// the failed write drained nothing
	if buf.Len() != 5 {
		t.Fatal(buf.Len())
	}
}

func TestFdWriter_ReadinessWaitError(t *testing.T) {
	r, w := newPipe(t)
	defer r.Close()

	fd := int(w.Fd())
	_ = w.Close()

	wr := fdio.NewFdWriter("test", fd, 100*time.Millisecond)
	buf := bytebuffers.NewBuffer(8)
	_, _ = buf.Write([]byte("01234"))
	_, err := wr.Write(buf)
	if !fdio.IsReadinessWaitError(err) {
		t.Fatal(err)
	}
}

func TestFdWriter_Fd(t *testing.T) {
	r, w := newPipe(t)
	defer r.Close()
	defer w.Close()

	fd := int(w.Fd())
	wr := fdio.NewFdWriter("test", fd, time.Second)
	if wr.Fd() != fd {
		t.Fatal(wr.Fd(), fd)
	}
}

func TestFdWriter_NegativeFd(t *testing.T) {
	defer func() {
		if recovered := recover(); recovered == nil {
			t.Fatal("panic expected")
		}
	}()
	_ = fdio.NewFdWriter("test", -1, time.Second)
}
