package fdio

import (
	"github.com/brickingsoft/fdio/pkg/bytebuffers"
	"github.com/rs/zerolog"
	"time"
)

// NewTraceReader wraps next with per call trace logging. Drivers carry no
// logging of their own, tracing is applied at the interface boundary.
func NewTraceReader(next Reader, logger zerolog.Logger) Reader {
	return &traceReader{
		next:   next,
		logger: logger,
	}
}

type traceReader struct {
	next   Reader
	logger zerolog.Logger
}

func (r *traceReader) Read(buf bytebuffers.Buffer, block bool) (n int, err error) {
	begin := time.Now()
	n, err = r.next.Read(buf, block)
	r.logger.Trace().
		Int("fd", r.next.Fd()).
		Bool("block", block).
		Int("bytes", n).
		Bool("eof", r.next.EOF()).
		Dur("elapsed", time.Since(begin)).
		Err(err).
		Msg("read")
	return
}

func (r *traceReader) EOF() (ok bool) {
	return r.next.EOF()
}

func (r *traceReader) Fd() (fd int) {
	return r.next.Fd()
}

func (r *traceReader) Blocking() (ok bool) {
	return r.next.Blocking()
}

// NewTraceWriter is the Writer counterpart of NewTraceReader.
func NewTraceWriter(next Writer, logger zerolog.Logger) Writer {
	return &traceWriter{
		next:   next,
		logger: logger,
	}
}

type traceWriter struct {
	next   Writer
	logger zerolog.Logger
}

func (w *traceWriter) Write(buf bytebuffers.Buffer) (n int, err error) {
	begin := time.Now()
	n, err = w.next.Write(buf)
	w.logger.Trace().
		Int("fd", w.next.Fd()).
		Int("bytes", n).
		Dur("elapsed", time.Since(begin)).
		Err(err).
		Msg("write")
	return
}

func (w *traceWriter) Fd() (fd int) {
	return w.next.Fd()
}
