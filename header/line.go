package header

import "io"

// Line writes out one header line. Bytes written to it are passed directly to
// the io.Writer of the Block that produced it. Closing the Line terminates it
// with a CRLF.
//
// The bytes written must not contain a CRLF. This is not checked.
type Line struct {
	b      *Block
	closed bool
}

var (
	_ io.WriteCloser  = (*Line)(nil)
	_ io.StringWriter = (*Line)(nil)
)

// Write forwards p to the underlying writer and returns whatever that writer
// returns. It returns ErrClosed if the Line has been closed.
func (l *Line) Write(p []byte) (int, error) {
	if l.closed {
		return 0, ErrClosed
	}

	n, err := l.b.w.Write(p)
	l.b.n += int64(n)
	return n, err
}

// WriteString works like Write, but avoids a copy when the underlying writer
// implements io.StringWriter.
func (l *Line) WriteString(s string) (int, error) {
	if l.closed {
		return 0, ErrClosed
	}

	n, err := io.WriteString(l.b.w, s)
	l.b.n += int64(n)
	return n, err
}

// Flush flushes the underlying writer if it has a Flush() error method and
// does nothing otherwise.
func (l *Line) Flush() error {
	if l.closed {
		return ErrClosed
	}

	return l.b.flush()
}

// Close terminates the line with a CRLF and hands the writer back to the Block.
// Any error from the writer is returned as-is. Calling Close() a second time
// returns ErrClosed without writing anything.
func (l *Line) Close() error {
	if l.closed {
		return ErrClosed
	}

	l.closed = true
	l.b.line = nil
	return l.b.terminate()
}

func (l *Line) closeIfOpen() error {
	if l.closed {
		return nil
	}
	return l.Close()
}
