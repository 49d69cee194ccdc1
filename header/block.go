package header

import (
	"fmt"
	"io"
)

// flusher is implemented by buffered writers such as *bufio.Writer.
type flusher interface {
	Flush() error
}

// Block writes out the lines of a header section. A header section is made of
// any number of lines, each terminated by a CRLF, followed by a final CRLF
// before the body begins.
//
// A Block is not safe for concurrent use. It holds the writer exclusively
// until Close() is called: do not write to the underlying io.Writer yourself
// except through a Line the Block hands you.
type Block struct {
	w      io.Writer
	line   *Line
	closed bool
	n      int64
}

// NewBlock returns a Block that writes into w. No bytes are written until the
// first Line is written to.
func NewBlock(w io.Writer) *Block {
	return &Block{w: w}
}

// Line starts a new header line and returns it. The Line must be closed before
// Line() or Close() may be called on the Block again.
//
// This panics with ErrLineOpen if the previously returned Line is still open
// and with ErrClosed if the Block has been closed.
func (b *Block) Line() *Line {
	if b.closed {
		panic(ErrClosed)
	}

	if b.line != nil {
		panic(ErrLineOpen)
	}

	b.line = &Line{b: b}
	return b.line
}

// Close terminates the header section by writing the blank line that precedes
// the body. If the underlying writer has a Flush() error method, it is flushed
// afterward. Any error from the writer is returned as-is.
//
// After Close() returns, the caller may write the body straight into the
// io.Writer the Block was created with. Calling Close() again returns ErrClosed
// without writing anything. Calling it while a Line is still open panics with
// ErrLineOpen.
func (b *Block) Close() error {
	if b.closed {
		return ErrClosed
	}

	if b.line != nil {
		panic(ErrLineOpen)
	}

	b.closed = true
	if err := b.terminate(); err != nil {
		return err
	}

	return b.flush()
}

// Written returns the number of bytes the underlying writer has accepted from
// this Block so far, terminators included.
func (b *Block) Written() int64 {
	return b.n
}

// WriteLine opens a Line, passes it to fn, and closes it when fn returns. The
// line terminator is written even if fn returns an error or panics. In that
// case, a failure to write the terminator is dropped and the error (or panic)
// from fn is passed along unchanged.
func (b *Block) WriteLine(fn func(*Line) error) error {
	l := b.Line()
	defer func() {
		if r := recover(); r != nil {
			_ = l.closeIfOpen()
			panic(r)
		}
	}()

	if err := fn(l); err != nil {
		_ = l.closeIfOpen()
		return err
	}

	return l.closeIfOpen()
}

// Printf writes a single header line formatted according to format.
func (b *Block) Printf(format string, args ...any) error {
	return b.WriteLine(func(l *Line) error {
		_, err := fmt.Fprintf(l, format, args...)
		return err
	})
}

// abort finishes whatever is left open, ignoring errors. It is used on paths
// that are already failing.
func (b *Block) abort() {
	if b.line != nil {
		_ = b.line.Close()
	}

	if !b.closed {
		_ = b.Close()
	}
}

func (b *Block) terminate() error {
	n, err := b.w.Write(crlf)
	b.n += int64(n)
	if err == nil && n < len(crlf) {
		err = io.ErrShortWrite
	}
	return err
}

func (b *Block) flush() error {
	if f, isFlusher := b.w.(flusher); isFlusher {
		return f.Flush()
	}
	return nil
}

// Emit creates a Block on w, calls fn with it, and closes the Block. It returns
// the number of bytes written along with the first error encountered.
//
// If fn returns an error or panics, any open Line and the Block are still
// terminated on a best-effort basis: errors from writing those terminators are
// dropped so that the original failure is what the caller sees.
//
// If fn closes the Block itself, Emit does not close it again.
func Emit(w io.Writer, fn func(*Block) error) (int64, error) {
	b := NewBlock(w)
	defer func() {
		if r := recover(); r != nil {
			b.abort()
			panic(r)
		}
	}()

	if err := fn(b); err != nil {
		b.abort()
		return b.n, err
	}

	if b.closed {
		return b.n, nil
	}

	err := b.Close()
	return b.n, err
}
