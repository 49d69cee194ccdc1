// Package status writes the start line of an HTTP/1.x response, e.g.
// "HTTP/1.1 200 OK", as the first line of a header.Block.
package status

import (
	"io"
	"strconv"

	"github.com/zostay/go-headerlines/header"
)

// DefaultProto is the protocol version written when none is given.
const DefaultProto = "HTTP/1.1"

// Line is an HTTP/1.x status line.
type Line struct {
	// Proto is the protocol version, e.g. "HTTP/1.0". It defaults to
	// DefaultProto when empty.
	Proto string

	// Code is the status code. It is written as-is, without range checks.
	Code int

	// Reason is the reason phrase. When empty, Reason(Code) is used, which may
	// also be empty for unknown codes.
	Reason string
}

// String returns the status line without a line break.
func (s *Line) String() string {
	return s.proto() + " " + strconv.Itoa(s.Code) + " " + s.reason()
}

// WriteTo writes the status line to w without a line break.
func (s *Line) WriteTo(w io.Writer) (int64, error) {
	var (
		codeBuf [20]byte
		total   int64
	)

	n, err := io.WriteString(w, s.proto())
	total += int64(n)
	if err != nil {
		return total, err
	}

	code := strconv.AppendInt(append(codeBuf[:0], ' '), int64(s.Code), 10)
	n, err = w.Write(append(code, ' '))
	total += int64(n)
	if err != nil {
		return total, err
	}

	n, err = io.WriteString(w, s.reason())
	total += int64(n)
	return total, err
}

func (s *Line) proto() string {
	if s.Proto == "" {
		return DefaultProto
	}
	return s.Proto
}

func (s *Line) reason() string {
	if s.Reason == "" {
		return Reason(s.Code)
	}
	return s.Reason
}

// Write writes the status line as a complete line of b. It ought to be the
// first line written to b.
func Write(b *header.Block, proto string, code int, reason string) error {
	s := Line{proto, code, reason}
	return b.WriteLine(func(l *header.Line) error {
		_, err := s.WriteTo(l)
		return err
	})
}
