package field

import (
	"fmt"
	"io"

	"golang.org/x/text/encoding"

	"github.com/zostay/go-headerlines/header"
)

// Field is a single header field with a name and an opaque body. Neither is
// validated: whatever you put in is what gets written.
type Field struct {
	name string
	body string
}

// New returns a field with the given name and body.
func New(name, body string) *Field {
	return &Field{name, body}
}

// Name returns the name of the header field.
func (f *Field) Name() string {
	return f.name
}

// SetName updates the name of the header field.
func (f *Field) SetName(name string) {
	f.name = name
}

// Body returns the value of the header field.
func (f *Field) Body() string {
	return f.body
}

// SetBody updates the body of the header field.
func (f *Field) SetBody(body string) {
	f.body = body
}

// String returns the complete header field as a string, without a line break.
func (f *Field) String() string {
	return f.name + ": " + f.body
}

// WriteTo writes "Name: body" to w without a line break. The usual destination
// is a *header.Line.
func (f *Field) WriteTo(w io.Writer) (int64, error) {
	return writeParts(w, f.name, ": ", f.body)
}

// Encode returns a copy of the field with the body transcoded from UTF-8 into
// enc. A nil enc returns an unchanged copy. The name is never transcoded.
func (f *Field) Encode(enc encoding.Encoding) (*Field, error) {
	if enc == nil {
		return &Field{f.name, f.body}, nil
	}

	body, err := enc.NewEncoder().String(f.body)
	if err != nil {
		return nil, fmt.Errorf("unable to encode body of %s field: %w", f.name, err)
	}

	return &Field{f.name, body}, nil
}

// WriteEncodedTo works like WriteTo, but transcodes the body from UTF-8 into
// enc first. Nothing is written if the body cannot be transcoded.
func (f *Field) WriteEncodedTo(w io.Writer, enc encoding.Encoding) (int64, error) {
	ef, err := f.Encode(enc)
	if err != nil {
		return 0, err
	}

	return ef.WriteTo(w)
}

// Write writes the named field as one complete line of b.
func Write(b *header.Block, name, body string) error {
	return WriteEncoded(b, nil, name, body)
}

// WriteEncoded writes the named field as one complete line of b with the body
// transcoded into enc. The body is transcoded before the line is started, so
// a body that cannot be transcoded leaves b untouched.
func WriteEncoded(b *header.Block, enc encoding.Encoding, name, body string) error {
	f, err := (&Field{name, body}).Encode(enc)
	if err != nil {
		return err
	}

	return b.WriteLine(func(l *header.Line) error {
		_, err := f.WriteTo(l)
		return err
	})
}

func writeParts(w io.Writer, parts ...string) (int64, error) {
	var total int64
	for _, p := range parts {
		n, err := io.WriteString(w, p)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
