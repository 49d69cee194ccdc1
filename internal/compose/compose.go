// Package compose builds complete header sections, for HTTP responses and for
// mail messages, out of the header, field, and status packages.
package compose

import (
	"io"
	"mime"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/text/encoding"

	"github.com/zostay/go-headerlines/header"
	"github.com/zostay/go-headerlines/header/field"
	"github.com/zostay/go-headerlines/header/status"
)

// HTTP describes an HTTP/1.x response header section.
type HTTP struct {
	status.Line

	// Date is written as a Date field right after the status line unless it is
	// the zero time.
	Date time.Time

	// Charset transcodes the field bodies when set.
	Charset encoding.Encoding

	// Fields are written in order after the Date.
	Fields []*field.Field

	// Logger receives debug output per line. May be nil.
	Logger *zerolog.Logger
}

// WriteTo writes the header section to w, ending with the blank line. The
// caller writes the body afterward. Field bodies are transcoded before
// anything is written.
func (h *HTTP) WriteTo(w io.Writer) (int64, error) {
	log := logger(h.Logger)

	fs, err := encodeFields(log, h.Charset, h.Fields)
	if err != nil {
		return 0, err
	}

	n, err := header.Emit(w, func(b *header.Block) error {
		if err := writeLine(b, log, &h.Line); err != nil {
			return err
		}

		if !h.Date.IsZero() {
			f := field.New("Date", field.FormatHTTPDate(h.Date))
			if err := writeLine(b, log, f); err != nil {
				return err
			}
		}

		return writeFields(b, log, fs)
	})

	return finish(log, n, err)
}

// Mail describes an RFC 5322 message header section.
type Mail struct {
	// Date is written first unless it is the zero time.
	Date time.Time

	// From, To, and Cc are address lists. Empty lists are skipped. The others
	// are parsed strictly and rewritten in canonical form.
	From string
	To   string
	Cc   string

	// Subject is skipped when empty and encoded as an RFC 2047 word when it is
	// not plain ASCII.
	Subject string

	// Fields are written in order after the Subject.
	Fields []*field.Field

	// Charset transcodes the bodies of Fields when set. The generated fields
	// are ASCII already and are left alone.
	Charset encoding.Encoding

	// Logger receives debug output per line. May be nil.
	Logger *zerolog.Logger
}

// WriteTo writes the header section to w, ending with the blank line. The
// address lists are checked and the fields transcoded before anything is
// written.
func (m *Mail) WriteTo(w io.Writer) (int64, error) {
	log := logger(m.Logger)

	fs := make([]*field.Field, 0, len(m.Fields)+5)
	if !m.Date.IsZero() {
		fs = append(fs, field.New("Date", field.FormatMailDate(m.Date)))
	}

	for _, a := range []struct{ name, list string }{
		{"From", m.From},
		{"To", m.To},
		{"Cc", m.Cc},
	} {
		if a.list == "" {
			continue
		}

		body, err := field.FormatAddressList(a.list)
		if err != nil {
			log.Error().Err(err).Str("field", a.name).Msg("bad address list")
			return 0, err
		}
		fs = append(fs, field.New(a.name, body))
	}

	if m.Subject != "" {
		fs = append(fs, field.New("Subject", mime.BEncoding.Encode("utf-8", m.Subject)))
	}

	extra, err := encodeFields(log, m.Charset, m.Fields)
	if err != nil {
		return 0, err
	}
	fs = append(fs, extra...)

	n, err := header.Emit(w, func(b *header.Block) error {
		return writeFields(b, log, fs)
	})

	return finish(log, n, err)
}

func encodeFields(log *zerolog.Logger, enc encoding.Encoding, fs []*field.Field) ([]*field.Field, error) {
	if enc == nil {
		return fs, nil
	}

	efs := make([]*field.Field, len(fs))
	for i, f := range fs {
		ef, err := f.Encode(enc)
		if err != nil {
			log.Error().Err(err).Str("field", f.Name()).Msg("bad field body")
			return nil, err
		}
		efs[i] = ef
	}
	return efs, nil
}

func writeFields(b *header.Block, log *zerolog.Logger, fs []*field.Field) error {
	for _, f := range fs {
		if err := writeLine(b, log, f); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(b *header.Block, log *zerolog.Logger, wt io.WriterTo) error {
	var n int64
	err := b.WriteLine(func(l *header.Line) error {
		var err error
		n, err = wt.WriteTo(l)
		return err
	})

	log.Debug().Int64("bytes", n).Err(err).Msg("wrote header line")
	return err
}

func finish(log *zerolog.Logger, n int64, err error) (int64, error) {
	if err != nil {
		log.Error().Err(err).Int64("bytes", n).Msg("header write failed")
		return n, err
	}

	log.Debug().Int64("bytes", n).Msg("header written")
	return n, nil
}

func logger(l *zerolog.Logger) *zerolog.Logger {
	if l == nil {
		nop := zerolog.Nop()
		return &nop
	}
	return l
}
