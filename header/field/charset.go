package field

import (
	"errors"
	"fmt"

	"golang.org/x/text/encoding"
	_ "golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnsupportedCharset is returned by Charset when the name is a registered
// IANA charset that has no encoder available.
var ErrUnsupportedCharset = errors.New("unsupported charset")

// Charset looks up the encoding for the named MIME charset, e.g. "ISO-8859-1".
// An empty name returns a nil encoding.Encoding and no error, which the
// WriteEncoded functions treat as "write as-is".
func Charset(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, nil
	}

	e, err := ianaindex.MIME.Encoding(name)
	if err != nil {
		return nil, err
	}

	if e == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCharset, name)
	}

	return e, nil
}
