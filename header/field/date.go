package field

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/araddon/dateparse"
)

// Date layouts used in header field bodies.
const (
	// HTTPDateFormat is the IMF-fixdate layout from RFC 7231. Times must be in
	// UTC when formatted with it.
	HTTPDateFormat = "Mon, 02 Jan 2006 15:04:05 GMT"

	// MailDateFormat is the date-time layout from RFC 5322.
	MailDateFormat = time.RFC1123Z
)

// FormatHTTPDate formats t for use in an HTTP Date, Expires, or Last-Modified
// field.
func FormatHTTPDate(t time.Time) string {
	return t.UTC().Format(HTTPDateFormat)
}

// FormatMailDate formats t for use in an RFC 5322 Date field.
func FormatMailDate(t time.Time) string {
	return t.Format(MailDateFormat)
}

// ParseTime reads a date in just about any format. It tries RFC 5322 first and
// falls back to guessing the layout.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf("time string %q cannot be parsed", body)
}
