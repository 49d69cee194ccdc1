package field

import "github.com/zostay/go-addr/pkg/addr"

// FormatAddressList strictly parses an RFC 5322 address list and returns it in
// canonical form, suitable for a From, To, or Cc field body.
func FormatAddressList(list string) (string, error) {
	al, err := addr.ParseEmailAddressList(list)
	if err != nil {
		return "", err
	}

	return al.String(), nil
}
