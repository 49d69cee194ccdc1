// Package profile loads TOML files describing a reusable HTTP response header:
// the status line, the charset for field bodies, and a list of fields.
//
//	proto = "HTTP/1.1"
//	status = 404
//	charset = "ISO-8859-1"
//
//	[[header]]
//	name = "Server"
//	value = "hdrline"
package profile

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/zostay/go-headerlines/header/status"
)

// Field is one header field from a profile.
type Field struct {
	Name  string `toml:"name"`
	Value string `toml:"value"`
}

// Profile is a decoded profile file.
type Profile struct {
	Proto   string  `toml:"proto"`
	Status  int     `toml:"status"`
	Reason  string  `toml:"reason"`
	Date    string  `toml:"date"`
	Charset string  `toml:"charset"`
	Headers []Field `toml:"header"`
}

// Default returns the profile used when no file is given: an empty
// "HTTP/1.1 200 OK" response.
func Default() Profile {
	return Profile{
		Proto:  status.DefaultProto,
		Status: 200,
	}
}

// Load reads the profile stored at path.
func Load(path string) (Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return Profile{}, fmt.Errorf("profile load failed (%s): %w", path, err)
	}
	defer func() { _ = f.Close() }()

	p, err := Decode(f)
	if err != nil {
		return Profile{}, fmt.Errorf("profile parse failed (%s): %w", path, err)
	}

	return p, nil
}

// Decode reads a profile from r. Keys missing from the input keep the values
// from Default(). Unknown keys are an error.
func Decode(r io.Reader) (Profile, error) {
	var raw Profile
	meta, err := toml.NewDecoder(r).Decode(&raw)
	if err != nil {
		return Profile{}, err
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Profile{}, fmt.Errorf("unknown profile keys: %s", strings.Join(keys, ", "))
	}

	p := Default()
	if meta.IsDefined("proto") {
		p.Proto = strings.TrimSpace(raw.Proto)
	}
	if meta.IsDefined("status") {
		p.Status = raw.Status
	}
	p.Reason = raw.Reason
	p.Date = strings.TrimSpace(raw.Date)
	p.Charset = strings.TrimSpace(raw.Charset)
	p.Headers = raw.Headers

	for i, h := range p.Headers {
		if strings.TrimSpace(h.Name) == "" {
			return Profile{}, fmt.Errorf("header %d in profile has no name", i+1)
		}
	}

	return p, nil
}
