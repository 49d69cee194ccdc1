package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	rootCmd := NewRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestHTTP(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "hello",
		"http",
		"-H", "Host: iana.org",
		"--body", "-",
	)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 200 OK\r\nHost: iana.org\r\n\r\nhello", out)
}

func TestHTTP_Flags(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "",
		"http",
		"--proto", "HTTP/1.0",
		"--status", "404",
		"--date", "Sun, 06 Nov 1994 08:49:37 GMT",
		"--charset", "ISO-8859-1",
		"-H", "X-Name:   Zoë  ",
		"-H", "Content-Length: 0",
	)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.0 404 Not Found\r\n"+
		"Date: Sun, 06 Nov 1994 08:49:37 GMT\r\n"+
		"X-Name: Zo\xeb\r\n"+
		"Content-Length: 0\r\n"+
		"\r\n", out)
}

func TestHTTP_Profile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "teapot.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
status = 418
reason = "I'm a teapot"

[[header]]
name = "Server"
value = "hdrline"
`), 0o600))

	body := filepath.Join(dir, "body.txt")
	require.NoError(t, os.WriteFile(body, []byte("short and stout"), 0o600))

	out, logs, err := run(t, "",
		"http",
		"--profile", path,
		"--reason", "Teapot",
		"-H", "Content-Length: 15",
		"--body", body,
		"-v",
	)
	require.NoError(t, err)
	assert.Equal(t, "HTTP/1.1 418 Teapot\r\n"+
		"Server: hdrline\r\n"+
		"Content-Length: 15\r\n"+
		"\r\n"+
		"short and stout", out)
	assert.Contains(t, logs, "loaded profile")
	assert.Contains(t, logs, "header written")
}

func TestHTTP_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"bad header", []string{"http", "-H", "no colon here"}},
		{"empty name", []string{"http", "-H", ": value"}},
		{"bad charset", []string{"http", "--charset", "x-no-such-charset"}},
		{"bad date", []string{"http", "--date", "not a date at all"}},
		{"missing profile", []string{"http", "--profile", "/no/such/profile.toml"}},
		{"extra args", []string{"http", "surprise"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, _, err := run(t, "", tt.args...)
			assert.Error(t, err)
			assert.Empty(t, out)
		})
	}
}

func TestMail(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "Hello World!\r\n",
		"mail",
		"--date", "2022-12-05T16:46:38Z",
		"--from", "sterling@example.com",
		"--to", "steve@example.com, bob@example.com",
		"--subject", "A message to nowhere",
		"-H", "X-Mailer: hdrline",
		"--body", "-",
	)
	require.NoError(t, err)
	assert.Equal(t, "Date: Mon, 05 Dec 2022 16:46:38 +0000\r\n"+
		"From: sterling@example.com\r\n"+
		"To: steve@example.com, bob@example.com\r\n"+
		"Subject: A message to nowhere\r\n"+
		"X-Mailer: hdrline\r\n"+
		"\r\n"+
		"Hello World!\r\n", out)
}

func TestMail_Charset(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "",
		"mail",
		"--from", "sterling@example.com",
		"--charset", "ISO-8859-1",
		"-H", "X-Name: Zoë",
	)
	require.NoError(t, err)
	assert.Equal(t, "From: sterling@example.com\r\n"+
		"X-Name: Zo\xeb\r\n"+
		"\r\n", out)

	out, _, err = run(t, "", "mail", "--charset", "x-no-such-charset")
	assert.Error(t, err)
	assert.Empty(t, out)

	out, _, err = run(t, "", "mail", "--charset", "ISO-8859-1", "-H", "X-Snow: ☃")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestMail_BadAddress(t *testing.T) {
	t.Parallel()

	out, _, err := run(t, "", "mail", "--to", "<<<not an address")
	assert.Error(t, err)
	assert.Empty(t, out)
}

func TestParseDate(t *testing.T) {
	fixed := time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)
	oldNow := now
	now = func() time.Time { return fixed }
	defer func() { now = oldNow }()

	d, err := parseDate("now")
	require.NoError(t, err)
	assert.Equal(t, fixed, d)

	d, err = parseDate("")
	require.NoError(t, err)
	assert.True(t, d.IsZero())
}
