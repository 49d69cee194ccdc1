package header_test

import (
	"bufio"
	"bytes"
	"io"
	"net/textproto"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zostay/go-headerlines/header"
)

var _ io.WriterTo = header.Lines{}

func TestLines_WriteTo(t *testing.T) {
	t.Parallel()

	ls := header.Lines{
		"A: b",
		"C: d",
		"E: f",
		"E: g",
	}

	const expect = "A: b\r\nC: d\r\nE: f\r\nE: g\r\n\r\n"

	buf := &bytes.Buffer{}
	n, err := ls.WriteTo(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(len(expect)), n)
	assert.Equal(t, expect, buf.String())
}

func TestLines_WriteToEmpty(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	n, err := header.Lines{}.WriteTo(buf)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
	assert.Equal(t, "\r\n", buf.String())
}

func TestLines_WriteToFails(t *testing.T) {
	t.Parallel()

	sink := &mockSink{}
	sink.On("Write", "A: b").Return(4, nil).Once()
	sink.On("Write", "\r\n").Return(2, nil).Once()
	sink.On("Write", "C: d").Return(1, errSink).Once()
	sink.On("Write", "\r\n").Return(0, errSink).Twice()

	n, err := header.Lines{"A: b", "C: d", "E: f"}.WriteTo(sink)
	assert.Same(t, errSink, err)
	assert.Equal(t, int64(7), n)

	sink.AssertExpectations(t)
}

func TestLines_TextprotoReadsBack(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	_, err := header.Lines{
		"Content-Type: text/plain",
		"X-Multi: one",
		"X-Multi: two",
	}.WriteTo(buf)
	require.NoError(t, err)
	_, _ = buf.WriteString("the body")

	r := bufio.NewReader(buf)
	h, err := textproto.NewReader(r).ReadMIMEHeader()
	require.NoError(t, err)

	assert.Equal(t, "text/plain", h.Get("Content-Type"))
	assert.Equal(t, []string{"one", "two"}, h.Values("X-Multi"))

	rest, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "the body", strings.TrimSpace(string(rest)))
}
