package header_test

import (
	"errors"

	"github.com/stretchr/testify/mock"
)

var errSink = errors.New("sink is broken")

// mockSink is an io.Writer whose results are scripted per call.
type mockSink struct {
	mock.Mock
}

func (m *mockSink) Write(p []byte) (int, error) {
	args := m.Called(string(p))
	return args.Int(0), args.Error(1)
}

// shortSink accepts at most max bytes per Write without reporting an error.
type shortSink struct {
	max int
	got []byte
}

func (s *shortSink) Write(p []byte) (int, error) {
	if len(p) > s.max {
		p = p[:s.max]
	}
	s.got = append(s.got, p...)
	return len(p), nil
}

var errFlush = errors.New("flush is broken")

// flushSink accepts every write and fails every Flush.
type flushSink struct {
	got     []byte
	flushes int
}

func (s *flushSink) Write(p []byte) (int, error) {
	s.got = append(s.got, p...)
	return len(p), nil
}

func (s *flushSink) Flush() error {
	s.flushes++
	return errFlush
}
