package changes

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/coreos/go-semver/semver"
)

// CheckMode selects how strict the linter is about the WIP line.
type CheckMode int

const (
	CheckStandard   CheckMode = iota // WIP allowed on line 1
	CheckPreRelease                  // WIP required on line 1
	CheckRelease                     // WIP forbidden
)

// Failure is one problem found in the change log.
type Failure struct {
	Line    int
	Message string
}

// Error is returned by Lint when any check fails.
type Error struct {
	Failures []Failure
}

func (e *Error) Error() string {
	buf := &strings.Builder{}
	buf.WriteString("change log check failed:")
	for _, f := range e.Failures {
		_, _ = fmt.Fprintf(buf, "\n * line %d: %s", f.Line, f.Message)
	}
	return buf.String()
}

type linter struct {
	mode     CheckMode
	failures []Failure

	lastVersion *semver.Version
	lastDate    string
	lastHeading int
	prev        lineKind
	inBullet    bool
}

// Lint reads a change log from r and returns an *Error listing every problem
// found, or nil when there are none.
func Lint(r io.Reader, mode CheckMode) error {
	l := &linter{mode: mode, prev: lineBlank}

	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		l.check(n, sc.Text())
	}

	if err := sc.Err(); err != nil {
		return err
	}

	if len(l.failures) > 0 {
		return &Error{l.failures}
	}

	return nil
}

func (l *linter) fail(n int, f string, args ...any) {
	l.failures = append(l.failures, Failure{n, fmt.Sprintf(f, args...)})
}

func (l *linter) check(n int, line string) {
	kind, m := classify(line)

	if n == 1 && kind != lineWIP && l.mode == CheckPreRelease {
		l.fail(n, "WIP not found during pre-release check")
	}

	switch kind {
	case lineWIP:
		if n > 1 {
			l.fail(n, "WIP found after line 1")
		}
		if l.mode == CheckRelease {
			l.fail(n, "found WIP line during release")
		}
		l.lastHeading = n

	case lineHeading:
		l.checkHeading(n, m[0], m[1])

	case lineBullet:
		switch {
		case l.lastHeading == 0:
			l.fail(n, "log bullet before first version heading or WIP")
		case n == l.lastHeading+1:
			l.fail(n, "missing blank line before log bullet")
		case l.prev == lineBlank && n > l.lastHeading+2:
			l.fail(n, "extra blank line before log bullet")
		}

	case lineContinuation:
		if l.prev != lineBullet && l.prev != lineContinuation {
			l.fail(n, "log line continuation has no bullet to continue")
			kind = lineBad
		}

	case lineBlank:
		if l.prev == lineBlank && n > 1 {
			l.fail(n, "consecutive blank lines")
		}

	case lineWhitespace:
		l.fail(n, "line looks blank, but has spaces in it")

	default:
		l.fail(n, "badly formatted line")
	}

	l.prev = kind
}

func (l *linter) checkHeading(n int, ver, date string) {
	if n > 1 && l.prev != lineBlank {
		l.fail(n, "version heading line missing blank line before it")
	}

	version, err := semver.NewVersion(ver)
	if err != nil {
		l.fail(n, "unable to parse version number in heading")
		l.lastHeading = n
		return
	}

	// headings run newest to oldest
	if l.lastVersion != nil && l.lastVersion.LessThan(*version) {
		l.fail(n, "version error %s > %s from an earlier heading", version, l.lastVersion)
	}

	if l.lastDate != "" && l.lastDate < date {
		l.fail(n, "date error %s > %s from an earlier heading", date, l.lastDate)
	}

	l.lastVersion = version
	l.lastDate = date
	l.lastHeading = n
}
