package changes

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Extract returns the bullets written under the heading for version vstring
// (e.g. "v0.1.0"), one per line, with the leading indentation kept.
func Extract(r io.Reader, vstring string) (string, error) {
	var (
		prefix  = vstring + "  "
		sc      = bufio.NewScanner(r)
		started = false
		buf     = &strings.Builder{}
	)

	for sc.Scan() {
		line := sc.Text()
		if !started {
			started = strings.HasPrefix(line, prefix)
			continue
		}

		kind, _ := classify(line)
		if kind == lineHeading {
			break
		}

		if kind == lineBlank {
			continue
		}

		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	if err := sc.Err(); err != nil {
		return "", err
	}

	if !started {
		return "", fmt.Errorf("a change log section for version %s was not found", vstring)
	}

	return buf.String(), nil
}
