// Package changes checks and reads the project change log, Changes.md.
//
// The change log starts with an optional "WIP" line for unreleased work,
// followed by one section per release, newest first:
//
//	WIP
//
//	 * Something not yet released.
//
//	v0.1.0  2026-10-19
//
//	 * First release.
//	   A bullet may continue on lines indented three spaces.
package changes

import "regexp"

// Filename is the change log file at the root of the repository.
const Filename = "Changes.md"

type lineKind int

const (
	lineBad lineKind = iota
	lineWIP
	lineHeading
	lineBullet
	lineContinuation
	lineBlank
	lineWhitespace
)

var (
	versionHeading      = regexp.MustCompile(`^v(\d\S+) {2}(20\d\d-\d\d-\d\d)$`)
	logLineStart        = regexp.MustCompile(`^ \* (.*)$`)
	logLineContinuation = regexp.MustCompile(`^ {3}(.*)$`)
	whitespaceLine      = regexp.MustCompile(`^\s+$`)
)

func classify(line string) (lineKind, []string) {
	switch {
	case line == "WIP" || line == "WIP  TBD":
		return lineWIP, nil
	case line == "":
		return lineBlank, nil
	case whitespaceLine.MatchString(line):
		return lineWhitespace, nil
	}

	if m := versionHeading.FindStringSubmatch(line); m != nil {
		return lineHeading, m[1:]
	}

	if logLineStart.MatchString(line) {
		return lineBullet, nil
	}

	if logLineContinuation.MatchString(line) {
		return lineContinuation, nil
	}

	return lineBad, nil
}
