// Package idf implements language intelligence for EnergyPlus Input Data
// Files: lexical classification for highlighting, record fold regions, and
// cursor context resolution for hover documentation.
//
// IDF is a line-oriented, comma-delimited record format. Each record starts
// with a class-name line ("Zone,") and ends with a semicolon. There is no
// nesting, so the package reconstructs structure from per-line pattern
// matching rather than a full parser.
//
// All functions here are pure and operate only on their arguments; they are
// safe for concurrent use.
package idf

import (
	"regexp"
	"strings"

	"enerdocs.dev/idfls/internal/collections"
)

// CommentMarker introduces a trailing comment. A doubled marker ("!!") is a
// banner comment used to group records.
const CommentMarker = '!'

// Terminator ends a record.
const TerminatorChar = ';'

// classNameRegexp matches a class-name line: an identifier at the very start
// of the line, immediately followed by the field delimiter. The identifier
// charset matches the IDD grammar (letters, digits, colons, underscores,
// spaces, hyphens).
var classNameRegexp = regexp.MustCompile(`^([A-Za-z][A-Za-z0-9:_ -]*),`)

// Keywords are the reserved field values of the format, compared
// case-insensitively.
var Keywords = collections.NewSet(
	"autosize",
	"autocalculate",
	"yes",
	"no",
)

// StripComment removes the trailing comment (the marker and everything after
// it) from a line. The format has no quoted strings, so the first marker
// always starts a comment.
func StripComment(line string) string {
	if idx := strings.IndexByte(line, CommentMarker); idx >= 0 {
		return line[:idx]
	}
	return line
}

// IsRecordStart reports whether a line begins a new record, i.e. whether its
// comment-stripped text matches the class-name pattern. The predicate is
// computed per line and requires no state from surrounding lines.
func IsRecordStart(line string) bool {
	return classNameRegexp.MatchString(StripComment(line))
}

// recordStartName returns the class name of a record-start line and the byte
// length of the matched identifier, or ("", -1) when the line does not start
// a record. The returned name is trimmed of the trailing padding the
// identifier charset admits; the length is the raw span, used for cursor hit
// testing and token spans.
func recordStartName(line string) (name string, length int) {
	m := classNameRegexp.FindStringSubmatch(StripComment(line))
	if m == nil {
		return "", -1
	}
	return strings.TrimSpace(m[1]), len(m[1])
}
