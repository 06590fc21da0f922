package idf

import "strings"

// HoverContext identifies what the cursor is over: the class name itself, or
// the FieldIndex-th positional field of the enclosing record.
type HoverContext struct {
	ClassName    string
	ClassNameHit bool
	FieldIndex   int // zero-based; meaningful only when !ClassNameHit
}

// ResolveHoverContext determines the record context of a cursor position.
// line and col are zero-based; col is a byte offset into lines[line]. It
// returns nil when the cursor is outside any recognized structure (on a
// comment, a blank line outside a record, or below a closed record).
//
// The resolution never fails: malformed and truncated input resolve to nil,
// and a field index past the schema's field list is returned as-is for the
// lookup layer to miss on.
func ResolveHoverContext(lines []string, line, col int) *HoverContext {
	if line < 0 || line >= len(lines) || col < 0 {
		return nil
	}
	cur := lines[line]

	// Class-name hit test runs first and wins over field resolution: on a
	// record-start line a cursor within the identifier, up to and including
	// the delimiter, names the class.
	if name, length := recordStartName(cur); length >= 0 && col <= length {
		return &HoverContext{ClassName: name, ClassNameHit: true}
	}

	// A cursor inside the comment itself has no structure under it.
	if idx := strings.IndexByte(cur, CommentMarker); idx >= 0 && col >= idx {
		return nil
	}

	startLine, className := findRecordStart(lines, line)
	if startLine < 0 {
		return nil
	}

	return &HoverContext{
		ClassName:  className,
		FieldIndex: fieldIndexAt(lines, startLine, line, col),
	}
}

// findRecordStart locates the class-name line of the record enclosing the
// cursor line. Two phases keep the termination conditions auditable: first
// the nearest class-name line at or above the cursor, then a guard that
// rejects the candidate when any line from it up to (but not including) the
// cursor line contains a terminator, because that terminator already closed
// the candidate record. The guard deliberately skips the cursor line itself:
// a terminator there still belongs to the record the cursor is inside.
func findRecordStart(lines []string, cursorLine int) (int, string) {
	start := -1
	var name string
	for i := cursorLine; i >= 0; i-- {
		if n, length := recordStartName(lines[i]); length >= 0 {
			start = i
			name = n
			break
		}
	}
	if start < 0 {
		return -1, ""
	}

	for i := cursorLine - 1; i >= start; i-- {
		if strings.ContainsRune(StripComment(lines[i]), TerminatorChar) {
			return -1, ""
		}
	}

	return start, name
}

// fieldIndexAt counts field delimiters from the record start to the cursor.
// Comments are stripped before counting, and on the cursor line only text
// strictly before the cursor column participates. The first comma on the
// start line terminates the class name rather than a field value, so one
// comma is deducted when the start line contributed any.
func fieldIndexAt(lines []string, startLine, cursorLine, col int) int {
	total := 0
	startContributed := 0

	for i := startLine; i <= cursorLine; i++ {
		text := StripComment(lines[i])
		if i == cursorLine && col < len(text) {
			text = text[:col]
		}
		n := strings.Count(text, ",")
		if i == startLine {
			startContributed = n
		}
		total += n
	}

	if startContributed > 0 {
		total--
	}
	if total < 0 {
		total = 0
	}
	return total
}
