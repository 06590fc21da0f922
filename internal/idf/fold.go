package idf

import "strings"

// Region is one foldable record extent, as inclusive zero-based line numbers.
type Region struct {
	Start int
	End   int
}

// FoldRegions scans the buffer once and returns one region per record,
// ordered by start line and non-overlapping.
//
// A record opens on a class-name line and closes on the line whose
// comment-stripped, trimmed text ends with the terminator. A class-name line
// encountered while a record is still open closes the open record at the
// previous line: the next record's start implicitly terminates a malformed
// predecessor. A record still open at end of input is dropped rather than
// given a fabricated end, and a record confined to its start line is not
// worth folding, so neither produces a region.
func FoldRegions(lines []string) []Region {
	var regions []Region
	open := -1

	for i, line := range lines {
		if IsRecordStart(line) {
			if open >= 0 && i-1 > open {
				regions = append(regions, Region{Start: open, End: i - 1})
			}
			open = i
		}
		if open < 0 {
			continue
		}
		stripped := strings.TrimSpace(StripComment(line))
		if strings.HasSuffix(stripped, ";") {
			if i > open {
				regions = append(regions, Region{Start: open, End: i})
			}
			open = -1
		}
	}

	return regions
}
