package textparser

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/textparser-go/textparser/ascii"
)

// DefaultMarker is inserted by MarkupLine at the offending offset
const DefaultMarker = ">>!<<"

// Line returns the 1-based line number of byte `offset` within `text`
func Line(text string, offset int) int {
	offset = clampOffset(text, offset)
	return strings.Count(text[:offset], "\n") + 1
}

// Column returns the 1-based column of byte `offset` within `text`.
// Columns are counted in runes.
func Column(text string, offset int) int {
	offset = clampOffset(text, offset)
	start := strings.LastIndexByte(text[:offset], '\n') + 1
	return utf8.RuneCountInString(text[start:offset]) + 1
}

// MarkupLine returns the line of `text` that contains `offset` with
// `marker` inserted right at the offset
func MarkupLine(text string, offset int, marker string) string {
	offset = clampOffset(text, offset)
	begin := strings.LastIndexByte(text[:offset], '\n') + 1
	end := strings.IndexByte(text[offset:], '\n')
	if end == -1 {
		end = len(text)
	} else {
		end += offset
	}
	return text[begin:offset] + marker + text[offset:end]
}

// Highlight renders the line containing `offset` with the default
// marker painted with the error color of `theme`
func Highlight(text string, offset int, theme ascii.Theme) string {
	return MarkupLine(text, offset, ascii.Color(theme.Error, "%s", DefaultMarker))
}

func clampOffset(text string, offset int) int {
	if offset < 0 {
		return 0
	}
	if offset > len(text) {
		return len(text)
	}
	return offset
}

// PosIndex answers line/column questions for many offsets of the
// same input without rescanning it each time
type PosIndex struct {
	input string

	// lineStart holds byte 0-based offsets of each line start
	lineStart []int
}

// NewPosIndex indexes the line starts of `input`
func NewPosIndex(input string) *PosIndex {
	// Always include line 1 starting at offset 0.
	lineStart := make([]int, 1, 64)
	for i := 0; i < len(input); i++ {
		if input[i] == '\n' {
			// next line starts after '\n'
			lineStart = append(lineStart, i+1)
		}
	}
	return &PosIndex{input: input, lineStart: lineStart}
}

// LineCol returns the 1-based line and rune column of `offset`
func (pi *PosIndex) LineCol(offset int) (int, int) {
	offset = clampOffset(pi.input, offset)

	// Find first lineStart > offset, then step back one.
	lineIdx := sort.Search(len(pi.lineStart), func(i int) bool {
		return pi.lineStart[i] > offset
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}
	start := pi.lineStart[lineIdx]
	return lineIdx + 1, utf8.RuneCountInString(pi.input[start:offset]) + 1
}
