package loc

import "bytes"

// LineTable maps byte offsets within a source file to 1-based line/column
// positions, without needing a source map.
type LineTable struct {
	src         []byte
	lineOffsets []int
}

// NewLineTable scans src once for newline offsets.
func NewLineTable(src []byte) *LineTable {
	offsets := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return &LineTable{src: src, lineOffsets: offsets}
}

// PositionFor converts a 0-based byte offset into a 1-based line/column.
// Column is measured in bytes from the start of the line, not runes; the
// offending constructs here (tags, identifiers, punctuation) are ASCII, so
// this matches what an editor would show closely enough for a diagnostic.
func (t *LineTable) PositionFor(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(t.src) {
		offset = len(t.src)
	}
	line := lastOffsetIndex(t.lineOffsets, offset)
	return Position{Line: line + 1, Column: offset - t.lineOffsets[line] + 1}
}

// lastOffsetIndex returns the index of the last offset <= target.
func lastOffsetIndex(offsets []int, target int) int {
	lo, hi := 0, len(offsets)-1
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if offsets[mid] <= target {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	return lo
}

// LineAt returns the raw text of the 1-based line, without its terminator.
func (t *LineTable) LineAt(line int) string {
	if line < 1 || line > len(t.lineOffsets) {
		return ""
	}
	start := t.lineOffsets[line-1]
	end := len(t.src)
	if line < len(t.lineOffsets) {
		end = t.lineOffsets[line] - 1
	}
	if idx := bytes.IndexByte(t.src[start:end], '\n'); idx >= 0 {
		end = start + idx
	}
	return string(t.src[start:end])
}
