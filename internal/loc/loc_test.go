package loc

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestRangeFromBytes(t *testing.T) {
	r := RangeFromBytes(4, 10)
	assert.Equal(t, r.Loc.Start, 4)
	assert.Equal(t, r.Len, 6)
	assert.Equal(t, r.End(), 10)
}

func TestLineTablePositionFor(t *testing.T) {
	src := []byte("const x = 1;\nconst y = <div>\n  <span/>\n</div>;\n")
	table := NewLineTable(src)

	tests := []struct {
		name   string
		offset int
		want   Position
	}{
		{"start of file", 0, Position{Line: 1, Column: 1}},
		{"mid first line", 6, Position{Line: 1, Column: 7}},
		{"start of second line", 13, Position{Line: 2, Column: 1}},
		{"inside third line", 32, Position{Line: 3, Column: 4}},
		{"past end clamps", 1000, Position{Line: 5, Column: 1}},
		{"negative clamps", -1, Position{Line: 1, Column: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.PositionFor(tt.offset)
			assert.Equal(t, got, tt.want)
		})
	}
}

func TestLineTableLineAt(t *testing.T) {
	src := []byte("first\nsecond\nthird")
	table := NewLineTable(src)

	assert.Equal(t, table.LineAt(1), "first")
	assert.Equal(t, table.LineAt(2), "second")
	assert.Equal(t, table.LineAt(3), "third")
	assert.Equal(t, table.LineAt(4), "")
	assert.Equal(t, table.LineAt(0), "")
}
