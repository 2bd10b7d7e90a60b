package text

import (
	"testing"

	"gotest.tools/v3/assert"
)

func foldString(t *testing.T, s string) string {
	t.Helper()
	buf := []byte(s)
	n := FoldWhitespace(buf, 0, len(buf))
	return string(buf[:n])
}

func TestFoldWhitespaceCollapsesRuns(t *testing.T) {
	assert.Equal(t, foldString(t, "a   b\t\tc\n\nd"), "a b c d")
}

func TestFoldWhitespaceTrimsBorders(t *testing.T) {
	assert.Equal(t, foldString(t, "   hello world   "), "hello world")
}

func TestFoldWhitespaceIdempotent(t *testing.T) {
	once := foldString(t, "  a   b  c   ")
	twice := foldString(t, once)
	assert.Equal(t, once, twice)
}

func TestFoldWhitespacePreservesUnicode(t *testing.T) {
	assert.Equal(t, foldString(t, "café   au lait"), "café au lait")
}

func TestFoldWhitespaceUnicodeSpaceSet(t *testing.T) {
	// U+2003 EM SPACE between two words collapses like ASCII space.
	assert.Equal(t, foldString(t, "a  b"), "a b")
}

func TestFoldWhitespaceSubrangePreservesOutsideBytes(t *testing.T) {
	buf := []byte(`prefix{   mid   }suffix`)
	start := len("prefix{")
	end := len(`prefix{   mid   `)
	n := FoldWhitespace(buf, start, end)
	got := string(buf[:n])
	assert.Equal(t, got, "prefix{mid}suffix")
}

func TestMergeJSXTextEscaped(t *testing.T) {
	children := []Child{
		{Kind: "jsx_text", Value: `  hello "world"  `},
	}
	idx := 0
	got := MergeJSXText(children, &idx, true)
	assert.Equal(t, got, `" hello \"world\" "`)
	assert.Equal(t, idx, 1)
}

func TestMergeJSXTextUnescaped(t *testing.T) {
	children := []Child{
		{Kind: "jsx_text", Value: "  raw   text  "},
	}
	idx := 0
	got := MergeJSXText(children, &idx, false)
	assert.Equal(t, got, " raw text ")
}

func TestMergeJSXTextDecodesEntities(t *testing.T) {
	children := []Child{
		{Kind: "jsx_text", Value: "price: "},
		{Kind: "html_character_reference", Value: "&euro;"},
		{Kind: "jsx_text", Value: "5"},
	}
	idx := 0
	got := MergeJSXText(children, &idx, true)
	assert.Equal(t, got, `"price: €5"`)
	assert.Equal(t, idx, 3)
}

func TestMergeJSXTextStopsAtNonTextSibling(t *testing.T) {
	children := []Child{
		{Kind: "jsx_text", Value: "hello "},
		{Kind: "jsx_expression", Value: "name"},
	}
	idx := 0
	got := MergeJSXText(children, &idx, true)
	assert.Equal(t, got, `"hello "`)
	assert.Equal(t, idx, 1)
}
