package entities

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func decode(t *testing.T, literal string) string {
	t.Helper()
	var out strings.Builder
	Decode(literal, &out)
	return out.String()
}

func TestDecodeNamed(t *testing.T) {
	assert.Equal(t, decode(t, "&amp;"), "&")
	assert.Equal(t, decode(t, "&lt;"), "<")
	assert.Equal(t, decode(t, "&copy;"), "©")
}

func TestDecodeNumericDecimal(t *testing.T) {
	assert.Equal(t, decode(t, "&#65;"), "A")
}

func TestDecodeNumericHex(t *testing.T) {
	assert.Equal(t, decode(t, "&#x41;"), "A")
}

func TestDecodeInvalidNumericYieldsReplacementChar(t *testing.T) {
	assert.Equal(t, decode(t, "&#xZZZZ;"), string(replacementChar))
	assert.Equal(t, decode(t, "&#99999999999;"), string(replacementChar))
}

func TestDecodeUnknownNamedIsVerbatim(t *testing.T) {
	assert.Equal(t, decode(t, "&notreal;"), "&notreal;")
}

func TestDecodeEscapesReservedCodepoints(t *testing.T) {
	var out strings.Builder
	Decode("&#92;", &out) // backslash
	assert.Equal(t, out.String(), `\\`)
}

func TestEscapeForWhitespaceSet(t *testing.T) {
	esc, ok := EscapeFor(0x2003)
	assert.Assert(t, ok)
	assert.Equal(t, esc, `\x2003`)

	esc, ok = EscapeFor(0xFEFF)
	assert.Assert(t, ok)
	assert.Equal(t, esc, `\xFEFF`)

	_, ok = EscapeFor('a')
	assert.Assert(t, !ok)
}
