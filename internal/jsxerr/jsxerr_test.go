package jsxerr

import (
	"errors"
	"testing"

	"github.com/junojs/jsxc/internal/loc"
	"gotest.tools/v3/assert"
)

func TestParseMsgError(t *testing.T) {
	at := loc.RangeFromBytes(10, 15)
	err := NewParseMsg(MsgReactivePropRequired, at)
	assert.Equal(t, err.Kind, ParseMsg)
	assert.Error(t, err, MsgReactivePropRequired)
}

func TestParserErrorUnwrap(t *testing.T) {
	inner := errors.New("boom")
	err := WrapIo(inner)
	assert.Equal(t, err.Kind, Io)
	assert.Equal(t, errors.Unwrap(err), inner)
	assert.ErrorIs(t, err, inner)
}

func TestWrapNilIsNil(t *testing.T) {
	assert.Assert(t, WrapIo(nil) == nil)
	assert.Assert(t, WrapUtf8(nil) == nil)
	assert.Assert(t, WrapLanguage(nil) == nil)
	assert.Assert(t, WrapQuery(nil) == nil)
	assert.Assert(t, WrapStripPrefix(nil) == nil)
}

func TestAppErrorMissingDir(t *testing.T) {
	err := NewMissingDir()
	assert.Error(t, err, "missing directory path")
}

func TestAppErrorFromParser(t *testing.T) {
	perr := NewParse()
	app := FromParser(perr)
	assert.Error(t, app, "failed to parse")
	assert.Assert(t, errors.Is(app, perr))
}

func TestWithPosition(t *testing.T) {
	src := []byte("const x = <div $if></div>;\n")
	at := loc.RangeFromBytes(15, 19)
	err := NewParseMsg(MsgReactivePropRequired, at)

	got := WithPosition("file.jsx", src, err)
	assert.Equal(t, got, "file.jsx:1:16: Reactive props must have a value")
}

func TestWithPositionNonParseMsg(t *testing.T) {
	inner := errors.New("disk full")
	err := WrapIo(inner)
	got := WithPosition("file.jsx", nil, err)
	assert.Equal(t, got, "file.jsx: disk full")
}
