package transform

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestExpandFileContentImportsNoDirectiveReturnsUnchanged(t *testing.T) {
	src := []byte("const x = 1;\n")
	out, err := ExpandFileContentImports("a.js", src, t.TempDir())
	assert.NilError(t, err)
	assert.Equal(t, string(out), string(src))
}

func TestExpandFileContentImportsSplicesFileContents(t *testing.T) {
	dir := t.TempDir()
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "partial.html"), []byte("<p>hi</p>"), 0o644))

	src := []byte("// @include\n\"./partial.html\";\n")
	out, err := ExpandFileContentImports("a.js", src, dir)
	assert.NilError(t, err)

	assert.Equal(t, string(out), "// @include\n`<p>hi</p>`;\n")
}

func TestIncludeContentsEscapesBackticksAndInterpolation(t *testing.T) {
	dir := t.TempDir()
	assert.NilError(t, os.WriteFile(filepath.Join(dir, "tricky.txt"), []byte("a`b\\c${d}"), 0o644))

	out, err := includeContents(dir, "tricky.txt")
	assert.NilError(t, err)
	assert.Equal(t, string(out), "`a\\`b\\\\c\\${d}`")
}
