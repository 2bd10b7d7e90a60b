package transform

import (
	"os"
	"path/filepath"
	"testing"

	"gotest.tools/v3/assert"
)

func TestWalkAndCompileWritesUnderOutdirPreservingStructure(t *testing.T) {
	indir := t.TempDir()
	outdir := t.TempDir()

	assert.NilError(t, os.MkdirAll(filepath.Join(indir, "pages"), 0o755))
	assert.NilError(t, os.WriteFile(filepath.Join(indir, "pages", "index.jsx"), []byte(`const view = <div>hi</div>;`), 0o644))
	assert.NilError(t, os.WriteFile(filepath.Join(indir, "README.md"), []byte("not compiled"), 0o644))

	err := WalkAndCompile(indir, outdir, Options{}, nil)
	assert.NilError(t, err)

	out, err := os.ReadFile(filepath.Join(outdir, "pages", "index.jsx"))
	assert.NilError(t, err)
	assert.Assert(t, len(out) > 0)

	_, err = os.Stat(filepath.Join(outdir, "README.md"))
	assert.Assert(t, os.IsNotExist(err))
}

func TestWalkAndCompileStopsOnFirstError(t *testing.T) {
	indir := t.TempDir()
	outdir := t.TempDir()

	assert.NilError(t, os.WriteFile(filepath.Join(indir, "bad.jsx"), []byte("const x = <div;"), 0o644))

	err := WalkAndCompile(indir, outdir, Options{}, nil)
	assert.ErrorContains(t, err, "")
}
