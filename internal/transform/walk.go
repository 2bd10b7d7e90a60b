package transform

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/junojs/jsxc/internal/jsxerr"
)

var compilableExt = map[string]bool{
	".js": true, ".jsx": true, ".ts": true, ".tsx": true,
}

// WalkAndCompile recursively compiles every .js/.jsx/.ts/.tsx file under
// indir, writing each result under outdir at the same relative path. It
// stops and returns the first error encountered, leaving every file
// written so far on disk untouched — no partial output is ever deleted
// or rewritten, and no remaining input file is read once an error fires.
func WalkAndCompile(indir, outdir string, opts Options, logger *slog.Logger) error {
	opts.IndirForIncludes = indir

	return filepath.WalkDir(indir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return jsxerr.WrapIo(err)
		}
		if d.IsDir() {
			return nil
		}
		if !compilableExt[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		rel, err := filepath.Rel(indir, path)
		if err != nil {
			return jsxerr.WrapIo(err)
		}
		outPath := filepath.Join(outdir, rel)

		start := time.Now()
		source, err := os.ReadFile(path)
		if err != nil {
			return jsxerr.WrapIo(err)
		}

		compiled, err := CompileFile(path, source, opts)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return jsxerr.WrapIo(err)
		}
		if err := os.WriteFile(outPath, compiled, 0o644); err != nil {
			return jsxerr.WrapIo(err)
		}

		if logger != nil {
			logger.Debug("compiled file",
				slog.String("path", rel),
				slog.Duration("took", time.Since(start)),
				slog.Int("bytes_in", len(source)),
				slog.Int("bytes_out", len(compiled)),
			)
		}
		return nil
	})
}
