package transform

import (
	"os"
	"path/filepath"

	"github.com/junojs/jsxc/internal/cst"
	"github.com/junojs/jsxc/internal/jsxerr"
)

type fileContentImport struct {
	start, end int
	path       string
}

// ExpandFileContentImports finds every `/* @include */ "path"`-style
// directive — a comment immediately followed by a quoted path — and
// replaces just the quoted path (not the comment itself) with a
// backtick-quoted template literal holding the referenced file's raw
// bytes, read relative to indir. Directives are expanded left to right,
// non-recursively: an included file's own directives, if any, are never
// themselves expanded. Returns source unchanged when no directive
// matches.
func ExpandFileContentImports(path string, source []byte, indir string) ([]byte, error) {
	dialect := cst.DialectForPath(path)
	parser, err := cst.NewParser(dialect)
	if err != nil {
		return nil, err
	}
	defer parser.Close()

	tree, err := parser.Tree(source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	matches := parser.CommentDirectiveMatches(tree.RootNode(), source)
	if len(matches) == 0 {
		return source, nil
	}

	imports := make([]fileContentImport, 0, len(matches))
	for _, m := range matches {
		if len(m.Captures) != 2 {
			continue
		}
		pathNode := m.Captures[1].Node
		imports = append(imports, fileContentImport{
			start: int(pathNode.StartByte()) - 1,
			end:   int(pathNode.EndByte()) + 1,
			path:  cst.Utf8Text(pathNode, source),
		})
	}
	if len(imports) == 0 {
		return source, nil
	}

	var out []byte
	srcIdx := 0
	for _, imp := range imports {
		out = append(out, source[srcIdx:imp.start]...)
		contents, err := includeContents(indir, imp.path)
		if err != nil {
			return nil, err
		}
		out = append(out, contents...)
		srcIdx = imp.end
	}
	if srcIdx < len(source) {
		out = append(out, source[srcIdx:]...)
	}
	return out, nil
}

// includeContents reads indir/relPath and renders it as a backtick
// template literal, escaping the three bytes that would otherwise break
// out of it: a literal backtick, a literal backslash, and `${` (template
// interpolation syntax the included bytes must not trigger).
func includeContents(indir, relPath string) ([]byte, error) {
	raw, err := os.ReadFile(filepath.Join(indir, relPath))
	if err != nil {
		return nil, jsxerr.WrapIo(err)
	}

	out := make([]byte, 0, len(raw)+2)
	out = append(out, '`')
	for i := 0; i < len(raw); i++ {
		switch {
		case raw[i] == '`':
			out = append(out, '\\', '`')
		case raw[i] == '\\':
			out = append(out, '\\', '\\')
		case raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{':
			out = append(out, '\\', '$')
		default:
			out = append(out, raw[i])
		}
	}
	out = append(out, '`')
	return out, nil
}
