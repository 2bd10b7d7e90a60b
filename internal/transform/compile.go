package transform

import (
	"sort"

	"github.com/junojs/jsxc/internal/codegen"
	"github.com/junojs/jsxc/internal/cst"
	"github.com/junojs/jsxc/internal/template"
)

// Options configures a compile pass; zero value compiles with defaults
// (runtime helpers imported from template.DefaultImportPath, file-content
// include directives left unexpanded).
type Options struct {
	// ImportPath overrides the module specifier generated import
	// statements pull runtime helpers from. Empty uses the default.
	ImportPath string
	// ExpandIncludes gates the comment-directive include preprocessor,
	// run before parsing when true.
	ExpandIncludes bool
	// IndirForIncludes is the directory include paths are resolved
	// relative to; required when ExpandIncludes is true.
	IndirForIncludes string
}

// CompileFile lowers one source file's JSX into plain JS: every root
// template (one not itself nested inside another JSX element) is spliced
// out of source and replaced by its own lowered form, outermost-first so
// a root's descendants are only ever visited once, through its own
// Parts() recursion rather than as a sibling splice. The rendered
// preamble (imports, template literals, global event bridges) is
// prepended to the spliced body.
func CompileFile(path string, source []byte, opts Options) ([]byte, error) {
	if opts.ExpandIncludes {
		expanded, err := ExpandFileContentImports(path, source, opts.IndirForIncludes)
		if err != nil {
			return nil, err
		}
		source = expanded
	}

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

	templates, err := template.Collect(tree.RootNode(), source)
	if err != nil {
		return nil, err
	}

	state := template.NewGlobalState()
	if opts.ImportPath != "" {
		state.ImportPath = opts.ImportPath
	}

	var roots []*template.Template
	for _, t := range templates {
		if !t.IsRoot {
			continue
		}
		nested := false
		for _, r := range roots {
			if t.Start >= r.Start && t.End <= r.End {
				nested = true
				break
			}
		}
		if !nested {
			roots = append(roots, t)
		}
	}
	sort.Slice(roots, func(i, j int) bool { return roots[i].Start > roots[j].Start })

	body := append([]byte(nil), source...)
	for _, root := range roots {
		lowered, err := codegen.Parts(root, templates, state)
		if err != nil {
			return nil, err
		}
		body = spliceBytes(body, root.Start, root.End, lowered)
	}

	preamble, err := Preamble(state, templates)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(preamble)+len(body)+1)
	out = append(out, preamble...)
	out = append(out, body...)
	return out, nil
}

func spliceBytes(buf []byte, start, end int, replacement string) []byte {
	out := make([]byte, 0, len(buf)-(end-start)+len(replacement))
	out = append(out, buf[:start]...)
	out = append(out, replacement...)
	out = append(out, buf[end:]...)
	return out
}
