// Package cst wraps the tree-sitter CST provider: language selection by
// file extension, source parsing, and the comment-directive query the
// file-content-include pass is built around.
package cst

import (
	_ "embed"
	"path/filepath"
	"strings"
	"unsafe"

	ts "github.com/tree-sitter/go-tree-sitter"
	ts_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"
	ts_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/junojs/jsxc/internal/jsxerr"
)

//go:embed queries/comment_directive.scm
var commentDirectiveQuerySrc string

// Dialect selects which tree-sitter grammar a file is parsed with.
type Dialect int

const (
	DialectJavaScript Dialect = iota
	DialectTypeScript
	DialectTSX
)

// DialectForPath chooses a Dialect from a file's extension. Supported
// extensions are js, jsx, ts, tsx; any other extension is rejected by the
// caller before reaching here.
func DialectForPath(path string) Dialect {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts":
		return DialectTypeScript
	case ".tsx", ".jsx":
		return DialectTSX
	default:
		return DialectJavaScript
	}
}

func languagePointer(d Dialect) unsafe.Pointer {
	switch d {
	case DialectTypeScript:
		return ts_typescript.LanguageTypescript()
	case DialectTSX:
		return ts_typescript.LanguageTSX()
	default:
		return ts_javascript.Language()
	}
}

// Parser owns one tree-sitter parser and the comment-directive query for
// a single dialect. It is not shared across files: CompileFile and
// ExpandFileContentImports each build and close their own Parser per
// file. There is no parser pool and no concurrency. JSX elements are
// walked directly off the tree (see internal/template), since their
// props and children interleave in a way a single fixed query pattern
// can't cleanly destructure.
type Parser struct {
	parser           *ts.Parser
	dialect          Dialect
	commentDirective *ts.Query
}

// NewParser compiles the comment-directive query against dialect's
// grammar and readies a reusable *ts.Parser for it.
func NewParser(dialect Dialect) (*Parser, error) {
	lang := ts.NewLanguage(languagePointer(dialect))

	parser := ts.NewParser()
	if err := parser.SetLanguage(lang); err != nil {
		return nil, jsxerr.WrapLanguage(err)
	}

	directiveQuery, qerr := ts.NewQuery(lang, commentDirectiveQuerySrc)
	if qerr != nil {
		return nil, jsxerr.WrapQuery(qerr)
	}

	return &Parser{
		parser:           parser,
		dialect:          dialect,
		commentDirective: directiveQuery,
	}, nil
}

// Close releases the underlying tree-sitter resources.
func (p *Parser) Close() {
	p.parser.Close()
	p.commentDirective.Close()
}

// Tree parses source and returns the resulting tree; the caller closes
// it. A nil tree or a tree whose
// root reports a syntax error is reported as jsxerr.Parse.
func (p *Parser) Tree(source []byte) (*ts.Tree, error) {
	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, jsxerr.NewParse()
	}
	if tree.RootNode().HasError() {
		tree.Close()
		return nil, jsxerr.NewParse()
	}
	return tree, nil
}

// Capture is one captured node from a query match, with its index into
// the match's pattern-defined capture list.
type Capture struct {
	Index uint32
	Node  ts.Node
}

// Match is one query match: a pattern index plus its ordered captures.
type Match struct {
	PatternIndex uint32
	Captures     []Capture
}

func collectMatches(query *ts.Query, root ts.Node, source []byte) []Match {
	cursor := ts.NewQueryCursor()
	defer cursor.Close()

	iter := cursor.Matches(query, root, source)
	var matches []Match
	for {
		m := iter.Next()
		if m == nil {
			break
		}
		captures := make([]Capture, len(m.Captures))
		for i, c := range m.Captures {
			captures[i] = Capture{Index: uint32(c.Index), Node: c.Node}
		}
		matches = append(matches, Match{PatternIndex: uint32(m.PatternIndex), Captures: captures})
	}
	return matches
}

// CommentDirectiveMatches runs the comment_directive query over root, one
// Match per file-content include directive.
func (p *Parser) CommentDirectiveMatches(root ts.Node, source []byte) []Match {
	return collectMatches(p.commentDirective, root, source)
}

// Utf8Text extracts a node's source text.
func Utf8Text(node ts.Node, source []byte) string {
	return node.Utf8Text(source)
}
