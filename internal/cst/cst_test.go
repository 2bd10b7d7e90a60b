package cst

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestDialectForPath(t *testing.T) {
	tests := []struct {
		path string
		want Dialect
	}{
		{"component.jsx", DialectTSX},
		{"component.tsx", DialectTSX},
		{"module.ts", DialectTypeScript},
		{"module.js", DialectJavaScript},
		{"module.mjs", DialectJavaScript},
		{"component.JSX", DialectTSX},
	}
	for _, tt := range tests {
		assert.Equal(t, DialectForPath(tt.path), tt.want, tt.path)
	}
}

func TestParseJSXTree(t *testing.T) {
	p, err := NewParser(DialectTSX)
	assert.NilError(t, err)
	defer p.Close()

	source := []byte(`const view = <div class:active>Hello</div>;`)
	tree, err := p.Tree(source)
	assert.NilError(t, err)
	defer tree.Close()

	assert.Assert(t, !tree.RootNode().HasError())
}

func TestCommentDirectiveMatches(t *testing.T) {
	p, err := NewParser(DialectJavaScript)
	assert.NilError(t, err)
	defer p.Close()

	source := []byte("// @include\n\"./partial.html\";\n")
	tree, err := p.Tree(source)
	assert.NilError(t, err)
	defer tree.Close()

	matches := p.CommentDirectiveMatches(tree.RootNode(), source)
	assert.Assert(t, len(matches) > 0)
}

func TestTreeRejectsBrokenSyntax(t *testing.T) {
	p, err := NewParser(DialectJavaScript)
	assert.NilError(t, err)
	defer p.Close()

	_, err = p.Tree([]byte(`const x = ;;; )(`))
	assert.ErrorContains(t, err, "failed to parse")
}
