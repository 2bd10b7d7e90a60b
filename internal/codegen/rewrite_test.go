package codegen

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/junojs/jsxc/internal/template"
)

func TestReplaceJSXNoEnclosedTemplatesReturnsValueUnchanged(t *testing.T) {
	templates := collect(t, `const view = <div>plain text</div>;`)
	state := template.NewGlobalState()
	out, err := ReplaceJSX(templates[0].Children[0].Node, nil, "plain text", state)
	assert.NilError(t, err)
	assert.Equal(t, out, "plain text")
}

func TestReplaceJSXSplicesEnclosedElement(t *testing.T) {
	templates := collect(t, `const view = <div><Widget /></div>;`)
	state := template.NewGlobalState()
	div := templates[0]
	child := div.Children[0]

	out, err := ReplaceJSX(child.Node, templates, child.Value, state)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, "Widget("))
}

func TestReplaceJSXLargestEnclosingWinsOverNestedDescendant(t *testing.T) {
	templates := collect(t, `const view = <div><span><Widget /></span></div>;`)
	state := template.NewGlobalState()

	div := templates[0]
	child := div.Children[0]

	out, err := ReplaceJSX(child.Node, templates, child.Value, state)
	assert.NilError(t, err)
	assert.Equal(t, strings.Count(out, "Widget("), 1)
}
