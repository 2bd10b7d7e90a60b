package transform

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"

	"github.com/junojs/jsxc/internal/cst"
	"github.com/junojs/jsxc/internal/template"
)

func collect(t *testing.T, source string) []*template.Template {
	t.Helper()
	p, err := cst.NewParser(cst.DialectTSX)
	assert.NilError(t, err)
	defer p.Close()

	src := []byte(source)
	tree, err := p.Tree(src)
	assert.NilError(t, err)
	defer tree.Close()

	templates, err := template.Collect(tree.RootNode(), src)
	assert.NilError(t, err)
	return templates
}

func TestPreambleRendersSortedImportsAndTemplates(t *testing.T) {
	templates := collect(t, `const view = <div class="box">hi</div>;`)
	state := template.NewGlobalState()
	state.AddImport("setAttribute")
	state.AddImport("template")
	state.AddTemplate(0)
	state.AddEvent("click")

	out, err := Preamble(state, templates)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, `import { setAttribute as `+template.VarPrefix+`setAttribute } from "jsx/runtime";`))
	assert.Assert(t, strings.Contains(out, `import { template as `+template.VarPrefix+`template } from "jsx/runtime";`))
	assert.Assert(t, strings.Contains(out, template.VarPrefix+"templ0 = "+template.VarPrefix+"template(`<div class=\"box\">hi</div>`);"))
	assert.Assert(t, strings.Contains(out, "window."+template.EventVar("click")+" = "+template.VarPrefix+`createGlobalEvent("click");`))
	assert.Equal(t, len(state.Imports), 0)
	assert.Equal(t, len(state.Templates), 0)
}

func TestPreambleHonoursCustomImportPath(t *testing.T) {
	templates := collect(t, `const view = <div>hi</div>;`)
	state := template.NewGlobalState()
	state.ImportPath = "my/runtime"
	state.AddImport("template")
	state.AddTemplate(0)

	out, err := Preamble(state, templates)
	assert.NilError(t, err)
	assert.Assert(t, strings.Contains(out, `from "my/runtime";`))
}

func TestPreambleEmptyStateRendersEmptyString(t *testing.T) {
	state := template.NewGlobalState()
	out, err := Preamble(state, nil)
	assert.NilError(t, err)
	assert.Equal(t, out, "")
}
