// Package transform owns the whole-file pipeline: running the CST
// adapter and lowering passes over one source file, assembling the
// generated preamble and spliced body into a single output buffer, and
// walking an input directory tree to drive that per-file pipeline.
package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/junojs/jsxc/internal/codegen"
	"github.com/junojs/jsxc/internal/template"
)

// Preamble renders the per-file header a compiled source needs above its
// (already-spliced) body: deduped runtime helper imports, one
// template-literal declaration per registered template, and one
// window-level event bridge per distinct global event name. Imports and
// template IDs are drained from state once rendered, so a later call in
// the same pass only emits what's newly registered since this one.
func Preamble(state *template.GlobalState, templates []*template.Template) (string, error) {
	var b strings.Builder

	importPath := state.ImportPath
	if importPath == "" {
		importPath = template.DefaultImportPath
	}

	imports := sortedStringKeys(state.Imports)
	for _, name := range imports {
		fmt.Fprintf(&b, "import { %s as %s%s } from \"%s\";\n", name, template.VarPrefix, name, importPath)
	}
	if len(imports) > 0 {
		b.WriteString("\n")
	}
	clearBoolSet(state.Imports)

	ids := make([]int, 0, len(state.Templates))
	for id := range state.Templates {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		rendered, err := codegen.GenerateTemplateString(templates[id], templates)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "const %stempl%d = %stemplate(`%s`);\n", template.VarPrefix, id, template.VarPrefix, rendered)
	}
	if len(ids) > 0 {
		b.WriteString("\n")
	}
	clearIntSet(state.Templates)

	events := sortedStringKeys(state.Events)
	for _, name := range events {
		fmt.Fprintf(&b, "window.%s = %screateGlobalEvent(\"%s\");\n", template.EventVar(name), template.VarPrefix, name)
	}

	return b.String(), nil
}

func sortedStringKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func clearBoolSet(m map[string]bool) {
	for k := range m {
		delete(m, k)
	}
}

func clearIntSet(m map[int]bool) {
	for k := range m {
		delete(m, k)
	}
}
