// Package codegen lowers a parsed template.Template tree into the JS a
// file would contain once JSX has been compiled away: template-literal
// preambles, cloneable DOM factories, and the imperative glue that
// binds reactive values to the clone.
package codegen

import (
	"github.com/junojs/jsxc/internal/template"
	"github.com/junojs/jsxc/internal/text"
)

// findMatchingTemplate locates the Template that was built from the same
// node as c, the pairing Children-vs-Templates need whenever a nested
// element must be lowered with its own props/children rather than
// treated as opaque text.
func findMatchingTemplate(templates []*template.Template, c template.Child) *template.Template {
	for _, t := range templates {
		if t.MatchesChild(c) {
			return t
		}
	}
	return nil
}

// findProp returns the first prop in props with the given key, or nil.
func findProp(props []template.Prop, key string) *template.Prop {
	for i := range props {
		if props[i].Key == key {
			return &props[i]
		}
	}
	return nil
}

// mergeChildrenText adapts template.Child to text.Child and folds the
// jsx_text / html_character_reference run starting at *idx.
func mergeChildrenText(children []template.Child, idx *int, escape bool) string {
	tc := make([]text.Child, len(children))
	for i, c := range children {
		tc[i] = text.Child{Kind: c.Kind, Value: c.Value}
	}
	return text.MergeJSXText(tc, idx, escape)
}

// trimTrailingParens strips the invoking "()" off an IIFE string,
// turning "(() => { ... })()" into the bare "(() => { ... })" callback
// conditionalRender/createTransition need: they call the factory
// themselves, once per (re)render, rather than once up front.
func trimTrailingParens(iife string) string {
	if len(iife) < 2 {
		return iife
	}
	return iife[:len(iife)-2]
}

func valueOrDefault(hasValue bool, value, fallback string) string {
	if hasValue {
		return value
	}
	return fallback
}
