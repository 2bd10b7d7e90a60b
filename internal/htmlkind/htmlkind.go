// Package htmlkind classifies tree-sitter node kinds the way the codegen
// passes need them classified: reactive vs. static value expressions,
// JSX text runs, JSX elements, and void HTML tags.
package htmlkind

import "golang.org/x/net/html/atom"

var reactiveKinds = map[string]bool{
	"identifier":               true,
	"member_expression":        true,
	"subscript_expression":     true,
	"template_string":          true,
	"ternary_expression":       true,
	"update_expression":        true,
	"unary_expression":         true,
	"binary_expression":        true,
	"parenthesized_expression": true,
	"object":                   true,
	"array":                    true,
	"call_expression":          true,
}

var staticKinds = map[string]bool{
	"string_fragment":     true,
	"number":              true,
	"property_identifier": true,
	"jsx_namespace_name":  true,
	"false":               true,
	"true":                true,
}

// IsReactive reports whether kind is a node kind whose value must be
// evaluated lazily (wrapped in a `() => ...` getter) to stay live.
func IsReactive(kind string) bool { return reactiveKinds[kind] }

// IsStatic reports whether kind is a node kind whose value can be
// embedded as a constant, never re-evaluated.
func IsStatic(kind string) bool { return staticKinds[kind] }

// IsJSXText reports whether kind is a text-bearing child node:
// jsx_text or html_character_reference.
func IsJSXText(kind string) bool {
	return kind == "jsx_text" || kind == "html_character_reference"
}

// IsJSXElement reports whether kind is a JSX element node, opening-closing
// or self-closing.
func IsJSXElement(kind string) bool {
	return kind == "jsx_element" || kind == "jsx_self_closing_element"
}

// WrapReactiveValue returns "() => "+value when kind is reactive, and
// value unchanged when kind is static (or any other non-reactive kind).
func WrapReactiveValue(kind, value string) string {
	if IsReactive(kind) {
		return "() => " + value
	}
	return value
}

// voidTags are the void HTML elements, which have no content model and
// may appear self-closed in source; obsolete tags (command, keygen) are
// dropped per the living HTML standard.
var voidTags = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// IsVoidElement reports whether tag is a void HTML element: one with no
// content model, so a self-closing JSX tag for it is never cleared to an
// opening/closing pair. The tag is checked against voidTags as written,
// then once more under its atom.Lookup name; both checks are
// case-sensitive, so only the lowercase spellings match.
func IsVoidElement(tag string) bool {
	if voidTags[tag] {
		return true
	}
	if a := atom.Lookup([]byte(tag)); a != 0 {
		return voidTags[a.String()]
	}
	return false
}
