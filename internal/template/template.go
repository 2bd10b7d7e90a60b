// Package template holds the per-JSX-element data model the lowering
// passes consume: Prop, Child, Template, and the GlobalState that
// dedupes imports, template literals, and global event names across a
// whole file. Templates are built by walking the tree-sitter CST
// directly rather than through a query: JSX attributes and children
// interleave in a way a single fixed query pattern can't cleanly
// destructure into one match per element, so the walk here mirrors the
// node-kind switch a tree-sitter consumer normally writes by hand.
package template

import (
	"unicode"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/junojs/jsxc/internal/htmlkind"
	"github.com/junojs/jsxc/internal/jsxerr"
	"github.com/junojs/jsxc/internal/loc"
)

// Prop is one JSX attribute: a key with an optional value expression.
// Kind starts as the key node's CST kind and is rebound to the value's
// effective kind once a value arrives, matching how the lowering passes
// decide reactive-vs-static from the value, not the key.
type Prop struct {
	Kind     string
	Key      string
	Value    string
	HasValue bool
	Node     ts.Node
}

// Child is one child of a template: JSX text, an entity reference, a
// nested element, or an expression. For jsx_expression children, Value
// is the expression's inner operand text, not the braces.
type Child struct {
	Start, End int
	Kind       string
	Value      string
	Node       ts.Node
}

// Template is one JSX element or self-closing tag, with its props and
// children already bucketed.
type Template struct {
	ID             int
	Start, End     int
	Tag            string
	// IsSelfClosing is true only when the source wrote the tag
	// self-closed AND the tag is a void HTML element. A self-closed
	// non-void tag (<div/>) still renders with a separate closing tag.
	IsSelfClosing  bool
	IsRoot         bool
	Conditional    *Prop
	TransitionName string
	Transition     *Prop
	Props          []Prop
	Children       []Child
}

// IsComponent reports whether Tag starts with an uppercase letter, the
// convention that distinguishes a component call from a plain tag.
func (t *Template) IsComponent() bool {
	if t.Tag == "" {
		return false
	}
	r := []rune(t.Tag)[0]
	return unicode.IsUpper(r)
}

// MatchesChild reports whether c spans exactly the same byte range as
// t, the test used to pair a Children entry with its own Template.
func (t *Template) MatchesChild(c Child) bool {
	return t.Start == c.Start && t.End == c.End
}

// Collect walks root in document (pre-)order and returns one Template
// per jsx_element / jsx_self_closing_element node, nested elements
// included, each with an ID equal to its position in the returned
// slice. Order matters: GlobalState template registration and
// ReplaceJSX's splicing both key off these IDs and byte ranges.
func Collect(root ts.Node, source []byte) ([]*Template, error) {
	var templates []*Template
	var walkErr error

	var visit func(n ts.Node)
	visit = func(n ts.Node) {
		if walkErr != nil {
			return
		}
		switch n.Kind() {
		case "jsx_element", "jsx_self_closing_element":
			t, err := buildTemplate(len(templates), n, source)
			if err != nil {
				walkErr = err
				return
			}
			templates = append(templates, t)
		}
		for i := uint(0); i < n.ChildCount(); i++ {
			visit(n.Child(i))
		}
	}
	visit(root)

	return templates, walkErr
}

func buildTemplate(id int, node ts.Node, source []byte) (*Template, error) {
	selfClosingNode := node.Kind() == "jsx_self_closing_element"
	t := &Template{
		ID:    id,
		Start: int(node.StartByte()),
		End:   int(node.EndByte()),
	}
	parent := node.Parent()
	t.IsRoot = parent == nil || !htmlkind.IsJSXElement(parent.Kind())

	attrHost := node
	if !selfClosingNode {
		if opening, ok := namedChildOfKind(node, "jsx_opening_element"); ok {
			attrHost = opening
		}
	}

	tag, props, err := extractTagAndProps(attrHost, source)
	if err != nil {
		return nil, err
	}
	t.Tag = tag
	if t.Tag == "" {
		t.Tag = "template"
	}

	// A self-closing non-void tag (<div/>) has no content model of its own;
	// it renders with a separate closing tag, the same as <div></div>.
	t.IsSelfClosing = selfClosingNode && htmlkind.IsVoidElement(t.Tag)

	for i := range props {
		p := props[i]
		switch {
		case p.Key == "$if" && p.HasValue:
			t.Conditional = &p
			continue
		default:
			if name, ok := stripTransitionPrefix(p.Key); ok && p.HasValue {
				t.TransitionName = name
				t.Transition = &p
				continue
			}
		}
		t.Props = append(t.Props, p)
	}

	if !selfClosingNode {
		children, err := extractChildren(node, source)
		if err != nil {
			return nil, err
		}
		t.Children = children
	}

	return t, nil
}

func namedChildOfKind(n ts.Node, kind string) (ts.Node, bool) {
	for i := uint(0); i < n.NamedChildCount(); i++ {
		c := n.NamedChild(i)
		if c.Kind() == kind {
			return c, true
		}
	}
	return ts.Node{}, false
}

// tagNameKinds are the node kinds an element/self-closing-element's name
// child can take: a plain identifier, a dotted member access, or a
// namespaced name (xmlns-style).
var tagNameKinds = map[string]bool{
	"identifier":         true,
	"member_expression":  true,
	"nested_identifier":  true,
	"jsx_namespace_name": true,
}

func extractTagAndProps(n ts.Node, source []byte) (string, []Prop, error) {
	var tag string
	var props []Prop

	for i := uint(0); i < n.NamedChildCount(); i++ {
		child := n.NamedChild(i)
		switch {
		case tag == "" && tagNameKinds[child.Kind()]:
			tag = child.Utf8Text(source)
		case child.Kind() == "jsx_attribute":
			prop, err := extractAttribute(child, source)
			if err != nil {
				return "", nil, err
			}
			props = append(props, prop)
		}
	}

	return tag, props, nil
}

func extractAttribute(attr ts.Node, source []byte) (Prop, error) {
	var p Prop
	p.Node = attr

	for i := uint(0); i < attr.NamedChildCount(); i++ {
		child := attr.NamedChild(i)
		switch child.Kind() {
		case "property_identifier", "jsx_namespace_name":
			if p.Key == "" {
				p.Kind = child.Kind()
				p.Key = child.Utf8Text(source)
				p.Node = child
			}
		case "string":
			kind, value := stringFragment(child, source)
			p.Kind = kind
			p.Value = value
			p.HasValue = true
			p.Node = child
		case "jsx_expression":
			if child.NamedChildCount() == 0 {
				return Prop{}, jsxerr.NewParseMsg(jsxerr.MsgEmptyJSXExpression, loc.RangeFromBytes(int(child.StartByte()), int(child.EndByte())))
			}
			inner := child.NamedChild(0)
			p.Kind = inner.Kind()
			p.Value = inner.Utf8Text(source)
			p.HasValue = true
			p.Node = inner
		}
	}

	return p, nil
}

// stringFragment pulls the unquoted text out of a `string` node, so its
// Kind matches the "string_fragment" static-kind check the rest of the
// pipeline uses; an empty string literal has no string_fragment child.
func stringFragment(stringNode ts.Node, source []byte) (kind, value string) {
	for i := uint(0); i < stringNode.NamedChildCount(); i++ {
		c := stringNode.NamedChild(i)
		if c.Kind() == "string_fragment" {
			return "string_fragment", c.Utf8Text(source)
		}
	}
	return "string_fragment", ""
}

func extractChildren(element ts.Node, source []byte) ([]Child, error) {
	var children []Child

	for i := uint(0); i < element.NamedChildCount(); i++ {
		n := element.NamedChild(i)
		kind := n.Kind()

		switch kind {
		case "jsx_opening_element", "jsx_closing_element":
			continue
		case "jsx_text", "html_character_reference", "jsx_element", "jsx_self_closing_element":
			children = append(children, Child{
				Start: int(n.StartByte()),
				End:   int(n.EndByte()),
				Kind:  kind,
				Value: n.Utf8Text(source),
				Node:  n,
			})
		case "jsx_expression":
			if n.NamedChildCount() == 0 {
				return nil, jsxerr.NewParseMsg(jsxerr.MsgEmptyJSXExpression, loc.RangeFromBytes(int(n.StartByte()), int(n.EndByte())))
			}
			inner := n.NamedChild(0)
			children = append(children, Child{
				Start: int(n.StartByte()),
				End:   int(n.EndByte()),
				Kind:  "jsx_expression",
				Value: inner.Utf8Text(source),
				Node:  n,
			})
		}
	}

	return children, nil
}

// stripTransitionPrefix recognises "$transition" and "$transition:name"
// prop keys, returning the transition name ("jsx" when unnamed) and
// whether the key matched at all.
func stripTransitionPrefix(key string) (string, bool) {
	const prefix = "$transition"
	if len(key) < len(prefix) || key[:len(prefix)] != prefix {
		return "", false
	}
	rest := key[len(prefix):]
	if rest == "" {
		return "jsx", true
	}
	if rest[0] == ':' {
		return rest[1:], true
	}
	return "", false
}
