package codegen

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/junojs/jsxc/internal/htmlkind"
	"github.com/junojs/jsxc/internal/jsxerr"
	"github.com/junojs/jsxc/internal/template"
)

// ChildAsValue lowers one template child into the JS value a component
// call or array literal embeds it as. It returns ok=false when the
// child was a jsx_text run that folded away to nothing (an all-
// whitespace run between two expressions, say), in which case the
// caller should skip it without emitting anything. *idx is always left
// past the consumed child (or run of children, for text).
func ChildAsValue(t *template.Template, idx *int, child template.Child, templates []*template.Template, state *template.GlobalState) (string, bool, error) {
	if htmlkind.IsJSXText(child.Kind) {
		escaped := mergeChildrenText(t.Children, idx, true)
		if escaped == `""` {
			return "", false, nil
		}
		return escaped, true, nil
	}

	*idx++
	node := child.Node
	if child.Kind == "jsx_expression" {
		// Value holds the inner expression's text, so splice offsets must
		// be taken relative to that inner node, not the braces around it.
		node = child.Node.NamedChild(0)
	}
	state.IsComponentChild = true
	value, err := ReplaceJSX(node, templates, child.Value, state)
	state.IsComponentChild = false
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// GenerateComponentCall renders a component invocation: a window-level
// $$slots assignment (when the component has children) followed by the
// `Tag({...props})` call expression itself.
func GenerateComponentCall(t *template.Template, templates []*template.Template, state *template.GlobalState) (string, string, error) {
	var slots strings.Builder

	if len(t.Children) > 0 {
		slots.WriteString("window.$$slots = {")
		var defaultSlot []string

		idx := 0
		for idx < len(t.Children) {
			child := t.Children[idx]
			value, ok, err := ChildAsValue(t, &idx, child, templates, state)
			if err != nil {
				return "", "", err
			}
			if !ok {
				continue
			}

			switch {
			case htmlkind.IsJSXElement(child.Kind):
				elem := findMatchingTemplate(templates, child)
				if elem == nil {
					continue
				}
				slotProp := findProp(elem.Props, "slot")
				if slotProp == nil {
					defaultSlot = append(defaultSlot, value)
					continue
				}
				if !slotProp.HasValue {
					return "", "", jsxerr.NewParseMsg(jsxerr.MsgSlotValueRequired, nodeRange(child.Node))
				}
				slots.WriteString(slotProp.Value)
				slots.WriteString(": ")
				slots.WriteString(value)
				slots.WriteString(", ")

			case child.Kind == "jsx_expression" && htmlkind.IsReactive(child.Node.NamedChild(0).Kind()):
				defaultSlot = append(defaultSlot, "() => "+value)

			default:
				defaultSlot = append(defaultSlot, value)
			}
		}

		if len(defaultSlot) > 0 {
			slots.WriteString("default: [")
			slots.WriteString(strings.Join(defaultSlot, ","))
			slots.WriteString("]")
		}
		slots.WriteString("};")
	}

	var call strings.Builder
	call.WriteString(t.Tag)
	call.WriteString("(")

	if len(t.Props) == 0 {
		call.WriteString("null")
	} else {
		call.WriteString("{")
		for _, prop := range t.Props {
			switch {
			case prop.Kind == "string_fragment":
				if !prop.HasValue {
					return "", "", jsxerr.NewParseMsg(jsxerr.MsgStringFragmentRequired, nodeRange(prop.Node))
				}
				call.WriteString(prop.Key)
				call.WriteString(`: "`)
				call.WriteString(prop.Value)
				call.WriteString(`", `)

			case htmlkind.IsReactive(prop.Kind):
				if !prop.HasValue {
					return "", "", jsxerr.NewParseMsg(jsxerr.MsgReactivePropRequired, nodeRange(prop.Node))
				}
				replaced, err := ReplaceJSX(prop.Node, templates, prop.Value, state)
				if err != nil {
					return "", "", err
				}
				call.WriteString("get ")
				call.WriteString(prop.Key)
				call.WriteString("() { return ")
				call.WriteString(replaced)
				call.WriteString(" }, ")

			case prop.HasValue:
				replaced, err := ReplaceJSX(prop.Node, templates, prop.Value, state)
				if err != nil {
					return "", "", err
				}
				call.WriteString(prop.Key)
				call.WriteString(": ")
				call.WriteString(replaced)
				call.WriteString(", ")

			default:
				call.WriteString(prop.Key)
				call.WriteString(": true, ")
			}
		}
		call.WriteString("}")
	}
	call.WriteString(")")

	return slots.String(), call.String(), nil
}

// ReplaceSlot emits the `<slot>` pass-through wiring: a var pulling
// window.$$slots once per element scope, then an insertChild call
// binding the named (or "default") slot's content to var.
func ReplaceSlot(t *template.Template, elemVars, elemSetup *strings.Builder, varName string, state *template.GlobalState, slotsDefined *bool, node *ts.Node) error {
	name := "default"
	if nameProp := findProp(t.Props, "name"); nameProp != nil {
		if !nameProp.HasValue {
			if node != nil {
				return jsxerr.NewParseMsg(jsxerr.MsgSlotNameRequired, nodeRange(*node))
			}
			return jsxerr.NewParse()
		}
		name = nameProp.Value
	}

	state.AddImport("insertChild")
	if !*slotsDefined {
		elemVars.WriteString("const $$slots = window.$$slots;\n")
		*slotsDefined = true
	}
	elemSetup.WriteString(template.VarPrefix + "insertChild(" + varName + ", $$slots[\"" + name + "\"]);\n")
	return nil
}
