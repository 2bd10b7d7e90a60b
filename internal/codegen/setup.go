package codegen

import (
	"fmt"
	"strings"

	"github.com/junojs/jsxc/internal/htmlkind"
	"github.com/junojs/jsxc/internal/jsxerr"
	"github.com/junojs/jsxc/internal/template"
)

// Parts lowers t into the expression its parent embeds: a bracketed
// array literal for a bare "template" (fragment) root, or an
// immediately-invoked function expression that clones the preamble's
// template, wires it up, and returns its root node for every other tag.
func Parts(t *template.Template, templates []*template.Template, state *template.GlobalState) (string, error) {
	if t.Tag == "template" {
		var b strings.Builder
		b.WriteString("[")

		idx := 0
		for idx < len(t.Children) {
			c := t.Children[idx]
			state.IsTemplateChild = htmlkind.IsJSXElement(c.Kind)
			value, ok, err := ChildAsValue(t, &idx, c, templates, state)
			if err != nil {
				return "", err
			}
			if !ok {
				continue
			}
			kind := c.Kind
			if kind == "jsx_expression" && c.Node.NamedChildCount() > 0 {
				kind = c.Node.NamedChild(0).Kind()
			}
			if htmlkind.IsReactive(kind) {
				b.WriteString("() => ")
			}
			b.WriteString(value)
			b.WriteString(", ")
		}
		b.WriteString("]\n")
		return b.String(), nil
	}

	varIdx := 0
	elemVars, elemSetup, err := GenerateFn(t, &varIdx, templates, state)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("(() => {\n%s\n%s\nreturn %sel0;\n})()", elemVars, elemSetup, template.VarPrefix), nil
}

// GenerateFn is the central per-element lowering step: it returns the
// `const _jsx$elN = ...` variable declarations and the imperative setup
// statements (attribute/event/child wiring) for t, recursing into t's
// children for anything that needs its own vars/setup. For a component
// and for a conditional/transition root the order differs: the first
// string holds the statements that must run first (the component's
// $$slots assignment) and the second the `const` declaration.
func GenerateFn(t *template.Template, varIdx *int, templates []*template.Template, state *template.GlobalState) (string, string, error) {
	var elemVars strings.Builder
	varName := fmt.Sprintf("%sel%d", template.VarPrefix, *varIdx)

	if t.IsComponent() {
		isComponentChild := state.IsComponentChild
		slots, call, err := GenerateComponentCall(t, templates, state)
		if err != nil {
			return "", "", err
		}
		if t.IsRoot || isComponentChild {
			elemVars.WriteString(fmt.Sprintf("const %s = %s;\n", varName, call))
			return slots, elemVars.String(), nil
		}
		return slots, call, nil
	}

	var elemSetup strings.Builder
	slotsDefined := false

	if t.Tag == "slot" {
		if err := ReplaceSlot(t, &elemVars, &elemSetup, varName, state, &slotsDefined, nil); err != nil {
			return "", "", err
		}
	}

	if t.IsRoot && !state.ParsingSpecialRoot {
		switch {
		case t.Conditional != nil:
			state.ParsingSpecialRoot = true
			state.AddImport("conditionalRender")
			parts, err := Parts(t, templates, state)
			if err != nil {
				return "", "", err
			}
			condValue := valueOrDefault(t.Conditional.HasValue, t.Conditional.Value, "true")
			elemVars.WriteString(fmt.Sprintf(
				"const %s = %sconditionalRender(document.createComment(\"\"), %s, %s);\n",
				varName, template.VarPrefix, trimTrailingParens(parts), htmlkind.WrapReactiveValue(t.Conditional.Kind, condValue),
			))
			state.ParsingSpecialRoot = false
			return elemSetup.String(), elemVars.String(), nil

		case t.Transition != nil:
			state.ParsingSpecialRoot = true
			state.AddImport("createTransition")
			parts, err := Parts(t, templates, state)
			if err != nil {
				return "", "", err
			}
			condValue := valueOrDefault(t.Transition.HasValue, t.Transition.Value, "true")
			elemVars.WriteString(fmt.Sprintf(
				"const %s = %screateTransition(document.createComment(\"\"), %s, %s, \"%s\");\n",
				varName, template.VarPrefix, trimTrailingParens(parts), htmlkind.WrapReactiveValue(t.Transition.Kind, condValue), t.TransitionName,
			))
			state.ParsingSpecialRoot = false
			return elemSetup.String(), elemVars.String(), nil
		}
	}

	if t.IsRoot || state.IsComponentChild || t.Conditional != nil || t.Transition != nil || state.IsTemplateChild {
		state.AddImport("template")
		state.AddTemplate(t.ID)
		elemVars.WriteString(fmt.Sprintf(
			"const %s = %stempl%d(); // root[%v]/component[%v]/conditional[%v]/transition[%v]/template-child[%v]\n",
			varName, template.VarPrefix, t.ID, t.IsRoot, state.IsComponentChild, t.Conditional != nil, t.Transition != nil, state.IsTemplateChild,
		))
		state.IsTemplateChild = false
	}

	if err := writeProps(t, &elemSetup, varName, templates, state); err != nil {
		return "", "", err
	}

	first := true
	idx := 0
	state.IsComponentChild = false

	for idx < len(t.Children) {
		child := t.Children[idx]
		*varIdx++
		prevVar := varName
		varName = fmt.Sprintf("%sel%d", template.VarPrefix, *varIdx)

		if first {
			first = false
			elemVars.WriteString(fmt.Sprintf("const %s = %s.firstChild; // %s\n", varName, prevVar, child.Kind))
		} else {
			elemVars.WriteString(fmt.Sprintf("const %s = %s.nextSibling; // %s\n", varName, prevVar, child.Kind))
		}

		switch child.Kind {
		case "jsx_element", "jsx_self_closing_element":
			elem := findMatchingTemplate(templates, child)
			if elem == nil {
				idx++
				continue
			}

			switch {
			case elem.IsComponent():
				slots, call, err := GenerateComponentCall(elem, templates, state)
				if err != nil {
					return "", "", err
				}
				state.AddImport("insertChild")
				elemSetup.WriteString(fmt.Sprintf("%s;\n%sinsertChild(%s, %s);\n", slots, template.VarPrefix, varName, call))

			case elem.Tag == "slot":
				if err := ReplaceSlot(elem, &elemVars, &elemSetup, varName, state, &slotsDefined, &child.Node); err != nil {
					return "", "", err
				}

			case elem.Conditional != nil:
				state.AddImport("conditionalRender")
				parts, err := Parts(elem, templates, state)
				if err != nil {
					return "", "", err
				}
				condValue := valueOrDefault(elem.Conditional.HasValue, elem.Conditional.Value, "true")
				elemSetup.WriteString(fmt.Sprintf(
					"%sconditionalRender(%s, %s, %s);\n",
					template.VarPrefix, varName, trimTrailingParens(parts), htmlkind.WrapReactiveValue(elem.Conditional.Kind, condValue),
				))

			case elem.Transition != nil:
				state.AddImport("createTransition")
				parts, err := Parts(elem, templates, state)
				if err != nil {
					return "", "", err
				}
				condValue := valueOrDefault(elem.Transition.HasValue, elem.Transition.Value, "true")
				elemSetup.WriteString(fmt.Sprintf(
					"%screateTransition(%s, %s, %s, \"%s\");\n",
					template.VarPrefix, varName, trimTrailingParens(parts), htmlkind.WrapReactiveValue(elem.Transition.Kind, condValue), elem.TransitionName,
				))

			default:
				vars, setup, err := GenerateFn(elem, varIdx, templates, state)
				if err != nil {
					return "", "", err
				}
				elemVars.WriteString(vars)
				elemSetup.WriteString(setup)
			}

		case "jsx_expression":
			if child.Node.NamedChildCount() == 0 {
				return "", "", jsxerr.NewParseMsg(jsxerr.MsgEmptyJSXExpression, nodeRange(child.Node))
			}
			inner := child.Node.NamedChild(0)
			value, err := ReplaceJSX(inner, templates, child.Value, state)
			if err != nil {
				return "", "", err
			}
			state.AddImport("insertChild")
			if htmlkind.IsReactive(inner.Kind()) {
				elemSetup.WriteString(fmt.Sprintf("%sinsertChild(%s, () => %s);\n", template.VarPrefix, varName, value))
			} else {
				elemSetup.WriteString(fmt.Sprintf("%sinsertChild(%s, %s);\n", template.VarPrefix, varName, value))
			}

		default:
			for idx < len(t.Children) {
				c := t.Children[idx]
				if htmlkind.IsJSXText(c.Kind) {
					idx++
					continue
				}
				idx--
				break
			}
		}

		idx++
	}

	return elemVars.String(), elemSetup.String(), nil
}

func writeProps(t *template.Template, elemSetup *strings.Builder, varName string, templates []*template.Template, state *template.GlobalState) error {
	for _, prop := range t.Props {
		if htmlkind.IsStatic(prop.Kind) || !prop.HasValue {
			continue
		}
		value, err := ReplaceJSX(prop.Node, templates, prop.Value, state)
		if err != nil {
			return err
		}

		switch {
		case strings.Contains(prop.Key, ":"):
			switch {
			case strings.HasPrefix(prop.Key, "on:"):
				eventName := strings.TrimPrefix(prop.Key, "on:")
				state.AddImport("addLocalEvent")
				elemSetup.WriteString(fmt.Sprintf("%saddLocalEvent(%s, \"%s\", %s);\n", template.VarPrefix, varName, eventName, value))

			case strings.HasPrefix(prop.Key, "g:on"):
				eventName := strings.TrimPrefix(prop.Key, "g:on")
				if !state.Events[eventName] {
					state.AddImport("createGlobalEvent")
					state.AddImport("addGlobalEvent")
				}
				state.AddEvent(eventName)
				elemSetup.WriteString(fmt.Sprintf("%saddGlobalEvent(window.%s, %s, %s);\n", template.VarPrefix, template.EventVar(eventName), varName, value))

			case strings.HasPrefix(prop.Key, "class:"):
				class := strings.TrimPrefix(prop.Key, "class:")
				state.AddImport("trackClass")
				elemSetup.WriteString(fmt.Sprintf("%strackClass(%s, \"%s\", %s);\n", template.VarPrefix, varName, class, htmlkind.WrapReactiveValue(prop.Kind, value)))

			case strings.HasPrefix(prop.Key, "style:"):
				property := strings.TrimPrefix(prop.Key, "style:")
				state.AddImport("trackCssProperty")
				elemSetup.WriteString(fmt.Sprintf("%strackCssProperty(%s, \"%s\", %s);\n", template.VarPrefix, varName, property, htmlkind.WrapReactiveValue(prop.Kind, value)))

			case strings.HasPrefix(prop.Key, "var:"):
				custom := strings.TrimPrefix(prop.Key, "var:")
				state.AddImport("trackCssProperty")
				elemSetup.WriteString(fmt.Sprintf("%strackCssProperty(%s, \"--%s\", %s);\n", template.VarPrefix, varName, custom, htmlkind.WrapReactiveValue(prop.Kind, value)))
			}

		case prop.Key == "$ref":
			elemSetup.WriteString(fmt.Sprintf("%s = %s;\n", value, varName))

		case strings.HasPrefix(prop.Key, "$"):
			key := strings.TrimPrefix(prop.Key, "$")
			state.AddImport("trackAttribute")
			elemSetup.WriteString(fmt.Sprintf("%strackAttribute(%s, \"%s\", %s);\n", template.VarPrefix, varName, key, htmlkind.WrapReactiveValue(prop.Kind, value)))

		default:
			state.AddImport("setAttribute")
			elemSetup.WriteString(fmt.Sprintf("%ssetAttribute(%s, \"%s\", %s);\n", template.VarPrefix, varName, prop.Key, value))
		}
	}
	return nil
}

