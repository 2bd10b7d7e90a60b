package codegen

import (
	"strings"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/junojs/jsxc/internal/htmlkind"
	"github.com/junojs/jsxc/internal/jsxerr"
	"github.com/junojs/jsxc/internal/loc"
	"github.com/junojs/jsxc/internal/template"
)

// GenerateTemplateString renders t as the static HTML template-literal
// body a runtime `template()` call clones from. Component children,
// conditional/transitioned children, and bare expressions all become a
// `<!>` placeholder comment the runtime locates and replaces at
// insertChild time; everything else is rendered inline, recursively.
func GenerateTemplateString(t *template.Template, templates []*template.Template) (string, error) {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(t.Tag)

	var classes []string
	var styles []string

	for _, prop := range t.Props {
		if !htmlkind.IsStatic(prop.Kind) || strings.HasPrefix(prop.Key, "$") {
			continue
		}

		switch {
		case strings.HasPrefix(prop.Key, "class:"):
			classes = append(classes, strings.TrimPrefix(prop.Key, "class:"))
		case strings.HasPrefix(prop.Key, "style:"):
			if !prop.HasValue {
				return "", jsxerr.NewParseMsg(jsxerr.MsgStyleValueRequired, nodeRange(prop.Node))
			}
			property := strings.TrimPrefix(prop.Key, "style:")
			styles = append(styles, property+":"+prop.Value+";")
		case strings.HasPrefix(prop.Key, "var:"):
			if !prop.HasValue {
				return "", jsxerr.NewParseMsg(jsxerr.MsgVarValueRequired, nodeRange(prop.Node))
			}
			custom := strings.TrimPrefix(prop.Key, "var:")
			styles = append(styles, "--"+custom+":"+prop.Value+";")
		default:
			b.WriteString(" ")
			b.WriteString(prop.Key)
			if prop.HasValue {
				b.WriteString(`="`)
				b.WriteString(prop.Value)
				b.WriteString(`"`)
			}
		}
	}

	if len(classes) > 0 {
		b.WriteString(` class="`)
		b.WriteString(strings.Join(classes, " "))
		b.WriteString(`"`)
	}
	if len(styles) > 0 {
		b.WriteString(` style="`)
		b.WriteString(strings.Join(styles, ""))
		b.WriteString(`"`)
	}

	if t.IsSelfClosing && t.Tag != "slot" {
		b.WriteString("/>")
		return b.String(), nil
	}

	b.WriteString(">")

	idx := 0
	for idx < len(t.Children) {
		child := t.Children[idx]
		switch {
		case htmlkind.IsJSXElement(child.Kind):
			elem := findMatchingTemplate(templates, child)
			if elem == nil {
				idx++
				continue
			}
			if elem.IsComponent() || elem.Conditional != nil || elem.Transition != nil {
				b.WriteString("<!>")
			} else {
				rendered, err := GenerateTemplateString(elem, templates)
				if err != nil {
					return "", err
				}
				b.WriteString(rendered)
			}

		case htmlkind.IsJSXText(child.Kind):
			merged := mergeChildrenText(t.Children, &idx, false)
			if merged == "" {
				continue
			}
			b.WriteString(merged)
			idx--

		default:
			b.WriteString("<!>")
		}
		idx++
	}

	b.WriteString("</")
	b.WriteString(t.Tag)
	b.WriteString(">")

	return b.String(), nil
}

func nodeRange(n ts.Node) loc.Range {
	return loc.RangeFromBytes(int(n.StartByte()), int(n.EndByte()))
}
