package codegen

import (
	"sort"

	ts "github.com/tree-sitter/go-tree-sitter"

	"github.com/junojs/jsxc/internal/template"
)

// ReplaceJSX returns value with every template fully enclosed in node's
// byte range spliced out and replaced by that template's own lowered
// form. Splicing works byte range containment, not the CST: a template
// nested inside another enclosed template is skipped (the enclosing
// template's own lowering recurses into it through its Children), so
// only the largest, non-overlapping enclosing templates are spliced —
// never a template and one of its own descendants both at once.
func ReplaceJSX(node ts.Node, templates []*template.Template, value string, state *template.GlobalState) (string, error) {
	rangeStart := int(node.StartByte())
	rangeEnd := int(node.EndByte()) + 1

	var candidates []*template.Template
	for _, t := range templates {
		if t.Start >= rangeStart && t.Start < rangeEnd && t.End >= rangeStart && t.End < rangeEnd {
			candidates = append(candidates, t)
		}
	}
	if len(candidates) == 0 {
		return value, nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return (candidates[i].End - candidates[i].Start) > (candidates[j].End - candidates[j].Start)
	})

	type span struct{ start, end int }
	var covered []span
	var enclosing []*template.Template
	for _, t := range candidates {
		contained := false
		for _, s := range covered {
			if t.Start >= s.start && t.Start < s.end && t.End >= s.start && t.End < s.end {
				contained = true
				break
			}
		}
		if contained {
			continue
		}
		enclosing = append(enclosing, t)
		covered = append(covered, span{t.Start, t.End + 1})
	}

	sort.Slice(enclosing, func(i, j int) bool { return enclosing[i].Start > enclosing[j].Start })

	out := []byte(value)
	for _, t := range enclosing {
		lowered, err := Parts(t, templates, state)
		if err != nil {
			return "", err
		}
		relStart := t.Start - rangeStart
		relEnd := t.End - rangeStart
		out = spliceBytes(out, relStart, relEnd, lowered)
	}
	return string(out), nil
}

func spliceBytes(buf []byte, start, end int, replacement string) []byte {
	out := make([]byte, 0, len(buf)-(end-start)+len(replacement))
	out = append(out, buf[:start]...)
	out = append(out, replacement...)
	out = append(out, buf[end:]...)
	return out
}
