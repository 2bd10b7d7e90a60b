// Package text implements the whitespace folding and JSX text merging
// routines the template model runs over jsx_text / html_character_reference
// children before they become string literals in generated code.
package text

import (
	"strings"
	"unicode/utf8"

	"github.com/junojs/jsxc/internal/entities"
)

// IsWhitespace reports whether r is ASCII whitespace or one of the Unicode
// space codepoints folded by FoldWhitespace: U+00A0, U+1680, U+2000..U+200B,
// U+202F, U+205F, U+3000, U+FEFF.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	case 0x00A0, 0x1680, 0x202F, 0x205F, 0x3000, 0xFEFF:
		return true
	}
	return r >= 0x2000 && r <= 0x200B
}

// FoldWhitespace collapses every maximal run of whitespace within
// buf[start:end] to a single ASCII space, trims leading whitespace at
// start and trailing whitespace at end, and shifts the bytes at and
// after end left to close the gap left by the collapse. It returns the
// buffer's new overall length; callers must truncate buf to that length.
// Bytes outside [start:end) are preserved byte-for-byte and never split
// mid rune, satisfying UTF-8 boundary safety even under truncation.
func FoldWhitespace(buf []byte, start, end int) int {
	folded := make([]byte, 0, end-start)
	wroteAny := false
	pendingSpace := false

	for i := start; i < end; {
		r, size := utf8.DecodeRune(buf[i:end])
		if IsWhitespace(r) {
			pendingSpace = wroteAny
			i += size
			continue
		}
		if pendingSpace {
			folded = append(folded, ' ')
			pendingSpace = false
		}
		folded = utf8.AppendRune(folded, r)
		wroteAny = true
		i += size
	}

	n := copy(buf[start:], folded)
	m := copy(buf[start+n:], buf[end:])
	return start + n + m
}

// Child is the minimal view of a template child FoldWhitespace's sibling
// needs: its CST node kind and already-extracted source text.
type Child struct {
	Kind  string
	Value string
}

func isJSXTextKind(kind string) bool {
	return kind == "jsx_text" || kind == "html_character_reference"
}

// MergeJSXText consumes the run of consecutive jsx_text /
// html_character_reference children starting at *idx, folds their
// whitespace, and returns the merged text. When escape is true the
// result is wrapped in double quotes with interior quotes backslash
// escaped and entities decoded through the entities package; when false,
// raw source text is concatenated with entities left literal. Leading
// space survives iff this run starts the children slice or follows a
// non-text sibling with trailing space; the mirrored rule governs
// trailing space against the next sibling. *idx is advanced past the
// consumed run.
func MergeJSXText(children []Child, idx *int, escape bool) string {
	surround := ""
	offset := 0
	if escape {
		surround = `"`
		offset = 1
	}

	prevIdx := *idx - 1
	hasPrev := prevIdx >= 0

	var body strings.Builder
	body.WriteString(surround)

	startIdx := *idx
	for *idx < len(children) {
		c := children[*idx]
		if !isJSXTextKind(c.Kind) {
			break
		}
		switch {
		case escape && c.Kind == "html_character_reference":
			entities.Decode(c.Value, &body)
		case escape:
			body.WriteString(strings.ReplaceAll(c.Value, `"`, `\"`))
		default:
			body.WriteString(c.Value)
		}
		*idx++
	}
	lastConsumedKind := ""
	if *idx > startIdx {
		lastConsumedKind = children[*idx-1].Kind
	}

	nextIdx := *idx
	hasNext := nextIdx < len(children)

	buf := []byte(body.String())

	start := offset
	if (!hasPrev || !isJSXTextKind(children[prevIdx].Kind)) && len(buf) > offset && buf[offset] == ' ' {
		start = offset + 1
	}

	appendSpace := false
	if (!hasNext || !isJSXTextKind(children[nextIdx].Kind)) && lastConsumedKind == "jsx_text" {
		appendSpace = trailingSpaceBordersContent(buf[offset:])
	}

	newLen := FoldWhitespace(buf, start, len(buf))
	buf = buf[:newLen]

	var out strings.Builder
	out.Write(buf)
	if appendSpace {
		out.WriteByte(' ')
	}
	out.WriteString(surround)
	return out.String()
}

// trailingSpaceBordersContent reports whether the byte immediately after
// the last non-whitespace byte in b is an ASCII space (as opposed to a
// tab, newline, or no trailing whitespace at all).
func trailingSpaceBordersContent(b []byte) bool {
	i := len(b) - 1
	for i >= 0 && isASCIIWhitespace(b[i]) {
		i--
	}
	if i+1 >= len(b) {
		return false
	}
	return b[i+1] == ' '
}

func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}
