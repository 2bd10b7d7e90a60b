// Command gen regenerates internal/entities/table.go from entities.json,
// a name -> codepoints dict shaped like the WHATWG named character
// reference table (the same source build.rs consumes upstream). Every
// single-codepoint entry is written to the name table; codepoints in the
// escape set (see entities.EscapeFor) are turned into their escape
// sequence at decode time.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
)

type entity struct {
	Codepoints []int  `json:"codepoints"`
	Characters string `json:"characters"`
}

func main() {
	data, err := os.ReadFile("entities.json")
	if err != nil {
		log.Fatalf("read entities.json: %v", err)
	}

	var raw map[string]entity
	if err := json.Unmarshal(data, &raw); err != nil {
		log.Fatalf("parse entities.json: %v", err)
	}

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("package entities\n\n")
	sb.WriteString("// Generated by internal/entities/gen from entities.json. Do not edit by\n")
	sb.WriteString("// hand; re-run `go generate ./internal/entities/...` instead.\n\n")
	sb.WriteString("//go:generate go run ./gen\n\n")
	sb.WriteString("var namedEntities = map[string]rune{\n")
	for _, name := range names {
		e := raw[name]
		if len(e.Codepoints) != 1 {
			continue
		}
		r := rune(e.Codepoints[0])
		trimmed := strings.TrimSuffix(name, ";")
		fmt.Fprintf(&sb, "\t%q: %q,\n", trimmed, r)
	}
	sb.WriteString("}\n")

	if err := os.WriteFile("table.go", []byte(sb.String()), 0o644); err != nil {
		log.Fatalf("write table.go: %v", err)
	}
}
