package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/clif/pkg/domain"
	"github.com/aretw0/clif/pkg/naming"
)

// GenerateMermaid produces a Mermaid flowchart of a pool stack.
//
// Pools are drawn bottom to top, joined by "push" edges, with each visible
// command hanging off its pool. Shapes:
//   - Pool: ((Circle))
//   - 0-arg command: [Rectangle]
//   - Variadic command: [/Parallelogram/]
//
// The last pool, the one receiving input, gets the "current" class.
func GenerateMermaid(pools []domain.Pool, codec naming.Codec) string {
	if codec == nil {
		codec = naming.Default
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for i, p := range pools {
		poolID := fmt.Sprintf("p%d", i)
		sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", poolID, escapeLabel(p.Name())))
		if i > 0 {
			sb.WriteString(fmt.Sprintf("    p%d -- \"push\" --> %s\n", i-1, poolID))
		}

		for j, c := range p.Commands() {
			if c.Hidden {
				continue
			}
			name := codec.Externalize(c.Name)
			opener, closer := "[", "]"
			if c.Arity == domain.ArityVariadic {
				opener, closer = "[/", "/]"
				if len(c.Arguments) > 0 {
					name += " " + strings.Join(c.Arguments, " ")
				}
			}
			cmdID := fmt.Sprintf("%s_c%d", poolID, j)
			sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", cmdID, opener, escapeLabel(name), closer))
			sb.WriteString(fmt.Sprintf("    %s -.- %s\n", poolID, cmdID))
		}
	}

	if len(pools) > 0 {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class p%d current;\n", len(pools)-1))
	}

	return sb.String()
}

// escapeLabel keeps labels inside their double quotes.
func escapeLabel(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "<", "&lt;")
	return strings.ReplaceAll(s, ">", "&gt;")
}
