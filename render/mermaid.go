package render

import (
	"fmt"
	"strings"

	"github.com/geange/fsa"
)

// Mermaid Renders a as a "graph LR" flowchart. Nodes get positional ids, so any state name is safe;
// final states are double circles.
func Mermaid(a *fsa.Automaton) (string, error) {
	if err := fsa.Validate(a); err != nil {
		return "", err
	}

	ids := make(map[string]string, len(a.States))
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	for i, s := range a.States {
		if _, ok := ids[s]; ok {
			continue
		}
		id := fmt.Sprintf("s%d", i)
		ids[s] = id

		opener, closer := "((", "))"
		if a.IsAccept(s) {
			opener, closer = "(((", ")))"
		}
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", id, opener, escapeMermaid(s), closer))
	}

	sb.WriteString("    start[\" \"] --> " + ids[a.InitialState] + "\n")
	sb.WriteString("    style start fill:none,stroke:none\n")

	for _, e := range mergeEdges(a) {
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", ids[e.from], escapeMermaid(e.label()), ids[e.to]))
	}
	return sb.String(), nil
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, "\"", "#quot;")
}
