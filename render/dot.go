// Package render draws automata for people: Graphviz DOT, Mermaid flowcharts and the quintuple table.
package render

import (
	"slices"
	"strings"

	"github.com/emicklei/dot"

	"github.com/geange/fsa"
)

const labelSeparator = ", "

// edge One drawn arrow; parallel transitions between the same states share it.
type edge struct {
	from, to string
	symbols  []string
}

// mergeEdges groups the transitions of a by (from, to), in order of first appearance.
func mergeEdges(a *fsa.Automaton) []edge {
	var edges []edge
	indexOf := make(map[[2]string]int)
	for _, t := range a.Transitions {
		key := [2]string{t.From, t.To}
		i, ok := indexOf[key]
		if !ok {
			i = len(edges)
			indexOf[key] = i
			edges = append(edges, edge{from: t.From, to: t.To})
		}
		if !slices.Contains(edges[i].symbols, t.Symbol) {
			edges[i].symbols = append(edges[i].symbols, t.Symbol)
		}
	}
	return edges
}

func (e edge) label() string {
	return strings.Join(e.symbols, labelSeparator)
}

// startName Returns a node name not used by any state, for the invisible start point.
func startName(a *fsa.Automaton, base string) string {
	name := base
	for slices.Contains(a.States, name) {
		name += "_"
	}
	return name
}

// DOT Renders a as a left-to-right Graphviz digraph. Final states are double circles and an arrow from
// an invisible point marks the initial state.
func DOT(a *fsa.Automaton) (string, error) {
	if err := fsa.Validate(a); err != nil {
		return "", err
	}

	g := dot.NewGraph(dot.Directed)
	g.Attr("rankdir", "LR")

	for _, s := range a.States {
		shape := "circle"
		if a.IsAccept(s) {
			shape = "doublecircle"
		}
		g.Node(s).Attr("shape", shape)
	}

	start := g.Node(startName(a, "__start")).Attr("shape", "point").Attr("style", "invis")
	g.Edge(start, g.Node(a.InitialState))

	for _, e := range mergeEdges(a) {
		g.Edge(g.Node(e.from), g.Node(e.to)).Attr("label", e.label())
	}
	return g.String(), nil
}
