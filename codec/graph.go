package codec

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/geange/fsa"
)

// GraphDocument is the node/edge shape used by graph editors.
type GraphDocument struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

type Node struct {
	ID        string `json:"id"`
	Label     string `json:"label,omitempty"`
	IsInitial bool   `json:"isInitial,omitempty"`
	IsFinal   bool   `json:"isFinal,omitempty"`
	Color     string `json:"color,omitempty"`
}

// Edge One or more transitions from Source to Target. Label holds the symbols separated by commas; an
// empty label is an epsilon-transition.
type Edge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Label  string  `json:"label,omitempty"`
	Weight float64 `json:"weight,omitempty"`
	Type   string  `json:"type,omitempty"`
}

const labelSeparator = ", "

// FromGraph Converts a graph into an automaton. The alphabet is every symbol used by an edge, in order of
// first use. Exactly one node must be initial.
func FromGraph(g GraphDocument) (*fsa.Automaton, error) {
	a := &fsa.Automaton{
		States:      []string{},
		Alphabet:    []string{},
		Transitions: []fsa.Transition{},
		FinalStates: []string{},
	}

	for _, n := range g.Nodes {
		if n.ID == "" {
			return nil, &fsa.ValidationError{Reason: "node without id"}
		}
		if slices.Contains(a.States, n.ID) {
			return nil, &fsa.ValidationError{Reason: fmt.Sprintf("duplicate node %q", n.ID)}
		}
		a.States = append(a.States, n.ID)
		if n.IsInitial {
			if a.InitialState != "" {
				return nil, &fsa.ValidationError{Reason: fmt.Sprintf("nodes %q and %q are both initial", a.InitialState, n.ID)}
			}
			a.InitialState = n.ID
		}
		if n.IsFinal {
			a.FinalStates = append(a.FinalStates, n.ID)
		}
	}
	if a.InitialState == "" {
		return nil, &fsa.ValidationError{Reason: "no initial node"}
	}

	for _, e := range g.Edges {
		for _, sym := range edgeSymbols(e.Label) {
			a.AddSymbol(sym)
			a.AddTransition(e.Source, sym, e.Target)
		}
	}
	if a.HasEpsilon() {
		a.Kind = fsa.KindNFAEpsilon
	}

	if err := fsa.Validate(a); err != nil {
		return nil, err
	}
	return a, nil
}

func edgeSymbols(label string) []string {
	var symbols []string
	for _, part := range strings.Split(label, ",") {
		if sym := strings.TrimSpace(part); sym != "" && !slices.Contains(symbols, sym) {
			symbols = append(symbols, sym)
		}
	}
	if len(symbols) == 0 {
		return []string{fsa.Epsilon}
	}
	return symbols
}

// ToGraph Converts an automaton into a graph. Parallel transitions share one edge whose label lists their
// symbols in transition order. The graph only carries symbols through edge labels: alphabet symbols no
// transition uses are lost, and a symbol holding a comma reads back as several. EncodeGraph rejects both.
func ToGraph(a *fsa.Automaton) GraphDocument {
	g := GraphDocument{
		Nodes: make([]Node, 0, len(a.States)),
		Edges: []Edge{},
	}
	for _, s := range a.States {
		g.Nodes = append(g.Nodes, Node{
			ID:        s,
			Label:     s,
			IsInitial: s == a.InitialState,
			IsFinal:   a.IsAccept(s),
		})
	}

	edgeOf := make(map[[2]string]int)
	for _, t := range a.Transitions {
		key := [2]string{t.From, t.To}
		if i, ok := edgeOf[key]; ok {
			g.Edges[i].Label += labelSeparator + t.Symbol
			continue
		}
		edgeOf[key] = len(g.Edges)
		g.Edges = append(g.Edges, Edge{Source: t.From, Target: t.To, Label: t.Symbol})
	}
	return g
}

// DecodeGraph Parses a graph document into an automaton.
func DecodeGraph(data []byte) (*fsa.Automaton, error) {
	var g GraphDocument
	if err := json.Unmarshal(data, &g); err != nil {
		return nil, fmt.Errorf("failed to parse graph json: %w", err)
	}
	return FromGraph(g)
}

// EncodeGraph Writes a as a graph document. It fails when the graph could not be read back as the same
// automaton.
func EncodeGraph(a *fsa.Automaton) ([]byte, error) {
	if err := fsa.Validate(a); err != nil {
		return nil, err
	}
	for _, sym := range a.Alphabet {
		if strings.Contains(sym, ",") || strings.TrimSpace(sym) != sym {
			return nil, fmt.Errorf("symbol %q cannot be written as a graph label", sym)
		}
		if !slices.ContainsFunc(a.Transitions, func(t fsa.Transition) bool { return t.Symbol == sym }) {
			return nil, fmt.Errorf("symbol %q is not used by any transition and would be lost in a graph", sym)
		}
	}
	return json.MarshalIndent(ToGraph(a), "", "  ")
}
