package fsa

import (
	"fmt"
	"slices"

	"github.com/mitchellh/mapstructure"
)

// requiredLists are the container fields every raw automaton must carry.
var requiredLists = []string{"states", "alphabet", "transitions", "finalStates"}

// Parse Checks the shape of a decoded JSON/YAML document and converts it to a validated Automaton.
// Nothing is returned unless every check passes.
func Parse(raw map[string]any) (*Automaton, error) {
	if raw == nil {
		return nil, invalidf("empty document")
	}
	for _, field := range requiredLists {
		v, ok := raw[field]
		if !ok || v == nil {
			return nil, invalidf("missing %q", field)
		}
		if _, ok := v.([]any); !ok {
			return nil, invalidf("%q must be a list", field)
		}
	}
	initial, ok := raw["initialState"]
	if !ok || initial == nil || initial == "" {
		return nil, invalidf("missing %q", "initialState")
	}
	if _, ok := initial.(string); !ok {
		return nil, invalidf("%q must be a string", "initialState")
	}

	a := &Automaton{}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  a,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(raw); err != nil {
		return nil, invalidf("%v", err)
	}

	if err := Validate(a); err != nil {
		return nil, err
	}
	return a, nil
}

// Validate Checks the structural invariants of an automaton:
// the initial state and every final state are states, every transition has non-empty fields,
// connects two states and is labelled by an alphabet symbol.
func Validate(a *Automaton) error {
	if a == nil {
		return invalidf("nil automaton")
	}
	if len(a.States) == 0 {
		return invalidf("no states")
	}
	if a.InitialState == "" {
		return invalidf("missing initial state")
	}
	if !slices.Contains(a.States, a.InitialState) {
		return invalidf("initial state %q is not a state", a.InitialState)
	}
	for _, f := range a.FinalStates {
		if !slices.Contains(a.States, f) {
			return invalidf("final state %q is not a state", f)
		}
	}
	for i, t := range a.Transitions {
		if t.From == "" || t.To == "" || t.Symbol == "" {
			return invalidf("transition %d has an empty field", i)
		}
		if !slices.Contains(a.States, t.From) {
			return invalidf("transition %s: unknown state %q", t, t.From)
		}
		if !slices.Contains(a.States, t.To) {
			return invalidf("transition %s: unknown state %q", t, t.To)
		}
		if !slices.Contains(a.Alphabet, t.Symbol) {
			return invalidf("transition %s: unknown symbol %q", t, t.Symbol)
		}
	}
	return nil
}

func (t Transition) String() string {
	return fmt.Sprintf("(%s,%s,%s)", t.From, t.Symbol, t.To)
}
