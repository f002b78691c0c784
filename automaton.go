package fsa

import (
	"slices"
	"strconv"

	"github.com/bits-and-blooms/bitset"
)

const (
	// Epsilon is the reserved symbol of the empty string. An alphabet holding it
	// describes an automaton with epsilon-transitions.
	Epsilon = "ε"

	// EmptySet is the regular expression denoting the empty language.
	EmptySet = "∅"

	// KindNFAEpsilon tags automata built with epsilon-transitions.
	KindNFAEpsilon = "NFA-ε"
)

// Automaton Represents a finite automaton as the quintuple (Q, Σ, δ, q0, F). States and symbols are plain
// strings; the order of States is only the display order. Transitions may share (From, Symbol), which is
// exactly what makes an automaton non-deterministic.
//
// Operations never modify an Automaton they receive: every result is a freshly allocated value.
type Automaton struct {
	States       []string     `json:"states" yaml:"states"`
	Alphabet     []string     `json:"alphabet" yaml:"alphabet"`
	Transitions  []Transition `json:"transitions" yaml:"transitions"`
	InitialState string       `json:"initialState" yaml:"initialState"`
	FinalStates  []string     `json:"finalStates" yaml:"finalStates"`

	// Kind is informational only, e.g. KindNFAEpsilon.
	Kind string `json:"type,omitempty" yaml:"type,omitempty"`
}

// Transition One edge of the transition relation.
type Transition struct {
	From   string `json:"from" yaml:"from"`
	Symbol string `json:"symbol" yaml:"symbol"`
	To     string `json:"to" yaml:"to"`
}

// StatePair A (state, symbol) pair of the transition function.
type StatePair struct {
	State  string
	Symbol string
}

// NewAutomaton Returns an automaton with a single initial state and the given alphabet.
func NewAutomaton(initial string, alphabet ...string) *Automaton {
	return &Automaton{
		States:       []string{initial},
		Alphabet:     slices.Clone(alphabet),
		Transitions:  []Transition{},
		InitialState: initial,
		FinalStates:  []string{},
	}
}

// Clone Returns a deep copy of the automaton.
func (a *Automaton) Clone() *Automaton {
	return &Automaton{
		States:       cloneStrings(a.States),
		Alphabet:     cloneStrings(a.Alphabet),
		Transitions:  append(make([]Transition, 0, len(a.Transitions)), a.Transitions...),
		InitialState: a.InitialState,
		FinalStates:  cloneStrings(a.FinalStates),
		Kind:         a.Kind,
	}
}

// AddState Appends state unless it is already present.
func (a *Automaton) AddState(state string) {
	if !slices.Contains(a.States, state) {
		a.States = append(a.States, state)
	}
}

// AddSymbol Appends symbol to the alphabet unless it is already present.
func (a *Automaton) AddSymbol(symbol string) {
	if !slices.Contains(a.Alphabet, symbol) {
		a.Alphabet = append(a.Alphabet, symbol)
	}
}

// AddTransition Appends the transition from -symbol-> to.
func (a *Automaton) AddTransition(from, symbol, to string) {
	a.Transitions = append(a.Transitions, Transition{From: from, Symbol: symbol, To: to})
}

// SetAccept Set or clear this state as a final state.
func (a *Automaton) SetAccept(state string, accept bool) {
	idx := slices.Index(a.FinalStates, state)
	switch {
	case accept && idx < 0:
		a.FinalStates = append(a.FinalStates, state)
	case !accept && idx >= 0:
		a.FinalStates = slices.Delete(a.FinalStates, idx, idx+1)
	}
}

// IsAccept Returns true if this state is a final state.
func (a *Automaton) IsAccept(state string) bool {
	return slices.Contains(a.FinalStates, state)
}

// HasEpsilon Returns true if the alphabet holds the epsilon symbol.
func (a *Automaton) HasEpsilon() bool {
	return slices.Contains(a.Alphabet, Epsilon)
}

// GetNumStates How many states this automaton has.
func (a *Automaton) GetNumStates() int {
	return len(a.States)
}

// GetNumTransitions How many transitions this automaton has.
func (a *Automaton) GetNumTransitions() int {
	return len(a.Transitions)
}

// Targets Returns the destinations of every transition leaving state on symbol, in transition order.
func (a *Automaton) Targets(state, symbol string) []string {
	var out []string
	for _, t := range a.Transitions {
		if t.From == state && t.Symbol == symbol {
			out = append(out, t.To)
		}
	}
	return out
}

// index is a read-only lookup view of an automaton, built once per operation call.
type index struct {
	a        *Automaton
	stateIDs map[string]int
	isAccept *bitset.BitSet

	// delta maps (state, symbol) to the destination states in transition order.
	delta map[StatePair][]string
}

func newIndex(a *Automaton) *index {
	idx := &index{
		a:        a,
		stateIDs: make(map[string]int, len(a.States)),
		isAccept: bitset.New(uint(len(a.States))),
		delta:    make(map[StatePair][]string),
	}
	for i, s := range a.States {
		if _, ok := idx.stateIDs[s]; !ok {
			idx.stateIDs[s] = i
		}
	}
	for _, f := range a.FinalStates {
		if id, ok := idx.stateIDs[f]; ok {
			idx.isAccept.Set(uint(id))
		}
	}
	for _, t := range a.Transitions {
		key := StatePair{State: t.From, Symbol: t.Symbol}
		idx.delta[key] = append(idx.delta[key], t.To)
	}
	return idx
}

func (idx *index) id(state string) int {
	id, ok := idx.stateIDs[state]
	if !ok {
		return -1
	}
	return id
}

func (idx *index) isFinal(state string) bool {
	id := idx.id(state)
	return id >= 0 && idx.isAccept.Test(uint(id))
}

// step Returns the single destination of (state, symbol), assuming determinism.
func (idx *index) step(state, symbol string) (string, bool) {
	dest := idx.delta[StatePair{State: state, Symbol: symbol}]
	if len(dest) == 0 {
		return "", false
	}
	return dest[0], true
}

// freshName Returns base, or base followed by the smallest counter making it unused in taken.
func freshName(base string, taken func(string) bool) string {
	name := base
	for counter := 1; taken(name); counter++ {
		name = base + strconv.Itoa(counter)
	}
	return name
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}

// unionSymbols Returns the symbols of a followed by the symbols of b not in a.
func unionSymbols(a, b []string) []string {
	out := cloneStrings(a)
	for _, s := range b {
		if !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}

// commonSymbols Returns the symbols of a also present in b, in the order of a.
func commonSymbols(a, b []string) []string {
	out := []string{}
	for _, s := range a {
		if slices.Contains(b, s) && !slices.Contains(out, s) {
			out = append(out, s)
		}
	}
	return out
}
