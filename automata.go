package fsa

import "strconv"

// Automata Factory of small automata, all of them complete DFAs over the alphabet they are given.
type Automata struct {
}

var defaultAutomata = &Automata{}

// MakeEmpty
// Returns a new (deterministic) automaton with the empty language.
func (*Automata) MakeEmpty(alphabet ...string) *Automaton {
	a := NewAutomaton("q0", alphabet...)
	for _, sym := range alphabet {
		a.AddTransition("q0", sym, "q0")
	}
	return a
}

// MakeEmptyString
// Returns a new (deterministic) automaton that accepts only the empty string.
func (*Automata) MakeEmptyString(alphabet ...string) *Automaton {
	a := NewAutomaton("q0", alphabet...)
	a.SetAccept("q0", true)
	return totalize(a)
}

// MakeAnyString
// Returns a new (deterministic) automaton that accepts all strings over alphabet.
func (*Automata) MakeAnyString(alphabet ...string) *Automaton {
	a := NewAutomaton("q0", alphabet...)
	a.SetAccept("q0", true)
	for _, sym := range alphabet {
		a.AddTransition("q0", sym, "q0")
	}
	return a
}

// MakeSymbol
// Returns a new (deterministic) automaton that accepts the single symbol.
func (m *Automata) MakeSymbol(symbol string) *Automaton {
	return m.MakeString(symbol)
}

// MakeString
// Returns a new (deterministic) automaton that accepts exactly the word made of symbols.
func (*Automata) MakeString(symbols ...string) *Automaton {
	a := NewAutomaton("q0")
	for i, sym := range symbols {
		from, to := "q"+strconv.Itoa(i), "q"+strconv.Itoa(i+1)
		a.AddSymbol(sym)
		a.AddState(to)
		a.AddTransition(from, sym, to)
	}
	a.SetAccept("q"+strconv.Itoa(len(symbols)), true)
	return totalize(a)
}
