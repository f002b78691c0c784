package fsa

import (
	"slices"

	"github.com/bits-and-blooms/bitset"
)

const (
	sinkState = "sink"

	concatLeftPrefix  = "A1_"
	concatRightPrefix = "A2_"
	starPrefix        = "q_"
	plusPrefix        = "A_"
	startSuffix       = "start"
)

// Complete Returns a copy of a in which every (state, symbol) pair has a transition. Missing pairs are
// sent to a new sink state that loops to itself on every symbol. If nothing is missing the copy is
// returned unchanged.
func Complete(a *Automaton) (*Automaton, error) {
	return guard("complete", func() (*Automaton, error) {
		return totalize(a), nil
	}, a)
}

// PruneUnreachable Returns a copy of a without the states that cannot be reached from the initial state.
func PruneUnreachable(a *Automaton) (*Automaton, error) {
	return guard("prune", func() (*Automaton, error) {
		return removeUnreachable(a), nil
	}, a)
}

// Concatenate Returns an NFA-ε accepting L(a1)·L(a2).
func Concatenate(a1, a2 *Automaton) (*Automaton, error) {
	return guard("concatenate", func() (*Automaton, error) {
		return concatenate(a1, a2), nil
	}, a1, a2)
}

// KleeneStar Returns an NFA-ε accepting L(a)*.
func KleeneStar(a *Automaton) (*Automaton, error) {
	return guard("kleene star", func() (*Automaton, error) {
		return repeat(a, starPrefix, true), nil
	}, a)
}

// PositiveClosure Returns an NFA-ε accepting L(a)+.
func PositiveClosure(a *Automaton) (*Automaton, error) {
	return guard("positive closure", func() (*Automaton, error) {
		return repeat(a, plusPrefix, false), nil
	}, a)
}

func totalize(a *Automaton) *Automaton {
	result := a.Clone()

	missing := MissingTransitions(a)
	if len(missing) == 0 {
		return result
	}

	sink := freshName(sinkState, func(s string) bool { return slices.Contains(a.States, s) })
	result.States = append(result.States, sink)

	for _, m := range missing {
		result.AddTransition(m.State, m.Symbol, sink)
	}
	for _, sym := range result.Alphabet {
		if sym == Epsilon {
			continue
		}
		result.AddTransition(sink, sym, sink)
	}
	return result
}

// reachableStates computes forward reachability from the initial state as a fixed point: every pass
// scans all transitions, and the loop stops once a pass adds nothing.
func reachableStates(idx *index) *bitset.BitSet {
	a := idx.a
	reachable := bitset.New(uint(len(a.States)))
	reachable.Set(uint(idx.id(a.InitialState)))

	for oldSize := uint(0); reachable.Count() != oldSize; {
		oldSize = reachable.Count()
		for _, t := range a.Transitions {
			if reachable.Test(uint(idx.id(t.From))) {
				reachable.Set(uint(idx.id(t.To)))
			}
		}
	}
	return reachable
}

func removeUnreachable(a *Automaton) *Automaton {
	idx := newIndex(a)
	live := reachableStates(idx)
	isLive := func(s string) bool {
		id := idx.id(s)
		return id >= 0 && live.Test(uint(id))
	}

	result := &Automaton{
		States:       []string{},
		Alphabet:     cloneStrings(a.Alphabet),
		Transitions:  []Transition{},
		InitialState: a.InitialState,
		FinalStates:  []string{},
		Kind:         a.Kind,
	}
	for _, s := range a.States {
		if isLive(s) && !slices.Contains(result.States, s) {
			result.States = append(result.States, s)
		}
	}
	for _, t := range a.Transitions {
		if isLive(t.From) && isLive(t.To) {
			result.Transitions = append(result.Transitions, t)
		}
	}
	for _, f := range a.FinalStates {
		if isLive(f) && !slices.Contains(result.FinalStates, f) {
			result.FinalStates = append(result.FinalStates, f)
		}
	}
	return result
}

// prefixed copies the states, transitions, initial and final states of a under prefix.
func prefixed(a *Automaton, prefix string) *Automaton {
	result := &Automaton{
		States:       make([]string, 0, len(a.States)),
		Alphabet:     cloneStrings(a.Alphabet),
		Transitions:  make([]Transition, 0, len(a.Transitions)),
		InitialState: prefix + a.InitialState,
		FinalStates:  make([]string, 0, len(a.FinalStates)),
	}
	for _, s := range a.States {
		result.States = append(result.States, prefix+s)
	}
	for _, t := range a.Transitions {
		result.AddTransition(prefix+t.From, t.Symbol, prefix+t.To)
	}
	for _, f := range a.FinalStates {
		result.FinalStates = append(result.FinalStates, prefix+f)
	}
	return result
}

func concatenate(a1, a2 *Automaton) *Automaton {
	left := prefixed(a1, concatLeftPrefix)
	right := prefixed(a2, concatRightPrefix)

	result := &Automaton{
		States:       append(left.States, right.States...),
		Alphabet:     unionSymbols(unionSymbols(a1.Alphabet, a2.Alphabet), []string{Epsilon}),
		Transitions:  append(left.Transitions, right.Transitions...),
		InitialState: left.InitialState,
		FinalStates:  right.FinalStates,
		Kind:         KindNFAEpsilon,
	}

	// Link accept states of a1 to the init state of a2.
	for _, f := range left.FinalStates {
		result.AddTransition(f, Epsilon, right.InitialState)
	}

	// Both halves accept the empty string.
	if a1.IsAccept(a1.InitialState) && a2.IsAccept(a2.InitialState) {
		result.FinalStates = append([]string{result.InitialState}, result.FinalStates...)
	}

	return removeUnreachable(result)
}

// repeat builds the closure of a: a fresh initial state with an epsilon-transition into the old initial
// state, and an epsilon-transition from every final state back to it. With acceptEmpty the fresh initial
// state is final (Kleene star); otherwise the empty string is accepted only if a accepts it (positive
// closure).
func repeat(a *Automaton, prefix string, acceptEmpty bool) *Automaton {
	inner := prefixed(a, prefix)

	start := freshName(prefix+startSuffix, func(s string) bool { return slices.Contains(inner.States, s) })

	result := &Automaton{
		States:       append(inner.States, start),
		Alphabet:     unionSymbols(a.Alphabet, []string{Epsilon}),
		Transitions:  inner.Transitions,
		InitialState: start,
		FinalStates:  inner.FinalStates,
		Kind:         KindNFAEpsilon,
	}

	result.AddTransition(start, Epsilon, inner.InitialState)
	for _, f := range inner.FinalStates {
		result.AddTransition(f, Epsilon, inner.InitialState)
	}

	if acceptEmpty {
		result.FinalStates = append(result.FinalStates, start)
	}

	return removeUnreachable(result)
}
