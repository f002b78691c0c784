package fsa

// IsDFA Returns true if the automaton is a complete deterministic automaton: for every state and every
// alphabet symbol there is exactly one outgoing transition. An alphabet containing Epsilon is never
// deterministic.
func IsDFA(a *Automaton) bool {
	if a.HasEpsilon() {
		return false
	}
	counts := transitionCounts(a)
	for _, s := range a.States {
		for _, sym := range a.Alphabet {
			if counts[StatePair{State: s, Symbol: sym}] != 1 {
				return false
			}
		}
	}
	return true
}

// IsDeterministic Returns true if no state has two transitions leaving with the same symbol and no
// transition is labelled Epsilon. Unlike IsDFA, missing transitions are allowed.
func IsDeterministic(a *Automaton) bool {
	counts := transitionCounts(a)
	for key, n := range counts {
		if n > 1 || key.Symbol == Epsilon {
			return false
		}
	}
	return true
}

// MissingTransitions Returns the (state, symbol) pairs with no outgoing transition, states first then
// alphabet order. Epsilon is not an input symbol and is never reported.
func MissingTransitions(a *Automaton) []StatePair {
	counts := transitionCounts(a)
	var missing []StatePair
	for _, s := range a.States {
		for _, sym := range a.Alphabet {
			if sym == Epsilon {
				continue
			}
			key := StatePair{State: s, Symbol: sym}
			if counts[key] == 0 {
				missing = append(missing, key)
			}
		}
	}
	return missing
}

func transitionCounts(a *Automaton) map[StatePair]int {
	counts := make(map[StatePair]int, len(a.Transitions))
	for _, t := range a.Transitions {
		counts[StatePair{State: t.From, Symbol: t.Symbol}]++
	}
	return counts
}
