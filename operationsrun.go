package fsa

// Run Returns true if a accepts s, reading one symbol per rune.
func Run(a *Automaton, s string) bool {
	symbols := make([]string, 0, len(s))
	for _, r := range s {
		symbols = append(symbols, string(r))
	}
	return RunSymbols(a, symbols)
}

// RunSymbols Returns true if a accepts the word made of symbols. Epsilon-transitions are followed
// silently; Epsilon itself is not an input symbol and is rejected.
func RunSymbols(a *Automaton, symbols []string) bool {
	idx := newIndex(a)
	if idx.id(a.InitialState) < 0 {
		return false
	}

	current := NewStateSet()
	current.Add(idx.id(a.InitialState))
	current = epsilonClosure(idx, current)

	for _, sym := range symbols {
		if sym == Epsilon {
			return false
		}
		next := NewStateSet()
		for _, id := range current.GetArray() {
			for _, to := range idx.delta[StatePair{State: a.States[id], Symbol: sym}] {
				if toID := idx.id(to); toID >= 0 {
					next.Add(toID)
				}
			}
		}
		if next.Size() == 0 {
			return false
		}
		current = epsilonClosure(idx, next)
	}

	for _, id := range current.GetArray() {
		if idx.isAccept.Test(uint(id)) {
			return true
		}
	}
	return false
}
