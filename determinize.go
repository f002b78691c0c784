package fsa

import "strings"

// Determinize Determinizes the given automaton with the subset construction, following
// epsilon-transitions. The result is a complete DFA over the non-epsilon symbols of a; the empty subset
// becomes an ordinary rejecting state named "{}".
// Worst case complexity: exponential in number of states.
func Determinize(a *Automaton) (*Automaton, error) {
	return guard("determinize", func() (*Automaton, error) {
		return determinize(a), nil
	}, a)
}

func determinize(a *Automaton) *Automaton {
	idx := newIndex(a)

	alphabet := []string{}
	for _, sym := range a.Alphabet {
		if sym != Epsilon {
			alphabet = append(alphabet, sym)
		}
	}

	result := &Automaton{
		States:      []string{},
		Alphabet:    alphabet,
		Transitions: []Transition{},
		FinalStates: []string{},
	}

	newState := NewHashMap[string](WithCapacity(16))
	taken := make(map[string]struct{})
	worklist := make([]*FrozenIntSet, 0)

	register := func(set *StateSet) string {
		frozen := set.Freeze(len(result.States))
		if name, ok := newState.Get(frozen); ok {
			return name
		}
		name := freshName(subsetName(a, frozen), func(s string) bool {
			_, ok := taken[s]
			return ok
		})
		taken[name] = struct{}{}
		newState.Set(frozen, name)
		result.States = append(result.States, name)
		for _, id := range frozen.GetArray() {
			if idx.isAccept.Test(uint(id)) {
				result.FinalStates = append(result.FinalStates, name)
				break
			}
		}
		worklist = append(worklist, frozen)
		return name
	}

	initial := NewStateSet()
	initial.Add(idx.id(a.InitialState))
	result.InitialState = register(epsilonClosure(idx, initial))

	for len(worklist) > 0 {
		current := worklist[0]
		worklist = worklist[1:]
		from, _ := newState.Get(current)

		for _, sym := range alphabet {
			next := NewStateSet()
			for _, id := range current.GetArray() {
				for _, to := range idx.delta[StatePair{State: a.States[id], Symbol: sym}] {
					next.Add(idx.id(to))
				}
			}
			result.AddTransition(from, sym, register(epsilonClosure(idx, next)))
		}
	}

	return result
}

// epsilonClosure Returns set extended with every state reachable through epsilon-transitions alone.
func epsilonClosure(idx *index, set *StateSet) *StateSet {
	a := idx.a
	workList := set.GetArray()

	for len(workList) > 0 {
		id := workList[len(workList)-1]
		workList = workList[:len(workList)-1]
		for _, to := range idx.delta[StatePair{State: a.States[id], Symbol: Epsilon}] {
			toID := idx.id(to)
			if set.Add(toID) {
				workList = append(workList, toID)
			}
		}
	}
	return set
}

func subsetName(a *Automaton, set IntSet) string {
	names := make([]string, 0, set.Size())
	for _, id := range set.GetArray() {
		names = append(names, a.States[id])
	}
	return "{" + strings.Join(names, ",") + "}"
}
