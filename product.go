package fsa

import (
	"slices"
)

// deadLabel is how the placeholder of an undefined component is displayed in a pair name.
const deadLabel = "dead"

var _ Hashable = statePair{}

// statePair is the composite key of a product state. A dead component stands for "no transition" in that
// automaton and never equals a real state, whatever its name.
type statePair struct {
	left, right         string
	leftDead, rightDead bool
}

func (p statePair) Hash() uint64 {
	h := hashString(p.left)*PHI_C64 ^ hashString(p.right)
	if p.leftDead {
		h ^= 1
	}
	if p.rightDead {
		h ^= 2
	}
	return mix64(h)
}

func (p statePair) Equals(other Hashable) bool {
	o, ok := other.(statePair)
	return ok && p == o
}

func (p statePair) String() string {
	left, right := p.left, p.right
	if p.leftDead {
		left = deadLabel
	}
	if p.rightDead {
		right = deadLabel
	}
	return "(" + left + "," + right + ")"
}

// productBuilder discovers pair states breadth first. Every pair is named and enqueued exactly once.
type productBuilder struct {
	result *Automaton
	names  *HashMap[string]
	taken  map[string]struct{}
	queue  []statePair
	final  func(statePair) bool
}

func newProductBuilder(alphabet []string, final func(statePair) bool) *productBuilder {
	return &productBuilder{
		result: &Automaton{
			States:      []string{},
			Alphabet:    alphabet,
			Transitions: []Transition{},
			FinalStates: []string{},
		},
		names: NewHashMap[string](WithCapacity(16)),
		taken: make(map[string]struct{}),
		final: final,
	}
}

// visit Returns the name of p, creating and enqueueing the state on first sight.
func (b *productBuilder) visit(p statePair) string {
	if name, ok := b.names.Get(p); ok {
		return name
	}

	name := freshName(p.String(), func(s string) bool {
		_, ok := b.taken[s]
		return ok
	})
	b.taken[name] = struct{}{}
	b.names.Set(p, name)
	b.result.States = append(b.result.States, name)
	if b.final(p) {
		b.result.FinalStates = append(b.result.FinalStates, name)
	}
	b.queue = append(b.queue, p)
	return name
}

func (b *productBuilder) pop() (statePair, bool) {
	if len(b.queue) == 0 {
		return statePair{}, false
	}
	p := b.queue[0]
	b.queue = b.queue[1:]
	return p, true
}

// Complement Returns a DFA accepting every word over the alphabet of a that a rejects. a must be
// deterministic; missing transitions are completed first.
func Complement(a *Automaton) (*Automaton, error) {
	return guard("complement", func() (*Automaton, error) {
		return complement(a)
	}, a)
}

// Union Returns a DFA accepting L(a1) ∪ L(a2) over the union of both alphabets.
func Union(a1, a2 *Automaton) (*Automaton, error) {
	return guard("union", func() (*Automaton, error) {
		return union(a1, a2)
	}, a1, a2)
}

// Intersection Returns a DFA accepting L(a1) ∩ L(a2) over the common alphabet.
func Intersection(a1, a2 *Automaton) (*Automaton, error) {
	return guard("intersection", func() (*Automaton, error) {
		return intersection(a1, a2)
	}, a1, a2)
}

// Difference Returns a DFA accepting L(a1) − L(a2), computed as a1 ∩ complement(a2).
func Difference(a1, a2 *Automaton) (*Automaton, error) {
	return guard("difference", func() (*Automaton, error) {
		return difference(a1, a2)
	}, a1, a2)
}

func requireDFA(automatons ...*Automaton) error {
	for _, a := range automatons {
		if !IsDFA(a) {
			return ErrNotDeterministic
		}
	}
	return nil
}

func complement(a *Automaton) (*Automaton, error) {
	if !IsDeterministic(a) {
		return nil, ErrNotDeterministic
	}

	result := totalize(a)
	idx := newIndex(result)

	finals := []string{}
	for _, s := range result.States {
		if !idx.isFinal(s) && !slices.Contains(finals, s) {
			finals = append(finals, s)
		}
	}
	result.FinalStates = finals
	return result, nil
}

func union(a1, a2 *Automaton) (*Automaton, error) {
	if err := requireDFA(a1, a2); err != nil {
		return nil, err
	}

	idx1, idx2 := newIndex(a1), newIndex(a2)
	alphabet := unionSymbols(a1.Alphabet, a2.Alphabet)

	b := newProductBuilder(alphabet, func(p statePair) bool {
		return (!p.leftDead && idx1.isFinal(p.left)) || (!p.rightDead && idx2.isFinal(p.right))
	})

	b.result.InitialState = b.visit(statePair{left: a1.InitialState, right: a2.InitialState})
	for p, ok := b.pop(); ok; p, ok = b.pop() {
		from, _ := b.names.Get(p)
		for _, sym := range alphabet {
			var next statePair
			next.left, next.leftDead = advance(idx1, p.left, p.leftDead, sym)
			next.right, next.rightDead = advance(idx2, p.right, p.rightDead, sym)
			b.result.AddTransition(from, sym, b.visit(next))
		}
	}

	return removeUnreachable(b.result), nil
}

// advance steps one component of a union pair. A component without a transition, or already dead,
// becomes dead.
func advance(idx *index, state string, dead bool, symbol string) (string, bool) {
	if dead {
		return "", true
	}
	next, ok := idx.step(state, symbol)
	if !ok {
		return "", true
	}
	return next, false
}

func intersection(a1, a2 *Automaton) (*Automaton, error) {
	if err := requireDFA(a1, a2); err != nil {
		return nil, err
	}
	return product(a1, a2)
}

// product is the intersection construction without the DFA gate. Pairs for which either automaton has
// no transition are not expanded, so the result only holds pairs reachable from the initial pair.
func product(a1, a2 *Automaton) (*Automaton, error) {
	alphabet := commonSymbols(a1.Alphabet, a2.Alphabet)
	if len(alphabet) == 0 {
		return nil, ErrNoCommonAlphabet
	}

	idx1, idx2 := newIndex(a1), newIndex(a2)
	b := newProductBuilder(alphabet, func(p statePair) bool {
		return idx1.isFinal(p.left) && idx2.isFinal(p.right)
	})

	b.result.InitialState = b.visit(statePair{left: a1.InitialState, right: a2.InitialState})
	for p, ok := b.pop(); ok; p, ok = b.pop() {
		from, _ := b.names.Get(p)
		for _, sym := range alphabet {
			next1, ok1 := idx1.step(p.left, sym)
			next2, ok2 := idx2.step(p.right, sym)
			if !ok1 || !ok2 {
				continue
			}
			b.result.AddTransition(from, sym, b.visit(statePair{left: next1, right: next2}))
		}
	}
	return b.result, nil
}

func difference(a1, a2 *Automaton) (*Automaton, error) {
	if err := requireDFA(a1, a2); err != nil {
		return nil, err
	}
	c, err := complement(a2)
	if err != nil {
		return nil, err
	}
	return product(a1, c)
}
