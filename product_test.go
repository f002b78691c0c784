package fsa

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var ab = []string{"a", "b"}

func lastIsA(w []string) bool {
	return len(w) > 0 && w[len(w)-1] == "a"
}

func evenCountB(w []string) bool {
	return countOf(w, "b")%2 == 0
}

func nonDeterministic() *Automaton {
	a := endsWithA()
	a.AddTransition("q0", "a", "q0")
	return a
}

func TestStatePair(t *testing.T) {
	named := statePair{left: "dead", right: "r"}
	placeholder := statePair{leftDead: true, right: "r"}

	assert.Equal(t, "(dead,r)", named.String())
	assert.Equal(t, "(dead,r)", placeholder.String())
	assert.False(t, named.Equals(placeholder))
	assert.True(t, named.Equals(statePair{left: "dead", right: "r"}))
	assert.Equal(t, named.Hash(), statePair{left: "dead", right: "r"}.Hash())

	m := NewHashMap[string]()
	m.Set(named, "first")
	m.Set(placeholder, "second")
	assert.Equal(t, 2, m.size)
	got, ok := m.Get(named)
	assert.True(t, ok)
	assert.Equal(t, "first", got)
}

func TestComplement(t *testing.T) {
	t.Run("complete DFA", func(t *testing.T) {
		c, err := Complement(endsWithA())
		require.NoError(t, err)
		assert.Equal(t, []string{"q0"}, c.FinalStates)
		assert.True(t, IsDFA(c))
		assertLanguage(t, c, ab, 5, func(w []string) bool { return !lastIsA(w) })
	})

	t.Run("involution", func(t *testing.T) {
		a := endsWithA()
		c, err := Complement(a)
		require.NoError(t, err)
		cc, err := Complement(c)
		require.NoError(t, err)
		assert.Equal(t, a.FinalStates, cc.FinalStates)
		assertLanguage(t, cc, ab, 5, lastIsA)
	})

	t.Run("partial automaton is completed first", func(t *testing.T) {
		a := NewAutomaton("q0", "a", "b")
		a.AddTransition("q0", "a", "q0")
		a.SetAccept("q0", true)

		c, err := Complement(a)
		require.NoError(t, err)
		assert.Equal(t, []string{"q0", "sink"}, c.States)
		assert.Equal(t, []string{"sink"}, c.FinalStates)
		assertLanguage(t, c, ab, 4, func(w []string) bool { return countOf(w, "b") > 0 })
	})

	t.Run("non-deterministic", func(t *testing.T) {
		c, err := Complement(nonDeterministic())
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrNotDeterministic)
	})
}

func TestUnion(t *testing.T) {
	t.Run("language", func(t *testing.T) {
		u, err := Union(endsWithA(), evenB())
		require.NoError(t, err)
		assert.Equal(t, "(q0,e)", u.InitialState)
		assert.True(t, IsDFA(u))
		assertLanguage(t, u, ab, 5, func(w []string) bool { return lastIsA(w) || evenCountB(w) })
	})

	t.Run("commutative", func(t *testing.T) {
		u1, err := Union(endsWithA(), evenB())
		require.NoError(t, err)
		u2, err := Union(evenB(), endsWithA())
		require.NoError(t, err)
		for _, w := range words(ab, 5) {
			assert.Equalf(t, RunSymbols(u1, w), RunSymbols(u2, w), "word %v", w)
		}
	})

	t.Run("different alphabets", func(t *testing.T) {
		u, err := Union(loop("p", "a"), loop("r", "b"))
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, u.Alphabet)
		assert.Equal(t, []string{"(p,r)", "(p,dead)", "(dead,r)", "(dead,dead)"}, u.States)
		assert.Equal(t, []string{"(p,r)", "(p,dead)", "(dead,r)"}, u.FinalStates)
		assertLanguage(t, u, ab, 4, func(w []string) bool {
			return countOf(w, "a") == len(w) || countOf(w, "b") == len(w)
		})
	})

	t.Run("state named like the placeholder", func(t *testing.T) {
		u, err := Union(loop("dead", "a"), loop("r", "b"))
		require.NoError(t, err)
		assert.Equal(t, []string{"(dead,r)", "(dead,dead)", "(dead,r)1", "(dead,dead)1"}, u.States)
		assert.False(t, slices.Contains(u.FinalStates, "(dead,dead)1"))
		assertLanguage(t, u, ab, 4, func(w []string) bool {
			return countOf(w, "a") == len(w) || countOf(w, "b") == len(w)
		})
	})

	t.Run("non-deterministic", func(t *testing.T) {
		_, err := Union(endsWithA(), nonDeterministic())
		assert.ErrorIs(t, err, ErrNotDeterministic)

		partial := NewAutomaton("q0", "a")
		_, err = Union(partial, endsWithA())
		assert.ErrorIs(t, err, ErrNotDeterministic)
	})
}

func TestIntersection(t *testing.T) {
	t.Run("language", func(t *testing.T) {
		i, err := Intersection(endsWithA(), evenB())
		require.NoError(t, err)
		assert.Equal(t, "(q0,e)", i.InitialState)
		assert.Len(t, i.States, 4)
		assertLanguage(t, i, ab, 5, func(w []string) bool { return lastIsA(w) && evenCountB(w) })
	})

	t.Run("common alphabet only", func(t *testing.T) {
		b := defaultAutomata.MakeAnyString("a", "c")
		i, err := Intersection(endsWithA(), b)
		require.NoError(t, err)
		assert.Equal(t, []string{"a"}, i.Alphabet)
		assert.True(t, RunSymbols(i, []string{"a", "a"}))
		assert.False(t, RunSymbols(i, []string{}))
	})

	t.Run("disjoint alphabets", func(t *testing.T) {
		_, err := Intersection(loop("p", "a"), loop("r", "b"))
		assert.ErrorIs(t, err, ErrNoCommonAlphabet)

		var opErr *OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "intersection", opErr.Op)
	})

	t.Run("non-deterministic", func(t *testing.T) {
		_, err := Intersection(nonDeterministic(), evenB())
		assert.ErrorIs(t, err, ErrNotDeterministic)
	})
}

func TestDifference(t *testing.T) {
	t.Run("self difference is empty", func(t *testing.T) {
		for _, a := range []*Automaton{endsWithA(), evenB(), defaultAutomata.MakeString("a", "b")} {
			d, err := Difference(a, a)
			require.NoError(t, err)
			assert.Empty(t, d.FinalStates)
			assertLanguage(t, d, a.Alphabet, 4, func([]string) bool { return false })
		}
	})

	t.Run("language", func(t *testing.T) {
		d, err := Difference(endsWithA(), evenB())
		require.NoError(t, err)
		assertLanguage(t, d, ab, 5, func(w []string) bool { return lastIsA(w) && !evenCountB(w) })
	})

	t.Run("inputs untouched", func(t *testing.T) {
		a, b := endsWithA(), evenB()
		_, err := Difference(a, b)
		require.NoError(t, err)
		assert.Equal(t, endsWithA(), a)
		assert.Equal(t, evenB(), b)
	})

	t.Run("non-deterministic", func(t *testing.T) {
		_, err := Difference(endsWithA(), nonDeterministic())
		assert.ErrorIs(t, err, ErrNotDeterministic)
	})
}
