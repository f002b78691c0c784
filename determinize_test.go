package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeterminize(t *testing.T) {
	t.Run("subset construction", func(t *testing.T) {
		a := NewAutomaton("q0", "a", "b")
		a.AddState("q1")
		a.AddTransition("q0", "a", "q0")
		a.AddTransition("q0", "b", "q0")
		a.AddTransition("q0", "a", "q1")
		a.SetAccept("q1", true)
		require.False(t, IsDeterministic(a))

		d, err := Determinize(a)
		require.NoError(t, err)
		assert.Equal(t, &Automaton{
			States:   []string{"{q0}", "{q0,q1}"},
			Alphabet: []string{"a", "b"},
			Transitions: []Transition{
				{From: "{q0}", Symbol: "a", To: "{q0,q1}"},
				{From: "{q0}", Symbol: "b", To: "{q0}"},
				{From: "{q0,q1}", Symbol: "a", To: "{q0,q1}"},
				{From: "{q0,q1}", Symbol: "b", To: "{q0}"},
			},
			InitialState: "{q0}",
			FinalStates:  []string{"{q0,q1}"},
		}, d)
		assertLanguage(t, d, ab, 5, lastIsA)
	})

	t.Run("empty subset", func(t *testing.T) {
		a := NewAutomaton("q0", "a", "b")
		a.AddState("q1")
		a.AddTransition("q0", "a", "q1")
		a.SetAccept("q1", true)

		d, err := Determinize(a)
		require.NoError(t, err)
		assert.Equal(t, []string{"{q0}", "{q1}", "{}"}, d.States)
		assert.True(t, IsDFA(d))
		assertLanguage(t, d, ab, 3, func(w []string) bool { return len(w) == 1 && w[0] == "a" })
	})

	t.Run("epsilon closure", func(t *testing.T) {
		s, err := KleeneStar(defaultAutomata.MakeString("a", "b"))
		require.NoError(t, err)

		d, err := Determinize(s)
		require.NoError(t, err)
		assert.True(t, IsDFA(d))
		assert.NotContains(t, d.Alphabet, Epsilon)
		assertLanguage(t, d, ab, 6, func(w []string) bool { return RunSymbols(s, w) })
	})

	t.Run("feeds the set operations", func(t *testing.T) {
		c, err := Concatenate(defaultAutomata.MakeString("a"), defaultAutomata.MakeAnyString("a", "b"))
		require.NoError(t, err)
		_, err = Complement(c)
		require.ErrorIs(t, err, ErrNotDeterministic)

		d, err := Determinize(c)
		require.NoError(t, err)
		nc, err := Complement(d)
		require.NoError(t, err)
		assertLanguage(t, nc, ab, 4, func(w []string) bool { return len(w) == 0 || w[0] != "a" })
	})

	t.Run("subset name collision", func(t *testing.T) {
		a := NewAutomaton("{}", "a")
		a.AddState("x")
		a.AddTransition("{}", "a", "x")

		d, err := Determinize(a)
		require.NoError(t, err)
		assert.Equal(t, []string{"{{}}", "{x}", "{}"}, d.States)

		b := NewAutomaton("q", "a")
		b.AddState("q,r")
		b.AddState("r")
		b.AddTransition("q", "a", "q,r")
		b.AddTransition("q,r", "a", "q")
		b.AddTransition("q,r", "a", "r")

		d, err = Determinize(b)
		require.NoError(t, err)
		assert.Equal(t, []string{"{q}", "{q,r}", "{q,r}1"}, d.States)
	})
}
