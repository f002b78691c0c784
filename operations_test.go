package fsa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComplete(t *testing.T) {
	t.Run("adds sink", func(t *testing.T) {
		a := NewAutomaton("q0", "a", "b")
		a.AddTransition("q0", "a", "q0")
		a.SetAccept("q0", true)

		c, err := Complete(a)
		require.NoError(t, err)
		assert.Equal(t, []string{"q0", "sink"}, c.States)
		assert.Equal(t, []Transition{
			{From: "q0", Symbol: "a", To: "q0"},
			{From: "q0", Symbol: "b", To: "sink"},
			{From: "sink", Symbol: "a", To: "sink"},
			{From: "sink", Symbol: "b", To: "sink"},
		}, c.Transitions)
		assert.Equal(t, []string{"q0"}, c.FinalStates)
		assert.True(t, IsDFA(c))

		// input untouched
		assert.Equal(t, []string{"q0"}, a.States)
		assert.Len(t, a.Transitions, 1)
	})

	t.Run("sink name collision", func(t *testing.T) {
		a := NewAutomaton("sink", "a")
		a.AddState("sink1")
		a.AddTransition("sink", "a", "sink1")

		c, err := Complete(a)
		require.NoError(t, err)
		assert.Equal(t, []string{"sink", "sink1", "sink2"}, c.States)
		assert.Equal(t, []string{"sink2"}, c.Targets("sink1", "a"))
	})

	t.Run("already complete", func(t *testing.T) {
		a := endsWithA()
		c, err := Complete(a)
		require.NoError(t, err)
		assert.Equal(t, a, c)
		assert.NotSame(t, a, c)
	})

	t.Run("idempotent", func(t *testing.T) {
		a := NewAutomaton("q0", "a", "b")
		a.AddState("q1")
		a.AddTransition("q0", "a", "q1")

		once, err := Complete(a)
		require.NoError(t, err)
		twice, err := Complete(once)
		require.NoError(t, err)
		assert.Equal(t, once, twice)
	})

	t.Run("epsilon is not completed", func(t *testing.T) {
		a := loop("q0", "a")
		a.AddSymbol(Epsilon)
		c, err := Complete(a)
		require.NoError(t, err)
		assert.Equal(t, a, c)
	})

	t.Run("invalid", func(t *testing.T) {
		a := endsWithA()
		a.InitialState = "nope"
		c, err := Complete(a)
		assert.Nil(t, c)
		assert.ErrorIs(t, err, ErrInvalidAutomaton)

		var opErr *OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "complete", opErr.Op)
	})
}

func TestPruneUnreachable(t *testing.T) {
	a := NewAutomaton("q0", "a", Epsilon)
	a.AddState("q1")
	a.AddState("q2")
	a.AddState("q3")
	a.AddTransition("q0", Epsilon, "q1")
	a.AddTransition("q1", "a", "q1")
	a.AddTransition("q2", "a", "q0")
	a.AddTransition("q3", "a", "q2")
	a.SetAccept("q1", true)
	a.SetAccept("q2", true)
	a.Kind = KindNFAEpsilon

	p, err := PruneUnreachable(a)
	require.NoError(t, err)

	t.Run("keeps reachable part", func(t *testing.T) {
		assert.Equal(t, &Automaton{
			States:   []string{"q0", "q1"},
			Alphabet: []string{"a", Epsilon},
			Transitions: []Transition{
				{From: "q0", Symbol: Epsilon, To: "q1"},
				{From: "q1", Symbol: "a", To: "q1"},
			},
			InitialState: "q0",
			FinalStates:  []string{"q1"},
			Kind:         KindNFAEpsilon,
		}, p)
	})

	t.Run("every state reachable", func(t *testing.T) {
		assert.Equal(t, uint(len(p.States)), reachableStates(newIndex(p)).Count())
	})

	t.Run("idempotent", func(t *testing.T) {
		again, err := PruneUnreachable(p)
		require.NoError(t, err)
		assert.Equal(t, p, again)
	})

	t.Run("input untouched", func(t *testing.T) {
		assert.Len(t, a.States, 4)
		assert.Len(t, a.Transitions, 4)
	})
}

func TestConcatenate(t *testing.T) {
	t.Run("both halves accept the empty string", func(t *testing.T) {
		c, err := Concatenate(loop("p0", "a"), loop("r0", "b"))
		require.NoError(t, err)

		assert.Equal(t, &Automaton{
			States:   []string{"A1_p0", "A2_r0"},
			Alphabet: []string{"a", "b", Epsilon},
			Transitions: []Transition{
				{From: "A1_p0", Symbol: "a", To: "A1_p0"},
				{From: "A2_r0", Symbol: "b", To: "A2_r0"},
				{From: "A1_p0", Symbol: Epsilon, To: "A2_r0"},
			},
			InitialState: "A1_p0",
			FinalStates:  []string{"A1_p0", "A2_r0"},
			Kind:         KindNFAEpsilon,
		}, c)

		assertLanguage(t, c, []string{"a", "b"}, 5, func(w []string) bool {
			// a*b*
			seenB := false
			for _, s := range w {
				if s == "b" {
					seenB = true
				} else if seenB {
					return false
				}
			}
			return true
		})
	})

	t.Run("words", func(t *testing.T) {
		a, b := defaultAutomata.MakeString("a"), defaultAutomata.MakeString("b", "c")
		c, err := Concatenate(a, b)
		require.NoError(t, err)
		assert.False(t, c.IsAccept(c.InitialState))

		assert.True(t, Run(c, "abc"))
		assert.False(t, Run(c, "ab"))
		assert.False(t, Run(c, "a"))
		assert.False(t, Run(c, ""))
		assert.False(t, Run(c, "abcc"))
	})

	t.Run("inputs untouched", func(t *testing.T) {
		a, b := loop("p0", "a"), loop("r0", "b")
		_, err := Concatenate(a, b)
		require.NoError(t, err)
		assert.Equal(t, loop("p0", "a"), a)
		assert.Equal(t, loop("r0", "b"), b)
	})

	t.Run("invalid right operand", func(t *testing.T) {
		b := loop("r0", "b")
		b.FinalStates = []string{"x"}
		_, err := Concatenate(loop("p0", "a"), b)
		assert.ErrorIs(t, err, ErrInvalidAutomaton)
	})
}

func TestKleeneStar(t *testing.T) {
	t.Run("single looping state", func(t *testing.T) {
		s, err := KleeneStar(loop("q0", "a"))
		require.NoError(t, err)

		assert.NotEqual(t, "q_q0", s.InitialState)
		assert.Equal(t, "q_start", s.InitialState)
		assert.Contains(t, s.Transitions, Transition{From: s.InitialState, Symbol: Epsilon, To: "q_q0"})
		assert.Contains(t, s.Transitions, Transition{From: "q_q0", Symbol: Epsilon, To: "q_q0"})
		assert.True(t, s.IsAccept(s.InitialState))
		assert.Equal(t, KindNFAEpsilon, s.Kind)
	})

	t.Run("language", func(t *testing.T) {
		s, err := KleeneStar(defaultAutomata.MakeString("a", "b"))
		require.NoError(t, err)

		assert.True(t, Run(s, ""))
		assert.True(t, Run(s, "ab"))
		assert.True(t, Run(s, "abab"))
		assert.False(t, Run(s, "a"))
		assert.False(t, Run(s, "aba"))
		assert.False(t, Run(s, "ba"))
	})

	t.Run("start name collision", func(t *testing.T) {
		a := NewAutomaton("start", "a")
		a.AddState("start1")
		a.AddTransition("start", "a", "start1")
		a.SetAccept("start1", true)

		s, err := KleeneStar(a)
		require.NoError(t, err)
		assert.Equal(t, "q_start2", s.InitialState)
		assert.ElementsMatch(t, []string{"q_start", "q_start1", "q_start2"}, s.States)
	})
}

func TestPositiveClosure(t *testing.T) {
	p, err := PositiveClosure(defaultAutomata.MakeString("a", "b"))
	require.NoError(t, err)

	assert.Equal(t, "A_start", p.InitialState)
	assert.False(t, p.IsAccept(p.InitialState))
	assert.Contains(t, p.Transitions, Transition{From: "A_start", Symbol: Epsilon, To: "A_q0"})
	assert.Contains(t, p.Transitions, Transition{From: "A_q2", Symbol: Epsilon, To: "A_q0"})

	assert.False(t, Run(p, ""))
	assert.True(t, Run(p, "ab"))
	assert.True(t, Run(p, "ababab"))
	assert.False(t, Run(p, "abb"))

	t.Run("operand accepting the empty string", func(t *testing.T) {
		p, err := PositiveClosure(loop("q0", "a"))
		require.NoError(t, err)
		assert.True(t, Run(p, ""))
		assert.True(t, Run(p, "aaa"))
	})
}
