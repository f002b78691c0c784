package fsa

// equationSystem holds one equation per state, R_i = Σ_j (terms[i][j] · R_j) + terms[i][n], where column
// n is the constant term: Epsilon for final states. EmptySet marks an absent term.
type equationSystem struct {
	n     int
	terms [][]string
}

func newEquationSystem(a *Automaton) *equationSystem {
	idx := newIndex(a)
	n := len(a.States)

	terms := make([][]string, n)
	for i := range terms {
		terms[i] = make([]string, n+1)
		for j := range terms[i] {
			terms[i][j] = EmptySet
		}
	}

	for _, t := range a.Transitions {
		i, j := idx.id(t.From), idx.id(t.To)
		if terms[i][j] == EmptySet {
			terms[i][j] = t.Symbol
		} else {
			terms[i][j] = "(" + terms[i][j] + "+" + t.Symbol + ")"
		}
	}

	for _, f := range a.FinalStates {
		terms[idx.id(f)][n] = Epsilon
	}

	return &equationSystem{n: n, terms: terms}
}

// solveSelfLoop applies Arden's lemma to row k: R_k = A·R_k + B becomes R_k = A*·B.
func (e *equationSystem) solveSelfLoop(k int) {
	akk := e.terms[k][k]
	if akk == EmptySet {
		return
	}
	e.terms[k][k] = EmptySet

	for j := 0; j <= e.n; j++ {
		if j != k && e.terms[k][j] != EmptySet {
			e.terms[k][j] = "(" + akk + ")*(" + e.terms[k][j] + ")"
		}
	}
}

// substitute replaces R_k by its equation inside row i.
func (e *equationSystem) substitute(i, k int) {
	aik := e.terms[i][k]
	if i == k || aik == EmptySet {
		return
	}
	e.terms[i][k] = EmptySet

	for j := 0; j <= e.n; j++ {
		if e.terms[k][j] == EmptySet {
			continue
		}
		term := "(" + aik + ")(" + e.terms[k][j] + ")"
		if e.terms[i][j] == EmptySet {
			e.terms[i][j] = term
		} else {
			e.terms[i][j] = "(" + e.terms[i][j] + "+" + term + ")"
		}
	}
}

// eliminate Runs exactly n rounds, eliminating variable k from every other equation in round k.
func (e *equationSystem) eliminate() {
	for k := 0; k < e.n; k++ {
		e.solveSelfLoop(k)
		for i := 0; i < e.n; i++ {
			e.substitute(i, k)
		}
	}
}

func (e *equationSystem) constant(i int) string {
	return e.terms[i][e.n]
}

// ToRegexp Converts the automaton into an equivalent regular expression with the state-elimination
// method. The expression is unsimplified; EmptySet is returned when no final state is reachable. Union is
// written "+", the empty string Epsilon.
func ToRegexp(a *Automaton) (string, error) {
	return guard("regexp", func() (string, error) {
		eqs := newEquationSystem(a)
		eqs.eliminate()
		return eqs.constant(newIndex(a).id(a.InitialState)), nil
	}, a)
}

// Regexp Converts the automaton into a regular expression and simplifies it.
func Regexp(a *Automaton, options ...SimplifyOption) (string, error) {
	raw, err := ToRegexp(a)
	if err != nil {
		return "", err
	}
	return Simplify(raw, options...), nil
}
