package main

import (
	"github.com/spf13/cobra"

	"github.com/geange/fsa"
)

type unaryOperation struct {
	use   string
	short string
	run   func(*fsa.Automaton) (*fsa.Automaton, error)
}

type binaryOperation struct {
	use   string
	short string
	run   func(a1, a2 *fsa.Automaton) (*fsa.Automaton, error)
}

var unaryOperations = []unaryOperation{
	{"complete <file>", "Send every missing transition to a new sink state", fsa.Complete},
	{"prune <file>", "Remove the states unreachable from the initial state", fsa.PruneUnreachable},
	{"complement <file>", "Build the DFA of the complement language", fsa.Complement},
	{"star <file>", "Build the Kleene star (NFA-ε)", fsa.KleeneStar},
	{"plus <file>", "Build the positive closure (NFA-ε)", fsa.PositiveClosure},
	{"determinize <file>", "Build an equivalent complete DFA with the subset construction", fsa.Determinize},
}

var binaryOperations = []binaryOperation{
	{"union <file1> <file2>", "Build the DFA of the union of two DFAs", fsa.Union},
	{"intersect <file1> <file2>", "Build the DFA of the intersection of two DFAs", fsa.Intersection},
	{"difference <file1> <file2>", "Build the DFA of file1 minus file2", fsa.Difference},
	{"concat <file1> <file2>", "Build the concatenation (NFA-ε)", fsa.Concatenate},
}

func init() {
	for _, op := range unaryOperations {
		rootCmd.AddCommand(newUnaryCommand(op))
	}
	for _, op := range binaryOperations {
		rootCmd.AddCommand(newBinaryCommand(op))
	}
}

func newUnaryCommand(op unaryOperation) *cobra.Command {
	return &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := readAutomaton(cmd, args[0])
			if err != nil {
				return err
			}
			result, err := op.run(a)
			if err != nil {
				return err
			}
			logResult(cmd, result)
			return writeAutomaton(cmd, result)
		},
	}
}

func newBinaryCommand(op binaryOperation) *cobra.Command {
	return &cobra.Command{
		Use:   op.use,
		Short: op.short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a1, err := readAutomaton(cmd, args[0])
			if err != nil {
				return err
			}
			a2, err := readAutomaton(cmd, args[1])
			if err != nil {
				return err
			}
			result, err := op.run(a1, a2)
			if err != nil {
				return err
			}
			logResult(cmd, result)
			return writeAutomaton(cmd, result)
		},
	}
}

func logResult(cmd *cobra.Command, a *fsa.Automaton) {
	logger.Info("operation complete", "command", cmd.Name(),
		"states", a.GetNumStates(), "transitions", a.GetNumTransitions(), "dfa", fsa.IsDFA(a))
}
