package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/geange/fsa"
)

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Check an automaton file for structural errors",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readAutomaton(cmd, args[0])
		if err != nil {
			return err
		}
		return writeString(cmd, fmt.Sprintf("valid: %d states, %d symbols, %d transitions",
			a.GetNumStates(), len(a.Alphabet), a.GetNumTransitions()))
	},
}

var dfaCmd = &cobra.Command{
	Use:   "dfa <file>",
	Short: "Report whether an automaton is a complete DFA",
	Long: `Reports whether every (state, symbol) pair has exactly one transition. When it does not,
the pairs without a transition are listed.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readAutomaton(cmd, args[0])
		if err != nil {
			return err
		}
		return writeString(cmd, describeDeterminism(a))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(dfaCmd)
}

func describeDeterminism(a *fsa.Automaton) string {
	switch {
	case fsa.IsDFA(a):
		return "DFA"
	case a.HasEpsilon():
		return "not a DFA: the alphabet contains ε"
	case !fsa.IsDeterministic(a):
		return "not a DFA: some state has two transitions on the same symbol"
	}
	msg := "not a DFA: missing transitions"
	for _, m := range fsa.MissingTransitions(a) {
		msg += fmt.Sprintf("\n  (%s, %s)", m.State, m.Symbol)
	}
	return msg
}
