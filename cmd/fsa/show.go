package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/geange/fsa/render"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Draw an automaton as a quintuple table, Graphviz DOT or Mermaid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readAutomaton(cmd, args[0])
		if err != nil {
			return err
		}

		as, _ := cmd.Flags().GetString("as")
		switch as {
		case "table":
			return writeOutput(cmd, func(w io.Writer) error {
				return render.Table(w, a)
			})
		case "dot":
			out, err := render.DOT(a)
			if err != nil {
				return err
			}
			return writeString(cmd, out)
		case "mermaid":
			out, err := render.Mermaid(a)
			if err != nil {
				return err
			}
			return writeString(cmd, out)
		}
		return fmt.Errorf("unknown rendering %q (want table, dot or mermaid)", as)
	},
}

var convertCmd = &cobra.Command{
	Use:   "convert <file>",
	Short: "Rewrite an automaton file in the --to format",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readAutomaton(cmd, args[0])
		if err != nil {
			return err
		}
		return writeAutomaton(cmd, a)
	},
}

func init() {
	showCmd.Flags().String("as", "table", "table, dot or mermaid")
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(convertCmd)
}
