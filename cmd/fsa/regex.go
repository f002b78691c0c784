package main

import (
	"github.com/spf13/cobra"

	"github.com/geange/fsa"
)

var regexCmd = &cobra.Command{
	Use:   "regex <file>",
	Short: "Derive an equivalent regular expression",
	Long: `Derives a regular expression with the state-elimination method and simplifies it.
Union is written "+", the empty string "ε" and the empty language "∅".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readAutomaton(cmd, args[0])
		if err != nil {
			return err
		}

		raw, err := fsa.ToRegexp(a)
		if err != nil {
			return err
		}
		if keepRaw, _ := cmd.Flags().GetBool("raw"); keepRaw {
			return writeString(cmd, raw)
		}

		simplified := fsa.Simplify(raw, cfg.SimplifyOptions()...)
		logger.Debug("regex simplified", "raw_length", len(raw), "length", len(simplified))
		return writeString(cmd, simplified)
	},
}

func init() {
	regexCmd.Flags().Bool("raw", false, "print the expression without simplification")
	rootCmd.AddCommand(regexCmd)
}
