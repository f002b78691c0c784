package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/geange/fsa/internal/config"
	"github.com/geange/fsa/internal/logging"
)

var (
	cfg    = config.Default()
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "fsa",
	Short: "fsa runs finite automaton algorithms on automaton files",
	Long: `fsa validates, completes, prunes and combines finite automata, and derives equivalent
regular expressions. Automata are read from JSON, YAML, graph JSON or text 5-tuple files
("-" reads stdin) and results are written to stdout or --out.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if code := runRoot(); code != 0 {
		os.Exit(code)
	}
}

// runRoot runs the root command and reports a failure as one line on stderr.
func runRoot() int {
	if err := rootCmd.Execute(); err != nil {
		logger.Debug("command failed", "error", err)
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", config.DefaultPath, "configuration file")
	rootCmd.PersistentFlags().String("log-level", "", "debug, info, warn or error (overrides the config file)")
	rootCmd.PersistentFlags().String("from", "", "input format: json, yaml, graph or text (default: from the file name)")
	rootCmd.PersistentFlags().String("to", "", "output format: json, yaml, graph or text (default json)")
	rootCmd.PersistentFlags().StringP("out", "o", "", "write the result to this file instead of stdout")
}

// setup loads the configuration file and applies the flag overrides.
func setup(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.LogLevel = level
	}
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		cfg.InputFormat = from
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		cfg.OutputFormat = to
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger = logging.New(level, cmd.ErrOrStderr())
	logger.Debug("configuration loaded", "path", path, "log_level", cfg.LogLevel,
		slog.Group("simplify", "max_length", cfg.Simplify.MaxLength, "max_passes", cfg.Simplify.MaxPasses))
	return nil
}
