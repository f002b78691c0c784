package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/geange/fsa"
	"github.com/geange/fsa/codec"
)

// stdinPath names standard input on the command line.
const stdinPath = "-"

func inputFormat(path string) (codec.Format, error) {
	if cfg.InputFormat != "" {
		return codec.ParseFormat(cfg.InputFormat)
	}
	return codec.FormatFromPath(path), nil
}

func outputFormat() (codec.Format, error) {
	if cfg.OutputFormat != "" {
		return codec.ParseFormat(cfg.OutputFormat)
	}
	return codec.JSON, nil
}

// readAutomaton decodes the automaton file at path, or stdin for "-". The file is only read.
func readAutomaton(cmd *cobra.Command, path string) (*fsa.Automaton, error) {
	format, err := inputFormat(path)
	if err != nil {
		return nil, err
	}

	var data []byte
	if path == stdinPath {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	a, err := codec.Decode(format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Debug("automaton loaded", "path", path, "format", format,
		"states", a.GetNumStates(), "transitions", a.GetNumTransitions())
	return a, nil
}

// output returns where results go: the --out file, or the command's stdout. The caller closes it.
func output(cmd *cobra.Command) (io.WriteCloser, error) {
	path, _ := cmd.Flags().GetString("out")
	if path == "" {
		return nopCloser{cmd.OutOrStdout()}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }

// writeAutomaton encodes a in the output format.
func writeAutomaton(cmd *cobra.Command, a *fsa.Automaton) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	data, err := codec.Encode(format, a)
	if err != nil {
		return err
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	return writeOutput(cmd, func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
}

func writeString(cmd *cobra.Command, s string) error {
	return writeOutput(cmd, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, s)
		return err
	})
}

func writeOutput(cmd *cobra.Command, write func(io.Writer) error) (err error) {
	w, err := output(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return write(w)
}
