package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/geange/fsa"
)

const (
	initialMarker = "*"
	finalMarker   = "†"
	noTransition  = "-"
)

// Table Writes the quintuple (Q, Σ, δ, q0, F) of a, with δ as a table: one row per state, one column per
// symbol, each cell listing the targets or "-".
func Table(w io.Writer, a *fsa.Automaton) error {
	if err := fsa.Validate(a); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "Q  = {%s}\nΣ  = {%s}\nq0 = %s\nF  = {%s}\n",
		strings.Join(a.States, labelSeparator),
		strings.Join(a.Alphabet, labelSeparator),
		a.InitialState,
		strings.Join(a.FinalStates, labelSeparator),
	); err != nil {
		return err
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader(append([]string{"δ"}, a.Alphabet...))
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	for _, row := range transitionRows(a) {
		table.Append(row)
	}
	table.Render()

	_, err := fmt.Fprintf(w, "%s initial  %s final\n", initialMarker, finalMarker)
	return err
}

func transitionRows(a *fsa.Automaton) [][]string {
	rows := make([][]string, 0, len(a.States))
	for _, s := range a.States {
		row := []string{stateLabel(a, s)}
		for _, sym := range a.Alphabet {
			targets := a.Targets(s, sym)
			if len(targets) == 0 {
				row = append(row, noTransition)
				continue
			}
			row = append(row, strings.Join(targets, labelSeparator))
		}
		rows = append(rows, row)
	}
	return rows
}

func stateLabel(a *fsa.Automaton, s string) string {
	label := s
	if s == a.InitialState {
		label += " " + initialMarker
	}
	if a.IsAccept(s) {
		label += " " + finalMarker
	}
	return label
}
