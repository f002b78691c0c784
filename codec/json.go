package codec

import (
	"encoding/json"
	"fmt"

	"github.com/geange/fsa"
)

// DecodeJSON Parses an automaton document. The raw object goes through fsa.Parse, so shape and
// structural invariants are checked before anything is returned.
func DecodeJSON(data []byte) (*fsa.Automaton, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse automaton json: %w", err)
	}
	return fsa.Parse(raw)
}

// EncodeJSON Writes a as an indented automaton document.
func EncodeJSON(a *fsa.Automaton) ([]byte, error) {
	if err := fsa.Validate(a); err != nil {
		return nil, err
	}
	return json.MarshalIndent(a, "", "  ")
}
