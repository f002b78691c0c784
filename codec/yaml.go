package codec

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/geange/fsa"
)

// DecodeYAML Parses the automaton document written in YAML.
func DecodeYAML(data []byte) (*fsa.Automaton, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse automaton yaml: %w", err)
	}
	return fsa.Parse(raw)
}

func EncodeYAML(a *fsa.Automaton) ([]byte, error) {
	if err := fsa.Validate(a); err != nil {
		return nil, err
	}
	return yaml.Marshal(a)
}
