// Package codec reads and writes automata in the interchange formats: the automaton JSON document, the
// same document in YAML, the node/edge graph JSON and the line-oriented text 5-tuple.
package codec

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/geange/fsa"
)

// Format names an interchange format.
type Format string

const (
	JSON  Format = "json"
	YAML  Format = "yaml"
	Graph Format = "graph"
	Text  Format = "text"
)

var ErrUnknownFormat = errors.New("unknown format")

// Formats lists every supported format.
var Formats = []Format{JSON, YAML, Graph, Text}

// ParseFormat Returns the format named s, case-insensitively. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "graph":
		return Graph, nil
	case "text", "txt":
		return Text, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FormatFromPath Guesses the format of a file from its extension, defaulting to JSON.
// Files named *.graph.json hold the graph shape.
func FormatFromPath(path string) Format {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".graph.json"):
		return Graph
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		return YAML
	case strings.HasSuffix(name, ".txt"):
		return Text
	}
	return JSON
}

// Decode Parses data in format f into a validated automaton.
func Decode(f Format, data []byte) (*fsa.Automaton, error) {
	switch f {
	case JSON:
		return DecodeJSON(data)
	case YAML:
		return DecodeYAML(data)
	case Graph:
		return DecodeGraph(data)
	case Text:
		return DecodeText(string(data))
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

// Encode Serializes a in format f.
func Encode(f Format, a *fsa.Automaton) ([]byte, error) {
	switch f {
	case JSON:
		return EncodeJSON(a)
	case YAML:
		return EncodeYAML(a)
	case Graph:
		return EncodeGraph(a)
	case Text:
		s, err := EncodeText(a)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}
