package codec

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/geange/fsa"
)

// The text 5-tuple:
//
//	q0,q1          states
//	a,b            alphabet, possibly empty
//	q0             initial state
//	q1             final states, possibly empty
//	q0,a,q1        one transition per line
//
// Blank lines may separate transitions.
type textTuple struct {
	States      []string          `parser:"@Name (',' @Name)* EOL"`
	Alphabet    []string          `parser:"(@Name (',' @Name)*)? EOL"`
	Initial     string            `parser:"@Name EOL"`
	Finals      []string          `parser:"(@Name (',' @Name)*)? EOL+"`
	Transitions []*textTransition `parser:"@@*"`
}

type textTransition struct {
	From   string `parser:"@Name ','"`
	Symbol string `parser:"@Name ','"`
	To     string `parser:"@Name EOL+"`
}

var textLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Name", Pattern: `[^,\s]+`},
})

var textParser = participle.MustBuild[textTuple](
	participle.Lexer(textLexer),
	participle.Elide("Whitespace"),
)

// DecodeText Parses the text 5-tuple into a validated automaton.
func DecodeText(data string) (*fsa.Automaton, error) {
	tuple, err := textParser.ParseString("automaton", data+"\n")
	if err != nil {
		return nil, fmt.Errorf("failed to parse automaton text: %w", err)
	}

	a := &fsa.Automaton{
		States:       tuple.States,
		Alphabet:     tuple.Alphabet,
		Transitions:  make([]fsa.Transition, 0, len(tuple.Transitions)),
		InitialState: tuple.Initial,
		FinalStates:  tuple.Finals,
	}
	if a.Alphabet == nil {
		a.Alphabet = []string{}
	}
	if a.FinalStates == nil {
		a.FinalStates = []string{}
	}
	for _, t := range tuple.Transitions {
		a.AddTransition(t.From, t.Symbol, t.To)
	}
	if a.HasEpsilon() {
		a.Kind = fsa.KindNFAEpsilon
	}

	if err := fsa.Validate(a); err != nil {
		return nil, err
	}
	return a, nil
}

// EncodeText Writes a as a text 5-tuple. Names holding a comma or whitespace cannot be written.
func EncodeText(a *fsa.Automaton) (string, error) {
	if err := fsa.Validate(a); err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, line := range [][]string{a.States, a.Alphabet, {a.InitialState}, a.FinalStates} {
		if err := writeNames(&sb, line...); err != nil {
			return "", err
		}
	}
	for _, t := range a.Transitions {
		if err := writeNames(&sb, t.From, t.Symbol, t.To); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}

func writeNames(sb *strings.Builder, names ...string) error {
	for i, name := range names {
		if name == "" || strings.ContainsAny(name, ", \t\r\n") {
			return fmt.Errorf("name %q cannot be written as text", name)
		}
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(name)
	}
	sb.WriteByte('\n')
	return nil
}
