package fsa

import (
	"unicode/utf8"

	"github.com/dlclark/regexp2"
)

const (
	// DefaultMaxLength stops simplification once the expression is at least this many runes long.
	DefaultMaxLength = 1000

	// DefaultMaxPasses bounds the number of passes over the rule list.
	DefaultMaxPasses = 100

	// groupDepth is the deepest parenthesis nesting a rule can match as one group.
	groupDepth = 8
)

type simplifyOption struct {
	maxLength int
	maxPasses int
}

type SimplifyOption func(*simplifyOption)

// WithMaxLength Overrides DefaultMaxLength.
func WithMaxLength(n int) SimplifyOption {
	return func(o *simplifyOption) {
		o.maxLength = n
	}
}

// WithMaxPasses Overrides DefaultMaxPasses.
func WithMaxPasses(n int) SimplifyOption {
	return func(o *simplifyOption) {
		o.maxPasses = n
	}
}

type rewriteRule struct {
	name        string
	pattern     *regexp2.Regexp
	replacement string
}

func newRule(name, pattern, replacement string) rewriteRule {
	return rewriteRule{
		name:        name,
		pattern:     regexp2.MustCompile(pattern, regexp2.None),
		replacement: replacement,
	}
}

// nestedGroup Returns a pattern matching one balanced parenthesized group nested at most depth deep.
func nestedGroup(depth int) string {
	g := `\([^()]*\)`
	for i := 1; i < depth; i++ {
		g = `\((?:[^()]|` + g + `)*\)`
	}
	return g
}

// simplifyRules are applied in order, every pass. Each rule shortens the expression or removes a "|",
// so a pass without change is a fixed point. The lookarounds keep every rewrite on whole terms or factors
// so the denoted language never changes.
var simplifyRules = func() []rewriteRule {
	g := nestedGroup(groupDepth)
	return []rewriteRule{
		newRule("alternation", `\|`, `+`),

		newRule("epsilon star", `\(ε\)\*|ε\*`, `ε`),
		newRule("empty star", `\(∅\)\*|∅\*`, `ε`),

		newRule("plain group", `\(([^+()]+)\)(?!\*)`, `$1`),
		newRule("starred symbol", `\(([^+*()])\)\*`, `$1*`),
		newRule("double group", `\((`+g+`)\)`, `$1`),
		newRule("starred group", `\((`+g+`\*)\)(?!\*)`, `$1`),

		newRule("epsilon union", `(?<![^(+])ε\+ε(?![^)+])`, `ε`),
		newRule("epsilon right factor", `(?<=[^(+])ε(?!\*)`, ``),
		newRule("epsilon left factor", `ε(?=[^)+*])`, ``),

		newRule("empty left term", `(?<![^(+])∅\+`, ``),
		newRule("empty right term", `\+∅(?![^)+])`, ``),
		newRule("empty left factor", `∅(?:`+g+`|[^()+*])\*?`, `∅`),
		newRule("empty right factor", `(?:`+g+`|[^()+*∅])\*?∅(?!\*)`, `∅`),

		newRule("idempotent group union", `\(([^+*()]+)\+\1\)`, `($1)`),
		newRule("idempotent term union", `(?<![^(+])([^+*()]+|`+g+`)\+\1(?![^)+])`, `$1`),

		newRule("group star star", `\((`+g+`)\*\)\*`, `$1*`),
		newRule("symbol star star", `\(([^+*()])\*\)\*`, `$1*`),
		newRule("star star", `\*\*`, `*`),
	}
}()

// Simplify Rewrites a regular expression into a shorter equivalent form. The rule list is applied until
// a whole pass changes nothing, the expression reaches the length bound, or the pass bound is hit; in
// the last two cases the best result so far is returned. An empty expression is EmptySet.
func Simplify(expr string, options ...SimplifyOption) string {
	opts := &simplifyOption{
		maxLength: DefaultMaxLength,
		maxPasses: DefaultMaxPasses,
	}
	for _, fn := range options {
		fn(opts)
	}

	if expr == "" {
		return EmptySet
	}

	simplified := expr
	for pass := 0; pass < opts.maxPasses; pass++ {
		next, err := applyRules(simplified)
		if err != nil || next == simplified {
			break
		}
		simplified = next
		if utf8.RuneCountInString(simplified) >= opts.maxLength {
			break
		}
	}
	return simplified
}

func applyRules(expr string) (string, error) {
	for _, rule := range simplifyRules {
		next, err := rule.pattern.Replace(expr, rule.replacement, -1, -1)
		if err != nil {
			return expr, err
		}
		expr = next
	}
	return expr, nil
}
