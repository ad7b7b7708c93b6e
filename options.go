package wirth

import "github.com/npillmayer/wirth/automata"

// DefaultMaxNesting is the default limit for the nesting depth of groups.
const DefaultMaxNesting = 64

// Option configures the construction of a rule.
type Option func(*config)

type config struct {
	maxNesting int
	algebra    automata.Algebra
	mode       uint
}

const (
	optionNormalize   uint = 1 << 1 // NFC-normalize terminals
	optionCheckSyntax uint = 1 << 2 // check rule with the meta-grammar first
)

func defaultConfig() *config {
	return &config{
		maxNesting: DefaultMaxNesting,
		algebra:    automata.Standard,
	}
}

// MaxNesting sets the maximum nesting depth of groups. Rules with deeper nesting
// are rejected with ErrNestingTooDeep. Values < 1 are ignored.
func MaxNesting(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxNesting = n
		}
	}
}

// WithAlgebra sets the algebra used to derive the minimized DFA of a rule.
// A nil algebra selects automata.Standard.
func WithAlgebra(alg automata.Algebra) Option {
	return func(c *config) {
		if alg == nil {
			alg = automata.Standard
		}
		c.algebra = alg
	}
}

// NormalizeTerminals sets an option to normalize the content of terminals to
// Unicode NFC before they are entered into the symbol set. Terminals which are
// canonically equivalent will then be treated as the same symbol.
func NormalizeTerminals(b bool) Option {
	return func(c *config) {
		c.setMode(optionNormalize, b)
	}
}

// CheckSyntax sets an option to check a rule against the meta-grammar of Wirth
// syntax notation before building an automaton for it.
func CheckSyntax(b bool) Option {
	return func(c *config) {
		c.setMode(optionCheckSyntax, b)
	}
}

func (c *config) setMode(m uint, b bool) {
	if b {
		c.mode |= m
	} else {
		c.mode &^= m
	}
}

func (c *config) hasMode(m uint) bool {
	return c.mode&m > 0
}
