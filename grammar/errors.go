package grammar

import (
	"github.com/ava12/cfg"
)

// Error codes used by Validate:
const (
	// NoStartError indicates that the start symbol is not set.
	NoStartError = cfg.ValidationErrors + iota

	// StartWithoutRulesError indicates that the start symbol has no productions.
	StartWithoutRulesError
)

func noStartError() *cfg.Error {
	return cfg.FormatError(NoStartError, "no start symbol")
}

func startWithoutRulesError(start string) *cfg.Error {
	return cfg.FormatError(StartWithoutRulesError, "start symbol %q has no productions", start)
}

// Validate checks that the start symbol is set and has at least one production.
// Returns nil or *cfg.Error.
func (g *Grammar) Validate() error {
	if g.start == "" {
		return noStartError()
	}
	if len(g.rules[g.start]) == 0 {
		return startWithoutRulesError(g.start)
	}
	return nil
}

// Valid is a (bool, reason) form of Validate.
func (g *Grammar) Valid() (bool, string) {
	if e := g.Validate(); e != nil {
		return false, e.Error()
	}
	return true, "grammar is valid"
}
