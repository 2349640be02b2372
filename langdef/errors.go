package langdef

import (
	"github.com/ava12/cfg"
	"github.com/ava12/cfg/source"
)

// Error codes used by Parse:
const (
	// MissingArrowError indicates a non-blank line with no "->" separator.
	MissingArrowError = cfg.ParseErrors + iota

	// ExtraArrowError indicates a line with more than one "->" separator.
	ExtraArrowError

	// NonTerminalNameError indicates left-hand side that is not a single token of uppercase letters.
	NonTerminalNameError

	// EmptyGrammarError indicates text containing no rules.
	EmptyGrammarError
)

func missingArrowError(pos source.Pos) *cfg.Error {
	return cfg.FormatErrorPos(pos, MissingArrowError, "missing %q", Arrow)
}

func extraArrowError(pos source.Pos) *cfg.Error {
	return cfg.FormatErrorPos(pos, ExtraArrowError, "unexpected second %q", Arrow)
}

func missingNameError(pos source.Pos) *cfg.Error {
	return cfg.FormatErrorPos(pos, NonTerminalNameError, "missing non-terminal name")
}

func nonTerminalNameError(pos source.Pos, name string) *cfg.Error {
	return cfg.FormatErrorPos(pos, NonTerminalNameError, "non-terminal %q must consist of uppercase letters", name)
}

func emptyGrammarError(s *source.Source) *cfg.Error {
	if s.Name() == "" {
		return cfg.FormatError(EmptyGrammarError, "grammar is empty")
	}
	return cfg.FormatError(EmptyGrammarError, "grammar %s is empty", s.Name())
}
