package langdef

import (
	"bytes"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ava12/cfg/grammar"
	"github.com/ava12/cfg/source"
)

const (
	// Arrow separates left-hand side from alternatives.
	Arrow = "->"
	// Or separates alternatives.
	Or = "|"
)

var epsilons = []string{"eps", "epsilon", "ε", "lambda"}

// IsEpsilon reports whether token is one of case-insensitive epsilon spellings:
// eps, epsilon, ε, lambda.
func IsEpsilon(token string) bool {
	for _, e := range epsilons {
		if strings.EqualFold(token, e) {
			return true
		}
	}
	return false
}

// ParseString parses grammar text and returns a grammar on success.
// Returns nil and *cfg.Error on error.
func ParseString(name, content string) (*grammar.Grammar, error) {
	return Parse(source.New(name, []byte(content)))
}

// ParseBytes parses grammar text and returns a grammar on success.
// Returns nil and *cfg.Error on error.
func ParseBytes(name string, content []byte) (*grammar.Grammar, error) {
	return Parse(source.New(name, content))
}

// Parse parses grammar text and returns a grammar on success.
// Returns nil and *cfg.Error on error.
// The start symbol is the left-hand side of the first rule.
// Resulting grammar is not validated.
func Parse(s *source.Source) (*grammar.Grammar, error) {
	var g *grammar.Grammar
	for n := 1; n <= s.LineCount(); n++ {
		line := s.Line(n)
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		lhs, ps, e := parseLine(s, n, line)
		if e != nil {
			return nil, e
		}

		if g == nil {
			g = grammar.New(lhs)
		}
		g.Add(lhs, ps...)
	}

	if g == nil {
		return nil, emptyGrammarError(s)
	}

	g.UpdateVocab()
	return g, nil
}

func parseLine(s *source.Source, n int, line []byte) (string, []grammar.Production, error) {
	arrow := []byte(Arrow)
	sep := bytes.Index(line, arrow)
	if sep < 0 {
		return "", nil, missingArrowError(source.LinePos(s, n, firstNonSpace(line)))
	}
	if extra := bytes.Index(line[sep+len(arrow):], arrow); extra >= 0 {
		return "", nil, extraArrowError(source.LinePos(s, n, sep+len(arrow)+extra))
	}

	lhsStart := firstNonSpace(line)
	lhs := string(bytes.TrimSpace(line[:sep]))
	if lhs == "" {
		return "", nil, missingNameError(source.LinePos(s, n, lhsStart))
	}
	if !isNonTerminalName(lhs) {
		return "", nil, nonTerminalNameError(source.LinePos(s, n, lhsStart), lhs)
	}

	alts := strings.Split(string(line[sep+len(arrow):]), Or)
	ps := make([]grammar.Production, 0, len(alts))
	for _, alt := range alts {
		ps = append(ps, parseAlternative(alt))
	}
	return lhs, ps, nil
}

func parseAlternative(alt string) grammar.Production {
	p := grammar.Production{}
	for _, token := range strings.Fields(alt) {
		if !IsEpsilon(token) {
			p = append(p, token)
		}
	}
	return p
}

func isNonTerminalName(name string) bool {
	for _, r := range name {
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func firstNonSpace(line []byte) int {
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRune(line[i:])
		if !unicode.IsSpace(r) {
			return i
		}
		i += size
	}
	return 0
}
