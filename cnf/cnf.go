// Package cnf converts context-free grammars to Chomsky Normal Form.
//
// Conversion is a composition of six pure stages applied in fixed order:
// START, TERM, BIN, DEL, UNIT, USELESS. DEL precedes UNIT because removing empty
// productions creates new unit productions, USELESS goes last to drop symbols
// orphaned by other stages. Every stage returns a new grammar and never modifies its argument.
// Helper non-terminal names are allocated by Names shared by all stages of a single conversion.
//
// Input grammar is expected to be valid (see grammar.Grammar.Validate), it is not re-validated.
package cnf

import (
	"fmt"

	"github.com/ava12/cfg/grammar"
	"github.com/ava12/cfg/internal/logutil"
)

// Stage is a named conversion step.
type Stage struct {
	Name  string
	Apply func(g *grammar.Grammar, names *Names) *grammar.Grammar
}

func ignoringNames(f func(*grammar.Grammar) *grammar.Grammar) func(*grammar.Grammar, *Names) *grammar.Grammar {
	return func(g *grammar.Grammar, _ *Names) *grammar.Grammar {
		return f(g)
	}
}

// Stages lists conversion stages in order of application.
var Stages = []Stage{
	{"START", Start},
	{"TERM", Term},
	{"BIN", Bin},
	{"DEL", ignoringNames(Del)},
	{"UNIT", ignoringNames(Unit)},
	{"USELESS", ignoringNames(Useless)},
}

// Convert returns CNF grammar equivalent to g. g is not modified.
// The result may be the empty grammar if g derives no terminal strings.
func Convert(g *grammar.Grammar) *grammar.Grammar {
	return ConvertWith(g, Stages...)
}

// ConvertWith applies given stages to g in given order using a single name allocator.
// Returns a copy of g if no stages are given.
func ConvertWith(g *grammar.Grammar, stages ...Stage) *grammar.Grammar {
	if len(stages) == 0 {
		return g.Clone()
	}

	names := NewNames(g)
	result := g
	for _, stage := range stages {
		result = stage.Apply(result, names)
		logutil.Trace("cnf stage applied", "stage", stage.Name, "start", result.Start(),
			"nonterminals", result.Len(), "productions", result.ProductionCount())
	}
	result.UpdateVocab()
	return result
}

// IsCNF checks that every production of g consists of a single terminal or of two non-terminals,
// and only the start symbol has empty production and then it is not used in any production.
// Returns nil for the empty grammar.
func IsCNF(g *grammar.Grammar) error {
	startUsed := false
	for _, nt := range g.NonTerminals() {
		for _, p := range g.Productions(nt) {
			for _, symbol := range p {
				startUsed = startUsed || symbol == g.Start()
			}

			switch len(p) {
			case 0:
				if nt != g.Start() {
					return fmt.Errorf("empty production of non-start symbol %s", nt)
				}
			case 1:
				if g.IsNonTerminal(p[0]) {
					return fmt.Errorf("unit production %s -> %s", nt, p)
				}
			case 2:
				if g.IsTerminal(p[0]) || g.IsTerminal(p[1]) {
					return fmt.Errorf("terminal in binary production %s -> %s", nt, p)
				}
			default:
				return fmt.Errorf("production %s -> %s is too long", nt, p)
			}
		}
	}

	if startUsed && g.Has(g.Start(), grammar.Production{}) {
		return fmt.Errorf("nullable start symbol %s is used in productions", g.Start())
	}
	return nil
}
