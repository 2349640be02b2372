// Package generator enumerates strings derivable from a grammar within a length window.
//
// Enumeration is breadth-first over leftmost derivations. A sentential form is dropped
// as soon as the total length of its terminals exceeds the maximal length, so
// non-terminals are assumed to derive at least the empty string. The number of expanded
// forms is limited, if the limit is reached the result contains strings found so far and
// is marked as truncated. Truncated samples are lower bounds of the language part.
//
// Length of a string is the number of runes in it.
package generator

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/emirpasic/gods/v2/sets/treeset"

	"github.com/ava12/cfg/grammar"
	"github.com/ava12/cfg/internal/queue"
)

// DefaultBudget is the default maximal number of expanded sentential forms.
const DefaultBudget = 50000

// Sample is a set of generated strings sorted in ascending order.
type Sample struct {
	// Strings contains distinct strings, sorted.
	Strings []string

	// Truncated is set if the budget was exhausted before the enumeration was complete.
	Truncated bool

	// Steps contains the number of expanded sentential forms.
	Steps int
}

// Len returns the number of strings.
func (s *Sample) Len() int {
	return len(s.Strings)
}

// Text returns strings joined with line feeds, the form suitable for manual editing.
func (s *Sample) Text() string {
	return strings.Join(s.Strings, "\n")
}

// Generator holds enumeration settings. Zero value uses DefaultBudget.
// Generator is stateless and safe for concurrent use.
type Generator struct {
	// Budget is the maximal number of expanded sentential forms, non-positive means DefaultBudget.
	Budget int
}

// Generate enumerates strings of g with lengths in [minLen, maxLen] using DefaultBudget.
// Returns *cfg.Error if minLen is negative or maxLen < minLen.
func Generate(g *grammar.Grammar, minLen, maxLen int) (*Sample, error) {
	return (&Generator{}).Generate(g, minLen, maxLen)
}

// form is a sentential form with the total length of its terminals.
type form struct {
	symbols  []string
	estimate int
}

// Generate enumerates strings of g with lengths in [minLen, maxLen].
// Returns *cfg.Error if minLen is negative or maxLen < minLen.
// The empty grammar, as well as the grammar whose start symbol has no productions, yields the empty sample.
func (gen *Generator) Generate(g *grammar.Grammar, minLen, maxLen int) (*Sample, error) {
	if e := checkRange(minLen, maxLen); e != nil {
		return nil, e
	}

	budget := gen.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}

	found := treeset.New[string]()
	result := &Sample{}
	if len(g.Productions(g.Start())) == 0 {
		result.Strings = found.Values()
		return result, nil
	}

	worklist := queue.New(form{[]string{g.Start()}, 0})
	for !worklist.IsEmpty() && result.Steps < budget {
		result.Steps++
		f, _ := worklist.First()

		index := leftmostNonTerminal(g, f.symbols)
		if index < 0 {
			word := strings.Join(f.symbols, "")
			if l := utf8.RuneCountInString(word); l >= minLen && l <= maxLen {
				found.Add(word)
			}
			continue
		}

		for _, p := range g.Productions(f.symbols[index]) {
			estimate := f.estimate + terminalLength(g, p)
			if estimate <= maxLen {
				worklist.Append(form{splice(f.symbols, index, p), estimate})
			}
		}
	}

	result.Truncated = !worklist.IsEmpty()
	if result.Truncated {
		slog.Debug("generation budget exhausted", "start", g.Start(), "budget", budget,
			"pending", worklist.Len(), "found", found.Size())
	}
	result.Strings = found.Values()
	return result, nil
}

func leftmostNonTerminal(g *grammar.Grammar, symbols []string) int {
	for i, symbol := range symbols {
		if g.IsNonTerminal(symbol) {
			return i
		}
	}
	return -1
}

func splice(symbols []string, index int, p grammar.Production) []string {
	result := make([]string, 0, len(symbols)+len(p)-1)
	result = append(result, symbols[:index]...)
	result = append(result, p...)
	return append(result, symbols[index+1:]...)
}

// terminalLength returns the total length of terminal symbols, non-terminals count as zero.
// Thus it is a lower bound of the length of any string derivable from symbols.
func terminalLength(g *grammar.Grammar, symbols []string) int {
	result := 0
	for _, symbol := range symbols {
		if g.IsTerminal(symbol) {
			result += utf8.RuneCountInString(symbol)
		}
	}
	return result
}
