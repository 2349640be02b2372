package cnf

import (
	"sort"

	"github.com/emirpasic/gods/v2/sets/hashset"

	"github.com/ava12/cfg/grammar"
	"github.com/ava12/cfg/internal/queue"
)

type symbolSet = *hashset.Set[string]

func newSymbolSet(symbols ...string) symbolSet {
	return hashset.New[string](symbols...)
}

func sorted(s symbolSet) []string {
	result := s.Values()
	sort.Strings(result)
	return result
}

// derivesOnly reports whether every symbol of p is a terminal of g or belongs to set.
func derivesOnly(g *grammar.Grammar, p grammar.Production, set symbolSet) bool {
	for _, symbol := range p {
		if g.IsNonTerminal(symbol) && !set.Contains(symbol) {
			return false
		}
	}
	return true
}

// fixpoint grows the set of non-terminals having a production accepted by admit until it stops changing.
func fixpoint(g *grammar.Grammar, admit func(p grammar.Production, set symbolSet) bool) symbolSet {
	set := newSymbolSet()
	for changed := true; changed; {
		changed = false
		for _, nt := range g.NonTerminals() {
			if set.Contains(nt) {
				continue
			}
			for _, p := range g.Productions(nt) {
				if admit(p, set) {
					set.Add(nt)
					changed = true
					break
				}
			}
		}
	}
	return set
}

func nullableSet(g *grammar.Grammar) symbolSet {
	return fixpoint(g, func(p grammar.Production, set symbolSet) bool {
		for _, symbol := range p {
			if !set.Contains(symbol) {
				return false
			}
		}
		return true
	})
}

func generatingSet(g *grammar.Grammar) symbolSet {
	return fixpoint(g, func(p grammar.Production, set symbolSet) bool {
		return derivesOnly(g, p, set)
	})
}

func reachableSet(g *grammar.Grammar) symbolSet {
	set := newSymbolSet()
	if !g.IsNonTerminal(g.Start()) {
		return set
	}

	set.Add(g.Start())
	q := queue.New(g.Start())
	for !q.IsEmpty() {
		nt, _ := q.First()
		for _, p := range g.Productions(nt) {
			for _, symbol := range p {
				if g.IsNonTerminal(symbol) && !set.Contains(symbol) {
					set.Add(symbol)
					q.Append(symbol)
				}
			}
		}
	}
	return set
}

// Nullable returns sorted list of non-terminals deriving the empty string.
func Nullable(g *grammar.Grammar) []string {
	return sorted(nullableSet(g))
}

// Generating returns sorted list of non-terminals deriving at least one terminal string.
func Generating(g *grammar.Grammar) []string {
	return sorted(generatingSet(g))
}

// Reachable returns sorted list of non-terminals reachable from the start symbol.
func Reachable(g *grammar.Grammar) []string {
	return sorted(reachableSet(g))
}
