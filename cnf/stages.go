package cnf

import (
	"github.com/ava12/cfg/grammar"
	"github.com/ava12/cfg/internal/queue"
)

// Base names of allocated helper non-terminals:
const (
	StartBase   = "S0" // new start symbol
	TermPrefix  = "T_" // followed by terminal, e.g. T_a
	ChainPrefix = "C"  // followed by number, e.g. C1
)

// Start introduces a fresh start symbol rewriting to the old one.
func Start(g *grammar.Grammar, names *Names) *grammar.Grammar {
	result := g.Clone()
	start := names.Fresh(StartBase)
	result.Add(start, grammar.Production{g.Start()})
	result.SetStart(start)
	return result
}

// Term replaces every terminal in productions longer than 1 with helper non-terminal
// deriving that terminal. Each distinct terminal gets one helper.
func Term(g *grammar.Grammar, names *Names) *grammar.Grammar {
	result := grammar.New(g.Start())
	helpers := make(map[string]string)
	var terms []string

	for _, nt := range g.NonTerminals() {
		result.Add(nt)
		for _, p := range g.Productions(nt) {
			if len(p) > 1 {
				np := make(grammar.Production, len(p))
				for i, symbol := range p {
					if g.IsTerminal(symbol) {
						helper, has := helpers[symbol]
						if !has {
							helper = names.Fresh(TermPrefix + symbol)
							helpers[symbol] = helper
							terms = append(terms, symbol)
						}
						symbol = helper
					}
					np[i] = symbol
				}
				p = np
			}
			result.Add(nt, p)
		}
	}

	for _, term := range terms {
		result.Add(helpers[term], grammar.Production{term})
	}
	return result
}

// Bin splits productions longer than 2 into chains of binary productions:
// A -> X1 X2 X3 becomes A -> X1 C1, C1 -> X2 X3.
func Bin(g *grammar.Grammar, names *Names) *grammar.Grammar {
	result := grammar.New(g.Start())
	for _, nt := range g.NonTerminals() {
		result.Add(nt)
		for _, p := range g.Productions(nt) {
			head := nt
			for len(p) > 2 {
				chain := names.Next(ChainPrefix)
				result.Add(head, grammar.Production{p[0], chain})
				head, p = chain, p[1:]
			}
			result.Add(head, p)
		}
	}
	return result
}

// Del removes empty productions. Every production is replaced with all its non-empty variants
// omitting any subset of nullable symbols. If the start symbol is nullable it gets
// the only empty production of the result.
// Order of alternatives is an implementation detail: each production yields its variants
// starting from the full one, duplicates are dropped.
func Del(g *grammar.Grammar) *grammar.Grammar {
	nullable := nullableSet(g)
	result := grammar.New(g.Start())
	for _, nt := range g.NonTerminals() {
		result.Add(nt)
		for _, p := range g.Productions(nt) {
			for _, sub := range subProductions(p, nullable) {
				if !sub.IsEmpty() {
					result.AddUnique(nt, sub)
				}
			}
		}
	}

	if nullable.Contains(g.Start()) {
		result.Add(g.Start(), grammar.Production{})
	}
	return result
}

func subProductions(p grammar.Production, nullable symbolSet) []grammar.Production {
	result := []grammar.Production{{}}
	for _, symbol := range p {
		next := make([]grammar.Production, 0, len(result)*2)
		for _, c := range result {
			next = append(next, append(c.Clone(), symbol))
			if nullable.Contains(symbol) {
				next = append(next, c)
			}
		}
		result = next
	}
	return result
}

// Unit removes unit productions (A -> B, B is a non-terminal). Non-terminal A gets every
// non-unit production of every non-terminal reachable from A through unit productions.
func Unit(g *grammar.Grammar) *grammar.Grammar {
	result := grammar.New(g.Start())
	for _, nt := range g.NonTerminals() {
		result.Add(nt)
		for _, source := range append([]string{nt}, unitClosure(g, nt)...) {
			for _, p := range g.Productions(source) {
				if !isUnit(g, p) {
					result.AddUnique(nt, p)
				}
			}
		}
	}
	return result
}

func isUnit(g *grammar.Grammar, p grammar.Production) bool {
	return len(p) == 1 && g.IsNonTerminal(p[0])
}

// unitClosure returns non-terminals reachable from nt via unit productions, excluding nt,
// in breadth-first order.
func unitClosure(g *grammar.Grammar, nt string) []string {
	var result []string
	visited := newSymbolSet(nt)
	q := queue.New(nt)
	for !q.IsEmpty() {
		current, _ := q.First()
		for _, p := range g.Productions(current) {
			if isUnit(g, p) && !visited.Contains(p[0]) {
				visited.Add(p[0])
				result = append(result, p[0])
				q.Append(p[0])
			}
		}
	}
	return result
}

// Useless removes non-generating non-terminals with productions referring them,
// then removes non-terminals unreachable from the start symbol.
// If the start symbol is not generating the result is the empty grammar with the same start symbol.
func Useless(g *grammar.Grammar) *grammar.Grammar {
	result := grammar.New(g.Start())
	generating := generatingSet(g)
	if !generating.Contains(g.Start()) {
		return result
	}

	pruned := grammar.New(g.Start())
	for _, nt := range g.NonTerminals() {
		if !generating.Contains(nt) {
			continue
		}
		pruned.Add(nt)
		for _, p := range g.Productions(nt) {
			if derivesOnly(g, p, generating) {
				pruned.Add(nt, p)
			}
		}
	}

	reachable := reachableSet(pruned)
	for _, nt := range pruned.NonTerminals() {
		if reachable.Contains(nt) {
			result.Set(nt, pruned.Productions(nt))
		}
	}
	return result
}
