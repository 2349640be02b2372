// Package grammar defines context-free grammar value type.
//
// A symbol is a non-terminal iff it is a key of the grammar rule table,
// any other symbol is a terminal. Production is a possibly empty sequence of symbols,
// empty production derives the empty string.
package grammar

import (
	"slices"
	"sort"
	"strings"

	"github.com/emirpasic/gods/v2/sets/hashset"
)

// Epsilon is used to render empty productions.
const Epsilon = "ε"

// Production is an ordered sequence of symbols.
type Production []string

// IsEmpty reports whether p derives the empty string directly.
func (p Production) IsEmpty() bool {
	return len(p) == 0
}

// Equal reports whether p and o contain the same symbols in the same order.
func (p Production) Equal(o Production) bool {
	return slices.Equal(p, o)
}

// Clone returns a copy of p, the copy of an empty production is an empty non-nil production.
func (p Production) Clone() Production {
	return append(Production{}, p...)
}

// String joins symbols with spaces, empty production is rendered as Epsilon.
func (p Production) String() string {
	if len(p) == 0 {
		return Epsilon
	}
	return strings.Join(p, " ")
}

// Key returns a string unique for symbol sequence, usable as a map key.
func (p Production) Key() string {
	return strings.Join(p, "\x00")
}

// Grammar maps non-terminals to ordered lists of productions and holds the start symbol.
// Non-terminal insertion order is preserved. Grammar values are treated as immutable
// by the packages of this module: every transformation returns a new grammar.
// Zero value is not usable, use New.
type Grammar struct {
	start     string
	order     []string
	rules     map[string][]Production
	terminals *hashset.Set[string]
	stale     bool
}

// New creates an empty grammar with given start symbol.
func New(start string) *Grammar {
	return &Grammar{
		start:     start,
		rules:     make(map[string][]Production),
		terminals: hashset.New[string](),
	}
}

func (g *Grammar) Start() string {
	return g.start
}

func (g *Grammar) SetStart(start string) {
	g.start = start
}

// Len returns the number of non-terminals.
func (g *Grammar) Len() int {
	return len(g.order)
}

// IsEmpty reports whether the rule table contains no non-terminals.
func (g *Grammar) IsEmpty() bool {
	return len(g.order) == 0
}

// IsNonTerminal reports whether symbol is a key of the rule table.
func (g *Grammar) IsNonTerminal(symbol string) bool {
	_, has := g.rules[symbol]
	return has
}

// IsTerminal reports whether symbol is not a key of the rule table.
func (g *Grammar) IsTerminal(symbol string) bool {
	return !g.IsNonTerminal(symbol)
}

// NonTerminals returns non-terminals in insertion order.
func (g *Grammar) NonTerminals() []string {
	return slices.Clone(g.order)
}

// Terminals returns sorted list of symbols used in productions that are not non-terminals.
// Terminals never modifies g: a stale vocabulary is recomputed into a temporary set.
func (g *Grammar) Terminals() []string {
	terminals := g.terminals
	if g.stale {
		terminals = g.collectTerminals()
	}
	result := terminals.Values()
	sort.Strings(result)
	return result
}

// UpdateVocab recomputes the cached terminal set. Mutating methods only mark the vocabulary stale.
func (g *Grammar) UpdateVocab() {
	g.terminals = g.collectTerminals()
	g.stale = false
}

func (g *Grammar) collectTerminals() *hashset.Set[string] {
	result := hashset.New[string]()
	for _, nt := range g.order {
		for _, p := range g.rules[nt] {
			for _, symbol := range p {
				if !g.IsNonTerminal(symbol) {
					result.Add(symbol)
				}
			}
		}
	}
	return result
}

// Productions returns productions of non-terminal nt or nil if nt is not a non-terminal.
// Returned slice must not be modified.
func (g *Grammar) Productions(nt string) []Production {
	return g.rules[nt]
}

// Add appends productions to non-terminal nt, nt is added to the rule table if missing.
// Add(nt) with no productions only makes nt a non-terminal.
func (g *Grammar) Add(nt string, ps ...Production) {
	if !g.IsNonTerminal(nt) {
		g.order = append(g.order, nt)
		g.rules[nt] = nil
	}
	for _, p := range ps {
		g.rules[nt] = append(g.rules[nt], p.Clone())
	}
	g.stale = true
}

// AddUnique appends productions that nt does not contain yet.
func (g *Grammar) AddUnique(nt string, ps ...Production) {
	g.Add(nt)
	for _, p := range ps {
		if !g.Has(nt, p) {
			g.rules[nt] = append(g.rules[nt], p.Clone())
		}
	}
}

// Has reports whether non-terminal nt has production p.
func (g *Grammar) Has(nt string, p Production) bool {
	return slices.ContainsFunc(g.rules[nt], p.Equal)
}

// Set replaces productions of non-terminal nt, nt is added to the rule table if missing.
func (g *Grammar) Set(nt string, ps []Production) {
	g.Add(nt)
	g.rules[nt] = nil
	g.Add(nt, ps...)
}

// Remove deletes non-terminal nt from the rule table, productions referring nt are kept intact,
// so nt becomes a terminal.
func (g *Grammar) Remove(nt string) {
	if !g.IsNonTerminal(nt) {
		return
	}
	delete(g.rules, nt)
	g.order = slices.DeleteFunc(g.order, func(s string) bool { return s == nt })
	g.stale = true
}

// Clone returns a deep copy of g.
func (g *Grammar) Clone() *Grammar {
	c := New(g.start)
	for _, nt := range g.order {
		c.Set(nt, g.rules[nt])
	}
	return c
}

// Equal reports whether g and o have the same start symbol, the same non-terminals,
// and the same productions in the same order. Non-terminal order is ignored.
func (g *Grammar) Equal(o *Grammar) bool {
	if g.start != o.start || len(g.rules) != len(o.rules) {
		return false
	}

	for nt, ps := range g.rules {
		ops, has := o.rules[nt]
		if !has || !slices.EqualFunc(ps, ops, Production.Equal) {
			return false
		}
	}
	return true
}

// ProductionCount returns the total number of productions.
func (g *Grammar) ProductionCount() int {
	result := 0
	for _, ps := range g.rules {
		result += len(ps)
	}
	return result
}

// String renders one line per non-terminal sorted lexicographically:
// "A -> alt | alt", empty productions are rendered as Epsilon.
func (g *Grammar) String() string {
	nts := slices.Clone(g.order)
	sort.Strings(nts)

	var sb strings.Builder
	for i, nt := range nts {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(nt)
		sb.WriteString(" ->")
		for j, p := range g.rules[nt] {
			if j > 0 {
				sb.WriteString(" |")
			}
			sb.WriteByte(' ')
			sb.WriteString(p.String())
		}
	}
	return sb.String()
}
