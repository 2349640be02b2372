package cnf

import (
	"strconv"

	"github.com/emirpasic/gods/v2/sets/hashset"

	"github.com/ava12/cfg/grammar"
)

// Names allocates fresh symbol names. Allocated names never collide with
// symbols of the source grammar or with previously allocated names.
// Names is not safe for concurrent use.
type Names struct {
	used    *hashset.Set[string]
	counter map[string]int
}

// NewNames creates allocator reserving every non-terminal and terminal of g and its start symbol.
func NewNames(g *grammar.Grammar) *Names {
	n := &Names{
		used:    hashset.New[string](),
		counter: make(map[string]int),
	}
	n.Reserve(g.NonTerminals()...)
	n.Reserve(g.Terminals()...)
	if g.Start() != "" {
		n.Reserve(g.Start())
	}
	return n
}

// Reserve marks names as used.
func (n *Names) Reserve(names ...string) {
	n.used.Add(names...)
}

// IsUsed reports whether name is reserved or allocated.
func (n *Names) IsUsed(name string) bool {
	return n.used.Contains(name)
}

// Fresh returns base if it is not used yet, otherwise base with the lowest free "_1", "_2", ... suffix.
func (n *Names) Fresh(base string) string {
	name := base
	for i := 1; n.IsUsed(name); i++ {
		name = base + "_" + strconv.Itoa(i)
	}
	n.Reserve(name)
	return name
}

// Next returns prefix followed by the next free number, numbering starts from 1 for each prefix.
func (n *Names) Next(prefix string) string {
	i := n.counter[prefix]
	var name string
	for {
		i++
		name = prefix + strconv.Itoa(i)
		if !n.IsUsed(name) {
			break
		}
	}
	n.counter[prefix] = i
	n.Reserve(name)
	return name
}
