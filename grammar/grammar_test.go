package grammar

import (
	"testing"

	. "github.com/ava12/cfg/internal/test"
)

func sample() *Grammar {
	g := New("S")
	g.Add("S", Production{"A", "S", "B"}, Production{})
	g.Add("A", Production{"a", "A", "S"}, Production{"a"})
	g.Add("B", Production{"S", "b", "S"}, Production{"A"}, Production{"b", "b"})
	return g
}

func TestVocab(t *testing.T) {
	g := sample()
	ExpectStrings(t, []string{"S", "A", "B"}, g.NonTerminals())
	ExpectStrings(t, []string{"a", "b"}, g.Terminals())
	ExpectBool(t, true, g.IsNonTerminal("A"))
	ExpectBool(t, true, g.IsTerminal("a"))
	ExpectBool(t, true, g.IsTerminal("C"))

	g.Add("C", Production{"c"})
	g.Add("A", Production{"C", "d"})
	ExpectStrings(t, []string{"a", "b", "c", "d"}, g.Terminals())

	g.Remove("B")
	ExpectStrings(t, []string{"S", "A", "C"}, g.NonTerminals())
	ExpectStrings(t, []string{"B", "a", "c", "d"}, g.Terminals())
}

func TestUpdateVocab(t *testing.T) {
	g := New("S")
	g.Add("S", Production{"x", "Y"})
	g.UpdateVocab()
	ExpectBool(t, false, g.stale)
	ExpectStrings(t, []string{"Y", "x"}, g.Terminals())

	g.Add("Y", Production{"y"})
	ExpectBool(t, true, g.stale)
	ExpectStrings(t, []string{"x", "y"}, g.Terminals())
}

func TestTerminalsKeepsCache(t *testing.T) {
	g := New("S")
	g.Add("S", Production{"x", "Y"})
	g.UpdateVocab()
	cached := g.terminals

	g.Add("Y", Production{"y"})
	ExpectStrings(t, []string{"x", "y"}, g.Terminals())
	ExpectBool(t, true, g.stale)
	Assert(t, g.terminals == cached, "cached terminal set replaced")
	ExpectInt(t, 2, cached.Size())
	Assert(t, cached.Contains("Y") && cached.Contains("x"), "cached terminal set modified")

	g.UpdateVocab()
	ExpectBool(t, false, g.stale)
	ExpectStrings(t, []string{"x", "y"}, g.Terminals())
}

func TestAddUnique(t *testing.T) {
	g := New("S")
	g.AddUnique("S", Production{"a"}, Production{"b"}, Production{"a"})
	g.AddUnique("S", Production{"b"}, Production{})
	ExpectInt(t, 3, len(g.Productions("S")))
	ExpectBool(t, true, g.Has("S", Production{}))
	ExpectBool(t, false, g.Has("S", Production{"a", "b"}))
}

func TestCloneIsDeep(t *testing.T) {
	g := sample()
	c := g.Clone()
	Assert(t, g.Equal(c), "clone differs from original")

	c.Productions("A")[0][0] = "z"
	c.Add("S", Production{"s"})
	c.SetStart("A")
	ExpectString(t, "a", g.Productions("A")[0][0])
	ExpectInt(t, 2, len(g.Productions("S")))
	ExpectString(t, "S", g.Start())
	Assert(t, !g.Equal(c), "modified clone must differ")
}

func TestAddCopiesProductions(t *testing.T) {
	p := Production{"a", "b"}
	g := New("S")
	g.Add("S", p)
	p[0] = "x"
	ExpectString(t, "a b", g.Productions("S")[0].String())
}

func TestEqualIgnoresOrder(t *testing.T) {
	g := New("S")
	g.Add("S", Production{"A"})
	g.Add("A", Production{"a"})
	o := New("S")
	o.Add("A", Production{"a"})
	o.Add("S", Production{"A"})
	Assert(t, g.Equal(o), "expecting equal grammars")

	o.Set("A", []Production{{"a"}, {"b"}})
	Assert(t, !g.Equal(o), "expecting different grammars")
}

func TestValidate(t *testing.T) {
	ExpectNoError(t, sample().Validate())
	ExpectErrorCode(t, NoStartError, New("").Validate())
	ExpectErrorCode(t, StartWithoutRulesError, New("S").Validate())

	g := New("S")
	g.Add("S")
	ExpectErrorCode(t, StartWithoutRulesError, g.Validate())
	ok, reason := g.Valid()
	ExpectBool(t, false, ok)
	ExpectString(t, `start symbol "S" has no productions`, reason)
}

func TestString(t *testing.T) {
	expected := "A -> a A S | a\n" +
		"B -> S b S | A | b b\n" +
		"S -> A S B | ε"
	ExpectString(t, expected, sample().String())
	ExpectString(t, "", New("S").String())
	ExpectInt(t, 7, sample().ProductionCount())
}
