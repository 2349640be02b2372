/*
Package langdef converts textual grammar description to grammar.Grammar value.

Description contains one rule per line:

	LHS -> alternative | alternative | ...

LHS is a non-terminal name consisting of uppercase letters only (unicode letters are allowed).
Alternatives are separated with "|", symbols of an alternative are separated with whitespace,
so "A B" is two symbols while "AB" is one. Any token except "->" and "|" may be a symbol.

Empty alternative, as well as one of case-insensitive spellings eps, epsilon, ε, lambda,
denotes empty production. Epsilon spellings inside longer alternatives are ignored.

Blank lines are skipped. Several lines may share the same LHS, alternatives are appended
in order of appearance. The LHS of the first rule is the start symbol.

Every symbol that is a LHS of some rule is a non-terminal, all other symbols are terminals.
So "S -> a B" with no rule for B makes B a terminal.

Example:

	S -> A S B | ε
	A -> a A S | a
	B -> S b S | A | b b
*/
package langdef
