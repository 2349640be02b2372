/*
Package cfg normalizes context-free grammars to Chomsky Normal Form and checks
the result by sampling both languages in a bounded length window.

Consists of subpackages:
  - cmd/cfgcnf: console utility converting grammar files, generating samples, and comparing them;
  - source: named grammar text split into lines, used for error positions;
  - grammar: grammar value type, vocabulary, validation, and textual rendering;
  - langdef: converts grammar text ("S -> A b | eps") to grammar value;
  - cnf: six-stage pipeline converting any valid grammar to CNF;
  - generator: breadth-first enumeration of derivable strings within a length window;
  - equiv: set difference report over two string samples;
  - check: end-to-end run combining all of the above;
  - envconfig: CFG_* environment variables.

Typical usage is:

1. Parse grammar text using langdef.ParseString and validate the result.

2. Convert the grammar using cnf.Convert, the source grammar stays intact.

3. Generate samples of both grammars for the same length window and compare them with equiv.Compare.

Equal samples do not prove equivalence of languages, only of their parts within the window.
*/
package cfg

import (
	"fmt"
)

// Error code ranges. A code belongs to the range starting at the nearest lower class value.
const (
	ParseErrors      = 1   // grammar text, langdef
	ValidationErrors = 101 // grammar value, grammar.Validate
	RangeErrors      = 201 // length window, generator
)

// Error reports rejected input: malformed grammar text, invalid grammar, or bad length window.
type Error struct {
	Code       int
	Message    string // full text, with position suffix when known
	SourceName string // grammar file name, may be empty
	Line, Col  int    // 1-based, zero when unknown
}

// SourcePos locates an error in grammar text, see source.Pos.
type SourcePos interface {
	SourceName() string
	Line() int
	Col() int
}

// NewError builds an Error. Non-zero line appends " at line L col C" to msg,
// prefixed with " in NAME" when name is not empty.
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{code, msg, name, line, col}
}

func (e *Error) Error() string {
	return e.Message
}

// Is matches any *Error with the same code, so errors.Is(err, &cfg.Error{Code: c}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// Class returns ParseErrors, ValidationErrors, or RangeErrors.
func (e *Error) Class() int {
	return (e.Code-1)/100*100 + 1
}

// FormatError builds a positionless Error, msg is a format string when params are given.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos is FormatError with a position taken from non-nil pos.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}
