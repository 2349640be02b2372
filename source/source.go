// Package source defines named grammar text split into lines.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source holds grammar text and offsets of its line starts.
// Source is immutable and safe for concurrent use.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates a source. name is used in error messages only and may be empty.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	s.lineStarts = make([]int, 1, bytes.Count(content, []byte("\n"))+1)
	for i, c := range content {
		if c == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) Content() []byte {
	return s.content
}

func (s *Source) Len() int {
	return len(s.content)
}

// LineCount returns the number of lines, text with no line feeds has one line.
func (s *Source) LineCount() int {
	return len(s.lineStarts)
}

// Line returns content of 1-based line number n without line terminator (LF or CR LF).
// Returns nil if there is no such line.
func (s *Source) Line(n int) []byte {
	if n <= 0 || n > len(s.lineStarts) {
		return nil
	}

	start := s.lineStarts[n-1]
	end := len(s.content)
	if n < len(s.lineStarts) {
		end = s.lineStarts[n] - 1
	}
	return bytes.TrimSuffix(s.content[start:end], []byte("\r"))
}

// LineCol converts byte offset to 1-based line and column numbers.
// Column is counted in runes. Offsets outside content are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	lineIndex := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	lineStart := s.lineStarts[lineIndex]
	return lineIndex + 1, utf8.RuneCount(s.content[lineStart:pos]) + 1
}

// Pos converts 1-based line and byte column to byte offset.
// Returns 0 for non-positive arguments, offsets beyond content are clamped.
func (s *Source) Pos(line, col int) int {
	if line <= 0 || col <= 0 {
		return 0
	}

	l := len(s.content)
	if line > len(s.lineStarts) {
		return l
	}

	return min(s.lineStarts[line-1]+col-1, l)
}

// Pos is a position inside a source, implements cfg.SourcePos.
type Pos struct {
	src            *Source
	pos, line, col int
}

// NewPos creates position for byte offset pos.
func NewPos(s *Source, pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

// LinePos creates position for byte offset inside 1-based line number line.
func LinePos(s *Source, line, offset int) Pos {
	return NewPos(s, s.Pos(line, 1)+offset)
}

func (p Pos) Source() *Source {
	return p.src
}

func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.Name()
}

func (p Pos) Pos() int {
	return p.pos
}

func (p Pos) Line() int {
	return p.line
}

func (p Pos) Col() int {
	return p.col
}
