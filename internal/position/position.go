// Package position provides source location tracking for the Vela
// compiler front end. Declaration nodes record the positions of their
// leading keywords and delimiter tokens so that later passes can report
// where a construct begins without re-inspecting substructure.
package position

import (
	"fmt"
	"path/filepath"
)

// Position represents a single point in source code. The zero value is
// an invalid position, used for tokens that are absent from the source
// (for example the 'static' keyword of a non-static function).
type Position struct {
	Filename string // Source file name
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Offset   int    // 0-based byte offset in source
}

// IsValid returns true if the position refers to a real source location.
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// String returns a "file:line:col" rendering of the position.
func (p Position) String() string {
	if !p.IsValid() {
		return "<invalid>"
	}
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before returns true if this position comes before other.
func (p Position) Before(other Position) bool {
	if p.Filename != other.Filename {
		return p.Filename < other.Filename
	}
	return p.Offset < other.Offset
}

// After returns true if this position comes after other.
func (p Position) After(other Position) bool {
	if p.Filename != other.Filename {
		return p.Filename > other.Filename
	}
	return p.Offset > other.Offset
}

// Span represents a range of source code between two positions. It is
// used for delimiter pairs such as the braces of a property or
// subscript accessor block.
type Span struct {
	Start Position // Starting position (inclusive)
	End   Position // Ending position (exclusive)
}

// IsValid returns true if both endpoints are valid, belong to the same
// file, and are correctly ordered.
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() &&
		s.Start.Filename == s.End.Filename &&
		s.Start.Offset <= s.End.Offset
}

// String returns a compact rendering of the span.
func (s Span) String() string {
	if !s.IsValid() {
		return "<invalid>"
	}
	if s.Start.Filename != "" {
		filename := filepath.Base(s.Start.Filename)
		if s.Start.Line == s.End.Line {
			return fmt.Sprintf("%s:%d:%d-%d", filename, s.Start.Line, s.Start.Column, s.End.Column)
		}
		return fmt.Sprintf("%s:%d:%d-%d:%d", filename, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%d:%d-%d", s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%d:%d-%d:%d", s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// Contains returns true if the span contains the given position.
func (s Span) Contains(pos Position) bool {
	if !s.IsValid() || !pos.IsValid() {
		return false
	}
	if s.Start.Filename != pos.Filename {
		return false
	}
	return s.Start.Offset <= pos.Offset && pos.Offset < s.End.Offset
}

// Union returns a span that encompasses both this span and other.
func (s Span) Union(other Span) Span {
	if !s.IsValid() {
		return other
	}
	if !other.IsValid() {
		return s
	}
	if s.Start.Filename != other.Start.Filename {
		return s // Cannot union spans from different files
	}

	start := s.Start
	if other.Start.Before(start) {
		start = other.Start
	}

	end := s.End
	if other.End.After(end) {
		end = other.End
	}

	return Span{Start: start, End: end}
}

// Length returns the length of the span in bytes.
func (s Span) Length() int {
	if !s.IsValid() {
		return 0
	}
	return s.End.Offset - s.Start.Offset
}
