package position

import "testing"

func pos(line, col, off int) Position {
	return Position{Filename: "test.vela", Line: line, Column: col, Offset: off}
}

func TestPositionValidity(t *testing.T) {
	tests := []struct {
		name  string
		pos   Position
		valid bool
	}{
		{"zero value", Position{}, false},
		{"ordinary", pos(1, 1, 0), true},
		{"missing line", Position{Filename: "test.vela", Column: 3, Offset: 2}, false},
		{"negative offset", Position{Filename: "test.vela", Line: 1, Column: 1, Offset: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.valid {
				t.Errorf("IsValid() = %v, want %v", got, tt.valid)
			}
		})
	}
}

func TestPositionOrdering(t *testing.T) {
	a := pos(1, 1, 0)
	b := pos(1, 5, 4)

	if !a.Before(b) {
		t.Error("expected a.Before(b)")
	}
	if !b.After(a) {
		t.Error("expected b.After(a)")
	}
	if a.After(b) || b.Before(a) {
		t.Error("ordering is not antisymmetric")
	}
}

func TestSpanContains(t *testing.T) {
	span := Span{Start: pos(1, 1, 0), End: pos(1, 10, 9)}

	if !span.IsValid() {
		t.Fatal("span should be valid")
	}
	if !span.Contains(pos(1, 4, 3)) {
		t.Error("span should contain interior position")
	}
	if span.Contains(pos(1, 10, 9)) {
		t.Error("end position is exclusive")
	}
	if span.Contains(Position{}) {
		t.Error("invalid position is never contained")
	}
}

func TestSpanUnion(t *testing.T) {
	a := Span{Start: pos(1, 1, 0), End: pos(1, 4, 3)}
	b := Span{Start: pos(2, 1, 10), End: pos(2, 6, 15)}

	u := a.Union(b)
	if u.Start != a.Start || u.End != b.End {
		t.Errorf("Union = %v, want [%v, %v]", u, a.Start, b.End)
	}
	if u.Length() != 15 {
		t.Errorf("Length = %d, want 15", u.Length())
	}

	// Union with an invalid span yields the valid one.
	if got := a.Union(Span{}); got != a {
		t.Errorf("Union with invalid = %v, want %v", got, a)
	}
}

func TestStringRendering(t *testing.T) {
	p := pos(3, 7, 20)
	if got := p.String(); got != "test.vela:3:7" {
		t.Errorf("Position.String() = %q", got)
	}

	s := Span{Start: pos(3, 7, 20), End: pos(3, 12, 25)}
	if got := s.String(); got != "test.vela:3:7-12" {
		t.Errorf("Span.String() = %q", got)
	}

	if got := (Position{}).String(); got != "<invalid>" {
		t.Errorf("invalid Position.String() = %q", got)
	}
}
