package ast

import "testing"

func TestKindCategoryRanges(t *testing.T) {
	tests := []struct {
		kind  DeclKind
		named bool
		value bool
	}{
		{KindInvalid, false, false},
		{KindImport, false, false},
		{KindExtension, false, false},
		{KindPatternBinding, false, false},
		{KindTopLevelCode, false, false},
		{KindSubscript, false, false},
		{KindTypeAlias, true, true},
		{KindVar, true, true},
		{KindFunc, true, true},
		{KindOneOfElement, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := tt.kind.IsNamed(); got != tt.named {
				t.Errorf("IsNamed() = %v, want %v", got, tt.named)
			}
			if got := tt.kind.IsValue(); got != tt.value {
				t.Errorf("IsValue() = %v, want %v", got, tt.value)
			}
		})
	}
}

func TestValueRangeNestedInNamedRange(t *testing.T) {
	// The value category must stay a subset of the named category: a
	// kind that answers IsValue must answer IsNamed.
	for k := KindInvalid; k <= KindOneOfElement; k++ {
		if k.IsValue() && !k.IsNamed() {
			t.Errorf("%v is valued but not named; value range escaped the named range", k)
		}
	}
}

func TestKindStrings(t *testing.T) {
	tests := []struct {
		kind DeclKind
		want string
	}{
		{KindInvalid, "invalid"},
		{KindImport, "import"},
		{KindTopLevelCode, "top-level code"},
		{KindTypeAlias, "typealias"},
		{KindOneOfElement, "oneof element"},
		{DeclKind(200), "invalid"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("DeclKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}
