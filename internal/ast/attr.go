package ast

import (
	semver "github.com/Masterminds/semver/v3"

	"github.com/vela-lang/vela/internal/position"
)

// Resilience describes how much of a declaration's layout downstream
// components may rely on across module versions.
type Resilience uint8

const (
	// InherentlyFragile declarations can never change without breaking
	// clients; their layout may be assumed freely.
	InherentlyFragile Resilience = iota
	// Fragile declarations expose their layout to the current build.
	Fragile
	// Resilient declarations hide their layout behind indirection.
	Resilient
)

func (r Resilience) String() string {
	switch r {
	case InherentlyFragile:
		return "inherently fragile"
	case Fragile:
		return "fragile"
	default:
		return "resilient"
	}
}

// AvailableAttr constrains the platform versions a declaration may be
// used on.
type AvailableAttr struct {
	Loc        position.Position // Location of the attribute
	Platform   string            // Target platform name, empty for all
	Introduced *semver.Version   // First version the declaration exists in
	Message    string            // Optional diagnostic text
}

// IsAvailable reports whether the declaration exists at the given
// target version. An attribute with no introduction version constrains
// nothing.
func (a *AvailableAttr) IsAvailable(target *semver.Version) bool {
	if a.Introduced == nil || target == nil {
		return true
	}
	return !target.LessThan(a.Introduced)
}

// DeclAttributes is the attribute set attached to a named declaration.
//
// Declarations that never acquire attributes all share one immutable
// empty instance; the first mutable access replaces the shared instance
// with a private arena-allocated one. Callers reading through Attrs
// must therefore never write through the result.
type DeclAttributes struct {
	AtLoc      position.Position // Location of the leading '@', invalid if none
	Infix      bool              // Declared as an infix operator function
	Assignment bool              // Participates in assignment sugar
	Resilience Resilience
	Available  *AvailableAttr
}

// Empty reports whether no attribute has been set.
func (a *DeclAttributes) Empty() bool {
	return *a == DeclAttributes{}
}

// IsAvailable reports availability at the target version, honouring an
// Available attribute when present.
func (a *DeclAttributes) IsAvailable(target *semver.Version) bool {
	if a.Available == nil {
		return true
	}
	return a.Available.IsAvailable(target)
}

// emptyAttrs is the shared read-only attribute set of every declaration
// that never acquired attributes. It must stay zero.
var emptyAttrs DeclAttributes
