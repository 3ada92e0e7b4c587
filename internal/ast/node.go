package ast

import "github.com/vela-lang/vela/internal/position"

// The expression, statement, pattern, and type node families are built
// by the parser and consumed here as opaque, already-constructed values
// with their own identity. Declarations store and hand them back
// without inspecting their structure.

// Expr is an expression node owned by a declaration (an initializer or
// a function body).
type Expr interface {
	StartLoc() position.Position
	exprNode()
}

// Stmt is a statement node owned by a declaration.
type Stmt interface {
	StartLoc() position.Position
	stmtNode()
}

// Pattern is a binding pattern owned by a declaration.
type Pattern interface {
	StartLoc() position.Position
	patternNode()
}

// Type is a type node or a resolved type. Types carry no location of
// their own at this layer; deduced types never had one.
type Type interface {
	typeNode()
}

// LValueType is the reference-flavored view of a declaration's type,
// produced by TypeOfReference for declarations whose references are
// l-values.
type LValueType struct {
	Object Type // The underlying object type
}

func (*LValueType) typeNode() {}

func (t *LValueType) String() string { return "lvalue" }

// ErrorType stands in for a type that failed to resolve. Recovery
// passes overwrite an already-resolved type slot with it; consumers
// must treat any cached derivation of the previous type as stale.
type ErrorType struct{}

func (*ErrorType) typeNode() {}

func (*ErrorType) String() string { return "<error>" }

// NamedType is a type referenced by name and not yet resolved to its
// definition.
type NamedType struct {
	Name Identifier
}

func (*NamedType) typeNode() {}

func (t *NamedType) String() string { return t.Name.Text() }

// OpaqueExpr, OpaqueStmt, and OpaquePattern are leaf stand-ins for
// nodes whose structure is produced and consumed outside this package.
// They carry position information only.
type OpaqueExpr struct {
	Loc position.Position
}

func (e *OpaqueExpr) StartLoc() position.Position { return e.Loc }
func (*OpaqueExpr) exprNode()                     {}

type OpaqueStmt struct {
	Loc position.Position
}

func (s *OpaqueStmt) StartLoc() position.Position { return s.Loc }
func (*OpaqueStmt) stmtNode()                     {}

type OpaquePattern struct {
	Loc position.Position
}

func (p *OpaquePattern) StartLoc() position.Position { return p.Loc }
func (*OpaquePattern) patternNode()                  {}
