package ast

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Visitor is supplied by passes that traverse declarations. Walk calls
// the kind-specific method for every declaration it reaches, then the
// opaque-family methods for each owned expression, statement, pattern,
// and type node (traversal cannot descend into those here; their own
// packages walk their substructure). Returning false from any method
// aborts the walk.
type Visitor interface {
	VisitImportDecl(*ImportDecl) bool
	VisitExtensionDecl(*ExtensionDecl) bool
	VisitPatternBindingDecl(*PatternBindingDecl) bool
	VisitTopLevelCodeDecl(*TopLevelCodeDecl) bool
	VisitSubscriptDecl(*SubscriptDecl) bool
	VisitTypeAliasDecl(*TypeAliasDecl) bool
	VisitVarDecl(*VarDecl) bool
	VisitFuncDecl(*FuncDecl) bool
	VisitOneOfElementDecl(*OneOfElementDecl) bool

	VisitExpr(Expr) bool
	VisitStmt(Stmt) bool
	VisitPattern(Pattern) bool
	VisitType(Type) bool
}

// BaseVisitor implements Visitor by visiting everything and descending
// everywhere. Concrete visitors embed it and override only the methods
// they need.
type BaseVisitor struct{}

func (BaseVisitor) VisitImportDecl(*ImportDecl) bool                 { return true }
func (BaseVisitor) VisitExtensionDecl(*ExtensionDecl) bool           { return true }
func (BaseVisitor) VisitPatternBindingDecl(*PatternBindingDecl) bool { return true }
func (BaseVisitor) VisitTopLevelCodeDecl(*TopLevelCodeDecl) bool     { return true }
func (BaseVisitor) VisitSubscriptDecl(*SubscriptDecl) bool           { return true }
func (BaseVisitor) VisitTypeAliasDecl(*TypeAliasDecl) bool           { return true }
func (BaseVisitor) VisitVarDecl(*VarDecl) bool                       { return true }
func (BaseVisitor) VisitFuncDecl(*FuncDecl) bool                     { return true }
func (BaseVisitor) VisitOneOfElementDecl(*OneOfElementDecl) bool     { return true }
func (BaseVisitor) VisitExpr(Expr) bool                              { return true }
func (BaseVisitor) VisitStmt(Stmt) bool                              { return true }
func (BaseVisitor) VisitPattern(Pattern) bool                        { return true }
func (BaseVisitor) VisitType(Type) bool                              { return true }

// Walk drives v over d and every owned child, pre-order, reaching each
// owned child exactly once. Back-references (owning scope, accessor
// linkage) are never followed. The child order per kind is:
//
//	Import:         no owned children
//	Extension:      extended type, then members in declaration order
//	PatternBinding: pattern, then initializer if present
//	TopLevelCode:   the inhabited body alternative, if any
//	Subscript:      indices, element type, getter, then setter if present
//	TypeAlias:      underlying type if resolved
//	Var:            getter then setter, if the variable is a property
//	Func:           body if present
//	OneOfElement:   argument type if present
//
// Walk returns false if the visitor aborted the traversal.
func Walk(d Decl, v Visitor) bool {
	if d == nil {
		return true
	}

	switch d.Kind() {
	case KindImport:
		return v.VisitImportDecl(d.(*ImportDecl))

	case KindExtension:
		e := d.(*ExtensionDecl)
		if !v.VisitExtensionDecl(e) {
			return false
		}
		if e.extendedTy != nil && !v.VisitType(e.extendedTy) {
			return false
		}
		for _, m := range e.members {
			if !Walk(m, v) {
				return false
			}
		}
		return true

	case KindPatternBinding:
		b := d.(*PatternBindingDecl)
		if !v.VisitPatternBindingDecl(b) {
			return false
		}
		if b.pat != nil && !v.VisitPattern(b.pat) {
			return false
		}
		if b.init != nil && !v.VisitExpr(b.init) {
			return false
		}
		return true

	case KindTopLevelCode:
		t := d.(*TopLevelCodeDecl)
		if !v.VisitTopLevelCodeDecl(t) {
			return false
		}
		if t.bodyExpr != nil && !v.VisitExpr(t.bodyExpr) {
			return false
		}
		if t.bodyStmt != nil && !v.VisitStmt(t.bodyStmt) {
			return false
		}
		return true

	case KindSubscript:
		s := d.(*SubscriptDecl)
		if !v.VisitSubscriptDecl(s) {
			return false
		}
		if s.indices != nil && !v.VisitPattern(s.indices) {
			return false
		}
		if s.elementTy != nil && !v.VisitType(s.elementTy) {
			return false
		}
		if !Walk(s.getter, v) {
			return false
		}
		if s.setter != nil && !Walk(s.setter, v) {
			return false
		}
		return true

	case KindTypeAlias:
		a := d.(*TypeAliasDecl)
		if !v.VisitTypeAliasDecl(a) {
			return false
		}
		if a.underlying != nil && !v.VisitType(a.underlying) {
			return false
		}
		return true

	case KindVar:
		vd := d.(*VarDecl)
		if !v.VisitVarDecl(vd) {
			return false
		}
		if vd.getSet != nil {
			if vd.getSet.Get != nil && !Walk(vd.getSet.Get, v) {
				return false
			}
			if vd.getSet.Set != nil && !Walk(vd.getSet.Set, v) {
				return false
			}
		}
		return true

	case KindFunc:
		f := d.(*FuncDecl)
		if !v.VisitFuncDecl(f) {
			return false
		}
		if f.body != nil && !v.VisitExpr(f.body) {
			return false
		}
		return true

	case KindOneOfElement:
		o := d.(*OneOfElementDecl)
		if !v.VisitOneOfElementDecl(o) {
			return false
		}
		if o.argumentTy != nil && !v.VisitType(o.argumentTy) {
			return false
		}
		return true

	default:
		panic("ast: walking a declaration with an invalid kind")
	}
}

// WalkConcurrent applies visit to each top-level declaration from its
// own goroutine, bounded by GOMAXPROCS. It is intended for read-only
// analysis passes over independent declarations, and it is safe only
// after every mutating pass has completed and published its results;
// the set-once field contracts make the tree immutable from that point.
// The first error cancels the remaining work.
func WalkConcurrent(ctx context.Context, decls []Decl, visit func(Decl) error) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, d := range decls {
		d := d
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return visit(d)
		})
	}
	return g.Wait()
}
