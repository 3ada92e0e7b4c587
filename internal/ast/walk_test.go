package ast

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"

	"github.com/vela-lang/vela/internal/position"
)

// collectingVisitor records the order in which Walk reaches nodes.
type collectingVisitor struct {
	BaseVisitor
	events []string
	stopAt string
}

func (c *collectingVisitor) record(ev string) bool {
	c.events = append(c.events, ev)
	return ev != c.stopAt
}

func (c *collectingVisitor) VisitImportDecl(d *ImportDecl) bool         { return c.record(d.String()) }
func (c *collectingVisitor) VisitExtensionDecl(d *ExtensionDecl) bool   { return c.record("extension") }
func (c *collectingVisitor) VisitTopLevelCodeDecl(d *TopLevelCodeDecl) bool {
	return c.record(d.String())
}
func (c *collectingVisitor) VisitPatternBindingDecl(d *PatternBindingDecl) bool {
	return c.record(d.String())
}
func (c *collectingVisitor) VisitSubscriptDecl(d *SubscriptDecl) bool { return c.record(d.String()) }
func (c *collectingVisitor) VisitTypeAliasDecl(d *TypeAliasDecl) bool { return c.record(d.String()) }
func (c *collectingVisitor) VisitVarDecl(d *VarDecl) bool             { return c.record(d.String()) }
func (c *collectingVisitor) VisitFuncDecl(d *FuncDecl) bool           { return c.record(d.String()) }
func (c *collectingVisitor) VisitOneOfElementDecl(d *OneOfElementDecl) bool {
	return c.record(d.String())
}

func (c *collectingVisitor) VisitExpr(Expr) bool       { return c.record("expr") }
func (c *collectingVisitor) VisitStmt(Stmt) bool       { return c.record("stmt") }
func (c *collectingVisitor) VisitPattern(Pattern) bool { return c.record("pattern") }
func (c *collectingVisitor) VisitType(ty Type) bool {
	if tt, ok := ty.(*testType); ok {
		return c.record("type " + tt.name)
	}
	return c.record("type")
}

func TestWalkVisitsOwnedChildrenInOrder(t *testing.T) {
	ctx := NewContext()
	scope := ctx.ModuleScope()

	binding := NewPatternBindingDecl(ctx, scope, testLoc(2, 3),
		&testPattern{loc: testLoc(2, 7)}, &testExpr{loc: testLoc(2, 13)})

	get := NewFuncDecl(ctx, scope, position.Position{}, testLoc(3, 5), NewIdentifier("get"),
		nil, &testExpr{loc: testLoc(3, 11)})
	set := NewFuncDecl(ctx, scope, position.Position{}, testLoc(4, 5), NewIdentifier("set"), nil, nil)
	sub := NewSubscriptDecl(ctx, scope, testLoc(3, 3), &testPattern{loc: testLoc(3, 13)},
		testLoc(3, 20), &testType{name: "string"}, testSpan(3, 24, 60), get, set)

	alias := NewTypeAliasDecl(ctx, scope, testLoc(5, 3), NewIdentifier("Size"), &testType{name: "int"})

	elem := NewOneOfElementDecl(ctx, scope, testLoc(6, 3), NewIdentifier("North"),
		nil, &testType{name: "int"})

	top := NewTopLevelCodeDecl(ctx, scope)
	top.SetBodyStmt(&testStmt{loc: testLoc(7, 3)})

	ext := NewExtensionDecl(ctx, scope, testLoc(1, 1), &testType{name: "Point"},
		[]Decl{binding, sub, alias, elem, top})

	v := &collectingVisitor{}
	if !Walk(ext, v) {
		t.Fatal("walk aborted unexpectedly")
	}

	want := []string{
		"extension",
		"type Point",
		"pattern binding", "pattern", "expr",
		"subscript", "pattern", "type string", "func get", "expr", "func set",
		"typealias Size", "type int",
		"oneof element North", "type int",
		"top-level code", "stmt",
	}
	if !reflect.DeepEqual(v.events, want) {
		t.Errorf("walk order:\n got %v\nwant %v", v.events, want)
	}
}

func TestWalkPropertyAccessors(t *testing.T) {
	ctx := NewContext()
	scope := ctx.ModuleScope()

	v := NewVarDecl(ctx, scope, testLoc(1, 1), NewIdentifier("area"), nil)
	get := NewFuncDecl(ctx, scope, position.Position{}, testLoc(2, 3), NewIdentifier("get"), nil, nil)
	set := NewFuncDecl(ctx, scope, position.Position{}, testLoc(3, 3), NewIdentifier("set"), nil, nil)
	v.SetProperty(testSpan(1, 10, 50), get, set)

	vis := &collectingVisitor{}
	Walk(v, vis)

	want := []string{"var area", "func get", "func set"}
	if !reflect.DeepEqual(vis.events, want) {
		t.Errorf("walk order:\n got %v\nwant %v", vis.events, want)
	}
}

func TestWalkImportHasNoOwnedChildren(t *testing.T) {
	ctx := NewContext()
	imp := NewImportDecl(ctx, ctx.ModuleScope(), testLoc(1, 1), []AccessPathElement{
		{Name: NewIdentifier("vela"), Loc: testLoc(1, 8)},
	})

	v := &collectingVisitor{}
	Walk(imp, v)
	if !reflect.DeepEqual(v.events, []string{"import vela"}) {
		t.Errorf("events = %v", v.events)
	}
}

func TestWalkAborts(t *testing.T) {
	ctx := NewContext()
	scope := ctx.ModuleScope()

	get := NewFuncDecl(ctx, scope, position.Position{}, testLoc(2, 3), NewIdentifier("get"), nil, nil)
	sub := NewSubscriptDecl(ctx, scope, testLoc(1, 1), &testPattern{loc: testLoc(1, 11)},
		testLoc(1, 20), &testType{name: "string"}, testSpan(1, 24, 40), get, nil)

	v := &collectingVisitor{stopAt: "pattern"}
	if Walk(sub, v) {
		t.Fatal("walk should report the abort")
	}

	want := []string{"subscript", "pattern"}
	if !reflect.DeepEqual(v.events, want) {
		t.Errorf("events after abort = %v, want %v", v.events, want)
	}
}

func TestWalkNilDecl(t *testing.T) {
	if !Walk(nil, &collectingVisitor{}) {
		t.Error("walking nil should be a no-op success")
	}
}

func TestWalkConcurrent(t *testing.T) {
	ctx := NewContext()
	scope := ctx.ModuleScope()

	var decls []Decl
	for i := 0; i < 64; i++ {
		decls = append(decls, NewVarDecl(ctx, scope, testLoc(i+1, 1), NewIdentifier("x"), nil))
	}

	var visited atomic.Int64
	err := WalkConcurrent(context.Background(), decls, func(d Decl) error {
		if d.Kind() != KindVar {
			t.Error("unexpected declaration kind")
		}
		visited.Add(1)
		return nil
	})
	if err != nil {
		t.Fatalf("WalkConcurrent: %v", err)
	}
	if visited.Load() != 64 {
		t.Errorf("visited %d declarations, want 64", visited.Load())
	}
}

func TestWalkConcurrentPropagatesError(t *testing.T) {
	ctx := NewContext()
	scope := ctx.ModuleScope()

	decls := []Decl{
		NewVarDecl(ctx, scope, testLoc(1, 1), NewIdentifier("a"), nil),
		NewVarDecl(ctx, scope, testLoc(2, 1), NewIdentifier("b"), nil),
	}

	boom := errors.New("boom")
	err := WalkConcurrent(context.Background(), decls, func(d Decl) error {
		if vd, _ := AsVarDecl(d); vd != nil && vd.Name().Text() == "b" {
			return boom
		}
		return nil
	})
	if !errors.Is(err, boom) {
		t.Errorf("err = %v, want %v", err, boom)
	}
}
