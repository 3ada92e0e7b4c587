package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	semver "github.com/Masterminds/semver/v3"

	"github.com/vela-lang/vela/internal/ast"
	"github.com/vela-lang/vela/internal/position"
)

// vela-decldump builds a small demonstration declaration tree and
// prints it as an indented outline. It exists to exercise the node
// model from the command line.
// Flags:
//
//	-counts  print per-context allocation totals after the dump.
//	-target  language version; declarations introduced later are marked.
func main() {
	var (
		showCounts bool
		target     string
	)
	flag.BoolVar(&showCounts, "counts", false, "print allocation totals after the dump")
	flag.StringVar(&target, "target", "", "language version to check availability against")
	flag.Parse()

	var targetVer *semver.Version
	if target != "" {
		v, err := semver.NewVersion(target)
		if err != nil {
			fmt.Fprintln(os.Stderr, "vela-decldump: bad -target:", err)
			os.Exit(1)
		}
		targetVer = v
	}

	ctx := ast.NewContext()
	decls := buildDemoModule(ctx)

	for _, d := range decls {
		dump(os.Stdout, d, 0, targetVer)
	}

	if showCounts {
		fmt.Printf("allocated %d declaration nodes\n", ctx.AllocatedNodes())
	}
}

// dump prints d and its owned declarations, one per line, indented by
// nesting depth.
func dump(w *os.File, d ast.Decl, depth int, target *semver.Version) {
	indent := strings.Repeat("  ", depth)

	line := d.String()
	if nd, ok := ast.AsNamedDecl(d); ok && !nd.Attrs().IsAvailable(target) {
		line += " [unavailable]"
	}
	if loc := d.StartLoc(); loc.IsValid() {
		line += " @ " + loc.String()
	}
	fmt.Fprintln(w, indent+line)

	switch d.Kind() {
	case ast.KindExtension:
		e, _ := ast.AsExtensionDecl(d)
		for _, m := range e.Members() {
			dump(w, m, depth+1, target)
		}
	case ast.KindSubscript:
		s, _ := ast.AsSubscriptDecl(d)
		dump(w, s.Getter(), depth+1, target)
		if set := s.Setter(); set != nil {
			dump(w, set, depth+1, target)
		}
	case ast.KindVar:
		v, _ := ast.AsVarDecl(d)
		if v.IsProperty() {
			if get := v.Getter(); get != nil {
				dump(w, get, depth+1, target)
			}
			if set := v.Setter(); set != nil {
				dump(w, set, depth+1, target)
			}
		}
	}
}

func namedType(name string) *ast.NamedType {
	return &ast.NamedType{Name: ast.NewIdentifier(name)}
}

func loc(line, col int) position.Position {
	return position.Position{Filename: "demo.vela", Line: line, Column: col, Offset: (line-1)*80 + col - 1}
}

// buildDemoModule assembles one declaration of every kind, the way a
// parser for a small source file would.
func buildDemoModule(ctx *ast.Context) []ast.Decl {
	scope := ctx.ModuleScope()

	imp := ast.NewImportDecl(ctx, scope, loc(1, 1), []ast.AccessPathElement{
		{Name: ast.NewIdentifier("vela"), Loc: loc(1, 8)},
		{Name: ast.NewIdentifier("math"), Loc: loc(1, 13)},
	})

	alias := ast.NewTypeAliasDecl(ctx, scope, loc(3, 1), ast.NewIdentifier("Distance"), namedType("float"))

	binding := ast.NewPatternBindingDecl(ctx, scope, loc(5, 1),
		&ast.OpaquePattern{Loc: loc(5, 5)}, &ast.OpaqueExpr{Loc: loc(5, 13)})

	stride := ast.NewVarDecl(ctx, scope, loc(7, 1), ast.NewIdentifier("stride"), namedType("int"))
	strideGet := ast.NewFuncDecl(ctx, scope, position.Position{}, loc(8, 3), ast.NewIdentifier("get"), nil, &ast.OpaqueExpr{Loc: loc(8, 9)})
	strideSet := ast.NewFuncDecl(ctx, scope, position.Position{}, loc(9, 3), ast.NewIdentifier("set"), nil, &ast.OpaqueExpr{Loc: loc(9, 9)})
	stride.SetProperty(position.Span{Start: loc(7, 16), End: loc(10, 1)}, strideGet, strideSet)
	strideGet.MakeGetter(stride)
	strideSet.MakeSetter(stride)

	norm := ast.NewFuncDecl(ctx, scope, loc(12, 1), loc(12, 8), ast.NewIdentifier("norm"),
		namedType("(Point) -> float"), &ast.OpaqueExpr{Loc: loc(12, 30)})
	norm.MutableAttrs().Available = &ast.AvailableAttr{
		Loc:        loc(11, 1),
		Introduced: semver.MustParse("2.0.0"),
		Message:    "norm arrived with the 2.0 stdlib",
	}

	north := ast.NewOneOfElementDecl(ctx, scope, loc(14, 8), ast.NewIdentifier("North"),
		namedType("Direction"), nil)

	subGet := ast.NewFuncDecl(ctx, scope, position.Position{}, loc(17, 5), ast.NewIdentifier("get"), nil, &ast.OpaqueExpr{Loc: loc(17, 11)})
	sub := ast.NewSubscriptDecl(ctx, scope, loc(17, 3), &ast.OpaquePattern{Loc: loc(17, 13)},
		loc(17, 22), namedType("float"), position.Span{Start: loc(17, 30), End: loc(18, 3)}, subGet, nil)

	ext := ast.NewExtensionDecl(ctx, scope, loc(16, 1), namedType("Point"), []ast.Decl{sub})

	top := ast.NewTopLevelCodeDecl(ctx, scope)
	top.SetBodyExpr(&ast.OpaqueExpr{Loc: loc(20, 1)})

	return []ast.Decl{imp, alias, binding, stride, norm, north, ext, top}
}
