// Package ast defines the declaration nodes of the Vela compiler front
// end: the closed set of node kinds representing source-level
// declarations, their shared base behaviour, and the arena-allocation
// discipline that makes them cheap to build during parsing and safe to
// query during later passes.
//
// Nodes are created exactly once, by the parser, through the New*Decl
// constructors of a Context. Later passes traverse the tree and mutate
// only the fields documented as mutable: lazily-resolved types follow a
// set-once contract with an explicit overwrite escape for error
// recovery, while usage flags, initializers, bodies, and accessor
// linkage are freely writable by the pass that owns them. Structural
// identity is fixed at construction; nodes are never moved, and the
// whole population is released in bulk with the owning Context.
//
// Construction and mutation are single-threaded. Concurrent reads are
// safe only after every mutating pass has completed and published its
// results; the package contains no interior locking.
package ast

import (
	"fmt"
	"strings"

	"github.com/vela-lang/vela/internal/position"
)

// Decl is implemented by all declaration nodes. The kind tag returned
// by Kind is the sole mechanism for dynamic type tests; see the As*
// helpers.
type Decl interface {
	// Kind returns the node's immutable kind tag.
	Kind() DeclKind
	// OwningScope returns the scope the declaration is parented to.
	// The relation is a non-owning back-reference.
	OwningScope() *Scope
	// SetOwningScope re-parents the declaration. Legal at any time
	// (desugaring moves nodes); it does not touch any membership list.
	SetOwningScope(*Scope)
	// ASTContext returns the compilation context the node lives in.
	ASTContext() *Context
	// StartLoc returns the source position reported as the node's
	// beginning, normally its leading keyword.
	StartLoc() position.Position

	String() string

	declNode()
}

// NamedDecl is the refinement implemented by declarations that carry an
// identifier and an attribute set.
type NamedDecl interface {
	Decl
	Name() Identifier
	IsOperator() bool
	Attrs() *DeclAttributes
	MutableAttrs() *DeclAttributes
}

// ValueDecl is the refinement implemented by named declarations that
// are values in the language and therefore carry a lazily-resolved
// type.
type ValueDecl interface {
	NamedDecl
	HasType() bool
	Type() Type
	SetType(Type)
	OverwriteType(Type)
	TypeOfReference() Type
	IsReferencedAsLValue() bool
	NeverUsedAsLValue() bool
	SetNeverUsedAsLValue(bool)
	HasFixedLifetime() bool
	SetHasFixedLifetime(bool)
}

// declBase carries the state common to every declaration. It is
// unexported so that nodes cannot be constructed outside this package:
// the Context constructors are the only way in, which is what makes the
// arena-only lifetime a compile-time guarantee.
type declBase struct {
	kind DeclKind
	dc   *Scope
}

func (d *declBase) Kind() DeclKind { return d.kind }

func (d *declBase) OwningScope() *Scope { return d.dc }

func (d *declBase) SetOwningScope(s *Scope) { d.dc = s }

func (d *declBase) ASTContext() *Context {
	if d.dc == nil {
		panic("ast: declaration has no assigned scope")
	}
	return d.dc.ASTContext()
}

func (d *declBase) declNode() {}

func requireScope(dc *Scope) *Scope {
	if dc == nil {
		panic("ast: declaration requires an enclosing scope")
	}
	return dc
}

// namedDecl adds an identifier and an attribute set.
type namedDecl struct {
	declBase
	name  Identifier
	attrs *DeclAttributes
}

func (d *namedDecl) Name() Identifier { return d.name }

// IsOperator reports whether the declared name is an operator. The
// answer is derived from the identifier's spelling.
func (d *namedDecl) IsOperator() bool { return d.name.IsOperator() }

// Attrs returns the declaration's attributes for reading. Declarations
// that never acquired attributes share one immutable empty set, so the
// result must never be written through.
func (d *namedDecl) Attrs() *DeclAttributes { return d.attrs }

// MutableAttrs returns the declaration's private attribute set,
// detaching it from the shared empty instance on first call.
func (d *namedDecl) MutableAttrs() *DeclAttributes {
	if d.attrs == &emptyAttrs {
		d.attrs = d.ASTContext().attrs.Alloc()
	}
	return d.attrs
}

// Usage flags of a value declaration, packed into one byte.
const (
	// neverUsedAsLValue: the value is never used in a context that
	// could modify it.
	neverUsedAsLValue uint8 = 1 << iota
	// hasFixedLifetime: the value's lifetime matches its scope (it is
	// not captured), so it can live in the frame.
	hasFixedLifetime
)

// valueDecl adds the lazily-resolved type and the usage flags.
type valueDecl struct {
	namedDecl
	ty    Type
	flags uint8
}

// HasType reports whether the type has been resolved yet.
func (d *valueDecl) HasType() bool { return d.ty != nil }

// Type returns the resolved type. Querying before resolution is a
// caller bug.
func (d *valueDecl) Type() Type {
	if d.ty == nil {
		panic("ast: declaration has no type set yet")
	}
	return d.ty
}

// SetType resolves the declaration's type for the first time. The slot
// is set-once: a second call without an intervening OverwriteType is a
// caller bug.
func (d *valueDecl) SetType(t Type) {
	if d.ty != nil {
		panic("ast: changing type of declaration")
	}
	d.ty = t
}

// OverwriteType replaces the type unconditionally. This is the error
// recovery escape (typically substituting ErrorType); consumers must
// treat derivations cached from the previous type as stale.
func (d *valueDecl) OverwriteType(t Type) { d.ty = t }

// IsReferencedAsLValue reports whether references to this declaration
// are l-values. Decided purely by the kind tag.
func (d *valueDecl) IsReferencedAsLValue() bool { return d.kind == KindVar }

// TypeOfReference returns the type that arises from a normal reference
// to the declaration: the l-value flavour for var declarations, the
// plain type for everything else.
func (d *valueDecl) TypeOfReference() Type {
	if d.IsReferencedAsLValue() {
		return &LValueType{Object: d.Type()}
	}
	return d.Type()
}

func (d *valueDecl) NeverUsedAsLValue() bool { return d.flags&neverUsedAsLValue != 0 }

func (d *valueDecl) SetNeverUsedAsLValue(flag bool) { d.setFlag(neverUsedAsLValue, flag) }

func (d *valueDecl) HasFixedLifetime() bool { return d.flags&hasFixedLifetime != 0 }

func (d *valueDecl) SetHasFixedLifetime(flag bool) { d.setFlag(hasFixedLifetime, flag) }

func (d *valueDecl) setFlag(bit uint8, flag bool) {
	if flag {
		d.flags |= bit
	} else {
		d.flags &^= bit
	}
}

// ===== Import =====

// AccessPathElement is one dotted component of an import path.
type AccessPathElement struct {
	Name Identifier
	Loc  position.Position
}

// ImportDecl represents a single import declaration, e.g.
//
//	import vela
//	import vela.int
//
// The access path is fixed at construction: the constructor copies it
// into one contiguous arena allocation sized from the path length, and
// no element is ever added or removed afterwards.
type ImportDecl struct {
	declBase
	importLoc position.Position
	path      []AccessPathElement
}

// NewImportDecl creates an import declaration with the given access
// path.
func NewImportDecl(ctx *Context, dc *Scope, importLoc position.Position, path []AccessPathElement) *ImportDecl {
	d := ctx.imports.Alloc()
	d.kind = KindImport
	d.dc = requireScope(dc)
	d.importLoc = importLoc

	buf := ctx.pathElems.AllocSlice(len(path))
	copy(buf, path)
	d.path = buf
	return d
}

// ImportLoc returns the location of the 'import' keyword.
func (d *ImportDecl) ImportLoc() position.Position { return d.importLoc }

func (d *ImportDecl) StartLoc() position.Position { return d.importLoc }

// NumPathElements returns the number of access path components.
func (d *ImportDecl) NumPathElements() int { return len(d.path) }

// AccessPath returns the ordered access path. The result is a view of
// the node's own storage and must not be mutated.
func (d *ImportDecl) AccessPath() []AccessPathElement { return d.path }

func (d *ImportDecl) String() string {
	parts := make([]string, len(d.path))
	for i, e := range d.path {
		parts[i] = e.Name.Text()
	}
	return "import " + strings.Join(parts, ".")
}

// ===== Extension =====

// ExtensionDecl represents a type extension containing members
// associated with the extended type. It is not a value declaration:
// there are no runtime values of an extension's type. An extension
// doubles as the scope its members are parented to.
type ExtensionDecl struct {
	declBase
	scope        Scope
	extensionLoc position.Position
	extendedTy   Type
	members      []Decl
}

// NewExtensionDecl creates an extension of the given type with a fixed
// member list. The list is copied into arena storage and is immutable
// afterwards.
func NewExtensionDecl(ctx *Context, dc *Scope, extensionLoc position.Position, extended Type, members []Decl) *ExtensionDecl {
	d := ctx.extensions.Alloc()
	d.kind = KindExtension
	d.dc = requireScope(dc)
	d.scope = Scope{kind: ExtensionScope, parent: dc}
	d.extensionLoc = extensionLoc
	d.extendedTy = extended

	buf := ctx.members.AllocSlice(len(members))
	copy(buf, members)
	d.members = buf
	return d
}

// ExtensionLoc returns the location of the 'extension' keyword.
func (d *ExtensionDecl) ExtensionLoc() position.Position { return d.extensionLoc }

func (d *ExtensionDecl) StartLoc() position.Position { return d.extensionLoc }

// ExtendedType returns the type being extended.
func (d *ExtensionDecl) ExtendedType() Type { return d.extendedTy }

// Members returns the extension's member declarations. The list is
// immutable after construction.
func (d *ExtensionDecl) Members() []Decl { return d.members }

// Scope returns the scope the extension introduces for its members.
func (d *ExtensionDecl) Scope() *Scope { return &d.scope }

func (d *ExtensionDecl) String() string {
	return fmt.Sprintf("extension (%d members)", len(d.members))
}

// ===== PatternBinding =====

// PatternBindingDecl contains a pattern and an optional initializer for
// a set of one or more variables declared together, e.g. the pattern
// "(a, b)" and the initializer "f()" in "var (a, b) = f()".
type PatternBindingDecl struct {
	declBase
	varLoc position.Position
	pat    Pattern
	init   Expr
}

// NewPatternBindingDecl creates a pattern binding. The initializer may
// be nil for uninitialized bindings.
func NewPatternBindingDecl(ctx *Context, dc *Scope, varLoc position.Position, pat Pattern, init Expr) *PatternBindingDecl {
	d := ctx.bindings.Alloc()
	d.kind = KindPatternBinding
	d.dc = requireScope(dc)
	d.varLoc = varLoc
	d.pat = pat
	d.init = init
	return d
}

// VarLoc returns the location of the 'var' keyword.
func (d *PatternBindingDecl) VarLoc() position.Position { return d.varLoc }

func (d *PatternBindingDecl) StartLoc() position.Position { return d.varLoc }

// Pattern returns the pattern this declaration binds.
func (d *PatternBindingDecl) Pattern() Pattern { return d.pat }

// Init returns the initializer expression, nil if absent.
func (d *PatternBindingDecl) Init() Expr { return d.init }

// SetInit replaces the initializer. This is the only field of a
// pattern binding that later passes may write.
func (d *PatternBindingDecl) SetInit(e Expr) { d.init = e }

func (d *PatternBindingDecl) String() string { return "pattern binding" }

// ===== TopLevelCode =====

// TopLevelCodeDecl is a container for a top-level expression or
// statement in the main module. It exists to give top-level code a
// scope distinct from the module itself, which keeps top-level locals
// apart from globals. The body holds exactly one of an expression or a
// statement; once an alternative is inhabited the body may be replaced
// within that alternative but never switched to the other.
type TopLevelCodeDecl struct {
	declBase
	scope    Scope
	bodyExpr Expr
	bodyStmt Stmt
}

// NewTopLevelCodeDecl creates an empty top-level code container; the
// parser fills in the body once it has built it.
func NewTopLevelCodeDecl(ctx *Context, dc *Scope) *TopLevelCodeDecl {
	d := ctx.topLevel.Alloc()
	d.kind = KindTopLevelCode
	d.dc = requireScope(dc)
	d.scope = Scope{kind: TopLevelCodeScope, parent: dc}
	return d
}

// Scope returns the scope the container introduces for its body.
func (d *TopLevelCodeDecl) Scope() *Scope { return &d.scope }

// HasBody reports whether either alternative is inhabited.
func (d *TopLevelCodeDecl) HasBody() bool { return d.bodyExpr != nil || d.bodyStmt != nil }

// BodyExpr returns the expression body, nil if the body is empty or
// holds a statement.
func (d *TopLevelCodeDecl) BodyExpr() Expr { return d.bodyExpr }

// BodyStmt returns the statement body, nil if the body is empty or
// holds an expression.
func (d *TopLevelCodeDecl) BodyStmt() Stmt { return d.bodyStmt }

// SetBodyExpr installs or replaces an expression body. Switching an
// inhabited statement body to an expression is a caller bug.
func (d *TopLevelCodeDecl) SetBodyExpr(e Expr) {
	if d.bodyStmt != nil {
		panic("ast: top-level code body cannot switch from statement to expression")
	}
	d.bodyExpr = e
}

// SetBodyStmt installs or replaces a statement body. Switching an
// inhabited expression body to a statement is a caller bug.
func (d *TopLevelCodeDecl) SetBodyStmt(s Stmt) {
	if d.bodyExpr != nil {
		panic("ast: top-level code body cannot switch from expression to statement")
	}
	d.bodyStmt = s
}

func (d *TopLevelCodeDecl) StartLoc() position.Position {
	switch {
	case d.bodyExpr != nil:
		return d.bodyExpr.StartLoc()
	case d.bodyStmt != nil:
		return d.bodyStmt.StartLoc()
	default:
		return position.Position{}
	}
}

func (d *TopLevelCodeDecl) String() string { return "top-level code" }

// ===== Subscript =====

// SubscriptDecl declares a subscript operator for a type: a get/set
// pair over an index pattern producing an element type, e.g.
//
//	subscript(i int) -> string { get { ... } set { ... } }
//
// The getter is always present; the setter is optional.
type SubscriptDecl struct {
	declBase
	subscriptLoc position.Position
	arrowLoc     position.Position
	indices      Pattern
	elementTy    Type
	braces       position.Span
	getter       *FuncDecl
	setter       *FuncDecl
}

// NewSubscriptDecl creates a subscript declaration. A nil getter is a
// caller bug; the setter may be nil.
func NewSubscriptDecl(ctx *Context, dc *Scope, subscriptLoc position.Position, indices Pattern,
	arrowLoc position.Position, elementTy Type, braces position.Span, get, set *FuncDecl,
) *SubscriptDecl {
	if get == nil {
		panic("ast: subscript requires a getter")
	}
	d := ctx.subscripts.Alloc()
	d.kind = KindSubscript
	d.dc = requireScope(dc)
	d.subscriptLoc = subscriptLoc
	d.arrowLoc = arrowLoc
	d.indices = indices
	d.elementTy = elementTy
	d.braces = braces
	d.getter = get
	d.setter = set
	return d
}

// SubscriptLoc returns the location of the 'subscript' keyword.
func (d *SubscriptDecl) SubscriptLoc() position.Position { return d.subscriptLoc }

func (d *SubscriptDecl) StartLoc() position.Position { return d.subscriptLoc }

// ArrowLoc returns the location of the '->' token.
func (d *SubscriptDecl) ArrowLoc() position.Position { return d.arrowLoc }

// Indices returns the index pattern of the subscript operation.
func (d *SubscriptDecl) Indices() Pattern { return d.indices }

// ElementType returns the type of the element referenced by a
// subscript operation.
func (d *SubscriptDecl) ElementType() Type { return d.elementTy }

// Braces returns the source range of the accessor block's braces.
func (d *SubscriptDecl) Braces() position.Span { return d.braces }

// Getter returns the function that takes the indices and produces a
// value of the element type. Always present.
func (d *SubscriptDecl) Getter() *FuncDecl { return d.getter }

// Setter returns the function that takes the indices and a new element
// value and updates the corresponding value. Nil if the subscript is
// read-only.
func (d *SubscriptDecl) Setter() *FuncDecl { return d.setter }

func (d *SubscriptDecl) String() string { return "subscript" }

// ===== TypeAlias =====

// TypeAliasDecl declares a name for another type:
//
//	typealias Size = int
//
// The underlying type follows the same set-once/overwrite contract as
// the value layer's type, in a second, independent slot: name binding
// resolves it once, and recovery passes may overwrite it (typically
// with ErrorType).
type TypeAliasDecl struct {
	valueDecl
	typeAliasLoc position.Position
	underlying   Type
}

// NewTypeAliasDecl creates a typealias declaration. The underlying type
// may be nil when the alias refers to a name not yet resolved.
func NewTypeAliasDecl(ctx *Context, dc *Scope, typeAliasLoc position.Position, name Identifier, underlying Type) *TypeAliasDecl {
	d := ctx.typeAliases.Alloc()
	d.kind = KindTypeAlias
	d.dc = requireScope(dc)
	d.name = name
	d.attrs = &emptyAttrs
	d.underlying = underlying
	d.typeAliasLoc = typeAliasLoc
	return d
}

// TypeAliasLoc returns the location of the 'typealias' keyword.
func (d *TypeAliasDecl) TypeAliasLoc() position.Position { return d.typeAliasLoc }

// SetTypeAliasLoc updates the keyword location; used when an implicit
// alias is later written back into source order.
func (d *TypeAliasDecl) SetTypeAliasLoc(loc position.Position) { d.typeAliasLoc = loc }

func (d *TypeAliasDecl) StartLoc() position.Position { return d.typeAliasLoc }

// HasUnderlyingType reports whether the underlying type has been set.
func (d *TypeAliasDecl) HasUnderlyingType() bool { return d.underlying != nil }

// UnderlyingType returns the underlying type, which is assumed to have
// been set.
func (d *TypeAliasDecl) UnderlyingType() Type {
	if d.underlying == nil {
		panic("ast: getting invalid underlying type")
	}
	return d.underlying
}

// SetUnderlyingType sets the underlying type when name binding resolves
// the alias. The slot is set-once.
func (d *TypeAliasDecl) SetUnderlyingType(t Type) {
	if d.underlying != nil {
		panic("ast: changing underlying type of typealias")
	}
	d.underlying = t
}

// OverwriteUnderlyingType replaces the underlying type unconditionally;
// the error recovery escape for this slot.
func (d *TypeAliasDecl) OverwriteUnderlyingType(t Type) { d.underlying = t }

func (d *TypeAliasDecl) String() string {
	return fmt.Sprintf("typealias %s", d.name.Text())
}

// ===== Var =====

// GetSetRecord carries the accessor block of a computed property: the
// brace range and the user-defined getter and setter.
type GetSetRecord struct {
	Braces position.Span
	Get    *FuncDecl // User-defined getter
	Set    *FuncDecl // User-defined setter
}

// VarDecl is a 'var' declaration. A variable starts out as plain
// storage; installing a property record turns it into a computed
// property with no storage of its own. The promotion is one-way.
type VarDecl struct {
	valueDecl
	varLoc position.Position
	getSet *GetSetRecord
}

// NewVarDecl creates a variable declaration. The type may be nil until
// resolution.
func NewVarDecl(ctx *Context, dc *Scope, varLoc position.Position, name Identifier, ty Type) *VarDecl {
	d := ctx.vars.Alloc()
	d.kind = KindVar
	d.dc = requireScope(dc)
	d.name = name
	d.attrs = &emptyAttrs
	d.ty = ty
	d.varLoc = varLoc
	return d
}

// VarLoc returns the location of the 'var' keyword.
func (d *VarDecl) VarLoc() position.Position { return d.varLoc }

func (d *VarDecl) StartLoc() position.Position { return d.varLoc }

// IsProperty reports whether this variable is a computed property,
// which has no storage but does have a user-defined getter or setter.
func (d *VarDecl) IsProperty() bool { return d.getSet != nil }

// SetProperty makes this variable into a property with the given
// accessor brace range, getter, and setter. A variable is promoted at
// most once and never reverts.
func (d *VarDecl) SetProperty(braces position.Span, get, set *FuncDecl) {
	if d.getSet != nil {
		panic("ast: variable is already a property")
	}
	rec := d.ASTContext().getSets.Alloc()
	rec.Braces = braces
	rec.Get = get
	rec.Set = set
	d.getSet = rec
}

// Getter returns the getter used to access the value of this variable,
// nil unless it is a property with a getter.
func (d *VarDecl) Getter() *FuncDecl {
	if d.getSet == nil {
		return nil
	}
	return d.getSet.Get
}

// Setter returns the setter used to mutate the value of this variable,
// nil unless it is a property with a setter.
func (d *VarDecl) Setter() *FuncDecl {
	if d.getSet == nil {
		return nil
	}
	return d.getSet.Set
}

// AccessorBraces returns the brace range of the property's accessor
// block; the zero span if the variable is not a property.
func (d *VarDecl) AccessorBraces() position.Span {
	if d.getSet == nil {
		return position.Span{}
	}
	return d.getSet.Braces
}

func (d *VarDecl) String() string {
	return fmt.Sprintf("var %s", d.name.Text())
}

// ===== Func =====

// accessorRole discriminates the single accessor-linkage slot of a
// function: a function may be the getter for one declaration or the
// setter for one declaration, never both at once, and never a role
// without a target.
type accessorRole uint8

const (
	accessorNone accessorRole = iota
	accessorGetter
	accessorSetter
)

// FuncDecl is a 'func' declaration.
type FuncDecl struct {
	valueDecl
	staticLoc position.Position // Location of 'static', invalid if absent
	funcLoc   position.Position // Location of 'func'
	body      Expr

	accessorOf Decl
	role       accessorRole
}

// NewFuncDecl creates a function declaration. An invalid staticLoc
// means the function is not static; the type may be nil until
// resolution.
func NewFuncDecl(ctx *Context, dc *Scope, staticLoc, funcLoc position.Position, name Identifier, ty Type, body Expr) *FuncDecl {
	d := ctx.funcs.Alloc()
	d.kind = KindFunc
	d.dc = requireScope(dc)
	d.name = name
	d.attrs = &emptyAttrs
	d.ty = ty
	d.staticLoc = staticLoc
	d.funcLoc = funcLoc
	d.body = body
	return d
}

// IsStatic reports whether the function was declared 'static'.
func (d *FuncDecl) IsStatic() bool { return d.staticLoc.IsValid() }

// StaticLoc returns the location of the 'static' keyword, invalid if
// the function is not static.
func (d *FuncDecl) StaticLoc() position.Position { return d.staticLoc }

// FuncLoc returns the location of the 'func' keyword.
func (d *FuncDecl) FuncLoc() position.Position { return d.funcLoc }

func (d *FuncDecl) StartLoc() position.Position {
	if d.staticLoc.IsValid() {
		return d.staticLoc
	}
	return d.funcLoc
}

// Body returns the function's body expression.
func (d *FuncDecl) Body() Expr { return d.body }

// SetBody replaces the function's body.
func (d *FuncDecl) SetBody(body Expr) { d.body = body }

// MakeGetter notes that this function is the getter for the given
// declaration, which may be a variable or a subscript declaration.
// Any previous setter linkage is displaced.
func (d *FuncDecl) MakeGetter(target Decl) {
	if target == nil {
		panic("ast: accessor linkage requires a target declaration")
	}
	d.accessorOf = target
	d.role = accessorGetter
}

// MakeSetter notes that this function is the setter for the given
// declaration, which may be a variable or a subscript declaration.
// Any previous getter linkage is displaced.
func (d *FuncDecl) MakeSetter(target Decl) {
	if target == nil {
		panic("ast: accessor linkage requires a target declaration")
	}
	d.accessorOf = target
	d.role = accessorSetter
}

// GetterDecl returns the declaration this function is the getter for,
// nil if it is not a getter.
func (d *FuncDecl) GetterDecl() Decl {
	if d.role != accessorGetter {
		return nil
	}
	return d.accessorOf
}

// SetterDecl returns the declaration this function is the setter for,
// nil if it is not a setter.
func (d *FuncDecl) SetterDecl() Decl {
	if d.role != accessorSetter {
		return nil
	}
	return d.accessorOf
}

// IsAccessor reports whether the function serves as a getter or setter
// for another declaration.
func (d *FuncDecl) IsAccessor() bool { return d.role != accessorNone }

func (d *FuncDecl) String() string {
	if d.IsStatic() {
		return fmt.Sprintf("static func %s", d.name.Text())
	}
	return fmt.Sprintf("func %s", d.name.Text())
}

// ===== OneOfElement =====

// OneOfElementDecl represents an element of a 'oneof' declaration, e.g.
// X and Y in:
//
//	oneof d { X : int, Y : int, Z }
//
// The argument type is the payload carried by the element ('int' for X
// and Y above); it is nil for unit-like elements such as Z, and it is
// immutable after construction.
type OneOfElementDecl struct {
	valueDecl
	identifierLoc position.Position
	argumentTy    Type
}

// NewOneOfElementDecl creates a oneof element. ty is the element's own
// type (normally unset until the containing oneof is resolved);
// argument is the optional payload type.
func NewOneOfElementDecl(ctx *Context, dc *Scope, identifierLoc position.Position, name Identifier, ty, argument Type) *OneOfElementDecl {
	d := ctx.oneOfElems.Alloc()
	d.kind = KindOneOfElement
	d.dc = requireScope(dc)
	d.name = name
	d.attrs = &emptyAttrs
	d.ty = ty
	d.identifierLoc = identifierLoc
	d.argumentTy = argument
	return d
}

// IdentifierLoc returns the location of the element's name.
func (d *OneOfElementDecl) IdentifierLoc() position.Position { return d.identifierLoc }

func (d *OneOfElementDecl) StartLoc() position.Position { return d.identifierLoc }

// HasArgumentType reports whether the element carries a payload type.
func (d *OneOfElementDecl) HasArgumentType() bool { return d.argumentTy != nil }

// ArgumentType returns the payload type, nil for unit-like elements.
func (d *OneOfElementDecl) ArgumentType() Type { return d.argumentTy }

func (d *OneOfElementDecl) String() string {
	return fmt.Sprintf("oneof element %s", d.name.Text())
}

// ===== Dynamic type tests =====

// The As* helpers are the downcasting mechanism: each compares the
// node's kind tag (equality for concrete kinds, range containment for
// categories) and hands back the concrete view. A failed test is an
// ordinary "no value" result, not an error.

// AsNamedDecl returns the named-declaration view of d if its kind lies
// in the named range.
func AsNamedDecl(d Decl) (NamedDecl, bool) {
	if d == nil || !d.Kind().IsNamed() {
		return nil, false
	}
	return d.(NamedDecl), true
}

// AsValueDecl returns the value-declaration view of d if its kind lies
// in the value range.
func AsValueDecl(d Decl) (ValueDecl, bool) {
	if d == nil || !d.Kind().IsValue() {
		return nil, false
	}
	return d.(ValueDecl), true
}

// AsImportDecl returns d as an *ImportDecl if its kind matches.
func AsImportDecl(d Decl) (*ImportDecl, bool) {
	if d == nil || d.Kind() != KindImport {
		return nil, false
	}
	return d.(*ImportDecl), true
}

// AsExtensionDecl returns d as an *ExtensionDecl if its kind matches.
func AsExtensionDecl(d Decl) (*ExtensionDecl, bool) {
	if d == nil || d.Kind() != KindExtension {
		return nil, false
	}
	return d.(*ExtensionDecl), true
}

// AsPatternBindingDecl returns d as a *PatternBindingDecl if its kind
// matches.
func AsPatternBindingDecl(d Decl) (*PatternBindingDecl, bool) {
	if d == nil || d.Kind() != KindPatternBinding {
		return nil, false
	}
	return d.(*PatternBindingDecl), true
}

// AsTopLevelCodeDecl returns d as a *TopLevelCodeDecl if its kind
// matches.
func AsTopLevelCodeDecl(d Decl) (*TopLevelCodeDecl, bool) {
	if d == nil || d.Kind() != KindTopLevelCode {
		return nil, false
	}
	return d.(*TopLevelCodeDecl), true
}

// AsSubscriptDecl returns d as a *SubscriptDecl if its kind matches.
func AsSubscriptDecl(d Decl) (*SubscriptDecl, bool) {
	if d == nil || d.Kind() != KindSubscript {
		return nil, false
	}
	return d.(*SubscriptDecl), true
}

// AsTypeAliasDecl returns d as a *TypeAliasDecl if its kind matches.
func AsTypeAliasDecl(d Decl) (*TypeAliasDecl, bool) {
	if d == nil || d.Kind() != KindTypeAlias {
		return nil, false
	}
	return d.(*TypeAliasDecl), true
}

// AsVarDecl returns d as a *VarDecl if its kind matches.
func AsVarDecl(d Decl) (*VarDecl, bool) {
	if d == nil || d.Kind() != KindVar {
		return nil, false
	}
	return d.(*VarDecl), true
}

// AsFuncDecl returns d as a *FuncDecl if its kind matches.
func AsFuncDecl(d Decl) (*FuncDecl, bool) {
	if d == nil || d.Kind() != KindFunc {
		return nil, false
	}
	return d.(*FuncDecl), true
}

// AsOneOfElementDecl returns d as a *OneOfElementDecl if its kind
// matches.
func AsOneOfElementDecl(d Decl) (*OneOfElementDecl, bool) {
	if d == nil || d.Kind() != KindOneOfElement {
		return nil, false
	}
	return d.(*OneOfElementDecl), true
}
