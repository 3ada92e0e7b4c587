package ast

import "github.com/vela-lang/vela/internal/arena"

// ScopeKind classifies the scope containers a declaration can be
// parented to.
type ScopeKind uint8

const (
	// ModuleScope is the root scope of a compilation unit.
	ModuleScope ScopeKind = iota
	// ExtensionScope is introduced by an extension declaration for its
	// members.
	ExtensionScope
	// TopLevelCodeScope is introduced by a top-level code declaration
	// so that its locals are distinct from module globals.
	TopLevelCodeScope
)

func (k ScopeKind) String() string {
	switch k {
	case ModuleScope:
		return "module"
	case ExtensionScope:
		return "extension"
	default:
		return "top-level code"
	}
}

// Scope is the container side of the parent relation between a
// declaration and its enclosing construct. The relation is a
// back-reference used for lookup only: a scope never owns the lifetime
// of its members (the Context's arenas do), and membership lists are
// managed by whichever component builds the nodes.
type Scope struct {
	kind   ScopeKind
	parent *Scope
	ast    *Context // set only on the module root
}

// Kind returns the scope's classification.
func (s *Scope) Kind() ScopeKind { return s.kind }

// Parent returns the enclosing scope, nil for the module root.
func (s *Scope) Parent() *Scope { return s.parent }

// ASTContext returns the compilation context this scope ultimately
// belongs to. Every scope chain terminates in a module scope created by
// a Context; a detached chain is a caller bug.
func (s *Scope) ASTContext() *Context {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.ast != nil {
			return cur.ast
		}
	}
	panic("ast: scope is not attached to an AST context")
}

// Context owns every declaration node built for one compilation unit.
//
// All nodes are allocated from the Context's typed arenas; there is no
// other way to bring one into existence, and no way to free one
// individually. The whole population is released together when the
// Context is torn down (or explicitly via Release).
type Context struct {
	root Scope

	imports     *arena.Arena[ImportDecl]
	extensions  *arena.Arena[ExtensionDecl]
	bindings    *arena.Arena[PatternBindingDecl]
	topLevel    *arena.Arena[TopLevelCodeDecl]
	subscripts  *arena.Arena[SubscriptDecl]
	typeAliases *arena.Arena[TypeAliasDecl]
	vars        *arena.Arena[VarDecl]
	funcs       *arena.Arena[FuncDecl]
	oneOfElems  *arena.Arena[OneOfElementDecl]

	// Auxiliary storage: import path buffers, extension member lists,
	// property records, and private attribute sets.
	pathElems *arena.Arena[AccessPathElement]
	members   *arena.Arena[Decl]
	getSets   *arena.Arena[GetSetRecord]
	attrs     *arena.Arena[DeclAttributes]
}

// NewContext creates an empty compilation context. Chunk sizes reflect
// the relative allocation frequency of each node kind in ordinary
// sources.
func NewContext() *Context {
	c := &Context{
		imports:     arena.New[ImportDecl](16),
		extensions:  arena.New[ExtensionDecl](16),
		bindings:    arena.New[PatternBindingDecl](128),
		topLevel:    arena.New[TopLevelCodeDecl](32),
		subscripts:  arena.New[SubscriptDecl](16),
		typeAliases: arena.New[TypeAliasDecl](32),
		vars:        arena.New[VarDecl](256),
		funcs:       arena.New[FuncDecl](256),
		oneOfElems:  arena.New[OneOfElementDecl](64),

		pathElems: arena.New[AccessPathElement](64),
		members:   arena.New[Decl](256),
		getSets:   arena.New[GetSetRecord](16),
		attrs:     arena.New[DeclAttributes](32),
	}
	c.root = Scope{kind: ModuleScope, ast: c}
	return c
}

// ModuleScope returns the root scope declarations of this compilation
// unit are parented to.
func (c *Context) ModuleScope() *Scope { return &c.root }

// AllocatedNodes reports how many declaration nodes the context has
// handed out.
func (c *Context) AllocatedNodes() int {
	return c.imports.Allocs() +
		c.extensions.Allocs() +
		c.bindings.Allocs() +
		c.topLevel.Allocs() +
		c.subscripts.Allocs() +
		c.typeAliases.Allocs() +
		c.vars.Allocs() +
		c.funcs.Allocs() +
		c.oneOfElems.Allocs()
}

// Release drops every node allocated through the context at once.
// Outstanding node pointers become invalid; there is no per-node free.
func (c *Context) Release() {
	c.imports.Reset()
	c.extensions.Reset()
	c.bindings.Reset()
	c.topLevel.Reset()
	c.subscripts.Reset()
	c.typeAliases.Reset()
	c.vars.Reset()
	c.funcs.Reset()
	c.oneOfElems.Reset()

	c.pathElems.Reset()
	c.members.Reset()
	c.getSets.Reset()
	c.attrs.Reset()
}
