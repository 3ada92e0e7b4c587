package ast

// DeclKind identifies the concrete shape of a declaration node. The tag
// is assigned at construction and never changes; it is the single
// source of truth for a node's runtime identity. Contiguous tag ranges
// denote abstract categories, so category membership is two integer
// comparisons.
type DeclKind uint8

const (
	// KindInvalid is the zero value. A node carrying it was not built
	// through a Context and must not be used.
	KindInvalid DeclKind = iota

	KindImport
	KindExtension
	KindPatternBinding
	KindTopLevelCode
	KindSubscript

	// Named declarations. Every kind from here on carries an identifier
	// and an attribute set; keep the block contiguous.
	KindTypeAlias
	KindVar
	KindFunc
	KindOneOfElement
)

// Category ranges. Named and value declarations currently coincide:
// every named declaration is a value declaration. The value range must
// stay nested inside the named range if the two ever diverge.
const (
	firstNamedKind = KindTypeAlias
	lastNamedKind  = KindOneOfElement

	firstValueKind = KindTypeAlias
	lastValueKind  = KindOneOfElement
)

// IsNamed reports whether the kind belongs to the named-declaration
// category.
func (k DeclKind) IsNamed() bool {
	return k >= firstNamedKind && k <= lastNamedKind
}

// IsValue reports whether the kind belongs to the value-declaration
// category, a subset of the named declarations.
func (k DeclKind) IsValue() bool {
	return k >= firstValueKind && k <= lastValueKind
}

func (k DeclKind) String() string {
	switch k {
	case KindImport:
		return "import"
	case KindExtension:
		return "extension"
	case KindPatternBinding:
		return "pattern binding"
	case KindTopLevelCode:
		return "top-level code"
	case KindSubscript:
		return "subscript"
	case KindTypeAlias:
		return "typealias"
	case KindVar:
		return "var"
	case KindFunc:
		return "func"
	case KindOneOfElement:
		return "oneof element"
	default:
		return "invalid"
	}
}
