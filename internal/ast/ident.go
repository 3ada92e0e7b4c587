package ast

import "strings"

// Identifier is an interned-style wrapper around a declared name. The
// zero value is the empty identifier, used for anonymous declarations.
type Identifier struct {
	text string
}

// NewIdentifier creates an identifier for the given source text.
func NewIdentifier(text string) Identifier {
	return Identifier{text: text}
}

// Text returns the identifier's source text.
func (id Identifier) Text() string { return id.text }

// Empty reports whether the identifier carries no name.
func (id Identifier) Empty() bool { return id.text == "" }

// operatorHead is the set of characters an operator identifier may
// start with.
const operatorHead = "/=-+*%<>!&|^~."

// IsOperator reports whether the identifier names an operator rather
// than an ordinary declaration. The classification is derived from the
// identifier's own spelling and is never stored.
func (id Identifier) IsOperator() bool {
	if id.text == "" {
		return false
	}
	return strings.IndexByte(operatorHead, id.text[0]) >= 0
}

func (id Identifier) String() string { return id.text }
