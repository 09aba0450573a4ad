package types

import (
	"strings"

	"github.com/typecore/corelang/internal/ast"
)

// GenericType is an unresolved generic type parameter. Equality is by
// name alone — lexical scoping by name is part of the language's
// semantics.
type GenericType struct {
	base
	Name        string
	Constraint  Description // nil when unconstrained
	Declaration *ast.GenericParam
}

func (g *GenericType) Kind() Kind     { return KindGeneric }
func (g *GenericType) String() string { return g.Name }

// NewGeneric constructs a Generic description.
func NewGeneric(name string, constraint Description, decl *ast.GenericParam) *GenericType {
	return &GenericType{Name: name, Constraint: constraint, Declaration: decl}
}

// ReferenceType is a named alias not yet resolved to its body.
// Semantically equivalent to the full instantiation of declaration
// under declaration.genericParameters ↦ genericArgs; resolution is the
// type provider's job, not this package's — constructing a Reference
// never resolves it.
type ReferenceType struct {
	base
	Declaration ast.Declaration
	GenericArgs []Description
}

func (r *ReferenceType) Kind() Kind { return KindReference }
func (r *ReferenceType) String() string {
	name := "<unresolved>"
	if r.Declaration != nil {
		name = r.Declaration.DeclName()
	}
	if len(r.GenericArgs) == 0 {
		return name
	}
	parts := make([]string, len(r.GenericArgs))
	for i, a := range r.GenericArgs {
		parts[i] = a.String()
	}
	return name + "<" + strings.Join(parts, ", ") + ">"
}

// NewReference constructs a Reference description.
func NewReference(decl ast.Declaration, args []Description) *ReferenceType {
	return &ReferenceType{Declaration: decl, GenericArgs: args}
}

// Reference is an alias kept for call sites that pattern-match on the
// concrete pointer type; ReferenceType is the canonical name.
type Reference = ReferenceType
