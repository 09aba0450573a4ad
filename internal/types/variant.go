package types

import (
	"strings"

	"github.com/typecore/corelang/internal/ast"
)

// VariantType is an algebraic data type: a closed set of named constructors.
type VariantType struct {
	base
	Name         string
	GenericParams []*ast.GenericParam
	Constructors []VariantConstructorInfo
}

func (v *VariantType) Kind() Kind     { return KindVariant }
func (v *VariantType) String() string { return v.Name }

// NewVariant constructs a Variant description.
func NewVariant(name string, generics []*ast.GenericParam, ctors ...VariantConstructorInfo) *VariantType {
	return &VariantType{Name: name, GenericParams: generics, Constructors: ctors}
}

// Constructor looks up a constructor arm by name.
func (v *VariantType) Constructor(name string) (VariantConstructorInfo, bool) {
	for _, c := range v.Constructors {
		if c.Name == name {
			return c, true
		}
	}
	return VariantConstructorInfo{}, false
}

// VariantConstructorType is one arm of a variant, carrying the concrete
// generic arguments with which it was built. BaseVariant is always the
// resolved Variant, never a Reference.
type VariantConstructorType struct {
	base
	BaseVariant        *VariantType
	ConstructorName    string
	ParentConstructor  *VariantConstructorType // optional, for constructors that wrap another arm
	GenericArgs        []Description
	VariantDeclaration ast.Declaration // the AliasDecl/VariantDecl this was instantiated from, if any
}

func (v *VariantConstructorType) Kind() Kind { return KindVariantCtor }
func (v *VariantConstructorType) String() string {
	if len(v.GenericArgs) == 0 {
		return v.baseName() + "." + v.ConstructorName
	}
	parts := make([]string, len(v.GenericArgs))
	for i, a := range v.GenericArgs {
		parts[i] = a.String()
	}
	return v.baseName() + "<" + strings.Join(parts, ", ") + ">." + v.ConstructorName
}

func (v *VariantConstructorType) baseName() string {
	if v.BaseVariant == nil {
		return "<variant>"
	}
	return v.BaseVariant.Name
}

// NewVariantConstructor constructs a VariantConstructor description.
// baseVariant must already be the resolved Variant, never a Reference.
func NewVariantConstructor(baseVariant *VariantType, ctorName string, genericArgs []Description, decl ast.Declaration) *VariantConstructorType {
	return &VariantConstructorType{
		BaseVariant:        baseVariant,
		ConstructorName:    ctorName,
		GenericArgs:        genericArgs,
		VariantDeclaration: decl,
	}
}

// Parameters returns the constructor's parameter list after substituting
// GenericArgs through the owning variant declaration's generic
// parameters (the substitution VariantConstructor assignability
// requires). substitute is supplied by the caller to avoid an import
// cycle between types and typeutil.
func (v *VariantConstructorType) Parameters(substitute func(Description, map[string]Description) Description) []StructFieldDesc {
	info, ok := v.BaseVariant.Constructor(v.ConstructorName)
	if !ok {
		return nil
	}
	if v.VariantDeclaration == nil {
		return info.Parameters
	}
	generics := v.VariantDeclaration.GenericParams()
	if len(generics) == 0 || substitute == nil {
		return info.Parameters
	}
	sigma := make(map[string]Description, len(generics))
	for i, g := range generics {
		if i < len(v.GenericArgs) {
			sigma[g.Name] = v.GenericArgs[i]
		} else {
			sigma[g.Name] = Never
		}
	}
	out := make([]StructFieldDesc, len(info.Parameters))
	for i, p := range info.Parameters {
		out[i] = StructFieldDesc{Name: p.Name, Type: substitute(p.Type, sigma), Node: p.Node}
	}
	return out
}
