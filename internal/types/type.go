package types

import "github.com/typecore/corelang/internal/ast"

// Description is the interface every type kind implements. Kind() is
// fixed at construction; Node() is the optional AST back-reference used
// for diagnostics; Errors() carries non-fatal shape violations attached
// during substitution without aborting inference.
type Description interface {
	Kind() Kind
	String() string
	Node() ast.Node
	Errors() []string
}

// base is embedded by every concrete description. Only the factory
// functions in this package construct it, which is what keeps kind
// immutable after construction: nothing outside this package can
// produce a Description with a mismatched Kind()/struct pairing.
type base struct {
	node ast.Node
	errs []string
}

func (b base) Node() ast.Node   { return b.node }
func (b base) Errors() []string { return b.errs }

// setNode is promoted to *T for every concrete type T that embeds base,
// which is what lets the package-level WithNode helper stamp an AST
// back-reference onto any Description without a type switch.
func (b *base) setNode(node ast.Node) { b.node = node }

// addErrors is promoted the same way setNode is; it appends non-fatal
// shape-violation messages produced during substitution.
func (b *base) addErrors(errs ...string) {
	if len(errs) == 0 {
		return
	}
	b.errs = append(append([]string{}, b.errs...), errs...)
}

// AddErrors appends non-fatal shape-violation messages to any
// Description that embeds base, via the promoted addErrors method.
func AddErrors(d Description, errs ...string) Description {
	if setter, ok := d.(interface{ addErrors(...string) }); ok {
		setter.addErrors(errs...)
	}
	return d
}

// WithNode stamps an AST back-reference onto any Description that
// embeds base, via the promoted setNode method, and returns it.
func WithNode(d Description, node ast.Node) Description {
	if setter, ok := d.(interface{ setNode(ast.Node) }); ok {
		setter.setNode(node)
	}
	return d
}

// FunctionParam is one parameter of a Function or Coroutine description.
type FunctionParam struct {
	Name  string
	Type  Description
	IsMut bool
}

// MethodDesc describes a method: names, generic parameters, parameters,
// return type, and its static/override/local flags. Names is a sequence
// because one method may bind multiple operator spellings (`+` aliases
// `cat`, `[]` aliases `at`).
type MethodDesc struct {
	Names             []string
	GenericParameters []*ast.GenericParam
	Parameters        []FunctionParam
	ReturnType        Description
	IsStatic          bool
	IsOverride        bool
	IsLocal           bool
	DeclNode          ast.Node
}

// HasName reports whether any of the method's bound spellings equals name.
func (m MethodDesc) HasName(name string) bool {
	for _, n := range m.Names {
		if n == name {
			return true
		}
	}
	return false
}

// SharesNameWith reports whether m and other share at least one bound
// operator spelling — overload-resolution name matching must check this
// set intersection, not equality of the first name.
func (m MethodDesc) SharesNameWith(other MethodDesc) bool {
	for _, n := range m.Names {
		if other.HasName(n) {
			return true
		}
	}
	return false
}

// AttributeDesc describes a class or implementation attribute.
type AttributeDesc struct {
	Name     string
	Type     Description
	IsStatic bool
	IsConst  bool
	IsLocal  bool
}

// StructFieldDesc is one field of a Struct type, or one parameter of a
// VariantConstructor: an ordered {name, type, node} triple.
type StructFieldDesc struct {
	Name string
	Type Description
	Node ast.Node
}

// VariantConstructorInfo is one arm of a Variant declaration's
// constructor list, as stored on the Variant description itself.
type VariantConstructorInfo struct {
	Name       string
	Parameters []StructFieldDesc
}

// EnumCaseDesc is one case of an Enum description, with an optional
// explicit integer value.
type EnumCaseDesc struct {
	Name  string
	Value *int64
}
