package types

import "github.com/typecore/corelang/internal/ast"

// NamespaceType is the type of a namespace used as a value (e.g.
// `MyNamespace.member` access).
type NamespaceType struct {
	base
	Name        string
	Declaration ast.Declaration
}

func (n *NamespaceType) Kind() Kind     { return KindNamespace }
func (n *NamespaceType) String() string { return "namespace " + n.Name }

// NewNamespace constructs a Namespace description.
func NewNamespace(name string, decl ast.Declaration) *NamespaceType {
	return &NamespaceType{Name: name, Declaration: decl}
}

// FFIType is a foreign function interface binding.
type FFIType struct {
	base
	Name    string
	Dynlib  string
	Methods []MethodDesc
	IsLocal bool
}

func (f *FFIType) Kind() Kind     { return KindFFI }
func (f *FFIType) String() string { return "ffi " + f.Name }

// NewFFI constructs an FFI description.
func NewFFI(name, dynlib string, methods []MethodDesc, isLocal bool) *FFIType {
	return &FFIType{Name: name, Dynlib: dynlib, Methods: methods, IsLocal: isLocal}
}

// ReturnTypeType is a wrapper used by inference sites that need to
// reify "the declared return type of the enclosing function" as a
// first-class Description (e.g. validating a bare `return;` against a
// function's declared type).
type ReturnTypeType struct {
	base
	ReturnType Description
}

func (r *ReturnTypeType) Kind() Kind     { return KindReturnType }
func (r *ReturnTypeType) String() string { return "return<" + typeStringOrVoid(r.ReturnType) + ">" }

// NewReturnType constructs a ReturnType description.
func NewReturnType(ret Description) *ReturnTypeType { return &ReturnTypeType{ReturnType: ret} }

// TypeGuardType is a method return annotation of the form `x is T` that
// narrows its argument's type upon a true result.
type TypeGuardType struct {
	base
	ParameterName  string
	ParameterIndex int
	GuardedType    Description
}

func (t *TypeGuardType) Kind() Kind { return KindTypeGuard }
func (t *TypeGuardType) String() string {
	return t.ParameterName + " is " + typeStringOrVoid(t.GuardedType)
}

// NewTypeGuard constructs a TypeGuard description.
func NewTypeGuard(paramName string, paramIndex int, guarded Description) *TypeGuardType {
	return &TypeGuardType{ParameterName: paramName, ParameterIndex: paramIndex, GuardedType: guarded}
}
