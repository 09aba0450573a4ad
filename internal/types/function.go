package types

import (
	"strings"

	"github.com/typecore/corelang/internal/ast"
)

// FunctionType is a function's signature: parameters, return type, fnType,
// and generic parameters. fnType distinguishes a plain function type from
// a coroutine *function* type (the coroutine's signature, not an instance
// — an instance is Coroutine, below).
type FunctionType struct {
	base
	Parameters        []FunctionParam
	ReturnType        Description
	FnType            FnKind
	GenericParameters []*ast.GenericParam
}

func (f *FunctionType) Kind() Kind { return KindFunction }
func (f *FunctionType) String() string {
	parts := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		mut := ""
		if p.IsMut {
			mut = "mut "
		}
		parts[i] = mut + p.Name + ": " + typeStringOrVoid(p.Type)
	}
	prefix := "fn"
	if f.FnType == FnCoroutine {
		prefix = "coroutine fn"
	}
	return prefix + "(" + strings.Join(parts, ", ") + ") -> " + typeStringOrVoid(f.ReturnType)
}

func typeStringOrVoid(d Description) string {
	if d == nil {
		return "void"
	}
	return d.String()
}

// NewFunction constructs a Function description.
func NewFunction(params []FunctionParam, ret Description, fnType FnKind, generics []*ast.GenericParam) *FunctionType {
	return &FunctionType{Parameters: params, ReturnType: ret, FnType: fnType, GenericParameters: generics}
}

// CoroutineType is a coroutine *instance*, always displayed as
// `coroutine<fn(...) -> Y>`. It is value-typed, not an executor.
type CoroutineType struct {
	base
	Parameters []FunctionParam
	YieldType  Description
}

func (c *CoroutineType) Kind() Kind { return KindCoroutine }
func (c *CoroutineType) String() string {
	parts := make([]string, len(c.Parameters))
	for i, p := range c.Parameters {
		parts[i] = p.Name + ": " + typeStringOrVoid(p.Type)
	}
	return "coroutine<fn(" + strings.Join(parts, ", ") + ") -> " + typeStringOrVoid(c.YieldType) + ">"
}

// NewCoroutine constructs a Coroutine instance description.
func NewCoroutine(params []FunctionParam, yieldType Description) *CoroutineType {
	return &CoroutineType{Parameters: params, YieldType: yieldType}
}
