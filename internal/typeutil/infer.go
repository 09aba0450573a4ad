package typeutil

import "github.com/typecore/corelang/internal/types"

// InferGenerics infers a substitution for genericNames by structurally
// unifying paramTypes against argTypes pairwise. Unfilled slots default
// to Never (the bottom type), so a later argument touching the same
// generic parameter can still refine it — callers unify left to right
// and must not treat a Never result as a concrete answer.
func (c *Checker) InferGenerics(genericNames []string, paramTypes, argTypes []types.Description) map[string]types.Description {
	names := make(map[string]bool, len(genericNames))
	for _, n := range genericNames {
		names[n] = true
	}
	sigma := make(map[string]types.Description, len(genericNames))
	n := len(paramTypes)
	if len(argTypes) < n {
		n = len(argTypes)
	}
	for i := 0; i < n; i++ {
		c.unify(paramTypes[i], argTypes[i], names, sigma)
	}
	for _, name := range genericNames {
		if _, ok := sigma[name]; !ok {
			sigma[name] = types.Never
		}
	}
	return sigma
}

// unify structurally matches param (possibly containing generics named
// in names) against the concrete arg, recording bindings into sigma. A
// VariantConstructor argument is first lifted to Reference(baseDecl,
// genericArgs) before unification, since a constructor value's static
// type at a call site is always its owning variant.
func (c *Checker) unify(param, arg types.Description, names map[string]bool, sigma map[string]types.Description) {
	if param == nil || arg == nil {
		return
	}
	if ctor, ok := arg.(*types.VariantConstructorType); ok && ctor.VariantDeclaration != nil {
		arg = types.NewReference(ctor.VariantDeclaration, ctor.GenericArgs)
	}

	switch p := param.(type) {
	case *types.GenericType:
		if !names[p.Name] {
			return
		}
		if existing, ok := sigma[p.Name]; ok {
			if existing.Kind() == types.KindNever {
				sigma[p.Name] = arg
			}
			return
		}
		sigma[p.Name] = arg

	case *types.ArrayType:
		if a, ok := arg.(*types.ArrayType); ok {
			c.unify(p.Element, a.Element, names, sigma)
		}

	case *types.NullableType:
		if a, ok := arg.(*types.NullableType); ok {
			c.unify(p.BaseType, a.BaseType, names, sigma)
		} else {
			c.unify(p.BaseType, arg, names, sigma)
		}

	case *types.TupleType:
		if a, ok := arg.(*types.TupleType); ok && len(a.Elements) == len(p.Elements) {
			for i := range p.Elements {
				c.unify(p.Elements[i], a.Elements[i], names, sigma)
			}
		}

	case *types.FunctionType:
		a, ok := arg.(*types.FunctionType)
		if !ok || len(a.Parameters) != len(p.Parameters) {
			return
		}
		for i := range p.Parameters {
			c.unify(p.Parameters[i].Type, a.Parameters[i].Type, names, sigma)
		}
		c.unify(p.ReturnType, a.ReturnType, names, sigma)

	case *types.ReferenceType:
		a, ok := arg.(*types.ReferenceType)
		if !ok || a.Declaration != p.Declaration || len(a.GenericArgs) != len(p.GenericArgs) {
			return
		}
		for i := range p.GenericArgs {
			c.unify(p.GenericArgs[i], a.GenericArgs[i], names, sigma)
		}

	case *types.StructType:
		a, ok := arg.(*types.StructType)
		if !ok {
			return
		}
		for _, f := range p.Fields {
			if af, ok := a.Field(f.Name); ok {
				c.unify(f.Type, af.Type, names, sigma)
			}
		}
	}
}
