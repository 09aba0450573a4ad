package typeutil

import (
	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/types"
)

// Substitute replaces every Generic named in sigma with its bound type,
// recursing through composite and nominal structures and rebuilding
// them. Descriptions with no generic inside are returned unchanged.
func (c *Checker) Substitute(t types.Description, sigma map[string]types.Description) types.Description {
	if t == nil || len(sigma) == 0 {
		return t
	}
	switch v := t.(type) {
	case *types.GenericType:
		bound, ok := sigma[v.Name]
		if !ok {
			return v
		}
		return checkSubstitutedNullable(bound, v.Name)

	case *types.ArrayType:
		return types.NewArray(c.Substitute(v.Element, sigma))

	case *types.NullableType:
		substituted := c.Substitute(v.BaseType, sigma)
		if _, doubled := substituted.(*types.NullableType); doubled {
			return types.NewError("substitution produced a nullable of nullable type", v, v.Node())
		}
		// NewNullable itself flags a resulting Nullable(basic).
		return types.NewNullable(substituted)

	case *types.UnionType:
		return types.NewUnion(c.substituteAll(v.Members, sigma)...)

	case *types.JoinType:
		return types.NewJoin(c.substituteAll(v.Members, sigma)...)

	case *types.TupleType:
		return types.NewTuple(c.substituteAll(v.Elements, sigma)...)

	case *types.StructType:
		fields := make([]types.StructFieldDesc, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = types.StructFieldDesc{Name: f.Name, Type: c.Substitute(f.Type, sigma), Node: f.Node}
		}
		return types.NewStruct(v.IsAnonymous, fields...)

	case *types.FunctionType:
		return types.NewFunction(c.substituteParams(v.Parameters, sigma), c.Substitute(v.ReturnType, sigma), v.FnType, remainingGenerics(v.GenericParameters, sigma))

	case *types.CoroutineType:
		return types.NewCoroutine(c.substituteParams(v.Parameters, sigma), c.Substitute(v.YieldType, sigma))

	case *types.InterfaceType:
		methods := make([]types.MethodDesc, len(v.Methods))
		for i, m := range v.Methods {
			methods[i] = c.substituteMethod(m, sigma)
		}
		return types.NewInterface(v.Name, methods, c.substituteAll(v.SuperTypes, sigma))

	case *types.ClassType:
		attrs := make([]types.AttributeDesc, len(v.Attributes))
		for i, a := range v.Attributes {
			attrs[i] = types.AttributeDesc{Name: a.Name, Type: c.Substitute(a.Type, sigma), IsStatic: a.IsStatic, IsConst: a.IsConst, IsLocal: a.IsLocal}
		}
		methods := make([]types.MethodDesc, len(v.Methods))
		for i, m := range v.Methods {
			methods[i] = c.substituteMethod(m, sigma)
		}
		return types.NewClass(v.Name, attrs, methods, c.substituteAll(v.SuperTypes, sigma), c.substituteAll(v.Implementations, sigma))

	case *types.ImplementationType:
		attrs := make([]types.AttributeDesc, len(v.Attributes))
		for i, a := range v.Attributes {
			attrs[i] = types.AttributeDesc{Name: a.Name, Type: c.Substitute(a.Type, sigma), IsStatic: a.IsStatic, IsConst: a.IsConst, IsLocal: a.IsLocal}
		}
		methods := make([]types.MethodDesc, len(v.Methods))
		for i, m := range v.Methods {
			methods[i] = c.substituteMethod(m, sigma)
		}
		var target types.Description
		if v.TargetType != nil {
			target = c.Substitute(v.TargetType, sigma)
		}
		return types.NewImplementation(v.Name, attrs, methods, target)

	case *types.VariantType:
		ctors := make([]types.VariantConstructorInfo, len(v.Constructors))
		for i, ctor := range v.Constructors {
			params := make([]types.StructFieldDesc, len(ctor.Parameters))
			for j, p := range ctor.Parameters {
				params[j] = types.StructFieldDesc{Name: p.Name, Type: c.Substitute(p.Type, sigma), Node: p.Node}
			}
			ctors[i] = types.VariantConstructorInfo{Name: ctor.Name, Parameters: params}
		}
		return types.NewVariant(v.Name, v.GenericParams, ctors...)

	case *types.VariantConstructorType:
		return types.NewVariantConstructor(v.BaseVariant, v.ConstructorName, c.substituteAll(v.GenericArgs, sigma), v.VariantDeclaration)

	case *types.ReferenceType:
		args := c.substituteAll(v.GenericArgs, sigma)
		ref := types.NewReference(v.Declaration, args)
		// Resolve once to surface any error the instantiated body carries;
		// termination on recursive declarations is the resolver's job (the
		// provider tracks in-flight instantiations by declaration+args).
		resolved := resolve(c.resolver, ref)
		if errDesc, ok := resolved.(*types.ErrorDesc); ok {
			return types.NewError("substituted reference "+ref.String()+": "+errDesc.Message, errDesc, nil)
		}
		return ref

	default:
		return t
	}
}

func (c *Checker) substituteAll(ts []types.Description, sigma map[string]types.Description) []types.Description {
	out := make([]types.Description, len(ts))
	for i, t := range ts {
		out[i] = c.Substitute(t, sigma)
	}
	return out
}

func (c *Checker) substituteParams(params []types.FunctionParam, sigma map[string]types.Description) []types.FunctionParam {
	out := make([]types.FunctionParam, len(params))
	for i, p := range params {
		out[i] = types.FunctionParam{Name: p.Name, Type: c.Substitute(p.Type, sigma), IsMut: p.IsMut}
	}
	return out
}

func (c *Checker) substituteMethod(m types.MethodDesc, sigma map[string]types.Description) types.MethodDesc {
	return types.MethodDesc{
		Names:             m.Names,
		GenericParameters: remainingGenerics(m.GenericParameters, sigma),
		Parameters:        c.substituteParams(m.Parameters, sigma),
		ReturnType:        c.Substitute(m.ReturnType, sigma),
		IsStatic:          m.IsStatic,
		IsOverride:        m.IsOverride,
		IsLocal:           m.IsLocal,
		DeclNode:          m.DeclNode,
	}
}

// remainingGenerics drops generic parameters sigma has bound, per the
// substitution rule for Function/Interface/Class: "remove generic
// parameters that σ has bound."
func remainingGenerics(params []*ast.GenericParam, sigma map[string]types.Description) []*ast.GenericParam {
	if len(sigma) == 0 {
		return params
	}
	out := make([]*ast.GenericParam, 0, len(params))
	for _, p := range params {
		if _, bound := sigma[p.Name]; bound {
			continue
		}
		out = append(out, p)
	}
	return out
}

// checkSubstitutedNullable flags a Generic substituted with
// Nullable(basic) via Errors(); a substitution that would produce a
// double-nullable has no legal meaning and becomes an Error type
// outright instead.
func checkSubstitutedNullable(bound types.Description, context string) types.Description {
	nt, ok := bound.(*types.NullableType)
	if !ok {
		return bound
	}
	if _, innerNullable := nt.BaseType.(*types.NullableType); innerNullable {
		return types.NewError("substitution produced a nullable of nullable type"+suffixFor(context), nt, nt.Node())
	}
	if nt.BaseType != nil {
		switch nt.BaseType.Kind() {
		case types.KindU8, types.KindU16, types.KindU32, types.KindU64,
			types.KindI8, types.KindI16, types.KindI32, types.KindI64,
			types.KindF32, types.KindF64, types.KindBool, types.KindNull:
			return types.AddErrors(nt, "nullable primitive type"+suffixFor(context))
		}
	}
	return bound
}

func suffixFor(context string) string {
	if context == "" {
		return ""
	}
	return " (substituting " + context + ")"
}
