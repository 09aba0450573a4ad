package typeprovider

import (
	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/scope"
	"github.com/typecore/corelang/internal/types"
)

// genericScope maps an in-scope generic parameter's simple name to its
// declaration, used to decide whether a bare NameTypeExpr names a
// generic parameter (-> Generic) or a declaration (-> Reference).
type genericScope map[string]*ast.GenericParam

// resolveTypeExpr lifts a parsed TypeExpression to its TypeDescription.
func (p *Provider) resolveTypeExpr(expr ast.TypeExpression, generics genericScope) types.Description {
	if expr == nil {
		return types.Void
	}
	switch e := expr.(type) {
	case *ast.PrimitiveTypeExpr:
		return types.LiftPrimitive(e)

	case *ast.NameTypeExpr:
		return p.resolveNameTypeExpr(e, generics)

	case *ast.ArrayTypeExpr:
		return types.NewArray(p.resolveTypeExpr(e.Element, generics))

	case *ast.NullableTypeExpr:
		return types.NewNullable(p.resolveTypeExpr(e.BaseType, generics))

	case *ast.TupleTypeExpr:
		elems := make([]types.Description, len(e.Elements))
		for i, el := range e.Elements {
			elems[i] = p.resolveTypeExpr(el, generics)
		}
		return types.NewTuple(elems...)

	case *ast.UnionTypeExpr:
		members := make([]types.Description, len(e.Members))
		for i, m := range e.Members {
			members[i] = p.resolveTypeExpr(m, generics)
		}
		return types.NewUnion(members...)

	case *ast.JoinTypeExpr:
		members := make([]types.Description, len(e.Members))
		for i, m := range e.Members {
			members[i] = p.resolveTypeExpr(m, generics)
		}
		return types.NewJoin(members...)

	case *ast.FunctionTypeExpr:
		return p.resolveFunctionTypeExpr(e, generics)

	default:
		return types.NewError("unsupported type expression", nil, expr)
	}
}

func (p *Provider) resolveFunctionTypeExpr(e *ast.FunctionTypeExpr, generics genericScope) types.Description {
	params := make([]types.FunctionParam, len(e.ParamTypes))
	for i, pt := range e.ParamTypes {
		name := ""
		if i < len(e.ParamNames) {
			name = e.ParamNames[i]
		}
		isMut := i < len(e.ParamIsMut) && e.ParamIsMut[i]
		params[i] = types.FunctionParam{Name: name, Type: p.resolveTypeExpr(pt, generics), IsMut: isMut}
	}
	fnKind := types.FnPlain
	if e.IsCoroutine {
		fnKind = types.FnCoroutine
	}
	ret := p.resolveTypeExpr(e.ReturnType, generics)
	if e.IsCoroutine {
		return types.NewCoroutine(params, ret)
	}
	return types.NewFunction(params, ret, fnKind, nil)
}

// resolveNameTypeExpr disambiguates a bare name between a generic
// parameter and a declaration reference: a name matching an in-scope
// generic parameter (and carrying no generic arguments of its own)
// becomes a Generic; otherwise the scope provider's candidate
// declaration is wrapped as a Reference.
func (p *Provider) resolveNameTypeExpr(e *ast.NameTypeExpr, generics genericScope) types.Description {
	if len(e.Args) == 0 && generics != nil {
		if gp, ok := generics[e.Name]; ok {
			var constraint types.Description
			if gp.Constraint != nil {
				constraint = p.resolveTypeExpr(gp.Constraint, generics)
			}
			return types.WithNode(types.NewGeneric(gp.Name, constraint, gp), e)
		}
	}
	if p.scope == nil {
		return types.NewError("no declaration named "+e.Name+" (no scope provider configured)", nil, e)
	}
	candidates := p.scope.Candidates(e.Name)
	switch len(candidates) {
	case 0:
		return types.NewError(noDeclarationMessage(p.scope, e.Name), nil, e)
	case 1:
		args := make([]types.Description, len(e.Args))
		for i, a := range e.Args {
			args[i] = p.resolveTypeExpr(a, generics)
		}
		return types.WithNode(types.NewReference(candidates[0], args), e)
	default:
		return types.NewError("ambiguous type name "+e.Name+": multiple declarations match", nil, e)
	}
}

// nameSuggester is the optional capability a scope.Provider may offer
// beyond plain Candidates: a case-folded "did you mean" lookup. Only
// *scope.Scope implements it today; the type assertion keeps
// scope.Provider itself down to the one method overload resolution
// actually needs.
type nameSuggester interface {
	SuggestByFoldedName(query string) []ast.Declaration
}

// noDeclarationMessage builds the "no declaration named X" error,
// appending a same-case-fold suggestion when the scope provider can
// offer one (e.g. a user typed "Circle" but only "circle" is in scope).
func noDeclarationMessage(sc scope.Provider, name string) string {
	msg := "no declaration named " + name
	suggester, ok := sc.(nameSuggester)
	if !ok {
		return msg
	}
	matches := suggester.SuggestByFoldedName(name)
	if len(matches) == 0 {
		return msg
	}
	return msg + "; did you mean " + matches[0].DeclName() + "?"
}

// declScope builds the generic scope a declaration's own body is
// resolved under: its own generic parameters, nothing inherited (this
// fixture layer has no nested-declaration generics beyond one level —
// a method's own generic parameters are merged in by buildMethod).
func declScope(params []*ast.GenericParam) genericScope {
	if len(params) == 0 {
		return nil
	}
	out := make(genericScope, len(params))
	for _, gp := range params {
		out[gp.Name] = gp
	}
	return out
}

func mergeScopes(outer genericScope, extra []*ast.GenericParam) genericScope {
	if len(extra) == 0 {
		return outer
	}
	out := make(genericScope, len(outer)+len(extra))
	for k, v := range outer {
		out[k] = v
	}
	for _, gp := range extra {
		out[gp.Name] = gp
	}
	return out
}
