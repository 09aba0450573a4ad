package typeprovider

import (
	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/types"
)

// declarationType computes the structural TypeDescription a declaration
// denotes, generic parameters left as Generic placeholders — the
// underlying structural type ResolveReference substitutes over.
func (p *Provider) declarationType(decl ast.Declaration) types.Description {
	generics := declScope(decl.GenericParams())
	switch d := decl.(type) {
	case *ast.ClassDecl:
		return p.buildClass(d, generics)
	case *ast.InterfaceDecl:
		return p.buildInterface(d, generics)
	case *ast.ImplementationDecl:
		return p.buildImplementation(d, generics)
	case *ast.VariantDecl:
		return p.buildVariant(d, generics)
	case *ast.EnumDecl:
		return p.buildEnum(d)
	case *ast.FunctionDecl:
		return p.buildFunctionDecl(d, generics)
	case *ast.AliasDecl:
		return types.WithNode(p.resolveTypeExpr(d.Definition, generics), d)
	case *ast.NamespaceDecl:
		return types.NewNamespace(d.Name, d)
	default:
		return types.NewError("unsupported declaration kind", nil, decl)
	}
}

func (p *Provider) buildClass(d *ast.ClassDecl, generics genericScope) types.Description {
	attrs := make([]types.AttributeDesc, len(d.Attributes))
	for i, a := range d.Attributes {
		attrs[i] = p.buildAttribute(a, generics)
	}
	methods := make([]types.MethodDesc, len(d.Methods))
	for i, m := range d.Methods {
		methods[i] = p.buildMethod(m, generics)
	}
	supers := make([]types.Description, len(d.SuperTypes))
	for i, s := range d.SuperTypes {
		supers[i] = p.resolveTypeExpr(s, generics)
	}
	impls := make([]types.Description, len(d.Implementations))
	for i, impl := range d.Implementations {
		impls[i] = p.resolveTypeExpr(impl, generics)
	}
	return types.WithNode(types.NewClass(d.Name, attrs, methods, supers, impls), d)
}

func (p *Provider) buildInterface(d *ast.InterfaceDecl, generics genericScope) types.Description {
	methods := make([]types.MethodDesc, len(d.Methods))
	for i, m := range d.Methods {
		methods[i] = p.buildMethod(m, generics)
	}
	supers := make([]types.Description, len(d.SuperTypes))
	for i, s := range d.SuperTypes {
		supers[i] = p.resolveTypeExpr(s, generics)
	}
	return types.WithNode(types.NewInterface(d.Name, methods, supers), d)
}

func (p *Provider) buildImplementation(d *ast.ImplementationDecl, generics genericScope) types.Description {
	attrs := make([]types.AttributeDesc, len(d.Attributes))
	for i, a := range d.Attributes {
		attrs[i] = p.buildAttribute(a, generics)
	}
	methods := make([]types.MethodDesc, len(d.Methods))
	for i, m := range d.Methods {
		methods[i] = p.buildMethod(m, generics)
	}
	var target types.Description
	if d.TargetType != nil {
		target = p.resolveTypeExpr(d.TargetType, generics)
	}
	return types.WithNode(types.NewImplementation(d.Name, attrs, methods, target), d)
}

func (p *Provider) buildVariant(d *ast.VariantDecl, generics genericScope) types.Description {
	ctors := make([]types.VariantConstructorInfo, len(d.Constructors))
	for i, ctor := range d.Constructors {
		params := make([]types.StructFieldDesc, len(ctor.Parameters))
		for j, field := range ctor.Parameters {
			params[j] = types.StructFieldDesc{Name: field.Name, Type: p.resolveTypeExpr(field.Type, generics), Node: field}
		}
		ctors[i] = types.VariantConstructorInfo{Name: ctor.Name, Parameters: params}
	}
	return types.WithNode(types.NewVariant(d.Name, d.GenericParamList, ctors...), d)
}

func (p *Provider) buildEnum(d *ast.EnumDecl) types.Description {
	if d.IsString {
		values := make([]string, len(d.Cases))
		for i, c := range d.Cases {
			values[i] = c.Name
		}
		return types.WithNode(types.NewStringEnum(values...), d)
	}
	cases := make([]types.EnumCaseDesc, len(d.Cases))
	for i, c := range d.Cases {
		cases[i] = types.EnumCaseDesc{Name: c.Name, Value: c.Value}
	}
	return types.WithNode(types.NewEnum(d.Name, nil, cases...), d)
}

func (p *Provider) buildFunctionDecl(d *ast.FunctionDecl, generics genericScope) types.Description {
	scope := mergeScopes(generics, d.GenericParamList)
	params := make([]types.FunctionParam, len(d.Parameters))
	for i, pd := range d.Parameters {
		params[i] = types.FunctionParam{Name: pd.Name, Type: p.resolveTypeExpr(pd.Type, scope), IsMut: pd.IsMut}
	}
	ret := p.resolveTypeExpr(d.ReturnType, scope)
	fnKind := types.FnPlain
	if d.IsCoroutine {
		fnKind = types.FnCoroutine
	}
	return types.WithNode(types.NewFunction(params, ret, fnKind, d.GenericParamList), d)
}

func (p *Provider) buildAttribute(a *ast.AttributeDecl, generics genericScope) types.AttributeDesc {
	return types.AttributeDesc{
		Name:     a.Name,
		Type:     p.resolveTypeExpr(a.Type, generics),
		IsStatic: a.IsStatic,
		IsConst:  a.IsConst,
		IsLocal:  a.IsLocal,
	}
}

func (p *Provider) buildMethod(m *ast.MethodDecl, generics genericScope) types.MethodDesc {
	scope := mergeScopes(generics, m.GenericParamList)
	params := make([]types.FunctionParam, len(m.Parameters))
	for i, pd := range m.Parameters {
		params[i] = types.FunctionParam{Name: pd.Name, Type: p.resolveTypeExpr(pd.Type, scope), IsMut: pd.IsMut}
	}
	return types.MethodDesc{
		Names:             m.Names,
		GenericParameters: m.GenericParamList,
		Parameters:        params,
		ReturnType:        p.resolveTypeExpr(m.ReturnType, scope),
		IsStatic:          m.IsStatic,
		IsOverride:        m.IsOverride,
		IsLocal:           m.IsLocal,
		DeclNode:          m,
	}
}
