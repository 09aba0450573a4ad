package validate

import (
	"testing"

	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/scope"
	"github.com/typecore/corelang/internal/types"
	"github.com/typecore/corelang/internal/typeprovider"
	"github.com/typecore/corelang/internal/typeutil"
	"github.com/typecore/corelang/internal/workspace"
)

func pos(line int) ast.Position {
	return ast.Position{File: "test.tl", Line: line, Column: 1}
}

func primitive(line int, name string) ast.TypeExpression {
	return ast.NewPrimitiveTypeExpr(pos(line), name)
}

func hasCode(diags []Diagnostic, code string) bool {
	for _, d := range diags {
		if d.Code == code {
			return true
		}
	}
	return false
}

func TestCheckFunctionOverloadsDuplicate(t *testing.T) {
	sc := scope.New()
	p := typeprovider.New(sc, workspace.Default())

	addA := ast.NewFunctionDecl(pos(1), "add", nil, []*ast.ParamDecl{
		ast.NewParamDecl(pos(1), "a", primitive(1, "u32"), false),
		ast.NewParamDecl(pos(1), "b", primitive(1, "u32"), false),
	}, primitive(1, "u32"), false)
	addB := ast.NewFunctionDecl(pos(2), "add", nil, []*ast.ParamDecl{
		ast.NewParamDecl(pos(2), "a", primitive(2, "u32"), false),
		ast.NewParamDecl(pos(2), "b", primitive(2, "u32"), false),
	}, primitive(2, "i32"), false) // return type differs, signature doesn't

	diags := CheckFunctionOverloads(p, []*ast.FunctionDecl{addA, addB})
	if !hasCode(diags, CodeDuplicateFunctionOverload) {
		t.Errorf("expected a duplicate-overload diagnostic (return type is not part of the signature), got %v", diags)
	}
}

func TestCheckFunctionOverloadsDistinctSignaturesAllowed(t *testing.T) {
	sc := scope.New()
	p := typeprovider.New(sc, workspace.Default())

	addInts := ast.NewFunctionDecl(pos(1), "add", nil, []*ast.ParamDecl{
		ast.NewParamDecl(pos(1), "a", primitive(1, "u32"), false),
		ast.NewParamDecl(pos(1), "b", primitive(1, "u32"), false),
	}, primitive(1, "u32"), false)
	addFloats := ast.NewFunctionDecl(pos(2), "add", nil, []*ast.ParamDecl{
		ast.NewParamDecl(pos(2), "a", primitive(2, "f64"), false),
		ast.NewParamDecl(pos(2), "b", primitive(2, "f64"), false),
	}, primitive(2, "f64"), false)

	diags := CheckFunctionOverloads(p, []*ast.FunctionDecl{addInts, addFloats})
	if len(diags) != 0 {
		t.Errorf("distinct parameter signatures should not be flagged, got %v", diags)
	}
}

func TestCheckFunctionOverloadsGenericExclusivity(t *testing.T) {
	sc := scope.New()
	p := typeprovider.New(sc, workspace.Default())

	generic := ast.NewFunctionDecl(pos(1), "identity",
		[]*ast.GenericParam{ast.NewGenericParam(pos(1), "T", nil)},
		[]*ast.ParamDecl{ast.NewParamDecl(pos(1), "x", ast.NewNameTypeExpr(pos(1), "T", nil), false)},
		ast.NewNameTypeExpr(pos(1), "T", nil), false)
	concrete := ast.NewFunctionDecl(pos(2), "identity", nil,
		[]*ast.ParamDecl{ast.NewParamDecl(pos(2), "x", primitive(2, "i32"), false)},
		primitive(2, "i32"), false)

	diags := CheckFunctionOverloads(p, []*ast.FunctionDecl{generic, concrete})
	if !hasCode(diags, CodeGenericFunctionOverload) {
		t.Errorf("a generic function sharing a name with anything else must be rejected, got %v", diags)
	}
}

func TestCheckClassMethodOverloadsOwnDuplicate(t *testing.T) {
	sc := scope.New()
	p := typeprovider.New(sc, workspace.Default())

	class := ast.NewClassDecl(pos(1), "Box", nil, nil, []*ast.MethodDecl{
		ast.NewMethodDecl(pos(2), []string{"get"}, nil, nil, primitive(2, "i32"), false, false, false),
		ast.NewMethodDecl(pos(3), []string{"get"}, nil, nil, primitive(3, "i32"), false, false, false),
	}, nil, nil)

	diags := CheckClassMethodOverloads(p, class)
	if !hasCode(diags, CodeDuplicateClassMethodOverload) {
		t.Errorf("two same-signature methods on one class should be flagged, got %v", diags)
	}
}

func TestCheckClassMethodOverloadsOverrideShadowsImplementation(t *testing.T) {
	sc := scope.New()
	p := typeprovider.New(sc, workspace.Default())

	impl := ast.NewImplementationDecl(pos(1), "Printable", nil, []*ast.MethodDecl{
		ast.NewMethodDecl(pos(2), []string{"show"}, nil, nil, primitive(2, "string"), false, false, false),
	}, nil)
	sc.Define(impl)

	class := ast.NewClassDecl(pos(3), "Widget", nil, nil,
		[]*ast.MethodDecl{
			ast.NewMethodDecl(pos(4), []string{"show"}, nil, nil, primitive(4, "string"), false, true, false),
		},
		nil, []ast.TypeExpression{ast.NewNameTypeExpr(pos(3), "Printable", nil)})

	diags := CheckClassMethodOverloads(p, class)
	if hasCode(diags, CodeDuplicateClassMethodOverload) {
		t.Errorf("an override method shadowing its implementation's method should not be flagged, got %v", diags)
	}
}

func TestCheckClassMethodOverloadsNonOverrideCollidesWithImplementation(t *testing.T) {
	sc := scope.New()
	p := typeprovider.New(sc, workspace.Default())

	impl := ast.NewImplementationDecl(pos(1), "Printable", nil, []*ast.MethodDecl{
		ast.NewMethodDecl(pos(2), []string{"show"}, nil, nil, primitive(2, "string"), false, false, false),
	}, nil)
	sc.Define(impl)

	class := ast.NewClassDecl(pos(3), "Widget", nil, nil,
		[]*ast.MethodDecl{
			ast.NewMethodDecl(pos(4), []string{"show"}, nil, nil, primitive(4, "string"), false, false, false),
		},
		nil, []ast.TypeExpression{ast.NewNameTypeExpr(pos(3), "Printable", nil)})

	diags := CheckClassMethodOverloads(p, class)
	if !hasCode(diags, CodeDuplicateClassMethodOverload) {
		t.Errorf("a same-signature method not marked override should collide with its implementation's method, got %v", diags)
	}
}

func TestResolveCallUniqueMatch(t *testing.T) {
	p := typeprovider.New(scope.New(), workspace.Default())
	intFn := types.NewFunction([]types.FunctionParam{{Name: "a", Type: types.I32Type}}, types.I32Type, types.FnPlain, nil)
	floatFn := types.NewFunction([]types.FunctionParam{{Name: "a", Type: types.F64Type}}, types.F64Type, types.FnPlain, nil)

	idx, diags := ResolveCall(p.Checker, []types.Description{types.I32Type}, []*types.FunctionType{intFn, floatFn}, nil)
	if len(diags) != 0 {
		t.Errorf("unique match should not produce a diagnostic, got %v", diags)
	}
	if idx != 0 {
		t.Errorf("expected the i32 overload at index 0, got %d", idx)
	}
}

func TestResolveCallAmbiguous(t *testing.T) {
	p := typeprovider.New(scope.New(), workspace.Default())
	a := types.NewFunction([]types.FunctionParam{{Name: "x", Type: types.Any}}, types.I32Type, types.FnPlain, nil)
	b := types.NewFunction([]types.FunctionParam{{Name: "x", Type: types.Any}}, types.F64Type, types.FnPlain, nil)

	_, diags := ResolveCall(p.Checker, []types.Description{types.I32Type}, []*types.FunctionType{a, b}, nil)
	if !hasCode(diags, CodeAmbiguousOverloadCall) {
		t.Errorf("two equally-admitting candidates should report ambiguity, got %v", diags)
	}
}

func TestResolveCallNoMatch(t *testing.T) {
	p := typeprovider.New(scope.New(), workspace.Default())
	strFn := types.NewFunction([]types.FunctionParam{{Name: "s", Type: types.Str}}, types.Str, types.FnPlain, nil)

	idx, diags := ResolveCall(p.Checker, []types.Description{types.I32Type}, []*types.FunctionType{strFn}, nil)
	if !hasCode(diags, CodeNoMatchingOverload) {
		t.Errorf("no admitting candidate should report no-match, got %v", diags)
	}
	if idx != 0 {
		t.Errorf("no-match should still fall back to the first candidate index, got %d", idx)
	}
}

func TestCheckNullableAnnotationSurfacesPrimitiveNullable(t *testing.T) {
	p := typeprovider.New(scope.New(), workspace.Default())
	expr := ast.NewNullableTypeExpr(pos(1), primitive(1, "i32"))
	resolved := p.TypeOf(expr)

	diags := CheckNullableAnnotation(resolved, expr)
	if !hasCode(diags, CodeNullablePrimitiveType) {
		t.Errorf("Nullable(i32) should surface the nullable-primitive-type diagnostic, got %v", diags)
	}
}

func TestCheckNullableAnnotationSurfacesSubstitutedPrimitiveNullable(t *testing.T) {
	c := typeutil.NewChecker(nil)
	g := types.NewGeneric("T", nil, nil)
	sigma := map[string]types.Description{"T": types.I32Type}
	substituted := c.Substitute(types.NewNullable(g), sigma)

	diags := CheckNullableAnnotation(substituted, nil)
	if !hasCode(diags, CodeNullablePrimitiveType) {
		t.Errorf("Nullable(i32) reached via generic substitution should still surface the nullable-primitive-type diagnostic, got %v", diags)
	}
}
