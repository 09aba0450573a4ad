package typeprovider

import (
	"fmt"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/scope"
	"github.com/typecore/corelang/internal/types"
	"github.com/typecore/corelang/internal/workspace"
)

func pos(line int) ast.Position {
	return ast.Position{File: "test.tl", Line: line, Column: 1}
}

func primitive(line int, name string) ast.TypeExpression {
	return ast.NewPrimitiveTypeExpr(pos(line), name)
}

func TestTypeOfLiterals(t *testing.T) {
	p := New(scope.New(), workspace.Default())
	tests := []struct {
		name string
		node ast.Expr
		kind types.Kind
	}{
		{"int literal", ast.NewIntLiteralExpr(pos(1), 42), types.KindI32},
		{"float literal", ast.NewFloatLiteralExpr(pos(1), 1.5), types.KindF64},
		{"string literal", ast.NewStringLiteralExpr(pos(1), "hi"), types.KindStringLiteral},
		{"bool literal", ast.NewBoolLiteralExpr(pos(1), true), types.KindBool},
		{"null literal", ast.NewNullLiteralExpr(pos(1)), types.KindNull},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := p.TypeOf(tt.node)
			if got.Kind() != tt.kind {
				t.Errorf("TypeOf(%s) kind = %v, want %v", tt.name, got.Kind(), tt.kind)
			}
		})
	}
}

func TestTypeOfMemoizesPerNode(t *testing.T) {
	p := New(scope.New(), workspace.Default())
	node := ast.NewIntLiteralExpr(pos(1), 7)
	first := p.TypeOf(node)
	second := p.TypeOf(node)
	if first != second {
		t.Errorf("TypeOf should return the identical cached description, got %v and %v", first, second)
	}
}

func TestInvalidateForcesRecompute(t *testing.T) {
	p := New(scope.New(), workspace.Default())
	node := ast.NewIntLiteralExpr(pos(1), 7)
	first := p.TypeOf(node)
	if _, cached := p.cache[node.ID()]; !cached {
		t.Fatalf("expected node to have a cache entry after TypeOf")
	}
	p.Invalidate(node)
	if _, cached := p.cache[node.ID()]; cached {
		t.Errorf("expected Invalidate to drop the node's cache entry")
	}
	second := p.TypeOf(node)
	if !p.Checker.AreEqual(first, second).Success {
		t.Errorf("recomputed type should still be equal to the original: %v vs %v", first, second)
	}
}

func TestArrayLiteralCommonElementType(t *testing.T) {
	p := New(scope.New(), workspace.Default())
	lit := ast.NewArrayLiteralExpr(pos(1), []ast.Expr{
		ast.NewIntLiteralExpr(pos(1), 1),
		ast.NewIntLiteralExpr(pos(1), 2),
		ast.NewIntLiteralExpr(pos(1), 3),
	})
	got := p.TypeOf(lit)
	arr, ok := got.(*types.ArrayType)
	if !ok {
		t.Fatalf("TypeOf(array literal) = %T, want *types.ArrayType", got)
	}
	if arr.Element.Kind() != types.KindI32 {
		t.Errorf("array element kind = %v, want i32", arr.Element.Kind())
	}
}

func TestRecursiveDeclarationResolutionTerminates(t *testing.T) {
	sc := scope.New()
	p := New(sc, workspace.Default())

	tParam := ast.NewGenericParam(pos(1), "T", nil)
	treeNode := ast.NewAliasDecl(pos(1), "TreeNode", []*ast.GenericParam{tParam}, nil)
	treeNode.Definition = ast.NewNullableTypeExpr(pos(1),
		ast.NewArrayTypeExpr(pos(1), ast.NewNameTypeExpr(pos(1), "TreeNode", []ast.TypeExpression{
			ast.NewNameTypeExpr(pos(1), "T", nil),
		})))
	sc.Define(treeNode)

	ref := types.NewReference(treeNode, []types.Description{types.I32Type})
	resolved := p.ResolveReference(ref)
	if resolved == nil {
		t.Fatal("ResolveReference returned nil")
	}

	refI32 := types.NewReference(treeNode, []types.Description{types.I32Type})
	refI32b := types.NewReference(treeNode, []types.Description{types.I32Type})
	if res := p.Checker.IsAssignable(refI32, refI32b); !res.Success {
		t.Errorf("Reference(TreeNode,i32) should be assignable to itself, got %v", res)
	}

	refU32 := types.NewReference(treeNode, []types.Description{types.U32Type})
	if res := p.Checker.IsAssignable(refI32, refU32); res.Success {
		t.Errorf("Reference(TreeNode,i32) should not be assignable to Reference(TreeNode,u32), got %v", res)
	}
}

func TestStructuralAssignabilityClassToInterface(t *testing.T) {
	sc := scope.New()
	p := New(sc, workspace.Default())

	shaped := ast.NewInterfaceDecl(pos(1), "Shaped", nil, []*ast.MethodDecl{
		ast.NewMethodDecl(pos(2), []string{"area"}, nil, nil, primitive(2, "f64"), false, false, false),
	}, nil)
	sc.Define(shaped)

	circle := ast.NewClassDecl(pos(4), "Circle", nil,
		[]*ast.AttributeDecl{ast.NewAttributeDecl(pos(5), "radius", primitive(5, "f64"), false, false, false)},
		[]*ast.MethodDecl{
			ast.NewMethodDecl(pos(6), []string{"area"}, nil, nil, primitive(6, "f64"), false, false, false),
		}, nil, nil)
	sc.Define(circle)

	circleType := p.DeclarationType(circle)
	shapedType := p.DeclarationType(shaped)
	if res := p.Checker.IsAssignable(circleType, shapedType); !res.Success {
		t.Errorf("Circle should be assignable to Shaped, got %v", res)
	}

	localCircle := ast.NewClassDecl(pos(4), "Circle", nil,
		[]*ast.AttributeDecl{ast.NewAttributeDecl(pos(5), "radius", primitive(5, "f64"), false, false, false)},
		[]*ast.MethodDecl{
			ast.NewMethodDecl(pos(6), []string{"area"}, nil, nil, primitive(6, "f64"), false, false, true),
		}, nil, nil)
	localCircleType := p.DeclarationType(localCircle)
	if res := p.Checker.IsAssignable(localCircleType, shapedType); res.Success {
		t.Errorf("Circle with a local-only area() should not satisfy Shaped, got %v", res)
	}
}

func TestMemberCallAgainstArrayPrototype(t *testing.T) {
	p := New(scope.New(), workspace.Default())
	lit := ast.NewArrayLiteralExpr(pos(1), []ast.Expr{ast.NewIntLiteralExpr(pos(1), 1)})
	pushCall := ast.NewMemberCallExpr(pos(1), lit, "push", []ast.Expr{ast.NewIntLiteralExpr(pos(1), 2)})
	got := p.TypeOf(pushCall)
	if _, ok := got.(*types.ErrorDesc); ok {
		t.Errorf("push() member call should resolve, got error %v", got)
	}

	lengthCall := ast.NewMemberCallExpr(pos(1), lit, "length", nil)
	lengthType := p.TypeOf(lengthCall)
	if _, ok := lengthType.(*types.ErrorDesc); ok {
		t.Errorf("length member access should resolve, got error %v", lengthType)
	}
}

// TestDeclarationTypeStringSnapshot pins the rendered form of a class
// resolved against its declared interface and array prototype, the way
// the CLI's check command prints them, against a golden snapshot.
func TestDeclarationTypeStringSnapshot(t *testing.T) {
	sc := scope.New()
	p := New(sc, workspace.Default())

	shaped := ast.NewInterfaceDecl(pos(1), "Shaped", nil, []*ast.MethodDecl{
		ast.NewMethodDecl(pos(2), []string{"area"}, nil, nil, primitive(2, "f64"), false, false, false),
	}, nil)
	sc.Define(shaped)

	circle := ast.NewClassDecl(pos(4), "Circle", nil,
		[]*ast.AttributeDecl{ast.NewAttributeDecl(pos(5), "radius", primitive(5, "f64"), false, false, false)},
		[]*ast.MethodDecl{
			ast.NewMethodDecl(pos(6), []string{"area"}, nil, nil, primitive(6, "f64"), false, false, false),
		}, nil, nil)
	sc.Define(circle)

	circleType := p.DeclarationType(circle)
	shapedType := p.DeclarationType(shaped)
	assignability := p.Checker.IsAssignable(circleType, shapedType)

	snaps.MatchSnapshot(t, "circle type", circleType.String())
	snaps.MatchSnapshot(t, "shaped type", shapedType.String())
	snaps.MatchSnapshot(t, "circle assignable to shaped", fmt.Sprintf("%v", assignability))
}

func TestUnresolvedNameSuggestsFoldedMatch(t *testing.T) {
	sc := scope.New()
	p := New(sc, workspace.Default())

	circle := ast.NewClassDecl(pos(1), "Circle", nil, nil, nil, nil, nil)
	sc.Define(circle)

	typeExpr := ast.NewNameTypeExpr(pos(2), "circle", nil)
	got := p.TypeOf(typeExpr)
	errDesc, ok := got.(*types.ErrorDesc)
	if !ok {
		t.Fatalf("TypeOf(circle) = %T, want *types.ErrorDesc for an unresolved name", got)
	}
	if want := "did you mean Circle?"; !strings.Contains(errDesc.Message, want) {
		t.Errorf("error message %q should suggest %q", errDesc.Message, want)
	}
}

func TestCallOverloadResolution(t *testing.T) {
	sc := scope.New()
	p := New(sc, workspace.Default())

	addInts := ast.NewFunctionDecl(pos(1), "add", nil, []*ast.ParamDecl{
		ast.NewParamDecl(pos(1), "a", primitive(1, "i32"), false),
		ast.NewParamDecl(pos(1), "b", primitive(1, "i32"), false),
	}, primitive(1, "i32"), false)
	addFloats := ast.NewFunctionDecl(pos(2), "add", nil, []*ast.ParamDecl{
		ast.NewParamDecl(pos(2), "a", primitive(2, "f64"), false),
		ast.NewParamDecl(pos(2), "b", primitive(2, "f64"), false),
	}, primitive(2, "f64"), false)
	sc.Define(addInts)
	sc.Define(addFloats)

	call := ast.NewCallExpr(pos(3), "add", []ast.Expr{
		ast.NewIntLiteralExpr(pos(3), 1),
		ast.NewIntLiteralExpr(pos(3), 2),
	})
	got := p.TypeOf(call)
	if got.Kind() != types.KindI32 {
		t.Errorf("add(1,2) should resolve to the i32 overload, got %v", got)
	}
}
