package typeutil

import (
	"testing"

	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/types"
)

func TestGetCommonTypeDropsNeverAndShortCircuits(t *testing.T) {
	c := NewChecker(nil)
	if got := c.GetCommonType(nil); got.Kind() != types.KindNever {
		t.Errorf("empty list should common to never, got %v", got)
	}
	if got := c.GetCommonType([]types.Description{types.Never, types.I32Type}); got != types.I32Type {
		t.Errorf("never should drop out, leaving the singleton i32, got %v", got)
	}
}

func TestGetCommonTypeNullPlusNonNullWrapsNullable(t *testing.T) {
	c := NewChecker(nil)
	got := c.GetCommonType([]types.Description{types.Null, types.Str})
	nb, ok := got.(*types.NullableType)
	if !ok {
		t.Fatalf("null+string should common to a Nullable, got %v (%T)", got, got)
	}
	if nb.BaseType != types.Str {
		t.Errorf("Nullable base should be string, got %v", nb.BaseType)
	}
}

func TestGetCommonTypeStructLUBNarrowsToSharedFields(t *testing.T) {
	// Spec 8.2: [{x,y,z:u32}, {x,y:u32}] -> {x,y:u32}, not anonymous-empty.
	c := NewChecker(nil)
	wide := types.NewStruct(true,
		types.StructFieldDesc{Name: "x", Type: types.U32Type},
		types.StructFieldDesc{Name: "y", Type: types.U32Type},
		types.StructFieldDesc{Name: "z", Type: types.U32Type},
	)
	narrow := types.NewStruct(true,
		types.StructFieldDesc{Name: "x", Type: types.U32Type},
		types.StructFieldDesc{Name: "y", Type: types.U32Type},
	)
	got := c.GetCommonType([]types.Description{wide, narrow})
	st, ok := got.(*types.StructType)
	if !ok {
		t.Fatalf("expected a struct LUB, got %v (%T)", got, got)
	}
	if len(st.Fields) != 2 {
		t.Errorf("expected exactly the shared fields x,y, got %v", st.Fields)
	}
	if _, ok := st.Field("z"); ok {
		t.Errorf("field z should not survive the intersection, got %v", st.Fields)
	}
}

func TestGetCommonTypeEmptyStructIntersectionIsError(t *testing.T) {
	c := NewChecker(nil)
	a := types.NewStruct(true, types.StructFieldDesc{Name: "x", Type: types.U32Type})
	b := types.NewStruct(true, types.StructFieldDesc{Name: "y", Type: types.U32Type})
	got := c.GetCommonType([]types.Description{a, b})
	if _, ok := got.(*types.ErrorDesc); !ok {
		t.Errorf("structs with no common fields should common to an Error, got %v (%T)", got, got)
	}
}

func TestGetCommonTypeStringishMerge(t *testing.T) {
	c := NewChecker(nil)
	lit := types.NewStringLiteral("a")
	enum := types.NewStringEnum("b", "c")
	got := c.GetCommonType([]types.Description{lit, enum})
	se, ok := got.(*types.StringEnumType)
	if !ok {
		t.Fatalf("string literal + string enum should common to a string enum, got %v (%T)", got, got)
	}
	for _, v := range []string{"a", "b", "c"} {
		if !se.Contains(v) {
			t.Errorf("expected merged string enum to contain %q, got %v", v, se.Values)
		}
	}

	withString := c.GetCommonType([]types.Description{lit, types.Str})
	if withString != types.Str {
		t.Errorf("any String member should widen the whole group to string, got %v", withString)
	}
}

func TestGetCommonTypeVariantConstructorsWithNeverFilledBySibling(t *testing.T) {
	// Spec 8.3.5: [Result.Ok(1i32), Result.Err("e")] -> Result<i32, string>.
	resultDecl := ast.NewAliasDecl(ast.Position{}, "Result", []*ast.GenericParam{
		ast.NewGenericParam(ast.Position{}, "T", nil),
		ast.NewGenericParam(ast.Position{}, "E", nil),
	}, nil)

	resultVariant := types.NewVariant("Result", resultDecl.GenericParamList,
		types.VariantConstructorInfo{Name: "Ok", Parameters: []types.StructFieldDesc{{Name: "value", Type: types.NewGeneric("T", nil, nil)}}},
		types.VariantConstructorInfo{Name: "Err", Parameters: []types.StructFieldDesc{{Name: "error", Type: types.NewGeneric("E", nil, nil)}}},
	)

	ok := types.NewVariantConstructor(resultVariant, "Ok", []types.Description{types.I32Type, types.Never}, resultDecl)
	err := types.NewVariantConstructor(resultVariant, "Err", []types.Description{types.Never, types.Str}, resultDecl)

	c := NewChecker(nil)
	got := c.GetCommonType([]types.Description{ok, err})
	ref, isRef := got.(*types.ReferenceType)
	if !isRef {
		t.Fatalf("expected a Reference(Result, ...) common type, got %v (%T)", got, got)
	}
	if ref.Declaration != resultDecl {
		t.Errorf("expected the reference to name the Result declaration")
	}
	if len(ref.GenericArgs) != 2 || ref.GenericArgs[0] != types.I32Type || ref.GenericArgs[1] != types.Str {
		t.Errorf("expected unified generic args [i32, string], got %v", ref.GenericArgs)
	}
}

func TestGetCommonTypeArraysRecurseOnElement(t *testing.T) {
	c := NewChecker(nil)
	a := types.NewArray(types.I8Type)
	b := types.NewArray(types.I32Type)
	got := c.GetCommonType([]types.Description{a, b})
	arr, ok := got.(*types.ArrayType)
	if !ok {
		t.Fatalf("expected an array common type, got %v (%T)", got, got)
	}
	if arr.Element != types.I32Type {
		t.Errorf("expected the element to widen to i32, got %v", arr.Element)
	}
}

func TestLUBInterfacesIntersectMethodsAndJoinReturns(t *testing.T) {
	c := NewChecker(nil)
	wide := types.NewInterface("Wide", []types.MethodDesc{
		{Names: []string{"area"}, ReturnType: types.I8Type},
		{Names: []string{"perimeter"}, ReturnType: types.F64Type},
	}, nil)
	narrow := types.NewInterface("Narrow", []types.MethodDesc{
		{Names: []string{"area"}, ReturnType: types.I32Type},
	}, nil)
	got := c.LUB([]types.Description{wide, narrow})
	it, ok := got.(*types.InterfaceType)
	if !ok {
		t.Fatalf("expected an interface LUB, got %v (%T)", got, got)
	}
	if len(it.Methods) != 1 || it.Methods[0].Names[0] != "area" {
		t.Fatalf("expected only the shared area() method, got %v", it.Methods)
	}
	if it.Methods[0].ReturnType != types.I32Type {
		t.Errorf("expected area()'s return type to widen to i32 across both interfaces, got %v", it.Methods[0].ReturnType)
	}
}
