package typeutil

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/types"
)

// methodNames extracts and sorts every bound spelling across a method
// set, giving cmp.Diff a plain, comparable shape to check the resolved
// method-set closure against.
func methodNames(methods []types.MethodDesc) []string {
	var out []string
	for _, m := range methods {
		out = append(out, m.Names...)
	}
	sort.Strings(out)
	return out
}

// fakeResolver resolves a Reference by the identity of its Declaration,
// independent of generic arguments — enough for the fixtures in this
// file, none of which are generic.
type fakeResolver map[ast.Declaration]types.Description

func (f fakeResolver) ResolveReference(ref *types.ReferenceType) types.Description {
	if t, ok := f[ref.Declaration]; ok {
		return t
	}
	return types.NewError("no fixture registered for "+ref.String(), nil, nil)
}

func TestNumericPromotionAssignability(t *testing.T) {
	c := NewChecker(nil)
	tests := []struct {
		name    string
		from    *types.Numeric
		to      *types.Numeric
		success bool
	}{
		{"i8 widens to i32", types.I8Type, types.I32Type, true},
		{"i32 narrows to i8", types.I32Type, types.I8Type, false},
		{"u8 widens to i32 (strictly more bits)", types.U8Type, types.I32Type, true},
		{"u32 to i32 needs strictly more bits", types.U32Type, types.I32Type, false},
		{"i32 to u32 is never assignable", types.I32Type, types.U32Type, false},
		{"i32 widens to f64", types.I32Type, types.F64Type, true},
		{"f64 never narrows to i32", types.F64Type, types.I32Type, false},
		{"f32 widens to f64", types.F32Type, types.F64Type, true},
		{"f64 narrows to f32", types.F64Type, types.F32Type, false},
		{"same kind", types.I32Type, types.I32Type, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.IsAssignable(tt.from, tt.to)
			if res.Success != tt.success {
				t.Errorf("IsAssignable(%s, %s) = %v, want success=%v", tt.from, tt.to, res, tt.success)
			}
		})
	}
}

func TestArrayCovariance(t *testing.T) {
	c := NewChecker(nil)
	from := types.NewArray(types.I8Type)
	to := types.NewArray(types.I32Type)
	if res := c.IsAssignable(from, to); !res.Success {
		t.Errorf("i8[] should be assignable to i32[] by covariance, got %v", res)
	}
	back := c.IsAssignable(to, from)
	if back.Success {
		t.Errorf("i32[] should not be assignable to i8[], got %v", back)
	}
}

func TestNullableAssignability(t *testing.T) {
	c := NewChecker(nil)
	nullableI32 := types.NewNullable(types.I32Type)

	if res := c.IsAssignable(types.Null, nullableI32); !res.Success {
		t.Errorf("null should be assignable to i32?, got %v", res)
	}
	if res := c.IsAssignable(types.I32Type, nullableI32); !res.Success {
		t.Errorf("i32 should be assignable to i32? (widening), got %v", res)
	}
	if res := c.IsAssignable(nullableI32, types.I32Type); res.Success {
		t.Errorf("i32? should not be assignable to i32, got %v", res)
	}
}

func TestStructWidthSubtyping(t *testing.T) {
	c := NewChecker(nil)
	wide := types.NewStruct(true,
		types.StructFieldDesc{Name: "x", Type: types.I32Type},
		types.StructFieldDesc{Name: "y", Type: types.I32Type},
	)
	narrow := types.NewStruct(true, types.StructFieldDesc{Name: "x", Type: types.I32Type})

	if res := c.IsAssignable(wide, narrow); !res.Success {
		t.Errorf("a struct with extra fields should satisfy a narrower struct shape, got %v", res)
	}
	if res := c.IsAssignable(narrow, wide); res.Success {
		t.Errorf("a struct missing a required field should not satisfy the wider shape, got %v", res)
	}
}

func TestFunctionContravariance(t *testing.T) {
	c := NewChecker(nil)
	// A function accepting the wider parameter type can stand in for one
	// declared to accept the narrower type (parameters are contravariant):
	// fn(i32) -> i32 is assignable to fn(i8) -> i32, not the other way.
	narrowParam := types.NewFunction([]types.FunctionParam{{Name: "p", Type: types.I8Type}}, types.I32Type, types.FnPlain, nil)
	wideParam := types.NewFunction([]types.FunctionParam{{Name: "p", Type: types.I32Type}}, types.I32Type, types.FnPlain, nil)

	if res := c.IsAssignable(wideParam, narrowParam); !res.Success {
		t.Errorf("fn(i32)->i32 should be assignable to fn(i8)->i32 under contravariance, got %v", res)
	}
	if res := c.IsAssignable(narrowParam, wideParam); res.Success {
		t.Errorf("fn(i8)->i32 should not be assignable to fn(i32)->i32, got %v", res)
	}
}

func TestNominalClassInterfaceAssignability(t *testing.T) {
	c := NewChecker(nil)
	areaMethod := types.MethodDesc{Names: []string{"area"}, ReturnType: types.F64Type}
	shaped := types.NewInterface("Shaped", []types.MethodDesc{areaMethod}, nil)
	circle := types.NewClass("Circle", nil, []types.MethodDesc{areaMethod}, nil, nil)
	square := types.NewClass("Square", nil, nil, nil, nil)

	if res := c.IsAssignable(circle, shaped); !res.Success {
		t.Errorf("Circle should structurally satisfy Shaped, got %v", res)
	}
	if res := c.IsAssignable(square, shaped); res.Success {
		t.Errorf("Square has no area method and should not satisfy Shaped, got %v", res)
	}
}

func TestInterfaceToInterfaceWidthSubtyping(t *testing.T) {
	c := NewChecker(nil)
	areaMethod := types.MethodDesc{Names: []string{"area"}, ReturnType: types.F64Type}
	perimeterMethod := types.MethodDesc{Names: []string{"perimeter"}, ReturnType: types.F64Type}

	wide := types.NewInterface("Measured", []types.MethodDesc{areaMethod, perimeterMethod}, nil)
	narrow := types.NewInterface("Shaped", []types.MethodDesc{areaMethod}, nil)

	if res := c.IsAssignable(wide, narrow); !res.Success {
		t.Errorf("an interface with extra methods should satisfy a narrower interface, got %v", res)
	}
	if res := c.IsAssignable(narrow, wide); res.Success {
		t.Errorf("an interface missing a required method should not satisfy the wider interface, got %v", res)
	}
}

func TestInterfaceSuperTypeClosureThroughReference(t *testing.T) {
	// Measured super Shaped; Shaped's area() method is only reachable by
	// resolving the Reference(ShapedDecl) super-type entry, the shape the
	// type provider actually produces for a `super X` clause.
	areaMethod := types.MethodDesc{Names: []string{"area"}, ReturnType: types.F64Type}
	shapedDecl := ast.NewInterfaceDecl(ast.Position{}, "Shaped", nil, nil, nil)
	shaped := types.NewInterface("Shaped", []types.MethodDesc{areaMethod}, nil)

	resolver := fakeResolver{shapedDecl: shaped}
	c := NewChecker(resolver)

	measured := types.NewInterface("Measured", nil, []types.Description{types.NewReference(shapedDecl, nil)})
	circle := types.NewClass("Circle", nil, []types.MethodDesc{areaMethod}, nil, nil)

	if res := c.IsAssignable(circle, measured); !res.Success {
		t.Errorf("Circle should satisfy Measured via its unresolved super-interface Shaped, got %v", res)
	}
}

func TestClassSatisfiesInterfaceViaImplementation(t *testing.T) {
	// The type provider always stores a class's Implementations entries
	// as a Reference(implDecl), never the resolved ImplementationType
	// directly, so assignability must resolve it to see the method.
	showMethod := types.MethodDesc{Names: []string{"show"}, ReturnType: types.Str}
	printableDecl := ast.NewImplementationDecl(ast.Position{}, "Printable", nil, nil, nil)
	printableImpl := types.NewImplementation("Printable", nil, []types.MethodDesc{showMethod}, nil)

	resolver := fakeResolver{printableDecl: printableImpl}
	c := NewChecker(resolver)

	printable := types.NewInterface("PrintableIface", []types.MethodDesc{showMethod}, nil)
	widget := types.NewClass("Widget", nil, nil, nil, []types.Description{types.NewReference(printableDecl, nil)})

	if res := c.IsAssignable(widget, printable); !res.Success {
		t.Errorf("Widget should satisfy PrintableIface via its unresolved implementation reference, got %v", res)
	}
}

func TestAllInterfaceMethodsClosureThroughSuperTypes(t *testing.T) {
	// Measured super Shaped super Named; the closure should pick up all
	// three methods across two levels of Reference-mediated super-types.
	areaMethod := types.MethodDesc{Names: []string{"area"}, ReturnType: types.F64Type}
	nameMethod := types.MethodDesc{Names: []string{"name"}, ReturnType: types.Str}
	perimeterMethod := types.MethodDesc{Names: []string{"perimeter"}, ReturnType: types.F64Type}

	namedDecl := ast.NewInterfaceDecl(ast.Position{}, "Named", nil, nil, nil)
	named := types.NewInterface("Named", []types.MethodDesc{nameMethod}, nil)

	shapedDecl := ast.NewInterfaceDecl(ast.Position{}, "Shaped", nil, nil, nil)
	shaped := types.NewInterface("Shaped", []types.MethodDesc{areaMethod}, []types.Description{types.NewReference(namedDecl, nil)})

	resolver := fakeResolver{namedDecl: named, shapedDecl: shaped}
	c := NewChecker(resolver)

	measured := types.NewInterface("Measured", []types.MethodDesc{perimeterMethod}, []types.Description{types.NewReference(shapedDecl, nil)})

	got := methodNames(c.allInterfaceMethods(measured))
	want := []string{"area", "name", "perimeter"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("allInterfaceMethods(Measured) names mismatch (-want +got):\n%s", diff)
	}
}

func TestUnionAndJoinAssignability(t *testing.T) {
	c := NewChecker(nil)
	u := types.NewUnion(types.I32Type, types.Str)
	if res := c.IsAssignable(types.I32Type, u); !res.Success {
		t.Errorf("i32 should be assignable to (i32 | string), got %v", res)
	}
	if res := c.IsAssignable(types.Bool, u); res.Success {
		t.Errorf("bool should not be assignable to (i32 | string), got %v", res)
	}

	j := types.NewJoin(types.I32Type, types.I32Type)
	if res := c.IsAssignable(types.I32Type, j); !res.Success {
		t.Errorf("i32 should be assignable to (i32 & i32), got %v", res)
	}
}

func TestAnyAndNeverAssignability(t *testing.T) {
	c := NewChecker(nil)
	if res := c.IsAssignable(types.I32Type, types.Any); !res.Success {
		t.Errorf("anything should be assignable to any, got %v", res)
	}
	if res := c.IsAssignable(types.Never, types.I32Type); !res.Success {
		t.Errorf("never should be assignable to anything, got %v", res)
	}
	if res := c.IsAssignable(types.I32Type, types.Never); res.Success {
		t.Errorf("only never should be assignable to never, got %v", res)
	}
}
