package types

import (
	"testing"

	"github.com/typecore/corelang/internal/ast"
)

func TestSingletonStrings(t *testing.T) {
	tests := []struct {
		name     string
		typ      Description
		expected string
		kind     Kind
	}{
		{"Bool", Bool, "bool", KindBool},
		{"Void", Void, "void", KindVoid},
		{"String", Str, "string", KindString},
		{"Null", Null, "null", KindNull},
		{"Never", Never, "never", KindNever},
		{"Any", Any, "any", KindAny},
		{"Unset", Unset, "<unset>", KindUnset},
		{"U8", U8Type, "u8", KindU8},
		{"I32", I32Type, "i32", KindI32},
		{"F64", F64Type, "f64", KindF64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.typ.String(); got != tt.expected {
				t.Errorf("String() = %q, want %q", got, tt.expected)
			}
			if got := tt.typ.Kind(); got != tt.kind {
				t.Errorf("Kind() = %v, want %v", got, tt.kind)
			}
		})
	}
}

func TestFromString(t *testing.T) {
	for _, name := range []string{"u8", "u16", "u32", "u64", "i8", "i16", "i32", "i64", "f32", "f64"} {
		t.Run(name, func(t *testing.T) {
			got := FromString(name)
			if got.Kind() == KindError {
				t.Fatalf("FromString(%q) returned an Error description", name)
			}
			if got.String() != name {
				t.Errorf("FromString(%q).String() = %q", name, got.String())
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		got := FromString("frobnicate")
		if got.Kind() != KindError {
			t.Errorf("FromString of an unknown name should be an Error, got %v", got.Kind())
		}
	})
}

// WithNode must never mutate a shared singleton: stamping a node onto
// Bool from one call site must not leak into another.
func TestWithNodeSingletonGuard(t *testing.T) {
	nodeA := &ast.IdentExpr{Name: "a"}
	nodeB := &ast.IdentExpr{Name: "b"}

	WithNode(Bool, nodeA)
	before := Bool.Node()

	WithNode(Bool, nodeB)
	after := Bool.Node()

	if before != after {
		t.Errorf("WithNode mutated the shared Bool singleton's node: before=%v after=%v", before, after)
	}
	if Bool.Node() != nil {
		t.Errorf("Bool.Node() should stay nil after WithNode, got %v", Bool.Node())
	}

	WithNode(I32Type, nodeA)
	if I32Type.Node() != nil {
		t.Errorf("I32Type.Node() should stay nil after WithNode, got %v", I32Type.Node())
	}
}

func TestWithNodeOnOrdinaryDescription(t *testing.T) {
	node := &ast.IdentExpr{Name: "x"}
	arr := NewArray(I32Type)
	WithNode(arr, node)
	if arr.Node() != node {
		t.Errorf("WithNode should stamp the node on a non-singleton description")
	}
}

func TestLiftPrimitive(t *testing.T) {
	tests := []struct {
		name string
		want Description
	}{
		{"bool", Bool},
		{"void", Void},
		{"string", Str},
		{"null", Null},
		{"never", Never},
		{"any", Any},
		{"i32", I32Type},
		{"f64", F64Type},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := &ast.PrimitiveTypeExpr{Name: tt.name}
			got := LiftPrimitive(node)
			if got != tt.want {
				t.Errorf("LiftPrimitive(%q) = %v, want the %v singleton", tt.name, got, tt.want)
			}
		})
	}

	t.Run("unknown", func(t *testing.T) {
		node := &ast.PrimitiveTypeExpr{Name: "bogus"}
		got := LiftPrimitive(node)
		if got.Kind() != KindError {
			t.Errorf("LiftPrimitive of an unknown name should be an Error, got %v", got.Kind())
		}
	})

	t.Run("does not mutate singleton node", func(t *testing.T) {
		node := &ast.PrimitiveTypeExpr{Name: "i32"}
		LiftPrimitive(node)
		if I32Type.Node() != nil {
			t.Errorf("LiftPrimitive must not stamp a node onto the I32Type singleton")
		}
	})
}

func TestIsBasic(t *testing.T) {
	tests := []struct {
		name string
		typ  Description
		want bool
	}{
		{"u8", U8Type, true},
		{"bool", Bool, true},
		{"null", Null, true},
		{"string", Str, false},
		{"void", Void, false},
		{"array", NewArray(I32Type), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBasic(tt.typ, nil); got != tt.want {
				t.Errorf("IsBasic(%v) = %v, want %v", tt.typ, got, tt.want)
			}
		})
	}
}
