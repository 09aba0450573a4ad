package typeutil

import (
	"testing"

	"github.com/typecore/corelang/internal/types"
)

func TestInferGenericsMapSignature(t *testing.T) {
	// Spec 8.3.4: fn map<U,V>(xs:U[], f:fn(U)->V)->V[] called with
	// ([1u32], fn(a:u32)->f32{...}) infers {U:u32, V:f32}.
	u := types.NewGeneric("U", nil, nil)
	v := types.NewGeneric("V", nil, nil)

	paramTypes := []types.Description{
		types.NewArray(u),
		types.NewFunction([]types.FunctionParam{{Name: "a", Type: u}}, v, types.FnPlain, nil),
	}
	argTypes := []types.Description{
		types.NewArray(types.U32Type),
		types.NewFunction([]types.FunctionParam{{Name: "a", Type: types.U32Type}}, types.F32Type, types.FnPlain, nil),
	}

	c := NewChecker(nil)
	sigma := c.InferGenerics([]string{"U", "V"}, paramTypes, argTypes)

	if sigma["U"] != types.U32Type {
		t.Errorf("expected U=u32, got %v", sigma["U"])
	}
	if sigma["V"] != types.F32Type {
		t.Errorf("expected V=f32, got %v", sigma["V"])
	}
}

func TestInferGenericsUnfilledSlotDefaultsToNever(t *testing.T) {
	c := NewChecker(nil)
	sigma := c.InferGenerics([]string{"U"}, nil, nil)
	if sigma["U"].Kind() != types.KindNever {
		t.Errorf("an unfilled generic slot should default to never, got %v", sigma["U"])
	}
}

func TestInferGenericsLaterArgumentRefinesNeverSlot(t *testing.T) {
	c := NewChecker(nil)
	g := types.NewGeneric("T", nil, nil)
	paramTypes := []types.Description{g, g}
	argTypes := []types.Description{types.Never, types.I32Type}
	sigma := c.InferGenerics([]string{"T"}, paramTypes, argTypes)
	if sigma["T"] != types.I32Type {
		t.Errorf("a later concrete argument should overwrite a never placeholder, got %v", sigma["T"])
	}
}
