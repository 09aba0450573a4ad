package typeutil

import (
	"testing"

	"github.com/typecore/corelang/internal/types"
)

func TestValidateConstraintAbsentAlwaysSucceeds(t *testing.T) {
	c := NewChecker(nil)
	if res := c.ValidateConstraint(types.I32Type, nil); !res.Success {
		t.Errorf("an absent constraint should always succeed, got %v", res)
	}
}

func TestValidateConstraintUnionAnyMemberAccepts(t *testing.T) {
	c := NewChecker(nil)
	constraint := types.NewUnion(types.I32Type, types.Str)
	if res := c.ValidateConstraint(types.Str, constraint); !res.Success {
		t.Errorf("string should satisfy (i32|string), got %v", res)
	}
	if res := c.ValidateConstraint(types.Bool, constraint); res.Success {
		t.Errorf("bool should not satisfy (i32|string), got %v", res)
	}
}

func TestValidateConstraintJoinEveryMemberMustAccept(t *testing.T) {
	c := NewChecker(nil)
	areaMethod := types.MethodDesc{Names: []string{"area"}, ReturnType: types.F64Type}
	nameMethod := types.MethodDesc{Names: []string{"name"}, ReturnType: types.Str}
	shaped := types.NewInterface("Shaped", []types.MethodDesc{areaMethod}, nil)
	named := types.NewInterface("Named", []types.MethodDesc{nameMethod}, nil)
	constraint := types.NewJoin(shaped, named)

	both := types.NewClass("Circle", nil, []types.MethodDesc{areaMethod, nameMethod}, nil, nil)
	if res := c.ValidateConstraint(both, constraint); !res.Success {
		t.Errorf("a class satisfying both join members should validate, got %v", res)
	}

	onlyShaped := types.NewClass("Square", nil, []types.MethodDesc{areaMethod}, nil, nil)
	if res := c.ValidateConstraint(onlyShaped, constraint); res.Success {
		t.Errorf("a class satisfying only one join member should fail, got %v", res)
	}
}

func TestValidateConstraintOrdinaryFallsBackToAssignability(t *testing.T) {
	c := NewChecker(nil)
	if res := c.ValidateConstraint(types.I8Type, types.I32Type); !res.Success {
		t.Errorf("i8 should satisfy an i32 constraint by ordinary assignability, got %v", res)
	}
	if res := c.ValidateConstraint(types.I32Type, types.I8Type); res.Success {
		t.Errorf("i32 should not satisfy an i8 constraint, got %v", res)
	}
}
