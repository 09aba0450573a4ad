package typeutil

import (
	"testing"

	"github.com/typecore/corelang/internal/types"
)

func TestNarrowEqualTypeReturnsItself(t *testing.T) {
	c := NewChecker(nil)
	if got := c.Narrow(types.I32Type, types.I32Type); got != types.I32Type {
		t.Errorf("narrowing to an equal type should return it unchanged, got %v", got)
	}
}

func TestNarrowToAssignableTargetReplaces(t *testing.T) {
	c := NewChecker(nil)
	u := types.NewUnion(types.I32Type, types.Str)
	if got := c.Narrow(u, types.I32Type); got != types.I32Type {
		t.Errorf("narrowing (i32|string) to i32 should yield i32, got %v", got)
	}
}

func TestNarrowDisjointYieldsNever(t *testing.T) {
	c := NewChecker(nil)
	if got := c.Narrow(types.I32Type, types.Str); got.Kind() != types.KindNever {
		t.Errorf("narrowing disjoint types should yield never, got %v", got)
	}
}

func TestNarrowUnionFiltersNarrowableMembers(t *testing.T) {
	c := NewChecker(nil)
	u := types.NewUnion(types.I32Type, types.Str, types.Bool)
	got := c.Narrow(u, types.Str)
	if got != types.Str {
		t.Errorf("narrowing a union to one of its members should isolate that member, got %v", got)
	}
}
