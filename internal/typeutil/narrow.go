package typeutil

import "github.com/typecore/corelang/internal/types"

// Narrow computes the type of current after a successful narrowing
// check against target (e.g. an `if x is T` guard's true branch). Equal
// types narrow to themselves; a strictly narrower target replaces
// current outright; disjoint types narrow to Never (an unreachable
// branch); a union narrows member-wise and re-folds.
func (c *Checker) Narrow(current, target types.Description) types.Description {
	if current == nil || target == nil {
		return types.Never
	}
	if c.AreEqual(current, target).Success {
		return current
	}
	if c.IsAssignable(target, current).Success {
		return target
	}
	if u, ok := current.(*types.UnionType); ok {
		var narrowed []types.Description
		for _, m := range u.Members {
			n := c.Narrow(m, target)
			if n.Kind() == types.KindNever {
				continue
			}
			narrowed = append(narrowed, n)
		}
		if len(narrowed) == 0 {
			return types.Never
		}
		if len(narrowed) == 1 {
			return narrowed[0]
		}
		return c.Simplify(types.NewUnion(narrowed...))
	}
	return types.Never
}
