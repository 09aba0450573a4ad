package typeutil

import "github.com/typecore/corelang/internal/types"

// ValidateConstraint verifies that concrete satisfies constraint. An
// absent constraint always succeeds; a Union constraint is satisfied if
// any member accepts concrete; a Join constraint requires every member
// to accept it; anything else falls back to ordinary assignability.
func (c *Checker) ValidateConstraint(concrete, constraint types.Description) Result {
	if constraint == nil {
		return Ok
	}
	if concrete == nil {
		return Fail("cannot validate a nil type against a constraint")
	}
	switch con := constraint.(type) {
	case *types.UnionType:
		var last Result
		for _, m := range con.Members {
			if res := c.IsAssignable(concrete, m); res.Success {
				return Ok
			} else {
				last = res
			}
		}
		if last.Message == "" {
			return Fail(concrete.String() + " satisfies no member of constraint " + constraint.String())
		}
		return Fail(concrete.String() + " satisfies no member of constraint " + constraint.String() + ": " + last.Message)
	case *types.JoinType:
		for _, m := range con.Members {
			if res := c.IsAssignable(concrete, m); !res.Success {
				return Fail(concrete.String() + " does not satisfy constraint member " + m.String() + ": " + res.Message)
			}
		}
		return Ok
	default:
		return c.IsAssignable(concrete, constraint)
	}
}
