package typeutil

import "github.com/typecore/corelang/internal/types"

// ResolveOverload filters candidates to the indices whose parameter
// types admit argTypes under assignability, inferring generics first
// when a candidate carries generic parameters. Used both by the
// linker's overload disambiguator and by member-call inference — both
// only need "which candidates fit", leaving no-match policy to the
// caller.
//
// A tie resolved purely by promotion among sibling numeric kinds (e.g.
// add(1, 2) matching both fn(i32,i32) and fn(f64,f64), since rule 6
// lets i32 widen to f64) narrows to the exact-kind candidate instead of
// being reported ambiguous: numeric widening is not itself a reason to
// refuse a call that also has a non-widening candidate available. A tie
// that only exists because of a non-numeric escape (Any, a union, or
// any other structural match) is left as a genuine ambiguity — the
// caller decides what to do with more than one index.
func (c *Checker) ResolveOverload(argTypes []types.Description, candidates []*types.FunctionType) []int {
	var matches, exact, numericTier []int
	for i, cand := range candidates {
		if cand == nil {
			continue
		}
		params, ok := resolvedCandidateParams(c, cand, argTypes)
		if !ok || !paramsAssignable(c, params, argTypes) {
			continue
		}
		matches = append(matches, i)
		if paramsExactMatch(c, params, argTypes) {
			exact = append(exact, i)
		}
		if paramsNumericFamilyMatch(c, params, argTypes) {
			numericTier = append(numericTier, i)
		}
	}
	if len(exact) > 0 && len(numericTier) == len(matches) {
		return exact
	}
	return matches
}

// resolvedCandidateParams substitutes cand's generics against argTypes
// (a no-op when cand isn't generic) and reports whether the arities
// even line up.
func resolvedCandidateParams(c *Checker, cand *types.FunctionType, argTypes []types.Description) ([]types.FunctionParam, bool) {
	if len(cand.Parameters) != len(argTypes) {
		return nil, false
	}
	params := cand.Parameters
	if len(cand.GenericParameters) > 0 {
		names := make([]string, len(cand.GenericParameters))
		paramTypes := make([]types.Description, len(params))
		for i, g := range cand.GenericParameters {
			names[i] = g.Name
		}
		for i, p := range params {
			paramTypes[i] = p.Type
		}
		sigma := c.InferGenerics(names, paramTypes, argTypes)
		params = c.substituteParams(params, sigma)
	}
	return params, true
}

// paramsAssignable reports whether every argument type is assignable to
// its corresponding parameter type.
func paramsAssignable(c *Checker, params []types.FunctionParam, argTypes []types.Description) bool {
	for i, p := range params {
		if !c.IsAssignable(argTypes[i], p.Type).Success {
			return false
		}
	}
	return true
}

// paramsExactMatch reports whether every argument type is exactly (not just
// assignably) the corresponding parameter type.
func paramsExactMatch(c *Checker, params []types.FunctionParam, argTypes []types.Description) bool {
	for i, p := range params {
		if !c.AreEqual(argTypes[i], p.Type).Success {
			return false
		}
	}
	return true
}

// paramsNumericFamilyMatch reports whether every parameter either
// equals its argument exactly or admits it solely via numeric
// promotion (rule 6) between two numeric kinds — never via Any, a
// union, or any other structural escape.
func paramsNumericFamilyMatch(c *Checker, params []types.FunctionParam, argTypes []types.Description) bool {
	for i, p := range params {
		if c.AreEqual(argTypes[i], p.Type).Success {
			continue
		}
		if isNumeric(argTypes[i].Kind()) && isNumeric(p.Type.Kind()) {
			continue
		}
		return false
	}
	return true
}
