package typeutil

import "github.com/typecore/corelang/internal/types"

// CanCast decides castability for the three cast forms (`as`, `as?`,
// `as!`): strictly wider than assignability. Callers that need to
// distinguish the safe form (`as`) from the force forms (`as?`/`as!`)
// consult Result.Message, which names which direction is unsafe; this
// core does not model the three forms as distinct operations, and none
// of its own packages calls CanCast to tell them apart.
func (c *Checker) CanCast(from, to types.Description) Result {
	if from == nil || to == nil {
		return Fail("cannot check castability of nil type")
	}
	if res := c.IsAssignable(from, to); res.Success {
		return Ok
	}
	if from.Kind() == types.KindError || to.Kind() == types.KindError ||
		from.Kind() == types.KindUnset || to.Kind() == types.KindUnset {
		return Ok
	}

	if isNumeric(from.Kind()) && isNumeric(to.Kind()) {
		return Ok
	}
	if (isNumeric(from.Kind()) && to.Kind() == types.KindEnum) ||
		(from.Kind() == types.KindEnum && isNumeric(to.Kind())) {
		return Ok
	}

	if res, handled := castNullable(c, from, to); handled {
		return res
	}

	if res, handled := castNominal(c, from, to); handled {
		return res
	}

	if res, handled := castVariant(c, from, to); handled {
		return res
	}

	if res, handled := castArray(c, from, to); handled {
		return res
	}

	return Fail(from.String() + " cannot be cast to " + to.String())
}

// castNullable implements nullable wrapping/unwrapping: wrapping is
// always sound, unwrapping is only sound under the force forms
// (`as?`/`as!`) — reported as "unsafe" rather than failing outright, so
// a safe-form (`as`) caller can reject it while a force-form caller
// accepts it.
func castNullable(c *Checker, from, to types.Description) (Result, bool) {
	toNullable, toIsNullable := to.(*types.NullableType)
	fromNullable, fromIsNullable := from.(*types.NullableType)
	switch {
	case !fromIsNullable && toIsNullable:
		return c.CanCast(from, toNullable.BaseType), true
	case fromIsNullable && !toIsNullable:
		return Fail("unsafe: unwrapping " + from.String() + " to " + to.String() + " is only sound under as?/as!"), true
	case fromIsNullable && toIsNullable:
		return c.CanCast(fromNullable.BaseType, toNullable.BaseType), true
	}
	return Result{}, false
}

// castNominal implements class<->interface castability in either
// direction. The downcast direction (interface -> class) is reported
// as unsafe for the safe form only; force forms accept it on the
// strength of a runtime check this core does not perform.
func castNominal(c *Checker, from, to types.Description) (Result, bool) {
	_, fromIsClass := from.(*types.ClassType)
	_, toIsClass := to.(*types.ClassType)
	fromIface := AsInterfaceType(c, from)
	toIface := AsInterfaceType(c, to)

	switch {
	case fromIsClass && toIface != nil:
		return Ok, true
	case fromIface != nil && toIsClass:
		return Fail("unsafe: downcasting " + from.String() + " to " + to.String() + " is only sound under as?/as!"), true
	case fromIface != nil && toIface != nil:
		return Ok, true
	}
	return Result{}, false
}

// castVariant implements variant<->constructor castability.
// Constructor-to-variant is always safe (widening to the closed set);
// variant-to-constructor is reported unsafe for the safe form, accepted
// for the force forms.
func castVariant(c *Checker, from, to types.Description) (Result, bool) {
	switch fromVal := from.(type) {
	case *types.VariantConstructorType:
		if _, ok := to.(*types.VariantType); ok {
			return Ok, true
		}
	case *types.VariantType:
		if ctor, ok := to.(*types.VariantConstructorType); ok {
			if ctor.BaseVariant == fromVal {
				return Fail("unsafe: narrowing " + from.String() + " to constructor " + to.String() + " is only sound under as?/as!"), true
			}
		}
	}
	return Result{}, false
}

// castArray admits arrays by element castability alone: array-of-class
// to array-of-interface is admitted whenever the element types are,
// without separately checking the implementation relation at the
// array level.
func castArray(c *Checker, from, to types.Description) (Result, bool) {
	a, aok := from.(*types.ArrayType)
	b, bok := to.(*types.ArrayType)
	if !aok || !bok {
		return Result{}, false
	}
	return c.CanCast(a.Element, b.Element), true
}
