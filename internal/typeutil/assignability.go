package typeutil

import (
	"strings"

	"github.com/typecore/corelang/internal/types"
)

// IsAssignable decides whether a value of type from may be used where
// to is expected. Rules are checked in a fixed order; earlier rules
// that match take precedence over later, more specific ones.
func (c *Checker) IsAssignable(from, to types.Description) Result {
	if from == nil || to == nil {
		return Fail("cannot check assignability of nil type")
	}

	if c.pending.contains(from, to) {
		return Ok
	}

	if res := c.AreEqual(from, to); res.Success {
		return Ok
	}

	if to.Kind() == types.KindAny || from.Kind() == types.KindAny {
		return Ok
	}
	if from.Kind() == types.KindNever {
		return Ok
	}
	if to.Kind() == types.KindNever {
		return Fail("only never is assignable to never")
	}
	if from.Kind() == types.KindError || from.Kind() == types.KindUnset ||
		to.Kind() == types.KindError || to.Kind() == types.KindUnset {
		return Ok
	}

	if g, ok := from.(*types.GenericType); ok && g.Constraint != nil {
		return c.IsAssignable(g.Constraint, to)
	}

	c.pending.push(from, to)
	defer c.pending.pop()

	if res, handled := c.assignNumericOrEnum(from, to); handled {
		return res
	}
	if res, handled := assignNullable(c, from, to); handled {
		return res
	}
	if res, handled := assignArray(c, from, to); handled {
		return res
	}
	if res, handled := assignTuple(c, from, to); handled {
		return res
	}
	if res, handled := assignStruct(c, from, to); handled {
		return res
	}
	if res, handled := assignFunction(c, from, to); handled {
		return res
	}
	if res, handled := assignTypeGuard(c, from, to); handled {
		return res
	}
	if res, handled := assignUnion(c, from, to); handled {
		return res
	}
	if res, handled := assignJoin(c, from, to); handled {
		return res
	}
	if res, handled := c.assignNominal(from, to); handled {
		return res
	}
	if res, handled := c.assignVariant(from, to); handled {
		return res
	}

	return Fail(from.String() + " is not assignable to " + to.String())
}

func isNumeric(k types.Kind) bool {
	switch k {
	case types.KindU8, types.KindU16, types.KindU32, types.KindU64,
		types.KindI8, types.KindI16, types.KindI32, types.KindI64,
		types.KindF32, types.KindF64:
		return true
	}
	return false
}

func isFloat(k types.Kind) bool { return k == types.KindF32 || k == types.KindF64 }

// assignNumericOrEnum implements rule 6: numeric promotion, integer<->enum
// coercions, and the string-literal/string-enum/string ladder.
func (c *Checker) assignNumericOrEnum(from, to types.Description) (Result, bool) {
	if isNumeric(from.Kind()) && isNumeric(to.Kind()) {
		return numericPromotion(from.(*types.Numeric), to.(*types.Numeric)), true
	}
	if isNumeric(from.Kind()) && to.Kind() == types.KindEnum {
		return Ok, true
	}
	if from.Kind() == types.KindEnum && isNumeric(to.Kind()) {
		return Ok, true
	}

	if from.Kind() == types.KindStringLiteral {
		lit := from.(*types.StringLiteralType)
		switch to.Kind() {
		case types.KindStringEnum:
			if to.(*types.StringEnumType).Contains(lit.Value) {
				return Ok, true
			}
			return Fail("string literal " + lit.String() + " is not a member of " + to.String()), true
		case types.KindString:
			return Ok, true
		}
	}
	if from.Kind() == types.KindStringEnum {
		switch to.Kind() {
		case types.KindString:
			return Ok, true
		case types.KindStringEnum:
			a, b := from.(*types.StringEnumType), to.(*types.StringEnumType)
			for v := range a.Values {
				if !b.Contains(v) {
					return Fail("string enum value " + v + " is not a member of " + to.String()), true
				}
			}
			return Ok, true
		case types.KindStringLiteral:
			a := from.(*types.StringEnumType)
			lit := to.(*types.StringLiteralType)
			if len(a.Values) == 1 && a.Contains(lit.Value) {
				return Ok, true
			}
			return Fail(from.String() + " has more than one member, cannot narrow to " + to.String()), true
		}
	}
	return Result{}, false
}

func numericPromotion(from, to *types.Numeric) Result {
	if from.Kind() == to.Kind() {
		return Ok
	}
	switch {
	case isFloat(from.Kind()) && isFloat(to.Kind()):
		if to.Bits >= from.Bits {
			return Ok
		}
		return Fail("narrowing float conversion " + from.String() + " -> " + to.String() + " is not assignable")
	case isFloat(from.Kind()) && !isFloat(to.Kind()):
		return Fail("float to integer conversion is not assignable")
	case !isFloat(from.Kind()) && isFloat(to.Kind()):
		return Ok
	case from.Signed == to.Signed:
		if to.Bits >= from.Bits {
			return Ok
		}
		return Fail("narrowing integer conversion " + from.String() + " -> " + to.String() + " is not assignable")
	case !from.Signed && to.Signed:
		if to.Bits > from.Bits {
			return Ok
		}
		return Fail("unsigned to signed conversion " + from.String() + " -> " + to.String() + " needs strictly more bits")
	default:
		return Fail("signed to unsigned conversion is not assignable")
	}
}

// assignNullable implements rule 7.
func assignNullable(c *Checker, from, to types.Description) (Result, bool) {
	if from.Kind() == types.KindNull {
		if to.Kind() == types.KindNullable {
			return Ok, true
		}
		return Result{}, false
	}
	toNullable, toIsNullable := to.(*types.NullableType)
	fromNullable, fromIsNullable := from.(*types.NullableType)
	if fromIsNullable && toIsNullable {
		return c.IsAssignable(fromNullable.BaseType, toNullable.BaseType), true
	}
	if !fromIsNullable && toIsNullable {
		return c.IsAssignable(from, toNullable.BaseType), true
	}
	return Result{}, false
}

// assignArray implements rule 8 (covariant, by design).
func assignArray(c *Checker, from, to types.Description) (Result, bool) {
	a, aok := from.(*types.ArrayType)
	b, bok := to.(*types.ArrayType)
	if !aok || !bok {
		return Result{}, false
	}
	return c.IsAssignable(a.Element, b.Element), true
}

// assignTuple implements rule 9.
func assignTuple(c *Checker, from, to types.Description) (Result, bool) {
	a, aok := from.(*types.TupleType)
	b, bok := to.(*types.TupleType)
	if !aok || !bok {
		return Result{}, false
	}
	if len(a.Elements) != len(b.Elements) {
		return Fail("tuple arity differs"), true
	}
	for i := range a.Elements {
		if res := c.IsAssignable(a.Elements[i], b.Elements[i]); !res.Success {
			return res, true
		}
	}
	return Ok, true
}

// assignStruct implements rule 10: structural width+depth subtyping.
func assignStruct(c *Checker, from, to types.Description) (Result, bool) {
	toStruct := AsStructType(c, to)
	if toStruct == nil {
		return Result{}, false
	}
	fromStruct := AsStructType(c, from)
	if fromStruct == nil {
		return Result{}, false
	}
	for _, field := range toStruct.Fields {
		fromField, ok := fromStruct.Field(field.Name)
		if !ok {
			return Fail("missing field " + field.Name), true
		}
		if res := c.IsAssignable(fromField.Type, field.Type); !res.Success {
			return Fail("field " + field.Name + ": " + res.Message), true
		}
	}
	return Ok, true
}

// assignFunction implements rule 11: contravariant parameters (type and
// mutability), covariant return.
func assignFunction(c *Checker, from, to types.Description) (Result, bool) {
	a, aok := from.(*types.FunctionType)
	b, bok := to.(*types.FunctionType)
	if !aok || !bok {
		return Result{}, false
	}
	if a.FnType != b.FnType {
		return Fail("plain/coroutine function kind mismatch"), true
	}
	if len(a.Parameters) != len(b.Parameters) {
		return Fail("function arity differs"), true
	}
	for i := range a.Parameters {
		if b.Parameters[i].IsMut && !a.Parameters[i].IsMut {
			return Fail("parameter " + b.Parameters[i].Name + " requires mutability the source does not offer"), true
		}
		if res := c.IsAssignable(b.Parameters[i].Type, a.Parameters[i].Type); !res.Success {
			return Fail("parameter " + a.Parameters[i].Name + " is not contravariant: " + res.Message), true
		}
	}
	return c.IsAssignable(a.ReturnType, b.ReturnType), true
}

// assignTypeGuard implements rule 12.
func assignTypeGuard(c *Checker, from, to types.Description) (Result, bool) {
	tgFrom, fromIsGuard := from.(*types.TypeGuardType)
	tgTo, toIsGuard := to.(*types.TypeGuardType)
	switch {
	case fromIsGuard && !toIsGuard:
		if to.Kind() == types.KindBool {
			return Ok, true
		}
		return Result{}, false
	case !fromIsGuard && toIsGuard:
		if from.Kind() == types.KindBool {
			return Ok, true
		}
		return Result{}, false
	case fromIsGuard && toIsGuard:
		if tgFrom.ParameterIndex != tgTo.ParameterIndex {
			return Fail("type guards narrow different parameters"), true
		}
		return c.IsAssignable(tgFrom.GuardedType, tgTo.GuardedType), true
	default:
		return Result{}, false
	}
}

// assignUnion implements rule 13.
func assignUnion(c *Checker, from, to types.Description) (Result, bool) {
	if u, ok := from.(*types.UnionType); ok {
		for _, m := range u.Members {
			if res := c.IsAssignable(m, to); !res.Success {
				return Fail("union member " + m.String() + " is not assignable to " + to.String()), true
			}
		}
		return Ok, true
	}
	if u, ok := to.(*types.UnionType); ok {
		for _, m := range u.Members {
			if res := c.IsAssignable(from, m); res.Success {
				return Ok, true
			}
		}
		return Fail(from.String() + " is not assignable to any member of " + to.String()), true
	}
	return Result{}, false
}

// assignJoin implements rule 14.
func assignJoin(c *Checker, from, to types.Description) (Result, bool) {
	if j, ok := from.(*types.JoinType); ok {
		for _, m := range j.Members {
			if res := c.IsAssignable(m, to); res.Success {
				return Ok, true
			}
		}
		return Fail("no member of " + from.String() + " is assignable to " + to.String()), true
	}
	if j, ok := to.(*types.JoinType); ok {
		for _, m := range j.Members {
			if res := c.IsAssignable(from, m); !res.Success {
				return Fail(from.String() + " is not assignable to join member " + m.String()), true
			}
		}
		return Ok, true
	}
	return Result{}, false
}

// assignNominal implements rule 15: class/interface assignability.
func (c *Checker) assignNominal(from, to types.Description) (Result, bool) {
	if ref, ok := to.(*types.ReferenceType); ok {
		switch from.(type) {
		case *types.ClassType, *types.InterfaceType:
			return c.IsAssignable(from, resolve(c.resolver, ref)), true
		}
	}
	switch fromVal := from.(type) {
	case *types.ClassType:
		switch toVal := to.(type) {
		case *types.ClassType:
			if fromVal == toVal {
				return Ok, true
			}
			return Fail("classes " + fromVal.Name + " and " + toVal.Name + " are unrelated"), true
		case *types.InterfaceType:
			effective := c.effectiveClassMethods(fromVal)
			for _, im := range c.allInterfaceMethods(toVal) {
				if !classSatisfiesMethod(c, effective, im) {
					return Fail(fromVal.Name + " is missing a compatible " + firstName(im) + " method for interface " + toVal.Name), true
				}
			}
			return Ok, true
		}
	case *types.InterfaceType:
		toVal, ok := to.(*types.InterfaceType)
		if !ok {
			return Result{}, false
		}
		effective := c.allInterfaceMethods(fromVal)
		for _, im := range c.allInterfaceMethods(toVal) {
			if !classSatisfiesMethod(c, effective, im) {
				return Fail(fromVal.Name + " is missing a compatible " + firstName(im) + " method for interface " + toVal.Name), true
			}
		}
		return Ok, true
	}
	return Result{}, false
}

// effectiveClassMethods resolves class's Implementations (the type
// provider only ever leaves these as unresolved References to an
// ImplementationDecl) before delegating to ClassType.EffectiveMethods,
// which otherwise silently drops any Implementations entry that isn't
// already a structural ImplementationType.
func (c *Checker) effectiveClassMethods(class *types.ClassType) []types.MethodDesc {
	resolved := make([]types.Description, len(class.Implementations))
	for i, impl := range class.Implementations {
		resolved[i] = underlying(c, impl)
	}
	return types.NewClass(class.Name, class.Attributes, class.Methods, class.SuperTypes, resolved).EffectiveMethods()
}

// allInterfaceMethods is InterfaceType.AllMethods generalized to resolve
// a SuperTypes entry through the checker first: the type provider builds
// a `super X` clause as a Reference(interfaceDecl) like any other named
// type expression, so InterfaceType's own AllMethods (which only
// descends into an already-structural *InterfaceType) would otherwise
// silently stop at the first unresolved super-interface.
func (c *Checker) allInterfaceMethods(iface *types.InterfaceType) []types.MethodDesc {
	seen := map[string]bool{}
	var out []types.MethodDesc
	var walk func(i *types.InterfaceType)
	walk = func(i *types.InterfaceType) {
		for _, m := range i.Methods {
			key := strings.Join(m.Names, ",")
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, m)
		}
		for _, super := range i.SuperTypes {
			if si, ok := underlying(c, super).(*types.InterfaceType); ok {
				walk(si)
			}
		}
	}
	walk(iface)
	return out
}

func firstName(m types.MethodDesc) string {
	if len(m.Names) == 0 {
		return "<anonymous>"
	}
	return m.Names[0]
}

func classSatisfiesMethod(c *Checker, effective []types.MethodDesc, iface types.MethodDesc) bool {
	for _, cm := range effective {
		if !cm.SharesNameWith(iface) {
			continue
		}
		if cm.IsLocal {
			continue
		}
		if len(cm.Parameters) != len(iface.Parameters) {
			continue
		}
		match := true
		for i := range cm.Parameters {
			if cm.Parameters[i].IsMut != iface.Parameters[i].IsMut {
				match = false
				break
			}
			if !c.AreEqual(cm.Parameters[i].Type, iface.Parameters[i].Type).Success {
				match = false
				break
			}
		}
		if !match {
			continue
		}
		if !c.IsAssignable(cm.ReturnType, iface.ReturnType).Success {
			continue
		}
		return true
	}
	return false
}

// assignVariant implements rule 16.
func (c *Checker) assignVariant(from, to types.Description) (Result, bool) {
	switch fromVal := from.(type) {
	case *types.VariantConstructorType:
		switch toVal := to.(type) {
		case *types.VariantType:
			return variantCtorToVariant(c, fromVal, toVal), true
		case *types.VariantConstructorType:
			if fromVal.ConstructorName != toVal.ConstructorName || fromVal.BaseVariant != toVal.BaseVariant {
				return Fail("constructors " + fromVal.String() + " and " + toVal.String() + " are unrelated"), true
			}
			return genericArgsAssignable(c, fromVal.GenericArgs, toVal.GenericArgs), true
		}
	case *types.VariantType:
		toVal, ok := to.(*types.VariantType)
		if !ok {
			return Result{}, false
		}
		return variantToVariant(c, fromVal, toVal), true
	case *types.ReferenceType:
		toVal, ok := to.(*types.ReferenceType)
		if !ok {
			return Result{}, false
		}
		if fromVal.Declaration != toVal.Declaration {
			return Fail("references name different declarations"), true
		}
		return genericArgsAssignable(c, fromVal.GenericArgs, toVal.GenericArgs), true
	}
	return Result{}, false
}

func genericArgsAssignable(c *Checker, from, to []types.Description) Result {
	if len(from) != len(to) {
		return Fail("generic argument counts differ")
	}
	for i := range from {
		if from[i].Kind() == types.KindNever || to[i].Kind() == types.KindNever {
			continue
		}
		if res := c.IsAssignable(from[i], to[i]); !res.Success {
			return Fail("generic argument " + res.Message)
		}
	}
	return Ok
}

func variantCtorToVariant(c *Checker, ctor *types.VariantConstructorType, target *types.VariantType) Result {
	targetCtor, ok := target.Constructor(ctor.ConstructorName)
	if !ok {
		return Fail("variant " + target.Name + " has no constructor named " + ctor.ConstructorName)
	}
	params := ctor.Parameters(func(t types.Description, sigma map[string]types.Description) types.Description {
		return c.Substitute(t, sigma)
	})
	if len(params) != len(targetCtor.Parameters) {
		return Fail("constructor " + ctor.ConstructorName + " arity differs")
	}
	for i := range params {
		if params[i].Type.Kind() == types.KindNever {
			continue
		}
		if res := c.IsAssignable(params[i].Type, targetCtor.Parameters[i].Type); !res.Success {
			return Fail("constructor " + ctor.ConstructorName + " parameter " + params[i].Name + ": " + res.Message)
		}
	}
	return Ok
}

func variantToVariant(c *Checker, from, to *types.VariantType) Result {
	for _, fc := range from.Constructors {
		tc, ok := to.Constructor(fc.Name)
		if !ok {
			return Fail("target variant " + to.Name + " has no constructor named " + fc.Name)
		}
		if len(fc.Parameters) != len(tc.Parameters) {
			return Fail("constructor " + fc.Name + " arity differs")
		}
		for i := range fc.Parameters {
			if fc.Parameters[i].Name != tc.Parameters[i].Name {
				return Fail("constructor " + fc.Name + " parameter names differ")
			}
			if res := c.IsAssignable(fc.Parameters[i].Type, tc.Parameters[i].Type); !res.Success {
				return Fail("constructor " + fc.Name + " parameter " + fc.Parameters[i].Name + ": " + res.Message)
			}
		}
	}
	return Ok
}
