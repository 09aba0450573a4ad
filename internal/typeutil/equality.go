package typeutil

import "github.com/typecore/corelang/internal/types"

// AreEqual decides structural equality. Union, Join and Tuple have no
// defined equality — only assignability and simplification compare
// them — so those kinds always fail here regardless of operands.
func (c *Checker) AreEqual(a, b types.Description) Result {
	if a == nil || b == nil {
		return Fail("cannot compare nil type")
	}
	if a.Kind() != b.Kind() {
		return Fail("kind mismatch: " + string(a.Kind()) + " vs " + string(b.Kind()))
	}
	switch a.Kind() {
	case types.KindU8, types.KindU16, types.KindU32, types.KindU64,
		types.KindI8, types.KindI16, types.KindI32, types.KindI64,
		types.KindF32, types.KindF64,
		types.KindBool, types.KindVoid, types.KindString, types.KindNull,
		types.KindNever, types.KindAny, types.KindUnset, types.KindError:
		return Ok

	case types.KindUnion, types.KindJoin, types.KindTuple:
		return Fail("equality is undefined for " + string(a.Kind()))

	case types.KindStringLiteral:
		av, bv := a.(*types.StringLiteralType), b.(*types.StringLiteralType)
		if av.Value == bv.Value {
			return Ok
		}
		return Fail("string literals differ")

	case types.KindStringEnum:
		av, bv := a.(*types.StringEnumType), b.(*types.StringEnumType)
		if len(av.Values) != len(bv.Values) {
			return Fail("string enum value sets differ")
		}
		for v := range av.Values {
			if !bv.Contains(v) {
				return Fail("string enum value sets differ")
			}
		}
		return Ok

	case types.KindArray:
		av, bv := a.(*types.ArrayType), b.(*types.ArrayType)
		return c.AreEqual(av.Element, bv.Element)

	case types.KindNullable:
		av, bv := a.(*types.NullableType), b.(*types.NullableType)
		return c.AreEqual(av.BaseType, bv.BaseType)

	case types.KindStruct:
		return structsEqual(c, a.(*types.StructType), b.(*types.StructType))

	case types.KindFunction:
		return functionsEqual(c, a.(*types.FunctionType), b.(*types.FunctionType))

	case types.KindCoroutine:
		av, bv := a.(*types.CoroutineType), b.(*types.CoroutineType)
		if len(av.Parameters) != len(bv.Parameters) {
			return Fail("coroutine arity differs")
		}
		for i := range av.Parameters {
			if res := paramsEqual(c, av.Parameters[i], bv.Parameters[i]); !res.Success {
				return res
			}
		}
		return c.AreEqual(av.YieldType, bv.YieldType)

	case types.KindReference:
		av, bv := a.(*types.ReferenceType), b.(*types.ReferenceType)
		if av.Declaration != bv.Declaration {
			return Fail("reference declarations differ")
		}
		if len(av.GenericArgs) != len(bv.GenericArgs) {
			return Fail("reference generic argument counts differ")
		}
		for i := range av.GenericArgs {
			if res := c.AreEqual(av.GenericArgs[i], bv.GenericArgs[i]); !res.Success {
				return res
			}
		}
		return Ok

	case types.KindGeneric:
		av, bv := a.(*types.GenericType), b.(*types.GenericType)
		if av.Name == bv.Name {
			return Ok
		}
		return Fail("generic parameter names differ")

	case types.KindVariant:
		return variantsEqual(c, a.(*types.VariantType), b.(*types.VariantType))

	case types.KindVariantCtor:
		av, bv := a.(*types.VariantConstructorType), b.(*types.VariantConstructorType)
		if av.ConstructorName != bv.ConstructorName || av.BaseVariant != bv.BaseVariant {
			return Fail("variant constructors differ")
		}
		if len(av.GenericArgs) != len(bv.GenericArgs) {
			return Fail("variant constructor generic argument counts differ")
		}
		for i := range av.GenericArgs {
			if res := c.AreEqual(av.GenericArgs[i], bv.GenericArgs[i]); !res.Success {
				return res
			}
		}
		return Ok

	case types.KindEnum:
		av, bv := a.(*types.EnumType), b.(*types.EnumType)
		if av == bv {
			return Ok
		}
		return Fail("enum declarations differ")

	case types.KindInterface:
		if a.(*types.InterfaceType) == b.(*types.InterfaceType) {
			return Ok
		}
		return Fail("interface declarations differ")

	case types.KindClass:
		if a.(*types.ClassType) == b.(*types.ClassType) {
			return Ok
		}
		return Fail("class declarations differ")

	case types.KindImplementation:
		if a.(*types.ImplementationType) == b.(*types.ImplementationType) {
			return Ok
		}
		return Fail("implementation declarations differ")

	case types.KindTypeGuard:
		av, bv := a.(*types.TypeGuardType), b.(*types.TypeGuardType)
		if av.ParameterIndex != bv.ParameterIndex {
			return Fail("type guard parameter indices differ")
		}
		return c.AreEqual(av.GuardedType, bv.GuardedType)

	default:
		if a == b {
			return Ok
		}
		return Fail(string(a.Kind()) + " equality falls back to identity")
	}
}

func structsEqual(c *Checker, a, b *types.StructType) Result {
	if len(a.Fields) != len(b.Fields) {
		return Fail("struct field counts differ")
	}
	for _, fa := range a.Fields {
		fb, ok := b.Field(fa.Name)
		if !ok {
			return Fail("struct field " + fa.Name + " missing on right side")
		}
		if res := c.AreEqual(fa.Type, fb.Type); !res.Success {
			return Fail("struct field " + fa.Name + ": " + res.Message)
		}
	}
	return Ok
}

func paramsEqual(c *Checker, a, b types.FunctionParam) Result {
	if a.IsMut != b.IsMut {
		return Fail("parameter mutability differs")
	}
	return c.AreEqual(a.Type, b.Type)
}

func functionsEqual(c *Checker, a, b *types.FunctionType) Result {
	if a.FnType != b.FnType {
		return Fail("function kind (plain vs coroutine) differs")
	}
	if len(a.Parameters) != len(b.Parameters) {
		return Fail("function arity differs")
	}
	for i := range a.Parameters {
		if res := paramsEqual(c, a.Parameters[i], b.Parameters[i]); !res.Success {
			return res
		}
	}
	return c.AreEqual(a.ReturnType, b.ReturnType)
}

func variantsEqual(c *Checker, a, b *types.VariantType) Result {
	if len(a.Constructors) != len(b.Constructors) {
		return Fail("variant constructor counts differ")
	}
	for _, ca := range a.Constructors {
		cb, ok := b.Constructor(ca.Name)
		if !ok {
			return Fail("variant constructor " + ca.Name + " missing on right side")
		}
		if len(ca.Parameters) != len(cb.Parameters) {
			return Fail("variant constructor " + ca.Name + " arity differs")
		}
		for i := range ca.Parameters {
			if ca.Parameters[i].Name != cb.Parameters[i].Name {
				return Fail("variant constructor " + ca.Name + " parameter names differ")
			}
			if res := c.AreEqual(ca.Parameters[i].Type, cb.Parameters[i].Type); !res.Success {
				return res
			}
		}
	}
	return Ok
}
