// Package types holds the closed set of type descriptions and the sole
// factory functions that build them. Every description carries a fixed
// Kind, an optional AST back-reference for diagnostics, and an optional
// Errors() list that lets substitution attach context-qualified
// diagnostics without aborting inference.
//
// Shaped like a closed Type interface with String()/TypeKind(), one
// struct per kind, package-level singletons for the primitives, widened
// to the much larger closed set this language's algebra requires: unions,
// joins, variants, generics, coroutines and meta-wrappers.
package types

// Kind discriminates the closed set of type descriptions. It is
// immutable once a Description is constructed.
type Kind string

const (
	KindU8  Kind = "U8"
	KindU16 Kind = "U16"
	KindU32 Kind = "U32"
	KindU64 Kind = "U64"
	KindI8  Kind = "I8"
	KindI16 Kind = "I16"
	KindI32 Kind = "I32"
	KindI64 Kind = "I64"
	KindF32 Kind = "F32"
	KindF64 Kind = "F64"

	KindBool  Kind = "BOOL"
	KindVoid  Kind = "VOID"
	KindString Kind = "STRING"
	KindNull  Kind = "NULL"
	KindNever Kind = "NEVER"
	KindAny   Kind = "ANY"
	KindUnset Kind = "UNSET"
	KindError Kind = "ERROR"

	KindStringLiteral Kind = "STRING_LITERAL"
	KindStringEnum    Kind = "STRING_ENUM"

	KindArray    Kind = "ARRAY"
	KindNullable Kind = "NULLABLE"
	KindUnion    Kind = "UNION"
	KindJoin     Kind = "JOIN"
	KindTuple    Kind = "TUPLE"

	KindStruct Kind = "STRUCT"

	KindInterface      Kind = "INTERFACE"
	KindClass          Kind = "CLASS"
	KindImplementation Kind = "IMPLEMENTATION"
	KindVariant        Kind = "VARIANT"
	KindVariantCtor    Kind = "VARIANT_CONSTRUCTOR"
	KindEnum           Kind = "ENUM"

	KindMetaClass      Kind = "META_CLASS"
	KindMetaVariant    Kind = "META_VARIANT"
	KindMetaVariantCtor Kind = "META_VARIANT_CONSTRUCTOR"
	KindMetaEnum       Kind = "META_ENUM"

	KindFunction  Kind = "FUNCTION"
	KindCoroutine Kind = "COROUTINE"

	KindGeneric   Kind = "GENERIC"
	KindReference Kind = "REFERENCE"

	KindPrototype Kind = "PROTOTYPE"

	KindNamespace  Kind = "NAMESPACE"
	KindFFI        Kind = "FFI"
	KindReturnType Kind = "RETURN_TYPE"
	KindTypeGuard  Kind = "TYPE_GUARD"
)

// FnKind distinguishes a plain function type from a coroutine function
// type.
type FnKind string

const (
	FnPlain     FnKind = "plain"
	FnCoroutine FnKind = "coroutine"
)

// PrototypeTarget names which built-in kind a Prototype's members belong to.
type PrototypeTarget string

const (
	PrototypeArray     PrototypeTarget = "array"
	PrototypeCoroutine PrototypeTarget = "coroutine"
	PrototypeString    PrototypeTarget = "string"
)
