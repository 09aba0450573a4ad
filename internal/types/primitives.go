package types

import (
	"fmt"

	"github.com/typecore/corelang/internal/ast"
)

// Numeric is a primitive numeric type: one of the ten fixed-width
// integer/float kinds. Integers carry
// Signed/Bits; floats carry only Bits (Signed is meaningless for them
// and left false).
type Numeric struct {
	base
	kind   Kind
	Signed bool
	Bits   int
}

func (n *Numeric) Kind() Kind { return n.kind }

// setNode is a deliberate no-op: Numeric values are shared package-level
// singletons, never per-occurrence allocations, so stamping an AST node
// onto one would leak across every unrelated use of the same numeric
// kind. WithNode silently does nothing when called on a Numeric.
func (n *Numeric) setNode(ast.Node) {}
func (n *Numeric) String() string {
	switch n.kind {
	case KindF32, KindF64:
		return fmt.Sprintf("f%d", n.Bits)
	}
	prefix := "i"
	if !n.Signed {
		prefix = "u"
	}
	return fmt.Sprintf("%s%d", prefix, n.Bits)
}

func newInt(kind Kind, bits int, signed bool) *Numeric {
	return &Numeric{kind: kind, Bits: bits, Signed: signed}
}

func newFloat(kind Kind, bits int) *Numeric {
	return &Numeric{kind: kind, Bits: bits}
}

// Package-level singletons for the ten numeric kinds.
var (
	U8Type  = newInt(KindU8, 8, false)
	U16Type = newInt(KindU16, 16, false)
	U32Type = newInt(KindU32, 32, false)
	U64Type = newInt(KindU64, 64, false)
	I8Type  = newInt(KindI8, 8, true)
	I16Type = newInt(KindI16, 16, true)
	I32Type = newInt(KindI32, 32, true)
	I64Type = newInt(KindI64, 64, true)
	F32Type = newFloat(KindF32, 32)
	F64Type = newFloat(KindF64, 64)
)

// allNumerics is used by FromString and IsBasic.
var allNumerics = []*Numeric{
	U8Type, U16Type, U32Type, U64Type,
	I8Type, I16Type, I32Type, I64Type,
	F32Type, F64Type,
}

// FromString builds the numeric type named by its canonical spelling
// (u8..u64, i8..i64, f32, f64). Returns an Error description for any
// other input, per this core's no-exceptions policy.
func FromString(name string) Description {
	for _, n := range allNumerics {
		if n.String() == name {
			return n
		}
	}
	return NewError(fmt.Sprintf("unknown primitive type name %q", name), nil, nil)
}

// simple is the shared shape for the primitives that carry no payload:
// Bool, Void, String, Null, Never, Any, Unset.
type simple struct {
	base
	kind Kind
	text string
}

func (s *simple) Kind() Kind     { return s.kind }
func (s *simple) String() string { return s.text }

// setNode is a no-op for the same reason Numeric's is: Bool, Void, Str,
// Null, Never, Any and Unset are shared singletons, not per-occurrence
// values.
func (s *simple) setNode(ast.Node) {}

var (
	Bool  = &simple{kind: KindBool, text: "bool"}
	Void  = &simple{kind: KindVoid, text: "void"}
	Str   = &simple{kind: KindString, text: "string"}
	Null  = &simple{kind: KindNull, text: "null"}
	Never = &simple{kind: KindNever, text: "never"}
	Any   = &simple{kind: KindAny, text: "any"}
	Unset = &simple{kind: KindUnset, text: "<unset>"}
)

// ErrorDesc is a carrier type that propagates through subsequent
// operations and silences cascading diagnostics.
type ErrorDesc struct {
	base
	Message string
	Cause   Description
}

func (e *ErrorDesc) Kind() Kind     { return KindError }
func (e *ErrorDesc) String() string { return "<error: " + e.Message + ">" }

// NewError constructs an Error description. cause and node may be nil.
func NewError(message string, cause Description, node ast.Node) *ErrorDesc {
	return &ErrorDesc{base: base{node: node}, Message: message, Cause: cause}
}

// IsBasic recognises the numeric/bool/null primitives, resolving through
// a single Reference indirection but excluding String. resolveRef is
// supplied by the caller to resolve Reference(decl, args) to its
// underlying structural type exactly once.
func IsBasic(t Description, resolveRef func(*Reference) Description) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case KindU8, KindU16, KindU32, KindU64, KindI8, KindI16, KindI32, KindI64, KindF32, KindF64, KindBool, KindNull:
		return true
	case KindReference:
		ref := t.(*Reference)
		if resolveRef == nil {
			return false
		}
		resolved := resolveRef(ref)
		if resolved == nil || resolved.Kind() == KindReference {
			return false
		}
		return IsBasic(resolved, nil)
	default:
		return false
	}
}
