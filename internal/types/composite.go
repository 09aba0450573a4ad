package types

import "strings"

// ArrayType is a homogeneous array of Element.
type ArrayType struct {
	base
	Element Description
}

func (a *ArrayType) Kind() Kind { return KindArray }
func (a *ArrayType) String() string {
	if a.Element == nil {
		return "never[]"
	}
	return a.Element.String() + "[]"
}

// NewArray constructs an Array description.
func NewArray(element Description) *ArrayType {
	return &ArrayType{Element: element}
}

// NullableType is `T | null`, under the constraint that T is not itself
// nullable.
//
// Constructing a Nullable never panics or returns an error type outright
// for the single-level case: a Nullable(basic) is structurally legal
// during inference (needed for `v?.get() ?? default` transiently
// producing `u32?`) but is flagged via Errors() for validation to reject
// on explicit annotations. Nullable(Nullable(_)) is forbidden outright,
// and NewNullable refuses to construct it, instead flattening to the
// same single level with an attached error, since double-nullable has
// no legal structural meaning to propagate.
type NullableType struct {
	base
	BaseType Description
}

func (n *NullableType) Kind() Kind { return KindNullable }
func (n *NullableType) String() string {
	if n.BaseType == nil {
		return "never?"
	}
	return n.BaseType.String() + "?"
}

// NewNullable constructs a Nullable description. If base is itself
// Nullable, one level is flattened and an error is attached instead of
// nesting — nesting is never observable from outside this package.
func NewNullable(baseType Description) *NullableType {
	if inner, ok := baseType.(*NullableType); ok {
		n := &NullableType{BaseType: inner.BaseType}
		n.addErrors("nullable of nullable type is forbidden")
		return n
	}
	n := &NullableType{BaseType: baseType}
	if baseType != nil && isBasicShallow(baseType.Kind()) {
		n.addErrors("nullable primitive type")
	}
	return n
}

func isBasicShallow(k Kind) bool {
	switch k {
	case KindU8, KindU16, KindU32, KindU64, KindI8, KindI16, KindI32, KindI64, KindF32, KindF64, KindBool, KindNull:
		return true
	default:
		return false
	}
}

// UnionType is a union of its member types. Equality over Union is
// undefined; only assignability/simplification compare it.
type UnionType struct {
	base
	Members []Description
}

func (u *UnionType) Kind() Kind { return KindUnion }
func (u *UnionType) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

// NewUnion constructs a Union description from its members, preserving order.
func NewUnion(members ...Description) *UnionType {
	return &UnionType{Members: members}
}

// JoinType is the intersection of its member types.
type JoinType struct {
	base
	Members []Description
}

func (j *JoinType) Kind() Kind { return KindJoin }
func (j *JoinType) String() string {
	parts := make([]string, len(j.Members))
	for i, m := range j.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " & ")
}

// NewJoin constructs a Join description from its members, preserving order.
func NewJoin(members ...Description) *JoinType {
	return &JoinType{Members: members}
}

// TupleType is a fixed-length, heterogeneous sequence of element types.
type TupleType struct {
	base
	Elements []Description
}

func (t *TupleType) Kind() Kind { return KindTuple }
func (t *TupleType) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// NewTuple constructs a Tuple description from its elements.
func NewTuple(elements ...Description) *TupleType {
	return &TupleType{Elements: elements}
}
