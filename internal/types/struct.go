package types

import "strings"

// StructType is a structural record type: field name/type pairs.
// Width+depth subtyping applies to it.
type StructType struct {
	base
	Fields      []StructFieldDesc
	IsAnonymous bool
}

func (s *StructType) Kind() Kind { return KindStruct }
func (s *StructType) String() string {
	parts := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		parts[i] = f.Name + ": " + f.Type.String()
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// Field looks up a field by name, returning (field, true) if present.
func (s *StructType) Field(name string) (StructFieldDesc, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return StructFieldDesc{}, false
}

// NewStruct constructs a Struct description. Field order is preserved
// exactly as given since the language's structural rules (equality,
// width subtyping) are order-independent but display is not.
func NewStruct(isAnonymous bool, fields ...StructFieldDesc) *StructType {
	return &StructType{Fields: fields, IsAnonymous: isAnonymous}
}
