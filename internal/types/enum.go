package types

// EnumType is an integer-backed enum.
// Encoding, when non-nil, names the underlying Numeric kind (defaults to
// i32-equivalent semantics when nil, matching most integer-encoded enums).
type EnumType struct {
	base
	Name     string
	Cases    []EnumCaseDesc
	Encoding *Numeric
}

func (e *EnumType) Kind() Kind     { return KindEnum }
func (e *EnumType) String() string { return e.Name }

// NewEnum constructs an Enum description.
func NewEnum(name string, encoding *Numeric, cases ...EnumCaseDesc) *EnumType {
	return &EnumType{Name: name, Cases: cases, Encoding: encoding}
}

// CaseNames returns the enum's case names in declaration order.
func (e *EnumType) CaseNames() []string {
	names := make([]string, len(e.Cases))
	for i, c := range e.Cases {
		names[i] = c.Name
	}
	return names
}

// HasCase reports whether name is one of the enum's cases.
func (e *EnumType) HasCase(name string) bool {
	for _, c := range e.Cases {
		if c.Name == name {
			return true
		}
	}
	return false
}
