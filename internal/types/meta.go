package types

import "strings"

// MetaClassType is the type of a class used as a value (e.g. passed to
// a function expecting a class object).
type MetaClassType struct {
	base
	BaseClass *ClassType
}

func (m *MetaClassType) Kind() Kind { return KindMetaClass }
func (m *MetaClassType) String() string {
	if m.BaseClass == nil {
		return "<class>"
	}
	return "class<" + m.BaseClass.Name + ">"
}

// NewMetaClass constructs a MetaClass description.
func NewMetaClass(base *ClassType) *MetaClassType { return &MetaClassType{BaseClass: base} }

// MetaVariantType is the type of a variant used as a value, with its
// generic arguments fixed.
type MetaVariantType struct {
	base
	BaseVariant *VariantType
	GenericArgs []Description
}

func (m *MetaVariantType) Kind() Kind { return KindMetaVariant }
func (m *MetaVariantType) String() string {
	if m.BaseVariant == nil {
		return "<variant>"
	}
	if len(m.GenericArgs) == 0 {
		return "variant<" + m.BaseVariant.Name + ">"
	}
	parts := make([]string, len(m.GenericArgs))
	for i, a := range m.GenericArgs {
		parts[i] = a.String()
	}
	return "variant<" + m.BaseVariant.Name + "<" + strings.Join(parts, ", ") + ">>"
}

// NewMetaVariant constructs a MetaVariant description.
func NewMetaVariant(base *VariantType, args []Description) *MetaVariantType {
	return &MetaVariantType{BaseVariant: base, GenericArgs: args}
}

// MetaVariantConstructorType is the type of a variant constructor used
// as a value (e.g. passed around before being applied to arguments).
type MetaVariantConstructorType struct {
	base
	BaseVariantConstructor *VariantConstructorType
	GenericArgs            []Description
}

func (m *MetaVariantConstructorType) Kind() Kind { return KindMetaVariantCtor }
func (m *MetaVariantConstructorType) String() string {
	if m.BaseVariantConstructor == nil {
		return "<variant constructor>"
	}
	return "ctor<" + m.BaseVariantConstructor.String() + ">"
}

// NewMetaVariantConstructor constructs a MetaVariantConstructor description.
func NewMetaVariantConstructor(base *VariantConstructorType, args []Description) *MetaVariantConstructorType {
	return &MetaVariantConstructorType{BaseVariantConstructor: base, GenericArgs: args}
}

// MetaEnumType is the type of an enum used as a value.
type MetaEnumType struct {
	base
	BaseEnum *EnumType
}

func (m *MetaEnumType) Kind() Kind { return KindMetaEnum }
func (m *MetaEnumType) String() string {
	if m.BaseEnum == nil {
		return "<enum>"
	}
	return "enum<" + m.BaseEnum.Name + ">"
}

// NewMetaEnum constructs a MetaEnum description.
func NewMetaEnum(base *EnumType) *MetaEnumType { return &MetaEnumType{BaseEnum: base} }
