package types

import "strings"

// InterfaceType is an interface: a method set plus its super-interfaces.
type InterfaceType struct {
	base
	Name       string
	Methods    []MethodDesc
	SuperTypes []Description
}

func (i *InterfaceType) Kind() Kind     { return KindInterface }
func (i *InterfaceType) String() string { return i.Name }

// NewInterface constructs an Interface description.
func NewInterface(name string, methods []MethodDesc, superTypes []Description) *InterfaceType {
	return &InterfaceType{Name: name, Methods: methods, SuperTypes: superTypes}
}

// AllMethods returns this interface's methods merged with every
// transitive super-interface's methods (the full method closure).
// SuperTypes members that aren't themselves resolved InterfaceTypes are
// skipped — callers are expected to have already resolved references
// before calling this.
func (i *InterfaceType) AllMethods() []MethodDesc {
	seen := map[string]bool{}
	var out []MethodDesc
	var walk func(iface *InterfaceType)
	walk = func(iface *InterfaceType) {
		for _, m := range iface.Methods {
			key := strings.Join(m.Names, ",")
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, m)
		}
		for _, super := range iface.SuperTypes {
			if si, ok := super.(*InterfaceType); ok {
				walk(si)
			}
		}
	}
	walk(i)
	return out
}

// ClassType is a class: attributes, methods, super types and mixed-in
// implementations.
type ClassType struct {
	base
	Name            string
	Attributes      []AttributeDesc
	Methods         []MethodDesc
	SuperTypes      []Description
	Implementations []Description
}

func (c *ClassType) Kind() Kind     { return KindClass }
func (c *ClassType) String() string { return c.Name }

// NewClass constructs a Class description.
func NewClass(name string, attrs []AttributeDesc, methods []MethodDesc, superTypes, implementations []Description) *ClassType {
	return &ClassType{Name: name, Attributes: attrs, Methods: methods, SuperTypes: superTypes, Implementations: implementations}
}

// EffectiveMethods merges the class's own methods with methods inherited
// from its Implementations. An override method declared directly on the
// class shadows an identically-named method inherited from an
// implementation.
func (c *ClassType) EffectiveMethods() []MethodDesc {
	out := make([]MethodDesc, 0, len(c.Methods))
	own := map[string]bool{}
	for _, m := range c.Methods {
		for _, n := range m.Names {
			own[n] = true
		}
		out = append(out, m)
	}
	for _, impl := range c.Implementations {
		implType, ok := impl.(*ImplementationType)
		if !ok {
			continue
		}
		for _, m := range implType.Methods {
			shadowed := false
			for _, n := range m.Names {
				if own[n] {
					shadowed = true
					break
				}
			}
			if !shadowed {
				out = append(out, m)
			}
		}
	}
	return out
}

// ImplementationType is a mixin-like unit attached to classes:
// attributes, methods, and an optional target class.
type ImplementationType struct {
	base
	Name       string
	Attributes []AttributeDesc
	Methods    []MethodDesc
	TargetType Description // nil until attached to a class
}

func (i *ImplementationType) Kind() Kind     { return KindImplementation }
func (i *ImplementationType) String() string { return "implementation " + i.Name }

// NewImplementation constructs an Implementation description.
func NewImplementation(name string, attrs []AttributeDesc, methods []MethodDesc, target Description) *ImplementationType {
	return &ImplementationType{Name: name, Attributes: attrs, Methods: methods, TargetType: target}
}
