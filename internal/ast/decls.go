package ast

// Declaration is anything a Reference type expression can name: a type
// alias body, a class, an interface, a variant, an enum, or a function
// signature used as a function-type alias.
type Declaration interface {
	Node
	DeclName() string
	GenericParams() []*GenericParam
	declNode()
}

// GenericParam is one generic parameter of a declaration, e.g. `<T: Comparable>`.
type GenericParam struct {
	base
	Name       string
	Constraint TypeExpression // nil when unconstrained
}

// StructField is a single field of a Struct type or a VariantConstructor's
// parameter list.
type StructField struct {
	base
	Name string
	Type TypeExpression
}

func (f *StructField) String() string { return "field " + f.Name }

// ParamDecl is one parameter of a function or method.
type ParamDecl struct {
	base
	Name  string
	Type  TypeExpression
	IsMut bool
}

// MethodDecl models a method declaration: names, generic parameters,
// parameters, return type, and its static/override/local flags.
type MethodDecl struct {
	base
	Names            []string // multiple operator spellings bind one method
	GenericParamList []*GenericParam
	Parameters       []*ParamDecl
	ReturnType       TypeExpression
	IsStatic         bool
	IsOverride       bool
	IsLocal          bool
}

func (m *MethodDecl) String() string { return "method " + firstOrEmpty(m.Names) }

func firstOrEmpty(names []string) string {
	if len(names) == 0 {
		return "<anonymous>"
	}
	return names[0]
}

// AttributeDecl models a class or implementation attribute declaration.
type AttributeDecl struct {
	base
	Name     string
	Type     TypeExpression
	IsStatic bool
	IsConst  bool
	IsLocal  bool
}

func (a *AttributeDecl) String() string { return "attribute " + a.Name }

// ClassDecl declares a class: attributes, methods, super types and mixed-in
// implementations.
type ClassDecl struct {
	base
	Name            string
	GenericParamList []*GenericParam
	Attributes      []*AttributeDecl
	Methods         []*MethodDecl
	SuperTypes      []TypeExpression
	Implementations []TypeExpression
}

func (c *ClassDecl) DeclName() string              { return c.Name }
func (c *ClassDecl) GenericParams() []*GenericParam { return c.GenericParamList }
func (c *ClassDecl) declNode()                      {}
func (c *ClassDecl) String() string                 { return "class " + c.Name }

// InterfaceDecl declares an interface: methods and super-interfaces.
type InterfaceDecl struct {
	base
	Name             string
	GenericParamList []*GenericParam
	Methods          []*MethodDecl
	SuperTypes       []TypeExpression
}

func (i *InterfaceDecl) DeclName() string              { return i.Name }
func (i *InterfaceDecl) GenericParams() []*GenericParam { return i.GenericParamList }
func (i *InterfaceDecl) declNode()                      {}
func (i *InterfaceDecl) String() string                 { return "interface " + i.Name }

// ImplementationDecl declares a mixin-like implementation unit attached to
// classes.
type ImplementationDecl struct {
	base
	Name       string
	Attributes []*AttributeDecl
	Methods    []*MethodDecl
	TargetType TypeExpression // nil when not yet attached
}

func (i *ImplementationDecl) DeclName() string              { return i.Name }
func (i *ImplementationDecl) GenericParams() []*GenericParam { return nil }
func (i *ImplementationDecl) declNode()                      {}
func (i *ImplementationDecl) String() string                 { return "implementation " + i.Name }

// VariantConstructorDecl is one arm of a variant declaration.
type VariantConstructorDecl struct {
	base
	Name       string
	Parameters []*StructField
}

// VariantDecl declares an algebraic data type.
type VariantDecl struct {
	base
	Name             string
	GenericParamList []*GenericParam
	Constructors     []*VariantConstructorDecl
}

func (v *VariantDecl) DeclName() string              { return v.Name }
func (v *VariantDecl) GenericParams() []*GenericParam { return v.GenericParamList }
func (v *VariantDecl) declNode()                      {}
func (v *VariantDecl) String() string                 { return "variant " + v.Name }

// EnumCase is one case of an Enum declaration, with an optional explicit value.
type EnumCase struct {
	Name  string
	Value *int64 // nil when auto-assigned
}

// EnumDecl declares an integer-backed or string-backed enum.
type EnumDecl struct {
	base
	Name     string
	Cases    []EnumCase
	IsString bool // true => StringEnum, false => integer-encoded Enum
}

func (e *EnumDecl) DeclName() string              { return e.Name }
func (e *EnumDecl) GenericParams() []*GenericParam { return nil }
func (e *EnumDecl) declNode()                      {}
func (e *EnumDecl) String() string                 { return "enum " + e.Name }

// FunctionDecl declares a free function or a named function-type alias.
type FunctionDecl struct {
	base
	Name             string
	GenericParamList []*GenericParam
	Parameters       []*ParamDecl
	ReturnType       TypeExpression
	IsCoroutine      bool
}

func (f *FunctionDecl) DeclName() string              { return f.Name }
func (f *FunctionDecl) GenericParams() []*GenericParam { return f.GenericParamList }
func (f *FunctionDecl) declNode()                      {}
func (f *FunctionDecl) String() string                 { return "function " + f.Name }

// AliasDecl is a named type alias: `type Name<T...> = Definition`. This
// is the `decl` side of a Reference(declaration, genericArgs) type — its
// Definition can itself be a TypeRef to a ClassDecl/InterfaceDecl/etc., a
// struct literal, a function-type expression, or another AliasDecl (the
// recursive case the type provider must terminate on).
type AliasDecl struct {
	base
	Name             string
	GenericParamList []*GenericParam
	Definition       TypeExpression
}

func (a *AliasDecl) DeclName() string              { return a.Name }
func (a *AliasDecl) GenericParams() []*GenericParam { return a.GenericParamList }
func (a *AliasDecl) declNode()                      {}
func (a *AliasDecl) String() string                 { return "type " + a.Name }

// NamespaceDecl groups declarations under a name.
type NamespaceDecl struct {
	base
	Name    string
	Members []Declaration
}

func (n *NamespaceDecl) DeclName() string              { return n.Name }
func (n *NamespaceDecl) GenericParams() []*GenericParam { return nil }
func (n *NamespaceDecl) declNode()                      {}
func (n *NamespaceDecl) String() string                 { return "namespace " + n.Name }
