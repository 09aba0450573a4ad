package ast

// This file collects constructors for building fixture trees from
// outside this package: a host assembling a demo program or a test
// case needs a stable NodeID stamped on every node, which newBase does
// automatically. Direct struct literals still work for tests that
// don't care about node identity (e.g. comparing just Name fields),
// but anything that flows through the type provider's per-node cache
// needs one of these.

func NewIdentExpr(pos Position, name string, decl TypeExpression) *IdentExpr {
	return &IdentExpr{base: newBase(pos), Name: name, Decl: decl}
}

func NewIntLiteralExpr(pos Position, value int64) *IntLiteralExpr {
	return &IntLiteralExpr{base: newBase(pos), Value: value}
}

func NewFloatLiteralExpr(pos Position, value float64) *FloatLiteralExpr {
	return &FloatLiteralExpr{base: newBase(pos), Value: value}
}

func NewStringLiteralExpr(pos Position, value string) *StringLiteralExpr {
	return &StringLiteralExpr{base: newBase(pos), Value: value}
}

func NewBoolLiteralExpr(pos Position, value bool) *BoolLiteralExpr {
	return &BoolLiteralExpr{base: newBase(pos), Value: value}
}

func NewNullLiteralExpr(pos Position) *NullLiteralExpr {
	return &NullLiteralExpr{base: newBase(pos)}
}

func NewArrayLiteralExpr(pos Position, elements []Expr) *ArrayLiteralExpr {
	return &ArrayLiteralExpr{base: newBase(pos), Elements: elements}
}

func NewCallExpr(pos Position, callee string, args []Expr) *CallExpr {
	return &CallExpr{base: newBase(pos), Callee: callee, Args: args}
}

func NewMemberCallExpr(pos Position, receiver Expr, method string, args []Expr) *MemberCallExpr {
	return &MemberCallExpr{base: newBase(pos), Receiver: receiver, Method: method, Args: args}
}

func NewPrimitiveTypeExpr(pos Position, name string) *PrimitiveTypeExpr {
	return &PrimitiveTypeExpr{base: newBase(pos), Name: name}
}

func NewNameTypeExpr(pos Position, name string, args []TypeExpression) *NameTypeExpr {
	return &NameTypeExpr{base: newBase(pos), Name: name, Args: args}
}

func NewArrayTypeExpr(pos Position, element TypeExpression) *ArrayTypeExpr {
	return &ArrayTypeExpr{base: newBase(pos), Element: element}
}

func NewNullableTypeExpr(pos Position, baseType TypeExpression) *NullableTypeExpr {
	return &NullableTypeExpr{base: newBase(pos), BaseType: baseType}
}

func NewTupleTypeExpr(pos Position, elements []TypeExpression) *TupleTypeExpr {
	return &TupleTypeExpr{base: newBase(pos), Elements: elements}
}

func NewUnionTypeExpr(pos Position, members []TypeExpression) *UnionTypeExpr {
	return &UnionTypeExpr{base: newBase(pos), Members: members}
}

func NewJoinTypeExpr(pos Position, members []TypeExpression) *JoinTypeExpr {
	return &JoinTypeExpr{base: newBase(pos), Members: members}
}

func NewFunctionTypeExpr(pos Position, paramNames []string, paramTypes []TypeExpression, paramIsMut []bool, ret TypeExpression, isCoroutine bool) *FunctionTypeExpr {
	return &FunctionTypeExpr{
		base:        newBase(pos),
		ParamNames:  paramNames,
		ParamTypes:  paramTypes,
		ParamIsMut:  paramIsMut,
		ReturnType:  ret,
		IsCoroutine: isCoroutine,
	}
}

func NewGenericParam(pos Position, name string, constraint TypeExpression) *GenericParam {
	return &GenericParam{base: newBase(pos), Name: name, Constraint: constraint}
}

func NewStructField(pos Position, name string, typ TypeExpression) *StructField {
	return &StructField{base: newBase(pos), Name: name, Type: typ}
}

func NewParamDecl(pos Position, name string, typ TypeExpression, isMut bool) *ParamDecl {
	return &ParamDecl{base: newBase(pos), Name: name, Type: typ, IsMut: isMut}
}

func NewMethodDecl(pos Position, names []string, generics []*GenericParam, params []*ParamDecl, ret TypeExpression, isStatic, isOverride, isLocal bool) *MethodDecl {
	return &MethodDecl{
		base:             newBase(pos),
		Names:            names,
		GenericParamList: generics,
		Parameters:       params,
		ReturnType:       ret,
		IsStatic:         isStatic,
		IsOverride:       isOverride,
		IsLocal:          isLocal,
	}
}

func NewAttributeDecl(pos Position, name string, typ TypeExpression, isStatic, isConst, isLocal bool) *AttributeDecl {
	return &AttributeDecl{base: newBase(pos), Name: name, Type: typ, IsStatic: isStatic, IsConst: isConst, IsLocal: isLocal}
}

func NewClassDecl(pos Position, name string, generics []*GenericParam, attrs []*AttributeDecl, methods []*MethodDecl, supers, impls []TypeExpression) *ClassDecl {
	return &ClassDecl{
		base:             newBase(pos),
		Name:             name,
		GenericParamList: generics,
		Attributes:       attrs,
		Methods:          methods,
		SuperTypes:       supers,
		Implementations:  impls,
	}
}

func NewInterfaceDecl(pos Position, name string, generics []*GenericParam, methods []*MethodDecl, supers []TypeExpression) *InterfaceDecl {
	return &InterfaceDecl{base: newBase(pos), Name: name, GenericParamList: generics, Methods: methods, SuperTypes: supers}
}

func NewImplementationDecl(pos Position, name string, attrs []*AttributeDecl, methods []*MethodDecl, target TypeExpression) *ImplementationDecl {
	return &ImplementationDecl{base: newBase(pos), Name: name, Attributes: attrs, Methods: methods, TargetType: target}
}

func NewVariantConstructorDecl(pos Position, name string, params []*StructField) *VariantConstructorDecl {
	return &VariantConstructorDecl{base: newBase(pos), Name: name, Parameters: params}
}

func NewVariantDecl(pos Position, name string, generics []*GenericParam, ctors []*VariantConstructorDecl) *VariantDecl {
	return &VariantDecl{base: newBase(pos), Name: name, GenericParamList: generics, Constructors: ctors}
}

func NewEnumDecl(pos Position, name string, cases []EnumCase, isString bool) *EnumDecl {
	return &EnumDecl{base: newBase(pos), Name: name, Cases: cases, IsString: isString}
}

func NewFunctionDecl(pos Position, name string, generics []*GenericParam, params []*ParamDecl, ret TypeExpression, isCoroutine bool) *FunctionDecl {
	return &FunctionDecl{
		base:             newBase(pos),
		Name:             name,
		GenericParamList: generics,
		Parameters:       params,
		ReturnType:       ret,
		IsCoroutine:      isCoroutine,
	}
}

func NewAliasDecl(pos Position, name string, generics []*GenericParam, definition TypeExpression) *AliasDecl {
	return &AliasDecl{base: newBase(pos), Name: name, GenericParamList: generics, Definition: definition}
}

func NewNamespaceDecl(pos Position, name string, members []Declaration) *NamespaceDecl {
	return &NamespaceDecl{base: newBase(pos), Name: name, Members: members}
}
