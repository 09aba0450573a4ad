package ast

import "strings"

// TypeExpression is any syntactic type written by a user: a name
// (possibly generic), an array/nullable/tuple/union/join form, or an
// inline function-pointer type. The type provider maps these to
// TypeDescriptions; this package only carries the shape.
type TypeExpression interface {
	Node
	typeExpressionNode()
}

var (
	_ TypeExpression = (*NameTypeExpr)(nil)
	_ TypeExpression = (*ArrayTypeExpr)(nil)
	_ TypeExpression = (*NullableTypeExpr)(nil)
	_ TypeExpression = (*TupleTypeExpr)(nil)
	_ TypeExpression = (*UnionTypeExpr)(nil)
	_ TypeExpression = (*JoinTypeExpr)(nil)
	_ TypeExpression = (*FunctionTypeExpr)(nil)
	_ TypeExpression = (*PrimitiveTypeExpr)(nil)
)

// NameTypeExpr is a (possibly generic) named reference, e.g. `TreeNode<i32>`
// or a bare generic parameter name `T`. Resolving which of the two it is
// happens during type resolution: a name with no matching declaration
// but a matching in-scope generic parameter becomes a Generic type,
// otherwise a Reference.
type NameTypeExpr struct {
	base
	Name string
	Args []TypeExpression
}

func (n *NameTypeExpr) typeExpressionNode() {}
func (n *NameTypeExpr) String() string {
	if len(n.Args) == 0 {
		return n.Name
	}
	parts := make([]string, len(n.Args))
	for i, a := range n.Args {
		parts[i] = a.String()
	}
	return n.Name + "<" + strings.Join(parts, ", ") + ">"
}

// PrimitiveTypeExpr names a built-in primitive by its canonical spelling
// (`u8`..`u64`, `i8`..`i64`, `f32`, `f64`, `bool`, `string`, `void`, `null`,
// `never`, `any`).
type PrimitiveTypeExpr struct {
	base
	Name string
}

func (p *PrimitiveTypeExpr) typeExpressionNode() {}
func (p *PrimitiveTypeExpr) String() string      { return p.Name }

// ArrayTypeExpr is `ElementType[]`.
type ArrayTypeExpr struct {
	base
	Element TypeExpression
}

func (a *ArrayTypeExpr) typeExpressionNode() {}
func (a *ArrayTypeExpr) String() string {
	if a.Element == nil {
		return "<invalid>[]"
	}
	return a.Element.String() + "[]"
}

// NullableTypeExpr is `BaseType?`.
type NullableTypeExpr struct {
	base
	BaseType TypeExpression
}

func (n *NullableTypeExpr) typeExpressionNode() {}
func (n *NullableTypeExpr) String() string {
	if n.BaseType == nil {
		return "<invalid>?"
	}
	return n.BaseType.String() + "?"
}

// TupleTypeExpr is `(T1, T2, ...)`.
type TupleTypeExpr struct {
	base
	Elements []TypeExpression
}

func (t *TupleTypeExpr) typeExpressionNode() {}
func (t *TupleTypeExpr) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// UnionTypeExpr is `T1 | T2 | ...`.
type UnionTypeExpr struct {
	base
	Members []TypeExpression
}

func (u *UnionTypeExpr) typeExpressionNode() {}
func (u *UnionTypeExpr) String() string {
	parts := make([]string, len(u.Members))
	for i, m := range u.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " | ")
}

// JoinTypeExpr is `T1 & T2 & ...` (intersection).
type JoinTypeExpr struct {
	base
	Members []TypeExpression
}

func (j *JoinTypeExpr) typeExpressionNode() {}
func (j *JoinTypeExpr) String() string {
	parts := make([]string, len(j.Members))
	for i, m := range j.Members {
		parts[i] = m.String()
	}
	return strings.Join(parts, " & ")
}

// FunctionTypeExpr is an inline function-pointer type: `fn(x: T, ...) -> R`
// or `coroutine fn(x: T, ...) -> R`.
type FunctionTypeExpr struct {
	base
	ParamNames  []string
	ParamTypes  []TypeExpression
	ParamIsMut  []bool
	ReturnType  TypeExpression
	IsCoroutine bool
}

func (f *FunctionTypeExpr) typeExpressionNode() {}
func (f *FunctionTypeExpr) String() string {
	parts := make([]string, len(f.ParamTypes))
	for i, p := range f.ParamTypes {
		parts[i] = p.String()
	}
	prefix := "fn"
	if f.IsCoroutine {
		prefix = "coroutine fn"
	}
	ret := "void"
	if f.ReturnType != nil {
		ret = f.ReturnType.String()
	}
	return prefix + "(" + strings.Join(parts, ", ") + ") -> " + ret
}
