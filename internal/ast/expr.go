package ast

// Expr is the subset of expression forms the type provider needs to
// infer a type for: literals, identifiers, calls, and array literals.
// A real frontend's expression grammar is much larger; everything else
// is out of this core's scope.
type Expr interface {
	Node
	exprNode()
}

// IdentExpr references a declaration or local binding by name.
type IdentExpr struct {
	base
	Name string
	// Decl, when set, is the resolved declaration this identifier names
	// (a variable's declared type expression, or nil for a plain local
	// whose type must come from the enclosing binding).
	Decl TypeExpression
}

func (i *IdentExpr) exprNode()        {}
func (i *IdentExpr) String() string   { return i.Name }

// IntLiteralExpr is an integer literal; the type provider infers i32 for
// it, or i64 when the value does not fit in 32 bits.
type IntLiteralExpr struct {
	base
	Value int64
}

func (l *IntLiteralExpr) exprNode()      {}
func (l *IntLiteralExpr) String() string { return "<int literal>" }

// FloatLiteralExpr is a floating-point literal.
type FloatLiteralExpr struct {
	base
	Value float64
}

func (l *FloatLiteralExpr) exprNode()      {}
func (l *FloatLiteralExpr) String() string { return "<float literal>" }

// StringLiteralExpr is a string literal; its inferred type is
// StringLiteral(Value) unless widened by context.
type StringLiteralExpr struct {
	base
	Value string
}

func (l *StringLiteralExpr) exprNode()      {}
func (l *StringLiteralExpr) String() string { return "<string literal>" }

// BoolLiteralExpr is a boolean literal.
type BoolLiteralExpr struct {
	base
	Value bool
}

func (l *BoolLiteralExpr) exprNode()      {}
func (l *BoolLiteralExpr) String() string { return "<bool literal>" }

// NullLiteralExpr is the `null` literal.
type NullLiteralExpr struct{ base }

func (l *NullLiteralExpr) exprNode()      {}
func (l *NullLiteralExpr) String() string { return "null" }

// ArrayLiteralExpr is `[e1, e2, ...]`; its element type is the common
// type (LUB) of its elements' inferred types.
type ArrayLiteralExpr struct {
	base
	Elements []Expr
}

func (a *ArrayLiteralExpr) exprNode()      {}
func (a *ArrayLiteralExpr) String() string { return "<array literal>" }

// CallExpr is a call site: a callee name (resolved to candidates by the
// scope provider) plus argument expressions.
type CallExpr struct {
	base
	Callee string
	Args   []Expr
}

func (c *CallExpr) exprNode()      {}
func (c *CallExpr) String() string { return c.Callee + "(...)" }

// MemberCallExpr is a method call on a receiver expression, e.g.
// `xs.push(v)`. Built-in array/coroutine/string member calls are the
// only member calls this fixture layer models; user-declared class and
// interface method calls would need their own richer receiver
// resolution, out of scope for this core's fixture AST.
type MemberCallExpr struct {
	base
	Receiver Expr
	Method   string
	Args     []Expr
}

func (m *MemberCallExpr) exprNode()      {}
func (m *MemberCallExpr) String() string { return m.Receiver.String() + "." + m.Method + "(...)" }
