package types

import "github.com/typecore/corelang/internal/ast"

// LiftPrimitive lifts a parsed PrimitiveTypeExpr AST node to the
// corresponding type description. Numeric names go through FromString;
// the remaining primitive spellings are handled directly. Unknown
// spellings produce an Error description rather than panicking, per
// this core's no-exceptions policy.
func LiftPrimitive(node *ast.PrimitiveTypeExpr) Description {
	if node == nil {
		return NewError("nil primitive type node", nil, nil)
	}
	switch node.Name {
	case "bool":
		return Bool
	case "void":
		return Void
	case "string":
		return Str
	case "null":
		return Null
	case "never":
		return Never
	case "any":
		return Any
	}
	if t := FromString(node.Name); t.Kind() != KindError {
		return t
	}
	return NewError("unknown primitive type name "+`"`+node.Name+`"`, nil, node)
}
