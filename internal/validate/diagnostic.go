// Package validate is the validation and linker glue layer: the
// overload-uniqueness checker that runs over declared scopes, and the
// link-time overload disambiguator that narrows a multi-candidate name
// reference down to the one callable that actually matches a call
// site's argument types.
package validate

import "github.com/typecore/corelang/internal/ast"

// Diagnostic codes. These are the only structured error codes this
// core emits — every other decision procedure reports through plain
// Result messages.
const (
	CodeDuplicateFunctionOverload    = "duplicate function overload"
	CodeGenericFunctionOverload      = "generic function cannot be overloaded"
	CodeDuplicateClassMethodOverload = "duplicate class method overload"
	CodeGenericClassMethodOverload   = "generic class method cannot be overloaded"
	CodeNullablePrimitiveType        = "nullable primitive type"
	CodeAmbiguousOverloadCall        = "ambiguous overload call"
	CodeNoMatchingOverload           = "no matching overload"
)

// Diagnostic is one validator finding: a structured code, a
// human-readable message, and the AST node it was raised against.
// Messages are deterministic for a given input — callers rely on this
// for golden-file testing.
type Diagnostic struct {
	Code    string
	Message string
	Node    ast.Node
}
