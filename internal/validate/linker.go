package validate

import (
	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/types"
	"github.com/typecore/corelang/internal/typeutil"
)

// ResolveCall is the link-time overload disambiguator: given a call
// site's argument types and the function-type candidates a name
// resolved to, it narrows to the one candidate whose parameters admit
// args. Exactly one match picks that candidate silently; zero or
// multiple matches both still return a usable index (the first
// candidate) alongside a diagnostic, since a later type-checking pass
// is expected to produce the precise error once an index is fixed.
func ResolveCall(c *typeutil.Checker, argTypes []types.Description, candidates []*types.FunctionType, site ast.Node) (int, []Diagnostic) {
	if len(candidates) == 0 {
		return 0, nil
	}
	matches := c.ResolveOverload(argTypes, candidates)
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return 0, []Diagnostic{{Code: CodeNoMatchingOverload, Message: "no overload of this call matches the given arguments", Node: site}}
	default:
		return matches[0], []Diagnostic{{Code: CodeAmbiguousOverloadCall, Message: "call matches more than one overload", Node: site}}
	}
}
