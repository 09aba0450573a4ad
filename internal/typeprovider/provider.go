// Package typeprovider is the type provider: it maps an AST node
// to its inferred type, resolves Reference(declaration, args) to the
// declaration's structural type under substitution, and memoizes every
// answer in a per-node cache the host can invalidate explicitly.
//
// A Provider is mutable, unsynchronized state meant to be owned by one
// compilation at a time — the same discipline as typeutil.Checker's
// pending-checks stack (see that package's doc comment).
package typeprovider

import (
	"fmt"
	"strings"

	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/scope"
	"github.com/typecore/corelang/internal/types"
	"github.com/typecore/corelang/internal/typeutil"
	"github.com/typecore/corelang/internal/workspace"
)

// cacheState is the per-node cache's state machine:
// absent -> computing -> computed, with invalidate() resetting a node
// straight back to absent.
type cacheState int

const (
	stateComputed cacheState = iota
	stateComputing
)

type cacheEntry struct {
	state cacheState
	typ   types.Description
}

// Provider is the type system's node-to-type mapping component. It owns
// the per-node cache, the in-flight reference-instantiation set that
// breaks recursive-declaration cycles, and a typeutil.Checker it hands
// itself to as the Checker's Resolver (the one callback the checker
// makes back into the provider).
type Provider struct {
	Checker   *typeutil.Checker
	scope     scope.Provider
	workspace workspace.Workspace

	cache    map[ast.NodeID]*cacheEntry
	inFlight map[string]bool
}

// New builds a Provider backed by sp for declaration-name lookups and ws
// for the three built-in prototypes.
func New(sp scope.Provider, ws workspace.Workspace) *Provider {
	p := &Provider{
		scope:     sp,
		workspace: ws,
		cache:     make(map[ast.NodeID]*cacheEntry),
		inFlight:  make(map[string]bool),
	}
	p.Checker = typeutil.NewChecker(p)
	return p
}

// TypeOf infers the type of node, memoizing the result. A re-entrant
// call observing an in-progress computation for the same node returns
// Unset; assignability treats Unset as success, which is what lets a
// cyclic inference resolve optimistically and let outer context decide.
func (p *Provider) TypeOf(node ast.Node) types.Description {
	if node == nil {
		return types.NewError("cannot infer the type of a nil node", nil, nil)
	}
	id := node.ID()
	if entry, ok := p.cache[id]; ok {
		if entry.state == stateComputing {
			return types.Unset
		}
		return entry.typ
	}
	p.cache[id] = &cacheEntry{state: stateComputing}
	result := p.infer(node)
	p.cache[id] = &cacheEntry{state: stateComputed, typ: result}
	return result
}

// Invalidate drops node's cache entry, forcing the next TypeOf call to
// recompute it. The host is responsible for also invalidating any node
// whose inference transitively used node's type, if it wants to avoid
// staleness — this core does not track that dependency graph.
func (p *Provider) Invalidate(node ast.Node) {
	if node == nil {
		return
	}
	delete(p.cache, node.ID())
}

// IsBasic is the type model's basic-type predicate, wired to this
// provider's reference resolution so a Reference to a numeric/bool/null
// alias still counts.
func (p *Provider) IsBasic(t types.Description) bool {
	return types.IsBasic(t, p.ResolveReference)
}

// DeclarationType exposes the structural type a declaration denotes
// without going through the per-node cache. The validator needs every
// overload candidate's signature up front rather than one memoized
// node at a time, so it calls this directly instead of TypeOf.
func (p *Provider) DeclarationType(decl ast.Declaration) types.Description {
	return p.declarationType(decl)
}

func (p *Provider) infer(node ast.Node) types.Description {
	switch n := node.(type) {
	case ast.TypeExpression:
		return p.resolveTypeExpr(n, nil)
	case ast.Expr:
		return p.inferExpr(n)
	case ast.Declaration:
		return p.declarationType(n)
	default:
		return types.NewError(fmt.Sprintf("typeOf: unsupported node kind %T", node), nil, node)
	}
}

// ResolveReference implements typeutil.Resolver: it computes the
// underlying structural type of ref.Declaration's definition and
// substitutes declaration.genericParameters ↦ ref.GenericArgs. A
// recursive declaration (e.g. TreeNode<T> = { children: TreeNode<T>[]? })
// must terminate: an in-flight instantiation of the same (decl, args)
// pair returns the reference unresolved instead of descending further.
func (p *Provider) ResolveReference(ref *types.ReferenceType) types.Description {
	if ref == nil || ref.Declaration == nil {
		return types.NewError("reference has no declaration to resolve", nil, nil)
	}
	key := refInstantiationKey(ref)
	if p.inFlight[key] {
		return ref
	}
	p.inFlight[key] = true
	defer delete(p.inFlight, key)

	structural := p.declarationType(ref.Declaration)
	if errDesc, ok := structural.(*types.ErrorDesc); ok {
		return types.NewError("resolving "+ref.String()+": "+errDesc.Message, errDesc, ref.Node())
	}

	params := ref.Declaration.GenericParams()
	if len(params) == 0 {
		return structural
	}
	sigma := make(map[string]types.Description, len(params))
	for i, gp := range params {
		if i < len(ref.GenericArgs) {
			sigma[gp.Name] = ref.GenericArgs[i]
		} else {
			sigma[gp.Name] = types.Never
		}
	}
	return p.Checker.Substitute(structural, sigma)
}

func refInstantiationKey(ref *types.ReferenceType) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%p", ref.Declaration)
	for _, a := range ref.GenericArgs {
		sb.WriteByte('|')
		if a == nil {
			sb.WriteString("<nil>")
			continue
		}
		sb.WriteString(a.String())
	}
	return sb.String()
}
