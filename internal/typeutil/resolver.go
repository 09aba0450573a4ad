package typeutil

import "github.com/typecore/corelang/internal/types"

// Resolver resolves a Reference to its underlying structural type. The
// type provider implements this; typeutil takes it as a dependency
// instead of importing the provider package, which is what keeps the
// reference-resolution call back into the provider from becoming an
// import cycle.
type Resolver interface {
	ResolveReference(ref *types.ReferenceType) types.Description
}

// resolve is a nil-safe convenience wrapper used throughout this package.
func resolve(r Resolver, ref *types.ReferenceType) types.Description {
	if r == nil || ref == nil {
		return types.NewError("reference cannot be resolved without a resolver", nil, nil)
	}
	return r.ResolveReference(ref)
}

// Underlying is the exported form of underlying, for callers outside
// this package (the validator) that need a class's Implementations
// resolved to their structural ImplementationType before merging
// method sets — the type provider only ever produces a Reference for a
// named implementation, never the resolved body directly.
func (c *Checker) Underlying(t types.Description) types.Description {
	return underlying(c, t)
}

// underlying follows a Description through Reference indirections until
// a non-Reference description is reached, relying on the resolver
// itself (backed by the provider's in-flight set) to terminate on
// recursive declarations.
func underlying(c *Checker, t types.Description) types.Description {
	for {
		ref, ok := t.(*types.ReferenceType)
		if !ok {
			return t
		}
		next := resolve(c.resolver, ref)
		if next == nil || next == t {
			return t
		}
		if _, stillRef := next.(*types.ReferenceType); stillRef && next.(*types.ReferenceType) == ref {
			return t
		}
		t = next
	}
}
