package typeutil

// Checker is the single owned instance this package's decision
// procedures hang off: the pending-checks stack and the resolver used
// to chase Reference types back to their structural form. A single
// Checker must not be shared across concurrent compilations — like the
// type provider's cache, it is mutable, unsynchronized state meant to
// be owned by one compilation at a time.
type Checker struct {
	resolver Resolver
	pending  pendingStack
}

// NewChecker builds a Checker backed by resolver for Reference lookups.
func NewChecker(resolver Resolver) *Checker {
	return &Checker{resolver: resolver}
}
