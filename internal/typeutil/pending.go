package typeutil

import "github.com/typecore/corelang/internal/types"

// pendingKey identifies an in-progress structural assignability check by
// the identity of its operand pair, not their structural content — two
// distinct *Reference values naming the same recursive declaration must
// collide on this key for the cycle break to terminate.
type pendingKey struct {
	from, to types.Description
}

// pendingStack tracks (from, to) assignability pairs currently being
// decided. Pushed on entry to a recursive structural check, popped on
// every exit path including error paths — skipping the pop on an error
// path is the single most common way to introduce false "cycle
// detected" positives on later, unrelated checks.
type pendingStack struct {
	entries []pendingKey
}

func (p *pendingStack) contains(from, to types.Description) bool {
	for _, e := range p.entries {
		if e.from == from && e.to == to {
			return true
		}
	}
	return false
}

func (p *pendingStack) push(from, to types.Description) {
	p.entries = append(p.entries, pendingKey{from: from, to: to})
}

func (p *pendingStack) pop() {
	p.entries = p.entries[:len(p.entries)-1]
}
