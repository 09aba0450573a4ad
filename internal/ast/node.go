// Package ast is the fixture stand-in for the external AST producer. A
// real frontend parses source text into a much richer tree; this
// package only carries the node shapes the type system needs to
// consume: declarations, type expressions, and the handful of
// expression forms that drive inference (literals, identifiers, calls,
// member calls, array literals).
//
// Every node has a stable NodeID so the type provider's per-node cache
// has a well-defined key, and a Position for diagnostics.
package ast

import "github.com/google/uuid"

// NodeID stably identifies a node for cache-keying purposes. Real AST
// producers mint their own identity scheme; this fixture layer backs it
// with a UUID so node identity survives independent of node content.
type NodeID string

// NewNodeID mints a fresh, stable node identifier.
func NewNodeID() NodeID {
	return NodeID(uuid.NewString())
}

// Position is a source location, used only for diagnostics.
type Position struct {
	File   string
	Line   int
	Column int
}

func (p Position) String() string {
	if p.File == "" {
		return "<unknown>"
	}
	return p.File
}

// Node is the minimal contract every AST node satisfies.
type Node interface {
	ID() NodeID
	Pos() Position
	String() string
}

// base is embedded by every concrete node to supply ID()/Pos().
type base struct {
	NodeIDField NodeID
	Position    Position
}

func newBase(pos Position) base {
	return base{NodeIDField: NewNodeID(), Position: pos}
}

func (b base) ID() NodeID    { return b.NodeIDField }
func (b base) Pos() Position { return b.Position }
