// Package workspace is the fixture stand-in for the host's file-system
// workspace loader: it supplies the parsed text of the built-in
// prototype declarations at three well-known URIs — the array
// prototype, the coroutine prototype, the string prototype. The type
// system consumes their AST, not their text.
//
// This package therefore never touches a filesystem or holds prototype
// *source* — only the already-parsed member lists the Prototype type
// wraps.
package workspace

// URI identifies one of the three well-known built-in prototypes.
type URI string

const (
	ArrayPrototypeURI     URI = "builtin://prototype/array"
	CoroutinePrototypeURI URI = "builtin://prototype/coroutine"
	StringPrototypeURI    URI = "builtin://prototype/string"
)

// PrototypeMember is one parsed method or property entry of a built-in
// prototype, already shaped the way the Prototype constructor expects.
type PrototypeMember struct {
	Name       string
	IsMethod   bool // false => property
	ParamNames []string
}

// Workspace supplies the parsed declarations for the three built-in
// prototypes. Hosts that embed this core implement it against their own
// file-loading and parsing pipeline; this package only defines the
// contract plus an in-memory implementation for tests and the CLI demo.
type Workspace interface {
	Prototype(uri URI) []PrototypeMember
}

// Memory is an in-memory Workspace, populated directly with already
// "parsed" member lists. Useful for tests and for the CLI demo, which
// has no real parser to produce these from source.
type Memory struct {
	prototypes map[URI][]PrototypeMember
}

// NewMemory creates an empty in-memory workspace.
func NewMemory() *Memory {
	return &Memory{prototypes: make(map[URI][]PrototypeMember)}
}

// Set installs the member list for a given prototype URI.
func (m *Memory) Set(uri URI, members []PrototypeMember) {
	m.prototypes[uri] = members
}

// Prototype implements Workspace.
func (m *Memory) Prototype(uri URI) []PrototypeMember {
	return m.prototypes[uri]
}

// Default builds a Memory workspace pre-populated with the conventional
// members every host of this language ships for array/coroutine/string,
// enough for the CLI demo and for tests that don't care about the exact
// method list.
func Default() *Memory {
	m := NewMemory()
	m.Set(ArrayPrototypeURI, []PrototypeMember{
		{Name: "length", IsMethod: false},
		{Name: "push", IsMethod: true, ParamNames: []string{"value"}},
		{Name: "pop", IsMethod: true},
	})
	m.Set(CoroutinePrototypeURI, []PrototypeMember{
		{Name: "resume", IsMethod: true},
		{Name: "done", IsMethod: false},
	})
	m.Set(StringPrototypeURI, []PrototypeMember{
		{Name: "length", IsMethod: false},
		{Name: "at", IsMethod: true, ParamNames: []string{"index"}},
		{Name: "toUpper", IsMethod: true},
	})
	return m
}
