// Package scope is the fixture stand-in for the external name-binding
// scope provider: given a reference site, it returns an iterable of
// candidate declarations with equal simple names; the overload
// disambiguator takes it from there. A real implementation would walk
// lexical scopes built during binding; this one is a flat,
// explicitly-populated registry good enough to drive the
// overload-uniqueness checker and link-time disambiguator.
//
// Nested scopes, case-insensitive name folding for diagnostic
// suggestions only (the language itself is case-sensitive for ordinary
// identifiers).
package scope

import (
	"github.com/typecore/corelang/internal/ast"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var foldCaser = cases.Fold()

// Provider is the interface overload resolution and member-call
// inference consume to resolve a simple name to its candidate
// declarations.
type Provider interface {
	// Candidates returns every declaration reachable from the given
	// scope whose simple name equals name. Order is insertion order;
	// callers must not rely on any particular ordering beyond that.
	Candidates(name string) []ast.Declaration
}

// Scope is a single lexical level: a set of declarations plus an
// optional outer scope to fall back to.
type Scope struct {
	decls map[string][]ast.Declaration
	outer *Scope
}

// New creates a root scope with no outer scope.
func New() *Scope {
	return &Scope{decls: make(map[string][]ast.Declaration)}
}

// NewEnclosed creates a scope nested inside outer.
func NewEnclosed(outer *Scope) *Scope {
	s := New()
	s.outer = outer
	return s
}

// Define registers decl under its own DeclName(). Multiple declarations
// may share a name (overload sets); Define appends rather than replaces.
func (s *Scope) Define(decl ast.Declaration) {
	name := decl.DeclName()
	s.decls[name] = append(s.decls[name], decl)
}

// Candidates implements Provider: declarations in this scope with the
// given name, plus (if none are found here) the outer scope's.
func (s *Scope) Candidates(name string) []ast.Declaration {
	if found, ok := s.decls[name]; ok && len(found) > 0 {
		out := make([]ast.Declaration, len(found))
		copy(out, found)
		return out
	}
	if s.outer != nil {
		return s.outer.Candidates(name)
	}
	return nil
}

// SuggestByFoldedName returns declarations across this scope (not the
// outer chain) whose name case-folds to the same value as query — used
// only to build "did you mean" diagnostics, never for resolution.
func (s *Scope) SuggestByFoldedName(query string) []ast.Declaration {
	target := foldCaser.String(query)
	var out []ast.Declaration
	for name, group := range s.decls {
		if foldCaser.String(name) == target {
			out = append(out, group...)
		}
	}
	return out
}

// language import is retained for callers that need to build their own
// case.Caser with an explicit tag; re-exported so this package is the
// single point of contact for name-folding policy.
var DefaultLanguage = language.Und
