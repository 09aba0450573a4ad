package validate

import (
	"strings"

	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/types"
	"github.com/typecore/corelang/internal/typeprovider"
)

// CheckFunctionOverloads groups decls by simple name and reports every
// overload-uniqueness violation found within each group: a generic
// function sharing a name with any other declaration, or two
// non-generic functions with the same parameter-type signature.
func CheckFunctionOverloads(p *typeprovider.Provider, decls []*ast.FunctionDecl) []Diagnostic {
	groups := make(map[string][]*ast.FunctionDecl)
	var order []string
	for _, d := range decls {
		if _, ok := groups[d.Name]; !ok {
			order = append(order, d.Name)
		}
		groups[d.Name] = append(groups[d.Name], d)
	}
	var diags []Diagnostic
	for _, name := range order {
		diags = append(diags, checkFunctionGroup(p, name, groups[name])...)
	}
	return diags
}

func checkFunctionGroup(p *typeprovider.Provider, name string, group []*ast.FunctionDecl) []Diagnostic {
	if len(group) < 2 {
		return nil
	}
	var diags []Diagnostic
	anyGeneric := false
	for _, d := range group {
		if len(d.GenericParamList) > 0 {
			anyGeneric = true
			diags = append(diags, Diagnostic{
				Code:    CodeGenericFunctionOverload,
				Message: "function " + name + " is generic and cannot be overloaded",
				Node:    d,
			})
		}
	}
	if anyGeneric {
		return diags
	}
	sigs := make([]string, len(group))
	for i, d := range group {
		if ft, ok := p.DeclarationType(d).(*types.FunctionType); ok {
			sigs[i] = serializeParams(ft.Parameters)
		}
	}
	for i := 1; i < len(group); i++ {
		for j := 0; j < i; j++ {
			if sigs[i] == sigs[j] {
				diags = append(diags, Diagnostic{
					Code:    CodeDuplicateFunctionOverload,
					Message: "function " + name + " duplicates an existing overload",
					Node:    group[i],
				})
				break
			}
		}
	}
	return diags
}

// mergedMethod pairs a class's effective method with whether it came
// from an implementation, so a duplicate diagnostic can always be
// attributed to the class method rather than the implementation.
type mergedMethod struct {
	desc     types.MethodDesc
	fromImpl bool
}

// CheckClassMethodOverloads merges decl's own methods with the methods
// inherited from its implementations and reports duplicates on the
// class method side, except where an own `override` method
// deliberately shadows an implementation method of the same name.
func CheckClassMethodOverloads(p *typeprovider.Provider, decl *ast.ClassDecl) []Diagnostic {
	ct, ok := p.DeclarationType(decl).(*types.ClassType)
	if !ok {
		return nil
	}
	return checkMethodSet(mergeForOverloadCheck(p, ct), "class "+decl.Name+" method")
}

func mergeForOverloadCheck(p *typeprovider.Provider, ct *types.ClassType) []mergedMethod {
	out := make([]mergedMethod, 0, len(ct.Methods))
	for _, m := range ct.Methods {
		out = append(out, mergedMethod{desc: m})
	}
	for _, impl := range ct.Implementations {
		it, ok := p.Checker.Underlying(impl).(*types.ImplementationType)
		if !ok {
			continue
		}
		for _, m := range it.Methods {
			out = append(out, mergedMethod{desc: m, fromImpl: true})
		}
	}
	return out
}

func checkMethodSet(methods []mergedMethod, label string) []Diagnostic {
	var diags []Diagnostic
	for _, group := range groupBySharedName(methods) {
		if len(group) < 2 {
			continue
		}
		anyGeneric := false
		for _, m := range group {
			if len(m.desc.GenericParameters) > 0 {
				anyGeneric = true
				diags = append(diags, Diagnostic{
					Code:    CodeGenericClassMethodOverload,
					Message: label + " " + strings.Join(m.desc.Names, "/") + " is generic and cannot be overloaded",
					Node:    m.desc.DeclNode,
				})
			}
		}
		if anyGeneric {
			continue
		}
		for i := 1; i < len(group); i++ {
			for j := 0; j < i; j++ {
				a, b := group[i], group[j]
				if a.fromImpl && b.fromImpl {
					continue // two inherited methods colliding is not this class's fault
				}
				if isShadow(a, b) || isShadow(b, a) {
					continue
				}
				if serializeParams(a.desc.Parameters) != serializeParams(b.desc.Parameters) {
					continue
				}
				attributed := a
				if attributed.fromImpl {
					attributed = b
				}
				diags = append(diags, Diagnostic{
					Code:    CodeDuplicateClassMethodOverload,
					Message: label + " " + strings.Join(attributed.desc.Names, "/") + " duplicates an existing overload",
					Node:    attributed.desc.DeclNode,
				})
				break
			}
		}
	}
	return diags
}

// isShadow reports whether own (a class's own method) is an override
// deliberately shadowing impl (a method inherited from an
// implementation) — the one exemption to the duplicate rule.
func isShadow(own, impl mergedMethod) bool {
	return !own.fromImpl && impl.fromImpl && own.desc.IsOverride
}

// groupBySharedName buckets methods whose Names sets transitively
// overlap — operator aliases mean a method can bind to a group via any
// one of several spellings, not just its first name.
func groupBySharedName(methods []mergedMethod) [][]mergedMethod {
	var groups [][]mergedMethod
	for _, m := range methods {
		placed := false
		for gi, g := range groups {
			for _, gm := range g {
				if gm.desc.SharesNameWith(m.desc) {
					groups[gi] = append(groups[gi], m)
					placed = true
					break
				}
			}
			if placed {
				break
			}
		}
		if !placed {
			groups = append(groups, []mergedMethod{m})
		}
	}
	return groups
}

func serializeParams(params []types.FunctionParam) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = p.Type.String()
	}
	return strings.Join(parts, ",")
}

// CheckNullableAnnotation surfaces any "nullable primitive type" shape
// violation the type model attached to t's Errors() list as a structured
// diagnostic anchored on node (the annotation site, not t itself,
// since Nullable descriptions don't reliably carry a node — see
// types.Numeric.setNode).
func CheckNullableAnnotation(t types.Description, node ast.Node) []Diagnostic {
	if t == nil {
		return nil
	}
	var diags []Diagnostic
	for _, e := range t.Errors() {
		if strings.HasPrefix(e, CodeNullablePrimitiveType) {
			diags = append(diags, Diagnostic{Code: CodeNullablePrimitiveType, Message: e, Node: node})
		}
	}
	return diags
}
