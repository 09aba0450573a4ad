package typeutil

import "github.com/typecore/corelang/internal/types"

// Simplify flattens nested Unions/Joins and de-duplicates members by
// equality. Joins of all-structs merge fields (a name shared with a
// conflicting type yields an Error); joins of all-interfaces merge
// method sets and super-types; anything else just flattens and dedupes.
func (c *Checker) Simplify(t types.Description) types.Description {
	switch v := t.(type) {
	case *types.UnionType:
		return types.NewUnion(c.dedupe(flattenUnion(v))...)
	case *types.JoinType:
		return c.simplifyJoin(flattenJoin(v))
	default:
		return t
	}
}

func flattenUnion(u *types.UnionType) []types.Description {
	var out []types.Description
	for _, m := range u.Members {
		if nested, ok := m.(*types.UnionType); ok {
			out = append(out, flattenUnion(nested)...)
			continue
		}
		out = append(out, m)
	}
	return out
}

func flattenJoin(j *types.JoinType) []types.Description {
	var out []types.Description
	for _, m := range j.Members {
		if nested, ok := m.(*types.JoinType); ok {
			out = append(out, flattenJoin(nested)...)
			continue
		}
		out = append(out, m)
	}
	return out
}

func (c *Checker) dedupe(ts []types.Description) []types.Description {
	var out []types.Description
	for _, t := range ts {
		dup := false
		for _, seen := range out {
			if c.AreEqual(t, seen).Success {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, t)
		}
	}
	return out
}

func (c *Checker) simplifyJoin(members []types.Description) types.Description {
	resolved := make([]types.Description, len(members))
	for i, m := range members {
		resolved[i] = underlying(c, m)
	}
	if allStructs(resolved) {
		return c.mergeStructs(resolved)
	}
	if allInterfaces(resolved) {
		return c.mergeInterfaces(resolved)
	}
	return types.NewJoin(c.dedupe(resolved)...)
}

func allStructs(ts []types.Description) bool {
	for _, t := range ts {
		if _, ok := t.(*types.StructType); !ok {
			return false
		}
	}
	return len(ts) > 0
}

func allInterfaces(ts []types.Description) bool {
	for _, t := range ts {
		if _, ok := t.(*types.InterfaceType); !ok {
			return false
		}
	}
	return len(ts) > 0
}

func (c *Checker) mergeStructs(ts []types.Description) types.Description {
	var fields []types.StructFieldDesc
	seen := map[string]types.Description{}
	for _, t := range ts {
		st := t.(*types.StructType)
		for _, f := range st.Fields {
			if prior, ok := seen[f.Name]; ok {
				if !c.AreEqual(prior, f.Type).Success {
					return types.NewError("conflicting types for field "+f.Name+" in intersection", nil, nil)
				}
				continue
			}
			seen[f.Name] = f.Type
			fields = append(fields, f)
		}
	}
	return types.NewStruct(true, fields...)
}

func (c *Checker) mergeInterfaces(ts []types.Description) types.Description {
	var methods []types.MethodDesc
	var superTypes []types.Description
	seen := map[string]bool{}
	for _, t := range ts {
		it := t.(*types.InterfaceType)
		for _, m := range it.Methods {
			key := firstName(m)
			if seen[key] {
				continue
			}
			seen[key] = true
			methods = append(methods, m)
		}
		superTypes = append(superTypes, it.SuperTypes...)
	}
	return types.NewInterface("", methods, superTypes)
}

// AsStructType returns the resolved structural Struct form of t if it is
// one directly, or a Join that simplifies to one; otherwise nil.
func AsStructType(c *Checker, t types.Description) *types.StructType {
	resolved := underlying(c, t)
	if st, ok := resolved.(*types.StructType); ok {
		return st
	}
	if j, ok := resolved.(*types.JoinType); ok {
		if st, ok := c.simplifyJoin(j.Members).(*types.StructType); ok {
			return st
		}
	}
	return nil
}

// AsInterfaceType returns the resolved structural Interface form of t if
// it is one directly, or a Join that simplifies to one; otherwise nil.
func AsInterfaceType(c *Checker, t types.Description) *types.InterfaceType {
	resolved := underlying(c, t)
	if it, ok := resolved.(*types.InterfaceType); ok {
		return it
	}
	if j, ok := resolved.(*types.JoinType); ok {
		if it, ok := c.simplifyJoin(j.Members).(*types.InterfaceType); ok {
			return it
		}
	}
	return nil
}
