package typeutil

import "github.com/typecore/corelang/internal/types"

// LUB computes the structural least upper bound of ts when their
// category is not already known from a more specific common-type rule.
// It resolves each type to its structural form, groups by category, and
// applies the category's merge rule; a mixed-category set only has a
// defined LUB for string-enum mixed with string (widens to String).
func (c *Checker) LUB(ts []types.Description) types.Description {
	if len(ts) == 0 {
		return types.Never
	}
	if len(ts) == 1 {
		return ts[0]
	}

	resolved := make([]types.Description, len(ts))
	for i, t := range ts {
		resolved[i] = resolveForLUB(c, t)
	}

	groups := map[string][]types.Description{}
	var order []string
	for _, r := range resolved {
		cat := categoryOf(c, r)
		if _, seen := groups[cat]; !seen {
			order = append(order, cat)
		}
		groups[cat] = append(groups[cat], r)
	}

	var result types.Description
	switch {
	case len(order) == 1:
		result = c.lubSingleCategory(order[0], groups[order[0]])
	case isStringEnumStringMix(order):
		result = types.Str
	default:
		return types.NewError("cannot infer common type: mixed structural categories", nil, nil)
	}

	return c.preserveNaming(ts, result)
}

// resolveForLUB follows Reference indirection, Nullable unwrapping, and
// Join simplification down to a structural form, per the first step of
// the LUB algorithm.
func resolveForLUB(c *Checker, t types.Description) types.Description {
	for i := 0; i < 64; i++ {
		switch v := t.(type) {
		case *types.ReferenceType:
			next := underlying(c, v)
			if next == t {
				return t
			}
			t = next
		case *types.NullableType:
			t = v.BaseType
		case *types.JoinType:
			next := c.Simplify(v)
			if _, stillJoin := next.(*types.JoinType); stillJoin {
				return next
			}
			t = next
		default:
			return t
		}
	}
	return t
}

func categoryOf(c *Checker, t types.Description) string {
	if t == nil {
		return "other"
	}
	if AsStructType(c, t) != nil {
		return "struct"
	}
	if t.Kind() == types.KindClass {
		return "class"
	}
	if AsInterfaceType(c, t) != nil {
		return "interface"
	}
	if t.Kind() == types.KindVariant {
		return "variant"
	}
	if t.Kind() == types.KindStringEnum || t.Kind() == types.KindStringLiteral {
		return "string-enum"
	}
	if t.Kind() == types.KindString {
		return "string"
	}
	if isNumeric(t.Kind()) || t.Kind() == types.KindBool || t.Kind() == types.KindNull ||
		t.Kind() == types.KindVoid || t.Kind() == types.KindAny {
		return "primitive"
	}
	if t.Kind() == types.KindArray {
		return "array"
	}
	if t.Kind() == types.KindFunction {
		return "function"
	}
	return "other"
}

func isStringEnumStringMix(order []string) bool {
	if len(order) != 2 {
		return false
	}
	has := map[string]bool{}
	for _, o := range order {
		has[o] = true
	}
	return has["string-enum"] && has["string"]
}

func (c *Checker) lubSingleCategory(cat string, ts []types.Description) types.Description {
	switch cat {
	case "struct":
		return c.lubStructs(structForms(c, ts))
	case "interface":
		return c.lubInterfaces(interfaceForms(c, ts))
	case "string-enum":
		return lubStringEnums(ts)
	case "string":
		return types.Str
	case "class":
		return types.NewError("class types have no structural least upper bound", nil, nil)
	case "array":
		elems := make([]types.Description, len(ts))
		for i, t := range ts {
			elems[i] = t.(*types.ArrayType).Element
		}
		return types.NewArray(c.GetCommonType(elems))
	case "function":
		return c.unifyFunctions(ts)
	default:
		if cat == "primitive" {
			// Numeric members widen to the member every other member is
			// assignable to (e.g. i8 and i32 give i32).
			for _, cand := range ts {
				widest := isNumeric(cand.Kind())
				for _, t := range ts {
					widest = widest && isNumeric(t.Kind()) && c.IsAssignable(t, cand).Success
				}
				if widest {
					return cand
				}
			}
		}
		for _, t := range ts[1:] {
			if !c.AreEqual(ts[0], t).Success {
				return types.NewError("cannot infer common type: incompatible "+cat+" types", nil, nil)
			}
		}
		return ts[0]
	}
}

// lubStructs intersects field names across structs; for each common
// name, the field types are themselves joined recursively. An empty
// intersection yields an Error.
func (c *Checker) lubStructs(structs []*types.StructType) types.Description {
	if len(structs) == 0 {
		return types.Never
	}
	var fields []types.StructFieldDesc
	for _, f := range structs[0].Fields {
		common := f.Type
		ok := true
		for _, st := range structs[1:] {
			other, found := st.Field(f.Name)
			if !found {
				ok = false
				break
			}
			common = c.GetCommonType([]types.Description{common, other.Type})
			if _, isErr := common.(*types.ErrorDesc); isErr {
				ok = false
				break
			}
		}
		if ok {
			fields = append(fields, types.StructFieldDesc{Name: f.Name, Type: common, Node: f.Node})
		}
	}
	if len(fields) == 0 {
		return types.NewError("cannot infer common type: structs share no common fields", nil, nil)
	}
	return types.NewStruct(true, fields...)
}

func structForms(c *Checker, ts []types.Description) []*types.StructType {
	out := make([]*types.StructType, len(ts))
	for i, t := range ts {
		out[i] = AsStructType(c, t)
	}
	return out
}

// lubInterfaces intersects method names; a shared method must have
// pairwise-equal parameter signatures across all members, and its
// return types are joined.
func (c *Checker) lubInterfaces(ifaces []*types.InterfaceType) types.Description {
	if len(ifaces) == 0 {
		return types.Never
	}
	var methods []types.MethodDesc
	for _, m := range ifaces[0].Methods {
		merged := m
		ok := true
		rets := []types.Description{m.ReturnType}
		for _, it := range ifaces[1:] {
			other, found := findSharedMethod(it, m)
			if !found || !sameParamTypes(c, m.Parameters, other.Parameters) {
				ok = false
				break
			}
			rets = append(rets, other.ReturnType)
		}
		if !ok {
			continue
		}
		merged.ReturnType = c.GetCommonType(rets)
		methods = append(methods, merged)
	}
	if len(methods) == 0 {
		return types.NewError("cannot infer common type: interfaces share no common methods", nil, nil)
	}
	return types.NewInterface("", methods, nil)
}

func interfaceForms(c *Checker, ts []types.Description) []*types.InterfaceType {
	out := make([]*types.InterfaceType, len(ts))
	for i, t := range ts {
		out[i] = AsInterfaceType(c, t)
	}
	return out
}

func findSharedMethod(it *types.InterfaceType, m types.MethodDesc) (types.MethodDesc, bool) {
	for _, om := range it.Methods {
		if m.SharesNameWith(om) {
			return om, true
		}
	}
	return types.MethodDesc{}, false
}

func sameParamTypes(c *Checker, a, b []types.FunctionParam) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !c.AreEqual(a[i].Type, b[i].Type).Success {
			return false
		}
	}
	return true
}

func lubStringEnums(ts []types.Description) types.Description {
	values := map[string]struct{}{}
	for _, t := range ts {
		switch v := t.(type) {
		case *types.StringLiteralType:
			values[v.Value] = struct{}{}
		case *types.StringEnumType:
			for val := range v.Values {
				values[val] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(values))
	for v := range values {
		out = append(out, v)
	}
	return types.NewStringEnum(out...)
}

// preserveNaming scans the pre-resolution operands for a Reference whose
// resolved body equals the computed structural LUB, returning that
// Reference instead of the anonymous form: cosmetic, but the common-type
// machinery is only judged sound on the anonymous shape it preserves.
func (c *Checker) preserveNaming(originals []types.Description, result types.Description) types.Description {
	switch result.(type) {
	case *types.StructType, *types.InterfaceType:
	default:
		return result
	}
	for _, orig := range originals {
		ref, ok := orig.(*types.ReferenceType)
		if !ok {
			continue
		}
		if c.AreEqual(underlying(c, ref), result).Success {
			return ref
		}
	}
	return result
}
