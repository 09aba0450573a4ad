package typeutil

import (
	"github.com/typecore/corelang/internal/ast"
	"github.com/typecore/corelang/internal/types"
)

// GetCommonType computes the join ("common type") of a list of types,
// used for array-literal, match-arm, and return-type inference. Rules
// are tried in order; the first that matches a shape decides the result.
func (c *Checker) GetCommonType(ts []types.Description) types.Description {
	ts = dropNever(ts)
	if len(ts) == 0 {
		return types.Never
	}
	if len(ts) == 1 {
		return ts[0]
	}

	if allTypeGuards(ts) {
		return c.unifyTypeGuards(ts)
	}
	if anyTypeGuard(ts) {
		return types.Bool
	}

	nullTs, nonNullTs, anyNull := splitNull(ts)
	if anyNull {
		common := c.GetCommonType(nonNullTs)
		if len(nullTs) > 0 && len(nonNullTs) == 0 {
			return types.Null
		}
		if nb, ok := common.(*types.NullableType); ok {
			return nb
		}
		// NewNullable itself flags a resulting Nullable(basic) via Errors().
		return types.NewNullable(common)
	}

	if allArrays(ts) {
		elems := make([]types.Description, len(ts))
		for i, t := range ts {
			elems[i] = t.(*types.ArrayType).Element
		}
		return types.NewArray(c.GetCommonType(elems))
	}

	if allTuples(ts) {
		return c.unifyTuples(ts)
	}

	if allFunctions(ts) {
		return c.unifyFunctions(ts)
	}

	if result, ok := c.nullabilityOnlyDiff(ts); ok {
		return result
	}

	if allStringish(ts) {
		return unifyStringish(ts)
	}

	if allStructsViaAs(c, ts) {
		return c.lubStructs(structForms(c, ts))
	}

	if allSameReference(ts) {
		return c.unifyReferences(ts)
	}

	if allVariantCtorSameBase(ts) {
		return c.unifyVariantCtors(ts)
	}

	if result, ok := c.mixedReferenceVariantCtor(ts); ok {
		return result
	}

	return c.LUB(ts)
}

func dropNever(ts []types.Description) []types.Description {
	out := make([]types.Description, 0, len(ts))
	for _, t := range ts {
		if t == nil || t.Kind() == types.KindNever {
			continue
		}
		out = append(out, t)
	}
	return out
}

func allTypeGuards(ts []types.Description) bool {
	for _, t := range ts {
		if _, ok := t.(*types.TypeGuardType); !ok {
			return false
		}
	}
	return true
}

func anyTypeGuard(ts []types.Description) bool {
	for _, t := range ts {
		if _, ok := t.(*types.TypeGuardType); ok {
			return true
		}
	}
	return false
}

func (c *Checker) unifyTypeGuards(ts []types.Description) types.Description {
	first := ts[0].(*types.TypeGuardType)
	for _, t := range ts[1:] {
		if t.(*types.TypeGuardType).ParameterIndex != first.ParameterIndex {
			return types.Bool
		}
	}
	guarded := make([]types.Description, len(ts))
	for i, t := range ts {
		guarded[i] = t.(*types.TypeGuardType).GuardedType
	}
	return types.NewTypeGuard(first.ParameterName, first.ParameterIndex, c.GetCommonType(guarded))
}

func splitNull(ts []types.Description) (nullTs, nonNullTs []types.Description, anyNull bool) {
	for _, t := range ts {
		if t.Kind() == types.KindNull {
			nullTs = append(nullTs, t)
			anyNull = true
			continue
		}
		if nb, ok := t.(*types.NullableType); ok {
			nonNullTs = append(nonNullTs, nb.BaseType)
			anyNull = true
			continue
		}
		nonNullTs = append(nonNullTs, t)
	}
	return
}

func allArrays(ts []types.Description) bool {
	for _, t := range ts {
		if _, ok := t.(*types.ArrayType); !ok {
			return false
		}
	}
	return true
}

func allTuples(ts []types.Description) bool {
	for _, t := range ts {
		if _, ok := t.(*types.TupleType); !ok {
			return false
		}
	}
	return true
}

func (c *Checker) unifyTuples(ts []types.Description) types.Description {
	first := ts[0].(*types.TupleType)
	arity := len(first.Elements)
	for _, t := range ts[1:] {
		if len(t.(*types.TupleType).Elements) != arity {
			return types.NewError("cannot infer common type: tuples of different arity", nil, nil)
		}
	}
	elems := make([]types.Description, arity)
	for i := 0; i < arity; i++ {
		column := make([]types.Description, len(ts))
		for j, t := range ts {
			column[j] = t.(*types.TupleType).Elements[i]
		}
		elems[i] = c.GetCommonType(column)
	}
	return types.NewTuple(elems...)
}

func allFunctions(ts []types.Description) bool {
	for _, t := range ts {
		if _, ok := t.(*types.FunctionType); !ok {
			return false
		}
	}
	return true
}

func (c *Checker) unifyFunctions(ts []types.Description) types.Description {
	first := ts[0].(*types.FunctionType)
	arity := len(first.Parameters)
	for _, t := range ts[1:] {
		if len(t.(*types.FunctionType).Parameters) != arity {
			return types.NewError("cannot infer common type: functions of different arity", nil, nil)
		}
	}
	params := make([]types.FunctionParam, arity)
	for i := 0; i < arity; i++ {
		column := make([]types.Description, len(ts))
		for j, t := range ts {
			column[j] = t.(*types.FunctionType).Parameters[i].Type
		}
		params[i] = types.FunctionParam{Name: first.Parameters[i].Name, Type: c.GetCommonType(column), IsMut: first.Parameters[i].IsMut}
	}
	rets := make([]types.Description, len(ts))
	for i, t := range ts {
		rets[i] = t.(*types.FunctionType).ReturnType
	}
	return types.NewFunction(params, c.GetCommonType(rets), first.FnType, nil)
}

// nullabilityOnlyDiff implements rule 7: if base types are pairwise
// equal modulo nullability and any member is nullable, the common type
// is Nullable(base).
func (c *Checker) nullabilityOnlyDiff(ts []types.Description) (types.Description, bool) {
	var base types.Description
	anyNullable := false
	for _, t := range ts {
		b := t
		if nb, ok := t.(*types.NullableType); ok {
			b = nb.BaseType
			anyNullable = true
		}
		if base == nil {
			base = b
			continue
		}
		if !c.AreEqual(base, b).Success {
			return nil, false
		}
	}
	if !anyNullable {
		return nil, false
	}
	return types.NewNullable(base), true
}

func allStringish(ts []types.Description) bool {
	for _, t := range ts {
		switch t.Kind() {
		case types.KindString, types.KindStringLiteral, types.KindStringEnum:
		default:
			return false
		}
	}
	return true
}

func unifyStringish(ts []types.Description) types.Description {
	for _, t := range ts {
		if t.Kind() == types.KindString {
			return types.Str
		}
	}
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

func allStructsViaAs(c *Checker, ts []types.Description) bool {
	for _, t := range ts {
		if AsStructType(c, t) == nil {
			return false
		}
	}
	return true
}

func allSameReference(ts []types.Description) bool {
	first, ok := ts[0].(*types.ReferenceType)
	if !ok {
		return false
	}
	for _, t := range ts[1:] {
		ref, ok := t.(*types.ReferenceType)
		if !ok || ref.Declaration != first.Declaration {
			return false
		}
	}
	return true
}

func (c *Checker) unifyReferences(ts []types.Description) types.Description {
	first := ts[0].(*types.ReferenceType)
	args, err := c.unifyGenericArgColumns(collectRefArgs(ts))
	if err != nil {
		return err
	}
	return types.NewReference(first.Declaration, args)
}

func collectRefArgs(ts []types.Description) [][]types.Description {
	out := make([][]types.Description, len(ts))
	for i, t := range ts {
		out[i] = t.(*types.ReferenceType).GenericArgs
	}
	return out
}

func allVariantCtorSameBase(ts []types.Description) bool {
	first, ok := ts[0].(*types.VariantConstructorType)
	if !ok {
		return false
	}
	for _, t := range ts[1:] {
		ctor, ok := t.(*types.VariantConstructorType)
		if !ok || ctor.BaseVariant != first.BaseVariant {
			return false
		}
	}
	return true
}

func (c *Checker) unifyVariantCtors(ts []types.Description) types.Description {
	first := ts[0].(*types.VariantConstructorType)
	rows := make([][]types.Description, len(ts))
	for i, t := range ts {
		rows[i] = t.(*types.VariantConstructorType).GenericArgs
	}
	args, errDesc := c.unifyGenericArgColumns(rows)
	if errDesc != nil {
		return errDesc
	}
	return types.NewReference(first.VariantDeclaration, args)
}

// mixedReferenceVariantCtor implements rule 11: a Reference and a
// VariantConstructorType that name the same underlying declaration (one
// side already resolved to its constructor, the other still an alias)
// unify to a Reference with the generic arguments merged column-wise.
func (c *Checker) mixedReferenceVariantCtor(ts []types.Description) (types.Description, bool) {
	sawReference, sawVariantCtor := false, false
	var decl ast.Declaration
	rows := make([][]types.Description, 0, len(ts))
	for _, t := range ts {
		switch v := t.(type) {
		case *types.ReferenceType:
			sawReference = true
			if decl == nil {
				decl = v.Declaration
			} else if decl != v.Declaration {
				return nil, false
			}
			rows = append(rows, v.GenericArgs)
		case *types.VariantConstructorType:
			sawVariantCtor = true
			if decl == nil {
				decl = v.VariantDeclaration
			} else if decl != v.VariantDeclaration {
				return nil, false
			}
			rows = append(rows, v.GenericArgs)
		default:
			return nil, false
		}
	}
	if decl == nil || !sawReference || !sawVariantCtor {
		return nil, false
	}
	args, errDesc := c.unifyGenericArgColumns(rows)
	if errDesc != nil {
		return errDesc, true
	}
	return types.NewReference(decl, args), true
}

// unifyGenericArgColumns unifies generic arguments column-wise: Never
// in any row is filled by a concrete type from another row; multiple
// distinct concrete types in the same column is an error.
func (c *Checker) unifyGenericArgColumns(rows [][]types.Description) ([]types.Description, *types.ErrorDesc) {
	if len(rows) == 0 {
		return nil, nil
	}
	width := len(rows[0])
	out := make([]types.Description, width)
	for col := 0; col < width; col++ {
		var picked types.Description
		for _, row := range rows {
			if col >= len(row) {
				continue
			}
			v := row[col]
			if v == nil || v.Kind() == types.KindNever {
				continue
			}
			if picked == nil {
				picked = v
				continue
			}
			if !c.AreEqual(picked, v).Success {
				return nil, types.NewError("conflicting generic arguments at position", nil, nil)
			}
		}
		if picked == nil {
			picked = types.Never
		}
		out[col] = picked
	}
	return out, nil
}
