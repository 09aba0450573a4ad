package typeprovider

import (
	"github.com/typecore/corelang/internal/types"
	"github.com/typecore/corelang/internal/workspace"
)

// prototypeFor resolves receiver's built-in member set. The workspace
// only carries member *names* (real parsed prototype declarations
// would carry full signatures); this synthesizes each member's
// parameter/return types from the receiver's own structural shape,
// which is enough to type-check calls against the three built-in
// prototypes without a real prototype-source parser.
func (p *Provider) prototypeFor(receiver types.Description) *types.PrototypeType {
	if p.workspace == nil || receiver == nil {
		return nil
	}
	switch r := receiver.(type) {
	case *types.ArrayType:
		return p.buildArrayPrototype(r)
	case *types.CoroutineType:
		return p.buildCoroutinePrototype(r)
	}
	switch receiver.Kind() {
	case types.KindString, types.KindStringLiteral, types.KindStringEnum:
		return p.buildStringPrototype()
	}
	return nil
}

func (p *Provider) buildArrayPrototype(arr *types.ArrayType) *types.PrototypeType {
	var methods []types.MethodDesc
	var props []types.AttributeDesc
	for _, m := range p.workspace.Prototype(workspace.ArrayPrototypeURI) {
		switch {
		case m.Name == "length" && !m.IsMethod:
			props = append(props, types.AttributeDesc{Name: m.Name, Type: types.U32Type})
		case m.Name == "push":
			methods = append(methods, types.MethodDesc{
				Names:      []string{m.Name},
				Parameters: []types.FunctionParam{{Name: "value", Type: arr.Element}},
				ReturnType: types.Void,
			})
		case m.Name == "pop":
			methods = append(methods, types.MethodDesc{Names: []string{m.Name}, ReturnType: types.NewNullable(arr.Element)})
		default:
			methods = append(methods, types.MethodDesc{Names: []string{m.Name}, ReturnType: types.Void})
		}
	}
	return types.NewPrototype(types.PrototypeArray, methods, props)
}

func (p *Provider) buildCoroutinePrototype(co *types.CoroutineType) *types.PrototypeType {
	var methods []types.MethodDesc
	var props []types.AttributeDesc
	for _, m := range p.workspace.Prototype(workspace.CoroutinePrototypeURI) {
		switch {
		case m.Name == "done" && !m.IsMethod:
			props = append(props, types.AttributeDesc{Name: m.Name, Type: types.Bool})
		case m.Name == "resume":
			methods = append(methods, types.MethodDesc{Names: []string{m.Name}, ReturnType: co.YieldType})
		default:
			methods = append(methods, types.MethodDesc{Names: []string{m.Name}, ReturnType: types.Void})
		}
	}
	return types.NewPrototype(types.PrototypeCoroutine, methods, props)
}

func (p *Provider) buildStringPrototype() *types.PrototypeType {
	var methods []types.MethodDesc
	var props []types.AttributeDesc
	for _, m := range p.workspace.Prototype(workspace.StringPrototypeURI) {
		switch {
		case m.Name == "length" && !m.IsMethod:
			props = append(props, types.AttributeDesc{Name: m.Name, Type: types.U32Type})
		case m.Name == "at":
			methods = append(methods, types.MethodDesc{
				Names:      []string{m.Name},
				Parameters: []types.FunctionParam{{Name: "index", Type: types.U32Type}},
				ReturnType: types.Str,
			})
		case m.Name == "toUpper":
			methods = append(methods, types.MethodDesc{Names: []string{m.Name}, ReturnType: types.Str})
		default:
			methods = append(methods, types.MethodDesc{Names: []string{m.Name}, ReturnType: types.Void})
		}
	}
	return types.NewPrototype(types.PrototypeString, methods, props)
}
