package eval

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/signadot/go-hocon/ir"
)

func MarshalJSON(node *ir.Node) ([]byte, error) {
	return json.Marshal(ToJSONAny(node))
}

// ToJSONAny returns node as plain Go values: map[string]any, []any,
// string, float64, bool and nil. An unresolved substitution becomes the
// string "${path}".
func ToJSONAny(node *ir.Node) any {
	switch node.Type {
	case ir.ObjectType:
		n := len(node.Fields)
		res := make(map[string]any, n)
		for i := range n {
			res[node.Fields[i].String] = ToJSONAny(node.Values[i])
		}
		return res
	case ir.ArrayType:
		res := make([]any, len(node.Values))
		for i, elt := range node.Values {
			res[i] = ToJSONAny(elt)
		}
		return res
	case ir.StringType:
		return node.String
	case ir.NumberType:
		return node.Float64
	case ir.BoolType:
		return node.Bool
	case ir.NullType:
		return nil
	case ir.SubstType:
		return "${" + ir.JoinPath(node.Path) + "}"
	default:
		panic("impossible production")
	}
}

// FromJSONAny converts plain Go values, as produced by ToJSONAny or
// encoding/json, back into a tree. Map keys are taken in sorted order.
func FromJSONAny(v any) (*ir.Node, error) {
	switch x := v.(type) {
	case *ir.Node:
		return x.Clone(), nil
	case nil:
		return ir.Null(), nil
	case bool:
		return ir.FromBool(x), nil
	case string:
		return ir.FromString(x), nil
	case float64:
		return ir.FromFloat(x), nil
	case float32:
		return ir.FromFloat(float64(x)), nil
	case int:
		return ir.FromInt(int64(x)), nil
	case int64:
		return ir.FromInt(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		res := ir.FromFloat(f)
		res.Number = x.String()
		return res, nil
	case []any:
		vals := make([]*ir.Node, len(x))
		for i, e := range x {
			n, err := FromJSONAny(e)
			if err != nil {
				return nil, err
			}
			vals[i] = n
		}
		return ir.FromSlice(vals), nil
	case map[string]any:
		keys := slices.Sorted(maps.Keys(x))
		kvs := make([]ir.KeyVal, len(keys))
		for i, k := range keys {
			n, err := FromJSONAny(x[k])
			if err != nil {
				return nil, err
			}
			kvs[i] = ir.KeyVal{Key: ir.FromString(k), Val: n}
		}
		return ir.FromKeyVals(kvs), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a config value", v)
	}
}
