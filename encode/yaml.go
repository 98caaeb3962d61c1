package encode

import (
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-yaml"
	"github.com/signadot/go-hocon/ir"
)

func encodeYAML(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := toYAML(node, es)
	if err != nil {
		return err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(es.indent), yaml.Flow(es.wire))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	if es.wire {
		d = bytes.TrimRight(d, "\n")
	}
	_, err = w.Write(d)
	return err
}

// toYAML converts node to values go-yaml encodes in order.
func toYAML(node *ir.Node, es *EncState) (any, error) {
	switch node.Type {
	case ir.ObjectType:
		res := make(yaml.MapSlice, 0, len(node.Fields))
		for i, field := range node.Fields {
			v, err := toYAML(node.Values[i], es)
			if err != nil {
				return nil, err
			}
			res = append(res, yaml.MapItem{Key: field.String, Value: v})
		}
		return res, nil
	case ir.ArrayType:
		res := make([]any, 0, len(node.Values))
		for _, val := range node.Values {
			v, err := toYAML(val, es)
			if err != nil {
				return nil, err
			}
			res = append(res, v)
		}
		return res, nil
	case ir.StringType:
		return node.String, nil
	case ir.NumberType:
		if _, err := numberText(node, es); err != nil {
			return nil, err
		}
		f := node.Float64
		if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
			return int64(f), nil
		}
		return f, nil
	case ir.BoolType:
		return node.Bool, nil
	case ir.NullType:
		return nil, nil
	case ir.SubstType:
		return nil, fmt.Errorf("%w: unresolved substitution ${%s} in %s", ErrEncoding, ir.JoinPath(node.Path), es.format)
	default:
		return nil, fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
}
