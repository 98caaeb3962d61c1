package encode

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/go-hocon/format"
	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/token"
)

type EncState struct {
	depth, indent int

	format format.Format
	wire   bool

	Color func(ir.Type, ColorAttr, string) string
}

func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 2,
	}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		node = ir.Null()
	}
	if es.format.IsYAML() {
		return encodeYAML(node, w, es)
	}
	var err error
	if es.format.IsHOCON() && !es.wire && node.Type == ir.ObjectType && len(node.Fields) != 0 {
		// the root object of a document needs no braces
		err = encodeFields(node, w, es)
	} else {
		err = encode(node, w, es)
	}
	if err != nil {
		return err
	}
	if es.wire {
		return nil
	}
	return writeString(w, "\n")
}

func writeNL(w io.Writer, es *EncState) error {
	if es.wire {
		return nil
	}
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, nodeType ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(nodeType, attr, v)
}

func writeSep(w io.Writer, es *EncState, t ir.Type, sep string) error {
	return writeString(w, applyColor(es, t, SepColor, sep))
}

// writeItemSep writes what goes between two members of an object or array.
func writeItemSep(w io.Writer, es *EncState, t ir.Type) error {
	switch {
	case es.format.IsJSON():
		return writeSep(w, es, t, ",")
	case es.wire:
		return writeSep(w, es, t, ", ")
	default:
		return nil
	}
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.ObjectType:
		return encodeObject(node, w, es)
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.StringType:
		return encodeString(node, w, es)
	case ir.NumberType:
		return encodeNumber(node, w, es)
	case ir.BoolType:
		return encodeBool(node, w, es)
	case ir.NullType:
		return encodeNull(node, w, es)
	case ir.SubstType:
		return encodeSubst(node, w, es)
	default:
		return fmt.Errorf("%w: unknown node type %d", ErrEncoding, node.Type)
	}
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeSep(w, es, ir.ObjectType, "{}")
	}
	if err := writeSep(w, es, ir.ObjectType, "{"); err != nil {
		return err
	}
	es.depth++
	if err := writeNL(w, es); err != nil {
		return err
	}
	if err := encodeFields(node, w, es); err != nil {
		return err
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ObjectType, "}")
}

func encodeFields(node *ir.Node, w io.Writer, es *EncState) error {
	for i, field := range node.Fields {
		if i > 0 {
			if err := writeItemSep(w, es, ir.ObjectType); err != nil {
				return err
			}
			if err := writeNL(w, es); err != nil {
				return err
			}
		}
		if err := writeField(w, field.String, node.Values[i], es); err != nil {
			return err
		}
		if err := encode(node.Values[i], w, es); err != nil {
			return err
		}
	}
	return nil
}

// writeField writes a key and its separator. Non-empty objects in HOCON
// take no separator: `key {`.
func writeField(w io.Writer, key string, val *ir.Node, es *EncState) error {
	if es.format.IsJSON() {
		if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, token.Quote(key))); err != nil {
			return err
		}
		sep := ":"
		if !es.wire {
			sep = ": "
		}
		return writeSep(w, es, ir.ObjectType, sep)
	}
	if err := writeString(w, applyColor(es, ir.ObjectType, FieldColor, ir.KeyComponent(key))); err != nil {
		return err
	}
	if val.Type == ir.ObjectType && len(val.Fields) != 0 {
		return writeString(w, " ")
	}
	return writeSep(w, es, ir.ObjectType, " = ")
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeSep(w, es, ir.ArrayType, "[]")
	}
	if err := writeSep(w, es, ir.ArrayType, "["); err != nil {
		return err
	}
	es.depth++
	for i, val := range node.Values {
		if i > 0 {
			if err := writeItemSep(w, es, ir.ArrayType); err != nil {
				return err
			}
		}
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(val, w, es); err != nil {
			return err
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeSep(w, es, ir.ArrayType, "]")
}

func encodeString(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.StringType, ValueColor, quoteString(node.String, es)))
}

func quoteString(v string, es *EncState) string {
	if es.format.IsJSON() {
		return token.Quote(v)
	}
	if !es.wire && doMString(v) {
		return `"""` + v + `"""`
	}
	if token.NeedsQuote(v) {
		return token.Quote(v)
	}
	return v
}

// doMString reports whether v reads better as a triple quoted string and
// survives as one unchanged.
func doMString(v string) bool {
	if !strings.Contains(v, "\n") {
		return false
	}
	if strings.Contains(v, `"""`) || strings.HasSuffix(v, `"`) {
		return false
	}
	return true
}

func encodeNumber(node *ir.Node, w io.Writer, es *EncState) error {
	v, err := numberText(node, es)
	if err != nil {
		return err
	}
	return writeString(w, applyColor(es, ir.NumberType, ValueColor, v))
}

func numberText(node *ir.Node, es *EncState) (string, error) {
	f := node.Float64
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("%w: %v is not a number in %s", ErrEncoding, f, es.format)
	}
	if node.Number != "" && es.format.IsHOCON() {
		return node.Number, nil
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func encodeBool(node *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.BoolType, ValueColor, strconv.FormatBool(node.Bool)))
}

func encodeNull(_ *ir.Node, w io.Writer, es *EncState) error {
	return writeString(w, applyColor(es, ir.NullType, ValueColor, "null"))
}

func encodeSubst(node *ir.Node, w io.Writer, es *EncState) error {
	if !es.format.IsHOCON() {
		return fmt.Errorf("%w: unresolved substitution ${%s} in %s", ErrEncoding, ir.JoinPath(node.Path), es.format)
	}
	return writeString(w, applyColor(es, ir.SubstType, ValueColor, "${"+ir.JoinPath(node.Path)+"}"))
}
