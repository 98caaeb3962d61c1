package ir

import (
	"maps"
	"slices"
	"strconv"
)

type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string
	Fields      []*Node
	Values      []*Node

	String  string
	Bool    bool
	Number  string
	Float64 float64
	Path    []string
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

// CloneTo deep copies y into dst. dst keeps y's parent links; the copied
// children point at dst.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Values = nil
	dst.Fields = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	if y.Fields != nil {
		dst.Fields = make([]*Node, len(y.Fields))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dst.Values[i] = dstI
	}
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Number = y.Number
	dst.Float64 = y.Float64
	dst.Path = slices.Clone(y.Path)
	return dst
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: float64(v),
		Number:  strconv.FormatInt(v, 10),
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

// FromSubst returns a placeholder for the value found at path.
func FromSubst(path []string) *Node {
	return &Node{
		Type: SubstType,
		Path: path,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

// FromMap returns an object with the entries of yMap in key order.
func FromMap(yMap map[string]*Node) *Node {
	keys := slices.Sorted(maps.Keys(yMap))
	kvs := make([]KeyVal, len(keys))
	for i, key := range keys {
		kvs[i] = KeyVal{Key: FromString(key), Val: yMap[key]}
	}
	return FromKeyVals(kvs)
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, len(kvs))
	res.Values = make([]*Node, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		kv.Key.ParentField = kv.Key.String
		kv.Val.ParentField = kv.Key.String
		kv.Val.Parent = res
		kv.Val.ParentIndex = i
		kv.Key.Parent = res
		kv.Key.ParentIndex = i
		res.Fields[i] = kv.Key
		res.Values[i] = kv.Val
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
		y.ParentField = ""
	}
	return res
}

// Get returns the value of field in object y, or nil.
func (y *Node) Get(field string) *Node {
	if y.Type != ObjectType {
		return nil
	}
	for i, f := range y.Fields {
		if f.String == field {
			return y.Values[i]
		}
	}
	return nil
}

func Get(y *Node, field string) *Node {
	return y.Get(field)
}

// Put sets field to val in object y, replacing an existing value in
// place or appending a new field.
func (y *Node) Put(field string, val *Node) error {
	if y.Type != ObjectType {
		return ErrNotObject
	}
	val.Parent = y
	val.ParentField = field
	for i, f := range y.Fields {
		if f.String == field {
			val.ParentIndex = i
			y.Values[i] = val
			return nil
		}
	}
	key := FromString(field)
	key.Parent = y
	key.ParentField = field
	key.ParentIndex = len(y.Fields)
	val.ParentIndex = len(y.Values)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, val)
	return nil
}

// Keys returns the field names of object y in order.
func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func (y *Node) Append(val *Node) {
	val.Parent = y
	val.ParentIndex = len(y.Values)
	val.ParentField = ""
	y.Values = append(y.Values, val)
}

// Replace puts with at y's place in its parent. A root y takes over the
// contents of with instead.
func (y *Node) Replace(with *Node) *Node {
	p := y.Parent
	if p == nil {
		with.CloneTo(y)
		y.Parent = nil
		y.ParentIndex = 0
		y.ParentField = ""
		return y
	}
	with.Parent = p
	with.ParentIndex = y.ParentIndex
	with.ParentField = y.ParentField
	p.Values[y.ParentIndex] = with
	return with
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}
