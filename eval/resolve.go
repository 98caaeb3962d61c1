package eval

import (
	"strings"

	"github.com/signadot/go-hocon/debug"
	"github.com/signadot/go-hocon/encode"
	"github.com/signadot/go-hocon/ir"
)

// Resolve returns a copy of root in which every substitution has been
// replaced by the value found at its path. References chain
// transitively. A path which does not exist resolves to null, as does
// every reference taking part in a cycle, including an object which
// contains a reference to itself.
//
// Each path is resolved once, so all references to a path see the same
// value. root is not modified.
func Resolve(root *ir.Node) *ir.Node {
	r := &resolver{
		root:    root,
		memo:    map[string]*ir.Node{},
		onStack: map[string]int{},
		cyclic:  map[string]bool{},
	}
	return r.value(nil).Clone()
}

type resolver struct {
	root *ir.Node
	// resolved values by path; shared, clone before attaching
	memo    map[string]*ir.Node
	stack   []string
	onStack map[string]int
	cyclic  map[string]bool
}

func pathKey(path []string) string {
	var b strings.Builder
	for _, p := range path {
		b.WriteByte(0)
		b.WriteString(p)
	}
	return b.String()
}

// value returns the resolved value at path.
func (r *resolver) value(path []string) *ir.Node {
	key := pathKey(path)
	if v, ok := r.memo[key]; ok {
		return v
	}
	if i, ok := r.onStack[key]; ok {
		if debug.Resolve() {
			debug.Logf("resolve cycle at %s\n", ir.JoinPath(path))
		}
		for _, k := range r.stack[i:] {
			r.cyclic[k] = true
		}
		return ir.Null()
	}
	r.onStack[key] = len(r.stack)
	r.stack = append(r.stack, key)

	res := r.compute(path)

	r.stack = r.stack[:len(r.stack)-1]
	delete(r.onStack, key)
	if r.cyclic[key] {
		res = ir.Null()
	}
	res.Parent = nil
	r.memo[key] = res
	return res
}

func (r *resolver) compute(path []string) *ir.Node {
	n := r.raw(path)
	if n == nil {
		if debug.Resolve() {
			debug.Logf("resolve %s: not found\n", ir.JoinPath(path))
		}
		return ir.Null()
	}
	switch n.Type {
	case ir.SubstType:
		res := r.value(n.Path).Clone()
		if debug.Resolve() {
			debug.Logf("resolve %s = ${%s} -> %s\n", ir.JoinPath(path), ir.JoinPath(n.Path), encode.MustString(res))
		}
		return res
	case ir.ObjectType:
		kvs := make([]ir.KeyVal, len(n.Fields))
		sub := append(path[:len(path):len(path)], "")
		for i, f := range n.Fields {
			sub[len(sub)-1] = f.String
			kvs[i] = ir.KeyVal{Key: ir.FromString(f.String), Val: r.value(sub).Clone()}
		}
		return ir.FromKeyVals(kvs)
	default:
		return r.anon(n)
	}
}

// raw returns the unresolved node at path, resolving references met on
// the way.
func (r *resolver) raw(path []string) *ir.Node {
	cur := r.root
	for i, k := range path {
		if cur.Type == ir.SubstType {
			cur = r.value(path[:i])
		}
		cur = cur.Get(k)
		if cur == nil {
			return nil
		}
	}
	return cur
}

// anon resolves a node which has no path of its own, such as an array
// element.
func (r *resolver) anon(n *ir.Node) *ir.Node {
	switch n.Type {
	case ir.SubstType:
		return r.value(n.Path).Clone()
	case ir.ArrayType:
		vals := make([]*ir.Node, len(n.Values))
		for i, v := range n.Values {
			vals[i] = r.anon(v)
		}
		return ir.FromSlice(vals)
	case ir.ObjectType:
		kvs := make([]ir.KeyVal, len(n.Fields))
		for i, f := range n.Fields {
			kvs[i] = ir.KeyVal{Key: ir.FromString(f.String), Val: r.anon(n.Values[i])}
		}
		return ir.FromKeyVals(kvs)
	default:
		res := n.Clone()
		res.Parent = nil
		return res
	}
}
