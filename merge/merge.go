// Package merge combines configuration values assigned to the same key.
package merge

import (
	"github.com/signadot/go-hocon/debug"
	"github.com/signadot/go-hocon/ir"
)

// Merge returns the combination of old with new, which is assigned later.
//
// When both are objects the result holds every field of old in place,
// followed by the fields only new has, with fields present in both merged
// by the same rule. In every other case the result is new.
//
// Neither argument is modified; the result shares no nodes with them.
func Merge(old, new *ir.Node) *ir.Node {
	if old == nil {
		return detach(new.Clone())
	}
	if debug.Merge() {
		debug.Logf("merge %s at %q\n", new.Type, old.KPath())
	}
	if old.Type != ir.ObjectType || new.Type != ir.ObjectType {
		return detach(new.Clone())
	}
	return mergeObjects(old, new)
}

func mergeObjects(old, new *ir.Node) *ir.Node {
	newMap := make(map[string]*ir.Node, len(new.Fields))
	for i, f := range new.Fields {
		newMap[f.String] = new.Values[i]
	}
	kvs := make([]ir.KeyVal, 0, len(old.Fields)+len(new.Fields))
	for i, f := range old.Fields {
		ov := old.Values[i]
		nv, present := newMap[f.String]
		var v *ir.Node
		if present {
			v = Merge(ov, nv)
		} else {
			v = ov.Clone()
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(f.String), Val: v})
	}
	for i, f := range new.Fields {
		if old.Get(f.String) != nil {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(f.String), Val: new.Values[i].Clone()})
	}
	return ir.FromKeyVals(kvs)
}

func detach(y *ir.Node) *ir.Node {
	y.Parent = nil
	y.ParentIndex = 0
	y.ParentField = ""
	return y
}
