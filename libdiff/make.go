package libdiff

import "github.com/signadot/go-hocon/ir"

// MakeDiff returns the diff replacing from by to. A nil from is an
// insertion and a nil to is a deletion.
func MakeDiff(from, to *ir.Node) *ir.Node {
	kvs := make([]ir.KeyVal, 0, 2)
	if from != nil {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(DeleteKey), Val: detach(from.Clone())})
	}
	if to != nil {
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(InsertKey), Val: detach(to.Clone())})
	}
	return ir.FromKeyVals(kvs)
}

func detach(n *ir.Node) *ir.Node {
	n.Parent = nil
	n.ParentIndex = 0
	n.ParentField = ""
	return n
}
