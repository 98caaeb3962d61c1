package libdiff

import (
	"github.com/signadot/go-hocon/debug"
	"github.com/signadot/go-hocon/encode"
	"github.com/signadot/go-hocon/ir"
)

type DiffFunc func(from, to *ir.Node) *ir.Node

// Diff returns nil when from and to are equal and otherwise a diff
// object describing how to turn from into to.
func Diff(from, to *ir.Node) *ir.Node {
	res := diff(from, to)
	if debug.Merge() && res != nil {
		debug.Logf("diff %s\n", encode.MustString(res))
	}
	return res
}

func diff(from, to *ir.Node) *ir.Node {
	switch {
	case from == nil && to == nil:
		return nil
	case from == nil || to == nil:
		return MakeDiff(from, to)
	}
	if ir.Compare(from, to) == 0 {
		return nil
	}
	if from.Type != to.Type {
		return MakeDiff(from, to)
	}
	switch from.Type {
	case ir.ObjectType:
		return DiffObject(from, to, diff)
	case ir.ArrayType:
		return DiffArrayByIndex(from, to, diff)
	case ir.StringType:
		return DiffString(from, to)
	default:
		return MakeDiff(from, to)
	}
}
