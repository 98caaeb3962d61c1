package libdiff

import (
	"strconv"

	"github.com/signadot/go-hocon/ir"
)

// DiffArrayByIndex compares elements at equal indices. Extra elements on
// either side are insertions or deletions.
func DiffArrayByIndex(from, to *ir.Node, df DiffFunc) *ir.Node {
	n := max(len(from.Values), len(to.Values))
	kvs := []ir.KeyVal{}
	for i := range n {
		var f, t *ir.Node
		if i < len(from.Values) {
			f = from.Values[i]
		}
		if i < len(to.Values) {
			t = to.Values[i]
		}
		d := df(f, t)
		if d == nil {
			continue
		}
		kvs = append(kvs, ir.KeyVal{Key: ir.FromString(strconv.Itoa(i)), Val: d})
	}
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}
