package libdiff

import (
	"github.com/signadot/go-hocon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffObject aligns the field names of from and to and recurses on the
// values of fields present in both. Fields keep the order in which the
// alignment meets them.
func DiffObject(from, to *ir.Node, df DiffFunc) *ir.Node {
	fieldMap := map[string]rune{}
	runeMap := map[rune]string{}
	fromRunes := mapFieldsTo(fieldMap, runeMap, from)
	toRunes := mapFieldsTo(fieldMap, runeMap, to)
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)

	done := map[string]bool{}
	kvs := []ir.KeyVal{}
	add := func(f string, d *ir.Node) {
		done[f] = true
		if d != nil {
			kvs = append(kvs, ir.KeyVal{Key: ir.FromString(f), Val: d})
		}
	}
	for i := range diffs {
		d := &diffs[i]
		for _, r := range d.Text {
			f := runeMap[r]
			if done[f] {
				continue
			}
			// a field that moved shows up as a delete and an insert
			add(f, df(from.Get(f), to.Get(f)))
		}
	}
	if len(kvs) == 0 {
		return nil
	}
	return ir.FromKeyVals(kvs)
}

func mapFieldsTo(m map[string]rune, im map[rune]string, node *ir.Node) []rune {
	rs := make([]rune, len(node.Fields))
	for i := range node.Fields {
		f := node.Fields[i].String
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
			im[r] = f
		}
		rs[i] = r
	}
	return rs
}
