package libdiff

import (
	"strings"

	"github.com/signadot/go-hocon/ir"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// DiffString returns a line patch when both strings span lines and a
// plain replacement otherwise.
func DiffString(from, to *ir.Node) *ir.Node {
	if from.String == to.String {
		return nil
	}
	if !strings.Contains(from.String, "\n") || !strings.Contains(to.String, "\n") {
		return MakeDiff(from, to)
	}
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from.String, to.String)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	patches := diffCfg.PatchMake(from.String, diffs)
	return ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString(PatchKey), Val: ir.FromString(diffCfg.PatchToText(patches))},
	})
}

// ApplyString applies the patch of a string diff to from.
func ApplyString(from string, d *ir.Node) (string, bool) {
	p := d.Get(PatchKey)
	if p == nil || p.Type != ir.StringType {
		return from, false
	}
	diffCfg := diffpatch.New()
	patches, err := diffCfg.PatchFromText(p.String)
	if err != nil {
		return from, false
	}
	res, applied := diffCfg.PatchApply(patches, from)
	for _, ok := range applied {
		if !ok {
			return from, false
		}
	}
	return res, true
}
