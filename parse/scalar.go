package parse

import (
	"strconv"

	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/token"
)

// ClassifyScalar types a single unquoted word: a number if it is one,
// else true, false or null, else a string.
func ClassifyScalar(raw string) *ir.Node {
	if token.IsNumber([]byte(raw)) {
		f, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			res := ir.FromFloat(f)
			res.Number = raw
			return res
		}
	}
	switch raw {
	case "true":
		return ir.FromBool(true)
	case "false":
		return ir.FromBool(false)
	case "null":
		return ir.Null()
	}
	return ir.FromString(raw)
}
