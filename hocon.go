package hocon

import (
	"github.com/signadot/go-hocon/eval"
	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/parse"
)

// ErrParse is matched by every error ParseConfig returns.
var ErrParse = parse.ErrParse

// ParseConfig parses text and resolves its substitutions. The result
// contains no ir.SubstType nodes.
func ParseConfig(text string, opts ...parse.ParseOption) (*ir.Node, error) {
	return ParseConfigBytes([]byte(text), opts...)
}

func ParseConfigBytes(d []byte, opts ...parse.ParseOption) (*ir.Node, error) {
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return eval.Resolve(node), nil
}
