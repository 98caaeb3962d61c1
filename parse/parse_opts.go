package parse

import (
	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/token"
)

const DefaultMaxDepth = 1000

type parseOpts struct {
	filename  string
	positions map[*ir.Node]*token.Pos
	maxDepth  int
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	if o.filename == "" {
		return nil
	}
	return []token.TokenOpt{token.TokenFilename(o.filename)}
}

type ParseOption func(*parseOpts)

// ParseFilename sets the name reported in error positions.
func ParseFilename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// ParsePositions records in m where each value started. Values built by
// merging repeated keys are recorded at the later assignment.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseMaxDepth limits the nesting of objects and arrays.
func ParseMaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
