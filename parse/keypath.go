package parse

import (
	"bytes"
	"fmt"

	"github.com/signadot/go-hocon/token"
)

// keyPath is token.KeyPath reporting failures as syntax errors.
func keyPath(toks []token.Token) ([]string, error) {
	path, err := token.KeyPath(toks)
	if err != nil {
		return nil, syntaxErr(toks[0].Pos, "%v", err)
	}
	return path, nil
}

// substPath splits the body of ${...} into a key path. A leading '?'
// marks an optional reference; missing targets resolve to null either
// way.
func substPath(t *token.Token) ([]string, error) {
	body := bytes.TrimPrefix(t.Bytes, []byte{'?'})
	toks, err := token.Tokenize(nil, body)
	if err != nil {
		return nil, syntaxErr(t.Pos, "bad substitution ${%s}: %v", t.Bytes, err)
	}
	toks = toks[:len(toks)-1]
	if len(toks) == 0 {
		return nil, syntaxErr(t.Pos, "empty substitution ${%s}", t.Bytes)
	}
	for i := range toks {
		if !toks[i].IsScalar() {
			return nil, syntaxErr(t.Pos, "unexpected %q in substitution ${%s}", toks[i].Bytes, t.Bytes)
		}
	}
	toks[0].Space = nil
	path, err := keyPath(toks)
	if err != nil {
		return nil, syntaxErr(t.Pos, "bad substitution ${%s}", t.Bytes)
	}
	return path, nil
}

// ParsePath splits dotted path text, as written in a key or inside
// ${...}, into its components.
func ParsePath(s string) ([]string, error) {
	path, err := token.ParsePath(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return path, nil
}
