package token

import (
	"bytes"
	"fmt"
	"strings"
)

type keyPart struct {
	b      []byte
	quoted bool
}

// KeyPath joins adjacent key tokens as written and splits the unquoted
// pieces on '.'. Quoted pieces are never split.
func KeyPath(toks []Token) ([]string, error) {
	var (
		parts = []keyPart{}
		cur   keyPart
	)
	for i := range toks {
		t := &toks[i]
		if i > 0 {
			cur.b = append(cur.b, t.Space...)
		}
		if t.Quoted() {
			cur.b = append(cur.b, t.Bytes...)
			cur.quoted = true
			continue
		}
		pieces := bytes.Split(t.Bytes, []byte{'.'})
		cur.b = append(cur.b, pieces[0]...)
		for _, piece := range pieces[1:] {
			parts = append(parts, cur)
			cur = keyPart{b: append([]byte{}, piece...)}
		}
	}
	parts = append(parts, cur)
	res := make([]string, len(parts))
	for i, p := range parts {
		if len(p.b) == 0 && !p.quoted {
			return nil, fmt.Errorf("%w in %q", ErrEmptyPathComponent, KeyText(toks))
		}
		res[i] = string(p.b)
	}
	return res, nil
}

// KeyText is the source text of a run of key tokens, quotes removed.
func KeyText(toks []Token) string {
	var b strings.Builder
	for i := range toks {
		if i > 0 {
			b.Write(toks[i].Space)
		}
		b.Write(toks[i].Bytes)
	}
	return b.String()
}

// ParsePath splits path text such as `a."N.M".c` into its components.
func ParsePath(s string) ([]string, error) {
	toks, err := Tokenize(nil, []byte(strings.TrimSpace(s)))
	if err != nil {
		return nil, err
	}
	toks = toks[:len(toks)-1]
	if len(toks) == 0 {
		return nil, fmt.Errorf("%w: empty path", ErrBadPath)
	}
	for i := range toks {
		if !toks[i].IsScalar() {
			return nil, fmt.Errorf("%w: unexpected %q at %s", ErrBadPath, toks[i].Bytes, toks[i].Pos)
		}
	}
	return KeyPath(toks)
}
