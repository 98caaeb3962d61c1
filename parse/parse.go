package parse

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/signadot/go-hocon/debug"
	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/merge"
	"github.com/signadot/go-hocon/token"
)

// Parse parses a complete document. Lexical errors are returned as
// *token.TokenizeErr and grammar errors as *SyntaxErr; both match
// ErrParse with errors.Is.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{maxDepth: DefaultMaxDepth}
	for _, f := range opts {
		f(pOpts)
	}
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	if debug.Tokens() {
		token.PrintTokens(os.Stderr, toks, "parse")
	}
	off := 0
	return parseDoc(toks, &off, pOpts)
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

// trackTree records pos for every node under node which has no position.
func trackTree(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions == nil {
		return
	}
	_ = node.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost {
			return false, nil
		}
		if _, ok := opts.positions[y]; !ok {
			opts.positions[y] = pos
		}
		return true, nil
	})
}

func parseDoc(toks []token.Token, pi *int, opts *parseOpts) (*ir.Node, error) {
	skipNewlines(toks, pi)
	t := &toks[*pi]
	switch t.Type {
	case token.TEOF:
		res := ir.FromKeyVals(nil)
		trackPos(res, t.Pos, opts)
		return res, nil
	case token.TLCurl, token.TLSquare:
	default:
		if hasSeparator(toks[*pi:]) || !isSingleValue(toks[*pi:]) {
			return parseObjBody(toks, pi, opts, token.TEOF, 0)
		}
	}
	res, err := parseValue(toks, pi, opts, 0)
	if err != nil {
		return nil, err
	}
	skipNewlines(toks, pi)
	if t := &toks[*pi]; t.Type != token.TEOF {
		return nil, syntaxErr(t.Pos, "unexpected %s after document value", describe(t))
	}
	return res, nil
}

// hasSeparator reports whether toks assign anything.
func hasSeparator(toks []token.Token) bool {
	for i := range toks {
		switch toks[i].Type {
		case token.TColon, token.TEquals, token.TLCurl:
			return true
		}
	}
	return false
}

// isSingleValue reports whether toks hold exactly one scalar or
// substitution token before the end of input. Only such a document may
// be a bare value; `port 8080` is a field missing its separator.
func isSingleValue(toks []token.Token) bool {
	if !toks[0].IsScalar() && toks[0].Type != token.TSubst {
		return false
	}
	i := 1
	for toks[i].Type == token.TNewline {
		i++
	}
	return toks[i].Type == token.TEOF
}

func skipNewlines(toks []token.Token, pi *int) {
	for toks[*pi].Type == token.TNewline {
		*pi++
	}
}

func describe(t *token.Token) string {
	switch t.Type {
	case token.TEOF:
		return "end of input"
	case token.TNewline:
		return "newline"
	case token.TSubst:
		return fmt.Sprintf("${%s}", t.Bytes)
	default:
		return fmt.Sprintf("%q", t.Bytes)
	}
}

// parseObjBody parses fields up to closer, which is TRCurl for a braced
// object or TEOF for the root.
func parseObjBody(toks []token.Token, pi *int, opts *parseOpts, closer token.TokenType, depth int) (*ir.Node, error) {
	obj := ir.FromKeyVals(nil)
	trackPos(obj, toks[*pi].Pos, opts)
	for {
		skipNewlines(toks, pi)
		tok := &toks[*pi]
		switch {
		case tok.Type == closer:
			if closer != token.TEOF {
				*pi++
			}
			return obj, nil
		case tok.Type == token.TEOF:
			return nil, syntaxErr(tok.Pos, "unterminated object, expected '}'")
		case !tok.IsScalar():
			return nil, syntaxErr(tok.Pos, "expected key, got %s", describe(tok))
		}
		if err := parseField(obj, toks, pi, opts, depth); err != nil {
			return nil, err
		}
		next := &toks[*pi]
		switch next.Type {
		case token.TComma:
			*pi++
		case token.TNewline, token.TEOF, closer:
		default:
			return nil, syntaxErr(next.Pos, "expected ',' or newline after field, got %s", describe(next))
		}
	}
}

func parseField(obj *ir.Node, toks []token.Token, pi *int, opts *parseOpts, depth int) error {
	start := *pi
	for toks[*pi].IsScalar() {
		*pi++
	}
	keyToks := toks[start:*pi]
	path, err := keyPath(keyToks)
	if err != nil {
		return err
	}
	sep := &toks[*pi]
	switch sep.Type {
	case token.TColon, token.TEquals:
		*pi++
	case token.TLCurl:
	case token.TSubst:
		return syntaxErr(sep.Pos, "substitution in key %q", token.KeyText(keyToks))
	default:
		return syntaxErr(sep.Pos, "expected ':', '=' or '{' after key %q, got %s", token.KeyText(keyToks), describe(sep))
	}
	switch vt := &toks[*pi]; vt.Type {
	case token.TNewline, token.TEOF, token.TComma, token.TRCurl, token.TRSquare:
		return syntaxErr(vt.Pos, "missing value for key %q", token.KeyText(keyToks))
	}
	val, err := parseValue(toks, pi, opts, depth)
	if err != nil {
		return err
	}
	assign(obj, path, val, keyToks[0].Pos, opts)
	return nil
}

// assign sets the value at path under obj, merging with any value
// already there.
func assign(obj *ir.Node, path []string, val *ir.Node, pos *token.Pos, opts *parseOpts) {
	for i := len(path) - 1; i > 0; i-- {
		val = ir.FromKeyVals([]ir.KeyVal{{Key: ir.FromString(path[i]), Val: val}})
		trackPos(val, pos, opts)
	}
	if old := obj.Get(path[0]); old != nil {
		val = merge.Merge(old, val)
		trackTree(val, pos, opts)
	}
	if err := obj.Put(path[0], val); err != nil {
		panic(fmt.Errorf("%w: %w", errInternal, err))
	}
}

func parseValue(toks []token.Token, pi *int, opts *parseOpts, depth int) (*ir.Node, error) {
	t := &toks[*pi]
	switch t.Type {
	case token.TLCurl:
		if depth >= opts.maxDepth {
			return nil, syntaxErr(t.Pos, "nesting deeper than %d", opts.maxDepth)
		}
		*pi++
		res, err := parseObjBody(toks, pi, opts, token.TRCurl, depth+1)
		if err != nil {
			return nil, err
		}
		trackPos(res, t.Pos, opts)
		return res, nil
	case token.TLSquare:
		if depth >= opts.maxDepth {
			return nil, syntaxErr(t.Pos, "nesting deeper than %d", opts.maxDepth)
		}
		*pi++
		return parseArr(toks, pi, opts, t.Pos, depth+1)
	case token.TSubst:
		path, err := substPath(t)
		if err != nil {
			return nil, err
		}
		*pi++
		res := ir.FromSubst(path)
		trackPos(res, t.Pos, opts)
		return res, nil
	}
	if !t.IsScalar() {
		return nil, syntaxErr(t.Pos, "expected value, got %s", describe(t))
	}
	start := *pi
	for toks[*pi].IsScalar() {
		*pi++
	}
	res := scalarRun(toks[start:*pi])
	trackPos(res, t.Pos, opts)
	return res, nil
}

// scalarRun types a run of adjacent value tokens. A single unquoted word
// is classified; anything else is a string of the token texts joined by
// single spaces.
func scalarRun(run []token.Token) *ir.Node {
	if len(run) == 1 {
		if run[0].Quoted() {
			return ir.FromString(run[0].String())
		}
		return ClassifyScalar(run[0].String())
	}
	parts := make([]string, len(run))
	for i := range run {
		parts[i] = run[i].String()
	}
	return ir.FromString(strings.Join(parts, " "))
}

func parseArr(toks []token.Token, pi *int, opts *parseOpts, pos *token.Pos, depth int) (*ir.Node, error) {
	arr := ir.FromSlice(nil)
	trackPos(arr, pos, opts)
	for {
		skipNewlines(toks, pi)
		tok := &toks[*pi]
		switch tok.Type {
		case token.TRSquare:
			*pi++
			return arr, nil
		case token.TEOF:
			return nil, syntaxErr(tok.Pos, "unterminated array, expected ']'")
		}
		val, err := parseValue(toks, pi, opts, depth)
		if err != nil {
			return nil, err
		}
		arr.Append(val)
		next := &toks[*pi]
		switch next.Type {
		case token.TComma:
			*pi++
		case token.TNewline, token.TEOF, token.TRSquare:
		default:
			return nil, syntaxErr(next.Pos, "expected ',' or newline after array element, got %s", describe(next))
		}
	}
}

// IsSyntaxErr reports whether err came from the grammar rather than the
// lexer.
func IsSyntaxErr(err error) bool {
	var se *SyntaxErr
	return errors.As(err, &se)
}
