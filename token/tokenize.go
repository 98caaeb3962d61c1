package token

import (
	"bytes"
	"errors"
	"unicode"
	"unicode/utf8"
)

// quoteState is the quote context of the tokenizer. Comment starts and
// delimiters are only recognized in quoteNone.
type quoteState int

const (
	quoteNone quoteState = iota
	quoteSingle
	quoteDouble
	quoteTriple
)

func (s quoteState) String() string {
	switch s {
	case quoteSingle:
		return "single quoted string"
	case quoteDouble:
		return "double quoted string"
	case quoteTriple:
		return "multiline string"
	default:
		return "unquoted text"
	}
}

var tripleQuote = []byte(`"""`)

type tokenOpts struct {
	filename string
}

type TokenOpt func(*tokenOpts)

// TokenFilename sets the document name reported in positions.
func TokenFilename(name string) TokenOpt {
	return func(o *tokenOpts) { o.filename = name }
}

type tokenizer struct {
	d   []byte
	i   int
	doc *PosDoc
	dst []Token

	state quoteState
	// offset of the opening quote of the token being scanned
	start int
	// unescaped content of the quoted string being scanned
	buf []byte
	// offset where pending same-line whitespace began, -1 if none
	space int
}

// Tokenize appends the tokens of src to dst. Comments are dropped, every
// line break yields a TNewline and the result always ends with TEOF.
func Tokenize(dst []Token, src []byte, opts ...TokenOpt) ([]Token, error) {
	o := &tokenOpts{}
	for _, f := range opts {
		f(o)
	}
	t := &tokenizer{
		d:     src,
		doc:   NewPosDoc(o.filename, src),
		dst:   dst,
		space: -1,
	}
	for t.i < len(t.d) {
		var err error
		switch t.state {
		case quoteNone:
			err = t.plain()
		case quoteSingle:
			err = t.quoted('\'')
		case quoteDouble:
			err = t.quoted('"')
		case quoteTriple:
			err = t.triple()
		}
		if err != nil {
			return nil, err
		}
	}
	if t.state != quoteNone {
		return nil, unterminatedErr(t.state.String(), t.doc.Pos(t.start))
	}
	t.emit(TEOF, len(t.d), nil)
	return t.dst, nil
}

func (t *tokenizer) plain() error {
	c := t.d[t.i]
	switch c {
	case ' ', '\t', '\r', '\f', '\v':
		t.whitespace(1)
		return nil
	case '\n':
		t.doc.nl(t.i)
		t.emit(TNewline, t.i, t.d[t.i:t.i+1])
		t.i++
		return nil
	case '#':
		t.comment()
		return nil
	case '/':
		if t.peekIs(1, '/') {
			t.comment()
			return nil
		}
	case '$':
		if t.peekIs(1, '{') {
			return t.subst()
		}
	case '{':
		t.punct(TLCurl)
		return nil
	case '}':
		t.punct(TRCurl)
		return nil
	case '[':
		t.punct(TLSquare)
		return nil
	case ']':
		t.punct(TRSquare)
		return nil
	case ':':
		t.punct(TColon)
		return nil
	case '=':
		t.punct(TEquals)
		return nil
	case ',':
		t.punct(TComma)
		return nil
	case '"':
		if bytes.HasPrefix(t.d[t.i:], tripleQuote) {
			t.open(quoteTriple, len(tripleQuote))
			return nil
		}
		t.open(quoteDouble, 1)
		return nil
	case '\'':
		t.open(quoteSingle, 1)
		return nil
	}
	if c >= utf8.RuneSelf {
		r, sz := utf8.DecodeRune(t.d[t.i:])
		if r == utf8.RuneError && sz == 1 {
			return NewTokenizeErr(ErrBadUTF8, t.doc.Pos(t.i))
		}
		if isSpace(r) {
			t.whitespace(sz)
			return nil
		}
	}
	return t.word()
}

func (t *tokenizer) whitespace(n int) {
	if t.space < 0 {
		t.space = t.i
	}
	t.i += n
}

func (t *tokenizer) comment() {
	for t.i < len(t.d) && t.d[t.i] != '\n' {
		t.i++
	}
}

func (t *tokenizer) punct(tt TokenType) {
	t.emit(tt, t.i, t.d[t.i:t.i+1])
	t.i++
}

func (t *tokenizer) open(s quoteState, n int) {
	t.state = s
	t.start = t.i
	t.buf = []byte{}
	t.i += n
}

func (t *tokenizer) quoted(q byte) error {
	for t.i < len(t.d) {
		c := t.d[t.i]
		switch c {
		case q:
			t.i++
			t.state = quoteNone
			if !utf8.Valid(t.buf) {
				return NewTokenizeErr(ErrBadUTF8, t.doc.Pos(t.start))
			}
			t.emit(TString, t.start, t.buf)
			t.buf = nil
			return nil
		case '\\':
			b, n, err := unescape(t.buf, t.d[t.i+1:])
			if errors.Is(err, ErrUnterminated) {
				return unterminatedErr(t.state.String(), t.doc.Pos(t.start))
			}
			if err != nil {
				return NewTokenizeErr(err, t.doc.Pos(t.i))
			}
			t.buf = b
			t.i += 1 + n
		case '\n':
			return unterminatedErr(t.state.String(), t.doc.Pos(t.start))
		default:
			t.buf = append(t.buf, c)
			t.i++
		}
	}
	return nil
}

func (t *tokenizer) triple() error {
	end := bytes.Index(t.d[t.i:], tripleQuote)
	if end < 0 {
		t.newlines(len(t.d))
		t.i = len(t.d)
		return nil
	}
	content := t.d[t.i : t.i+end]
	t.newlines(t.i + end)
	t.i += end + len(tripleQuote)
	t.state = quoteNone
	t.emit(TMString, t.start, content)
	return nil
}

func (t *tokenizer) newlines(end int) {
	for j := t.i; j < end; j++ {
		if t.d[j] == '\n' {
			t.doc.nl(j)
		}
	}
}

// subst scans ${...}. The body runs to the first '}' outside quotes and
// must fit on one line.
func (t *tokenizer) subst() error {
	start := t.i
	var q byte
	for j := t.i + 2; j < len(t.d); j++ {
		c := t.d[j]
		if c == '\n' {
			break
		}
		if q != 0 {
			switch c {
			case '\\':
				j++
			case q:
				q = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			q = c
		case '}':
			body := bytes.TrimSpace(t.d[start+2 : j])
			if len(body) == 0 {
				return NewTokenizeErr(ErrEmptySubst, t.doc.Pos(start))
			}
			t.emit(TSubst, start, body)
			t.i = j + 1
			return nil
		}
	}
	return unterminatedErr("substitution", t.doc.Pos(start))
}

func (t *tokenizer) word() error {
	start := t.i
	for t.i < len(t.d) {
		c := t.d[t.i]
		if c < utf8.RuneSelf {
			if t.wordEnd() {
				break
			}
			t.i++
			continue
		}
		r, sz := utf8.DecodeRune(t.d[t.i:])
		if r == utf8.RuneError && sz == 1 {
			return NewTokenizeErr(ErrBadUTF8, t.doc.Pos(t.i))
		}
		if isSpace(r) {
			break
		}
		t.i += sz
	}
	w := t.d[start:t.i]
	tt := TLiteral
	if IsNumber(w) {
		tt = TNumber
	}
	t.emit(tt, start, w)
	return nil
}

func (t *tokenizer) wordEnd() bool {
	c := t.d[t.i]
	switch c {
	case ' ', '\t', '\r', '\f', '\v', '\n', '#', '"', '\'':
		return true
	case '/':
		return t.peekIs(1, '/')
	case '$':
		return t.peekIs(1, '{')
	}
	return isDelim(rune(c))
}

func (t *tokenizer) peekIs(off int, c byte) bool {
	return t.i+off < len(t.d) && t.d[t.i+off] == c
}

func (t *tokenizer) emit(tt TokenType, at int, b []byte) {
	var sp []byte
	if t.space >= 0 && tt != TNewline {
		sp = t.d[t.space:at]
	}
	t.space = -1
	t.dst = append(t.dst, Token{
		Type:  tt,
		Pos:   t.doc.Pos(at),
		Bytes: b,
		Space: sp,
	})
}

func isDelim(r rune) bool {
	switch r {
	case ',', '{', '}', '[', ']', ':', '=':
		return true
	default:
		return false
	}
}

func isSpace(r rune) bool {
	return r != '\n' && (unicode.IsSpace(r) || r == '\uFEFF')
}
