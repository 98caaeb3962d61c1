package token

import (
	"fmt"
)

type TokenType int

const (
	TLiteral TokenType = iota
	TNumber
	TString
	TMString
	TSubst
	TLCurl
	TRCurl
	TLSquare
	TRSquare
	TColon
	TEquals
	TComma
	TNewline
	TEOF
)

func (t TokenType) String() string {
	s, ok := map[TokenType]string{
		TLiteral: "TLiteral",
		TNumber:  "TNumber",
		TString:  "TString",
		TMString: "TMString",
		TSubst:   "TSubst",
		TLCurl:   "TLCurl",
		TRCurl:   "TRCurl",
		TLSquare: "TLSquare",
		TRSquare: "TRSquare",
		TColon:   "TColon",
		TEquals:  "TEquals",
		TComma:   "TComma",
		TNewline: "TNewline",
		TEOF:     "TEOF",
	}[t]
	if ok {
		return s
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a lexical unit of a document.
//
// Bytes holds the token text: the unescaped content for TString, the raw
// content between the triple quotes for TMString and the path body for
// TSubst. Space holds the horizontal whitespace which preceded the token on
// the same line, so that adjacent tokens may be rejoined.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
	Space []byte
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %q %s", t.Type, t.Bytes, t.Pos.String())
}

func (t *Token) String() string {
	return string(t.Bytes)
}

// IsScalar reports whether the token can take part in a run of
// concatenated key or value text.
func (t *Token) IsScalar() bool {
	switch t.Type {
	case TLiteral, TNumber, TString, TMString:
		return true
	default:
		return false
	}
}

// Quoted reports whether the token came from a quoted form, whose content
// is never split on '.' nor classified as a number or keyword.
func (t *Token) Quoted() bool {
	return t.Type == TString || t.Type == TMString
}

type TokenizeErr struct {
	Err error
	Pos Pos
}

func (e *TokenizeErr) Unwrap() error {
	return e.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}
