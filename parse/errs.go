package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/go-hocon/token"
)

var (
	errInternal = errors.New("internal parse error")
	ErrParse    = errors.New("parse error")
)

// SyntaxErr reports a token where the grammar does not allow it.
type SyntaxErr struct {
	Msg string
	Pos token.Pos
}

func (e *SyntaxErr) Error() string {
	return fmt.Sprintf("%s: %s at %s", ErrParse, e.Msg, e.Pos.String())
}

func (e *SyntaxErr) Unwrap() error {
	return ErrParse
}

func syntaxErr(pos *token.Pos, msg string, args ...any) *SyntaxErr {
	return &SyntaxErr{Msg: fmt.Sprintf(msg, args...), Pos: *pos}
}
