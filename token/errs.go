package token

import (
	"errors"
	"fmt"
)

var (
	ErrBadUTF8      = errors.New("bad utf8")
	ErrUnterminated = errors.New("unterminated")
	ErrBadUnicode   = errors.New("bad unicode")
	ErrEmptySubst   = errors.New("empty substitution")

	ErrBadPath            = errors.New("bad path")
	ErrEmptyPathComponent = errors.New("empty path component")
)

func unterminatedErr(what string, p *Pos) error {
	return &TokenizeErr{Err: fmt.Errorf("%w %s", ErrUnterminated, what), Pos: *p}
}
