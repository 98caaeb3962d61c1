package ir

import (
	"errors"
)

var (
	ErrNotObject = errors.New("not an object")
	ErrNotFound  = errors.New("not found")
)
