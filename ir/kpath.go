package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/go-hocon/token"
)

// KPath returns the path of this node from the root of its tree.
//
// Examples:
//   - Root node → ""
//   - Object field "a" → "a"
//   - Array element at index 0 → "[0]"
//   - Nested object "a.b" → "a.b"
//   - Field with a dot "a.b" under "x" → `x."a.b"`
//   - Mixed "a[0].b" → "a[0].b"
func (node *Node) KPath() string {
	if node.Parent == nil {
		return ""
	}
	switch node.Parent.Type {
	case ObjectType:
		f := KeyComponent(node.ParentField)
		prefix := node.Parent.KPath()
		if prefix == "" {
			return f
		}
		return prefix + "." + f

	case ArrayType:
		indexStr := strconv.Itoa(node.ParentIndex)
		prefix := node.Parent.KPath()
		return prefix + "[" + indexStr + "]"

	default:
		panic("parent but not in container")
	}
}

// KeyComponent renders one path component, quoting it when it would
// not read back as a single component.
func KeyComponent(f string) string {
	if token.NeedsQuote(f) && !isDigits(f) {
		return token.Quote(f)
	}
	return f
}

// JoinPath renders a key path as dotted text.
func JoinPath(path []string) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = KeyComponent(p)
	}
	return strings.Join(parts, ".")
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// GetPath returns the node at path, walking objects only, or nil if there
// is none. An empty path is node itself.
func (node *Node) GetPath(path []string) *Node {
	res := node
	for _, f := range path {
		res = res.Get(f)
		if res == nil {
			return nil
		}
	}
	return res
}

// MustGetPath is like GetPath but reports which component was missing.
func (node *Node) MustGetPath(path []string) (*Node, error) {
	res := node
	for i, f := range path {
		if res.Type != ObjectType {
			return nil, fmt.Errorf("%w: %s is %s", ErrNotObject, JoinPath(path[:i]), res.Type)
		}
		next := res.Get(f)
		if next == nil {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, JoinPath(path[:i+1]))
		}
		res = next
	}
	return res, nil
}
