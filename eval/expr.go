package eval

import (
	"fmt"
	"os"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/go-hocon/ir"
	"github.com/signadot/go-hocon/token"
)

// Env is the environment of an expression: the fields of the
// configuration, plus "config" bound to the whole value.
type Env = map[string]any

func NewEnv(root *ir.Node) Env {
	env := Env{}
	if m, ok := ToJSONAny(root).(map[string]any); ok {
		for k, v := range m {
			env[k] = v
		}
	}
	env["config"] = ToJSONAny(root)
	return env
}

func exprOpts(root *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("getpath", func(params ...any) (any, error) {
			path, err := token.ParsePath(params[0].(string))
			if err != nil {
				return nil, err
			}
			res := root.GetPath(path)
			if res == nil {
				return nil, nil
			}
			return ToJSONAny(res), nil
		},
			new(func(string) any)),
		expr.Function("haspath", func(params ...any) (any, error) {
			path, err := token.ParsePath(params[0].(string))
			if err != nil {
				return nil, err
			}
			return root.GetPath(path) != nil, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}

// Expr evaluates src with the resolved configuration root as
// environment. Top level fields are variables; getpath("a.b") and
// haspath("a.b") look up dotted paths.
func Expr(root *ir.Node, src string) (any, error) {
	root = Resolve(root)
	env := NewEnv(root)
	opts := append(exprOpts(root), expr.Env(env))
	program, err := expr.Compile(src, opts...)
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return vm.Run(program, env)
}

// ExprNode is like Expr but returns the result as a tree.
func ExprNode(root *ir.Node, src string) (*ir.Node, error) {
	v, err := Expr(root, src)
	if err != nil {
		return nil, err
	}
	return FromJSONAny(v)
}
