// Package eval resolves substitutions and evaluates queries over
// configuration trees.
//
// [Resolve] replaces every ${path} placeholder left by the parser with a
// copy of the value found at path. [Expr] runs an expr-lang expression
// with a resolved configuration as its environment.
//
// # Related Packages
//
//   - github.com/signadot/go-hocon/parse - produces trees with placeholders
//   - github.com/signadot/go-hocon/ir - IR representation
package eval
