// Package encode encodes IR nodes as HOCON, JSON or YAML text.
//
// # Usage
//
//	node := ir.FromMap(map[string]*ir.Node{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(node, os.Stdout)
//
//	// Encode with options
//	err := encode.Encode(node, os.Stdout,
//	    encode.EncodeFormat(format.JSONFormat),
//	    encode.EncodeIndent(4))
//
// HOCON output re-parses to an equal tree. Unresolved substitutions are
// written as ${path} in HOCON and cannot be written as JSON or YAML.
//
// # Related Packages
//
//   - github.com/signadot/go-hocon/ir - IR representation
//   - github.com/signadot/go-hocon/parse - Parse text to IR
package encode
