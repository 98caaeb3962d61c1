// Package parse parses HOCON text into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte("server.port = 8080\nserver.host = localhost"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse with options
//	node, err := parse.Parse(data, parse.ParseFilename("app.conf"))
//
// A document is a braced object, an array, a single value, or an object
// body without braces. Keys assigned more than once are combined with
// [merge.Merge]. Substitutions are left as ir.SubstType nodes; see
// package eval to resolve them.
//
// # Related Packages
//
//   - github.com/signadot/go-hocon/ir - IR representation
//   - github.com/signadot/go-hocon/encode - Encode IR to text
//   - github.com/signadot/go-hocon/token - Tokenization
package parse
