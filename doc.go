// Package hocon parses HOCON style configuration text into resolved IR
// trees.
//
// # Usage
//
//	cfg, err := hocon.ParseConfig(`
//	    server { host = localhost, port = 8080 }
//	    server.port = 9090
//	    url = ${server.host}
//	`)
//	if err != nil {
//	    return err
//	}
//	port := cfg.GetPath([]string{"server", "port"}) // 9090
//
// The syntax is a superset of JSON: comments with # or //, unquoted keys
// and strings, = or : or nothing before an object, dotted keys that
// create nested objects, optional commas, repeated keys that merge, and
// ${path} substitutions resolved against the final configuration.
//
// # Related Packages
//
//   - github.com/signadot/go-hocon/parse - Parse text to unresolved IR
//   - github.com/signadot/go-hocon/eval - Substitution resolution and queries
//   - github.com/signadot/go-hocon/encode - Encode IR as HOCON, JSON or YAML
//   - github.com/signadot/go-hocon/libdiff - Structural diffs
package hocon
