// Package format names the text formats a configuration can be read from or
// written to.
//
// Parsing always accepts HOCON, which is a superset of JSON. Encoding can
// produce HOCON, JSON or YAML.
package format
