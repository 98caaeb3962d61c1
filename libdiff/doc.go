// Package libdiff computes structural differences between two IR trees.
//
// # Usage
//
//	d := libdiff.Diff(oldNode, newNode)
//	if d == nil {
//	    // equal
//	}
//	libdiff.Render(d, os.Stdout)
//
// A diff is itself an IR object. Changed object fields and array
// indices map to nested diffs. A changed leaf is {"-": old, "+": new},
// with "-" absent for additions and "+" absent for removals. Two
// multiline strings that differ yield {"~": patch} where patch is a
// line based patch in the unidiff-like text form of go-diff.
//
// # Related Packages
//
//   - github.com/signadot/go-hocon/ir - IR representation
//   - github.com/signadot/go-hocon/encode - Renders diffs
package libdiff
