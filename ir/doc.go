// Package ir provides the in-memory representation of HOCON configuration
// values.
//
// # Node Structure
//
// A Node represents a single value. The Type field indicates which of the
// other fields hold the value:
//
//   - NullType: null
//   - BoolType: Bool
//   - NumberType: Float64, with Number holding the source spelling when the
//     value was parsed from text
//   - StringType: String
//   - ArrayType: Values
//   - ObjectType: Fields and Values
//   - SubstType: Path, a ${...} reference awaiting resolution
//
// For ObjectType nodes, Fields[i] is the key for the value at Values[i].
// Keys are string nodes and occur once. Field order is the order of first
// assignment and is kept for iteration and encoding but plays no part in
// lookup or in [Compare].
//
// Each node maintains links to its container:
//
//   - Parent: parent node (nil for root)
//   - ParentIndex: index in the parent's Values
//   - ParentField: field name if the parent is an object
//
// The links are for navigation only. A node belongs to exactly one
// container and trees never share subtrees; use Clone to copy.
//
// # Creating Nodes
//
//	obj := ir.FromMap(map[string]*ir.Node{
//	    "key": ir.FromString("value"),
//	    "ref": ir.FromSubst([]string{"other", "key"}),
//	})
//	arr := ir.FromSlice([]*ir.Node{
//	    ir.FromInt(1),
//	    ir.FromFloat(2.5),
//	})
//
// # Paths
//
// Use GetPath to walk nested objects and KPath to report where a node
// lives:
//
//	n := root.GetPath([]string{"a", "b"})
//	n.KPath() // "a.b"
package ir
