// Package ir provides the in-memory representation of an Earth Editor JSON
// document.
//
// # Node Structure
//
// A Node is a closed tagged union over the six JSON kinds:
//
//   - Leaf types: NullType, BoolType, NumberType, StringType
//   - Container types: ObjectType (ordered key/value pairs), ArrayType
//
// Values are placed in fields depending on Type:
//
//   - ObjectType: Fields holds the keys, Values the children, index aligned.
//     Key order is significant and is preserved by every operation.
//   - ArrayType: Values holds the elements, dense and 0-indexed.
//   - StringType: String
//   - NumberType: Number (double precision)
//   - BoolType: Bool
//
// Nodes do not point at their parents.  Parent and position information is
// kept by the document arena in package doc, keyed by the node's ID.  A node
// that is not attached to a document has ID 0.
//
// Consumers switch on Type exhaustively; there is no other type information.
package ir
