// Package encode writes documents as JSON text.
//
// The default layout is the persisted format: 4-space indentation, one
// member or element per line, "key": value separators and no trailing
// newline after the closing brace.  [EncodeWire] selects compact output,
// used for clipboard text.  Key order is written as stored.
package encode
