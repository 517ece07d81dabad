// Package parse reads JSON text into an [ir.Node] tree, preserving object
// key order.
//
// Duplicate keys within one object keep the position of the first
// occurrence and the value of the last.  Numbers are read as float64;
// numbers outside its range are an error.
package parse
