package encode

import (
	"bytes"

	"github.com/signadot/earthedit/ir"
)

// MustString returns the compact encoding of node.
func MustString(node *ir.Node) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, EncodeWire(true)); err != nil {
		panic(err)
	}
	return buf.String()
}
