package encode

type EncodeOption func(*EncState)

// EncodeIndent sets the number of spaces per level (default 4).
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

// EncodeWire selects compact output without whitespace.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}

// EncodeNewline terminates the output with a newline.
func EncodeNewline(v bool) EncodeOption {
	return func(es *EncState) { es.newline = v }
}
