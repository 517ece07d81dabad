package main

import (
	"context"
	"strings"

	"github.com/signadot/earthedit/encode"

	"go.lsp.dev/protocol"
)

// Formatting replaces the whole document with its 4-space indented form.
// Documents that do not parse are left alone.
func (s *Server) Formatting(ctx context.Context, params *protocol.DocumentFormattingParams) ([]protocol.TextEdit, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil || d.root == nil {
		return nil, nil
	}
	out, err := encode.Bytes(d.root, encode.EncodeNewline(true))
	if err != nil {
		return nil, err
	}
	formatted := string(out)
	if formatted == d.content {
		return []protocol.TextEdit{}, nil
	}
	lines := strings.Count(d.content, "\n")
	if len(d.content) > 0 && d.content[len(d.content)-1] != '\n' {
		lines++
	}
	return []protocol.TextEdit{
		{
			Range: protocol.Range{
				Start: protocol.Position{Line: 0, Character: 0},
				End:   protocol.Position{Line: uint32(lines), Character: 0},
			},
			NewText: formatted,
		},
	}, nil
}
