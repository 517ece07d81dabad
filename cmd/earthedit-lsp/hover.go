package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/signadot/earthedit/edit"
	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/token"

	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	d := s.docs.get(string(params.TextDocument.URI))
	if d == nil || d.engine == nil {
		return nil, nil
	}
	node := d.nodeAt(int(params.Position.Line), int(params.Position.Character))
	if node == nil {
		return nil, nil
	}
	text := s.hoverText(d, node)
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

// nodeAt returns the node whose key or value token covers line and col.
func (d *document) nodeAt(line, col int) *ir.Node {
	for n, pos := range d.keys {
		if covers(pos, d.content, line, col) {
			return n
		}
	}
	for n, pos := range d.positions {
		if n.Type.IsLeaf() && covers(pos, d.content, line, col) {
			return n
		}
	}
	return nil
}

// covers reports whether the token starting at pos spans line and col.
func covers(pos *token.Pos, content string, line, col int) bool {
	l, c := pos.LineCol()
	if l != line || col < c {
		return false
	}
	return col < c+tokenLen(content, pos.I)
}

// tokenLen returns the length of the string, number or literal token at
// offset i.
func tokenLen(content string, i int) int {
	if i >= len(content) {
		return 0
	}
	if content[i] == '"' {
		for j := i + 1; j < len(content); j++ {
			switch content[j] {
			case '\\':
				j++
			case '"':
				return j + 1 - i
			}
		}
		return len(content) - i
	}
	j := i
	for j < len(content) && !strings.ContainsRune(" \t\r\n,:]}", rune(content[j])) {
		j++
	}
	return j - i
}

func (s *Server) hoverText(d *document, n *ir.Node) string {
	p, ok := d.paths[n]
	if !ok {
		return ""
	}
	ed, ok := d.engine.EditorFor(p, s.preset)
	if !ok {
		return ""
	}
	parts := []string{fmt.Sprintf("**Path:** `%s`", p.String())}
	if ed.Tooltip != "" {
		parts = append(parts, ed.Tooltip)
	}
	parts = append(parts, fmt.Sprintf("**Type:** %s", ed.Type))
	switch {
	case n.Type.IsLeaf():
		parts = append(parts, fmt.Sprintf("**Value:** `%s`", encode.MustString(n)))
	case n.Type == ir.ObjectType:
		parts = append(parts, fmt.Sprintf("object with %d keys", len(n.Fields)))
	default:
		parts = append(parts, fmt.Sprintf("array with %d elements", len(n.Values)))
	}
	if ed.Kind == edit.EnumEditor {
		parts = append(parts, "**Options:** "+strings.Join(ed.Options, ", "))
	}
	return strings.Join(parts, "\n\n")
}
