package main

import (
	"context"
	"errors"
	"sync"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/doc"
	"github.com/signadot/earthedit/edit"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/ir/kpath"
	"github.com/signadot/earthedit/parse"
	"github.com/signadot/earthedit/schema"
	"github.com/signadot/earthedit/token"

	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is one open editor buffer.  When content parses, root, paths
// and the position maps describe it and engine edits a copy of it.
type document struct {
	uri     string
	content string
	version int32
	err     error

	root      *ir.Node
	paths     map[*ir.Node]kpath.KPath
	positions map[*ir.Node]*token.Pos
	keys      map[*ir.Node]*token.Pos
	engine    *edit.Engine
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri, content string, version int32, reg *schema.Registry) *document {
	d := load(uri, content, version, reg)
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = d
	return d
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func load(uri, content string, version int32, reg *schema.Registry) *document {
	d := &document{
		uri:       uri,
		content:   content,
		version:   version,
		positions: map[*ir.Node]*token.Pos{},
		keys:      map[*ir.Node]*token.Pos{},
	}
	root, err := parse.ParseObject([]byte(content), parse.ParsePositions(d.positions), parse.ParseKeyPositions(d.keys))
	if err != nil {
		if debug.LSP() {
			debug.Logger().Debug().Str("uri", uri).Err(err).Msg("parse")
		}
		d.err = err
		return d
	}
	d.root = root
	d.paths = map[*ir.Node]kpath.KPath{}
	kpath.Walk(root, func(p kpath.KPath, n *ir.Node) bool {
		d.paths[n] = p
		return true
	})
	dd, err := doc.FromNode(doc.DeepClone(root))
	if err != nil {
		d.err = err
		return d
	}
	d.engine = edit.New(dd, edit.WithSchema(reg))
	return d
}

func (s *Server) publishDiagnostics(ctx context.Context, d *document) {
	if s.conn == nil {
		return
	}
	err := s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(d.uri),
		Diagnostics: diagnostics(d),
	})
	if err != nil {
		debug.Logger().Error().Err(err).Str("uri", d.uri).Msg("publish diagnostics")
	}
}

// diagnostics reports the parse error of d, placed at the offending
// token when it has one.
func diagnostics(d *document) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	if d.err == nil {
		return res
	}
	diag := protocol.Diagnostic{
		Severity: protocol.DiagnosticSeverityError,
		Message:  d.err.Error(),
		Source:   "earthedit",
	}
	var te *token.TokenizeErr
	if errors.As(d.err, &te) && te.Pos.D != nil {
		line, col := te.Pos.LineCol()
		diag.Range = protocol.Range{
			Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
			End:   protocol.Position{Line: uint32(line), Character: uint32(col + 1)},
		}
	}
	return append(res, diag)
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	d := s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version, s.schema)
	s.publishDiagnostics(ctx, d)
	return nil
}

// DidChange takes the last change as the whole text; the server only
// offers full synchronization.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	text := params.ContentChanges[len(params.ContentChanges)-1].Text
	d := s.docs.put(string(params.TextDocument.URI), text, params.TextDocument.Version, s.schema)
	s.publishDiagnostics(ctx, d)
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}
