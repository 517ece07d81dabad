package main

import (
	"context"
	"io"
	"os"

	"github.com/signadot/earthedit/debug"
	"github.com/signadot/earthedit/schema"

	"github.com/scott-cotton/cli"
	"go.lsp.dev/jsonrpc2"
	"go.lsp.dev/protocol"
)

const lsName = "earthedit-lsp"

var (
	version = "0.0.1"
)

type Config struct {
	Presets string `cli:"name=presets desc='YAML file of extra presets and tooltips'"`
	Preset  string `cli:"name=preset desc='preset supplying enum options and completions'"`

	Cmd *cli.Command
}

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Cmd, lsName).
		WithSynopsis(lsName + " [-presets file] [-preset name]").
		WithDescription("language server for Earth Editor JSON documents, speaking LSP on stdio").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			args, err := cfg.Cmd.Parse(cc, args)
			if err != nil {
				return err
			}
			if len(args) != 0 {
				return cli.ErrUsage
			}
			return serve(cfg)
		})
}

func serve(cfg *Config) error {
	reg := schema.Builtin()
	if cfg.Presets != "" {
		if err := reg.LoadFile(cfg.Presets); err != nil {
			return err
		}
	}
	ctx := context.Background()
	stream := jsonrpc2.NewStream(&stdioReadWriteCloser{
		read:  os.Stdin,
		write: os.Stdout,
	})
	server := NewServer(reg, cfg.Preset)
	handler := protocol.ServerHandler(server, nil)
	conn := jsonrpc2.NewConn(stream)
	server.conn = conn
	if debug.LSP() {
		debug.Logf("%s %s: serving", lsName, version)
	}
	conn.Go(ctx, handler)
	<-conn.Done()
	return conn.Err()
}

type stdioReadWriteCloser struct {
	read  io.Reader
	write io.Writer
}

func (s *stdioReadWriteCloser) Read(p []byte) (n int, err error) {
	return s.read.Read(p)
}

func (s *stdioReadWriteCloser) Write(p []byte) (n int, err error) {
	return s.write.Write(p)
}

func (s *stdioReadWriteCloser) Close() error {
	return nil
}

type Server struct {
	conn   jsonrpc2.Conn
	docs   *documentStore
	schema *schema.Registry
	preset string
}

func NewServer(reg *schema.Registry, preset string) *Server {
	return &Server{
		docs:   &documentStore{docs: make(map[string]*document)},
		schema: reg,
		preset: preset,
	}
}

func (s *Server) Initialize(ctx context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: &protocol.TextDocumentSyncOptions{
			Change:    protocol.TextDocumentSyncKindFull,
			OpenClose: true,
		},
		HoverProvider:              true,
		DocumentFormattingProvider: true,
	}

	return &protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.ServerInfo{
			Name:    lsName,
			Version: version,
		},
	}, nil
}

func (s *Server) Initialized(ctx context.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return nil
}

func (s *Server) Exit(ctx context.Context) error {
	return nil
}

func (s *Server) SetTrace(ctx context.Context, params *protocol.SetTraceParams) error {
	return nil
}
