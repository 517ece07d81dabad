package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/signadot/earthedit/edit"
	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir/kpath"
	"github.com/signadot/earthedit/libdiff"
	"github.com/signadot/earthedit/workspace"

	"github.com/scott-cotton/cli"
)

var errRejected = errors.New("rejected")

// diffContext is the number of unchanged lines shown around -d changes.
const diffContext = 3

// session is one document opened for a command.
type session struct {
	cfg *MainConfig
	ws  *workspace.Workspace
	tab *workspace.Tab
}

// open loads file, or in when file is "-", into a new tab.
func (cfg *MainConfig) open(in io.Reader, file string, opts ...edit.Option) (*session, error) {
	reg, err := cfg.registry()
	if err != nil {
		return nil, err
	}
	s := &session{
		cfg: cfg,
		ws:  workspace.New(workspace.WithSchema(reg), workspace.WithEngineOptions(opts...)),
	}
	if file == "-" {
		d, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("error reading input: %w", err)
		}
		s.tab, err = s.ws.Load("-", d)
		if err != nil {
			return nil, fmt.Errorf("error decoding input: %w", err)
		}
		return s, nil
	}
	s.tab, err = s.ws.Open(file)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) engine() *edit.Engine {
	return s.tab.Engine()
}

// commit shows the change with -d and saves it with -w.  It reports
// whether either happened.  With -w, result is printed when not empty.
func (s *session) commit(w io.Writer, result string) (bool, error) {
	if s.cfg.D {
		if err := libdiff.Render(w, s.tab.Changes(), diffContext, s.cfg.colorize(w)); err != nil {
			return false, err
		}
	}
	if s.cfg.W {
		if s.tab.Path == "" {
			return false, fmt.Errorf("%w: -w requires a file argument", cli.ErrUsage)
		}
		if err := s.ws.Save(s.tab); err != nil {
			return false, err
		}
		if result != "" {
			fmt.Fprintln(w, result)
		}
	}
	return s.cfg.D || s.cfg.W, nil
}

// finish commits the change, or else prints the document.
func (s *session) finish(w io.Writer, result string) error {
	done, err := s.commit(w, result)
	if err != nil || done {
		return err
	}
	return encode.Encode(s.engine().Document().Root(), w, s.cfg.encOpts(w)...)
}

func readFile(in io.Reader, path string) ([]byte, error) {
	if path == "-" {
		d, err := io.ReadAll(in)
		if err != nil {
			return nil, fmt.Errorf("error reading input: %w", err)
		}
		return d, nil
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func parsePath(text string) (kpath.KPath, error) {
	p, err := kpath.Parse(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return p, nil
}

// fileArg returns the file following n positional arguments, "-" when
// omitted.
func fileArg(args []string, n int) (string, error) {
	switch len(args) {
	case n:
		return "-", nil
	case n + 1:
		return args[n], nil
	}
	return "", fmt.Errorf("%w: expected %d arguments and an optional file, got %d", cli.ErrUsage, n, len(args))
}

// notice prefixes informational engine errors with their title.
func notice(err error) error {
	if t := edit.NoticeTitle(err); t != "" {
		return fmt.Errorf("%s: %w", t, err)
	}
	return err
}
