package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/libdiff"
	"github.com/signadot/earthedit/parse"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return doView(cfg.MainConfig, cc.In, cc.Out, args)
}

func doView(cfg *MainConfig, in io.Reader, w io.Writer, files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	opts := cfg.encOpts(w)
	for _, file := range files {
		d, err := readFile(in, file)
		if err != nil {
			return fmt.Errorf("could not open %q: %w", file, err)
		}
		y, err := parse.Parse(d)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", file, err)
		}
		if err := encode.Encode(y, w, opts...); err != nil {
			return fmt.Errorf("error encoding %s: %w", file, err)
		}
	}
	return nil
}

func tree(cfg *TreeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tree.Parse(cc, args)
	if err != nil {
		cfg.Tree.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doTree(cfg, cc.In, cc.Out, args)
}

// doTree renders the tree view with containers expanded down to -depth.
func doTree(cfg *TreeConfig, in io.Reader, w io.Writer, args []string) error {
	file, err := fileArg(args, 0)
	if err != nil {
		return err
	}
	s, err := cfg.open(in, file)
	if err != nil {
		return err
	}
	v := s.tab.View()
	if cfg.Depth < 0 {
		v.ExpandAll()
	} else {
		for _, r := range v.Rows() {
			if r.Depth < cfg.Depth {
				v.Expand(r.Path)
			}
		}
	}
	return v.Render(w, cfg.colors(w))
}

func fmtDocs(cfg *FmtConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fmt.Parse(cc, args)
	if err != nil {
		cfg.Fmt.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doFmt(cfg.MainConfig, cc.In, cc.Out, args)
}

// doFmt rewrites documents in canonical form.  -d compares against the
// input text rather than the parsed document.
func doFmt(cfg *MainConfig, in io.Reader, w io.Writer, files []string) error {
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		if err := fmtDoc(cfg, in, w, file); err != nil {
			return fmt.Errorf("error formatting %s: %w", file, err)
		}
	}
	return nil
}

func fmtDoc(cfg *MainConfig, in io.Reader, w io.Writer, file string) error {
	if cfg.W && file == "-" {
		return fmt.Errorf("%w: -w requires a file argument", cli.ErrUsage)
	}
	d, err := readFile(in, file)
	if err != nil {
		return err
	}
	s, err := cfg.open(bytes.NewReader(d), "-")
	if err != nil {
		return err
	}
	if cfg.D {
		out, err := s.tab.Bytes()
		if err != nil {
			return err
		}
		if err := libdiff.Render(w, libdiff.Lines(string(d), string(out)), diffContext, cfg.colorize(w)); err != nil {
			return err
		}
	}
	if cfg.W {
		return s.ws.SaveAs(s.tab, file)
	}
	if cfg.D {
		return nil
	}
	return encode.Encode(s.engine().Document().Root(), w, cfg.encOpts(w)...)
}
