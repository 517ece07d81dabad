package main

import (
	"fmt"
	"io"

	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir"
	"github.com/signadot/earthedit/libdiff"
	"github.com/signadot/earthedit/parse"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	differs, err := doDiff(cfg, cc.In, cc.Out, args)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// doDiff reports whether the two documents differ.
func doDiff(cfg *DiffConfig, in io.Reader, w io.Writer, args []string) (bool, error) {
	if len(args) != 2 {
		return false, fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if args[0] == "-" && args[1] == "-" {
		return false, fmt.Errorf("%w: only one side can be standard input", cli.ErrUsage)
	}
	a, err := readDoc(in, args[0])
	if err != nil {
		return false, err
	}
	b, err := readDoc(in, args[1])
	if err != nil {
		return false, err
	}
	if cfg.Reverse {
		a, b = b, a
	}
	if cfg.Paths {
		changes := libdiff.Diff(a, b)
		for _, c := range changes {
			fmt.Fprintln(w, changeLine(c))
		}
		return len(changes) != 0, nil
	}
	from, err := encode.Bytes(a, encode.EncodeNewline(true))
	if err != nil {
		return false, err
	}
	to, err := encode.Bytes(b, encode.EncodeNewline(true))
	if err != nil {
		return false, err
	}
	lines := libdiff.Lines(string(from), string(to))
	if err := libdiff.Render(w, lines, cfg.Context, cfg.colorize(w)); err != nil {
		return false, err
	}
	return libdiff.Changed(lines), nil
}

func readDoc(in io.Reader, path string) (*ir.Node, error) {
	d, err := readFile(in, path)
	if err != nil {
		return nil, err
	}
	y, err := parse.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return y, nil
}

func changeLine(c libdiff.Change) string {
	p := c.Path.String()
	switch c.Op {
	case libdiff.Insert:
		return fmt.Sprintf("+ %s: %s", p, encode.MustString(c.To))
	case libdiff.Delete:
		return fmt.Sprintf("- %s: %s", p, encode.MustString(c.From))
	}
	return fmt.Sprintf("~ %s: %s -> %s", p, encode.MustString(c.From), encode.MustString(c.To))
}
