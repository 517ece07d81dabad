package main

import (
	"fmt"
	"io"

	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/eval"

	"github.com/scott-cotton/cli"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doGet(cfg.MainConfig, cc.In, cc.Out, args)
}

func doGet(cfg *MainConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a path", cli.ErrUsage)
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	s, err := cfg.open(in, file)
	if err != nil {
		return err
	}
	n, err := s.engine().Document().Resolve(p)
	if err != nil {
		return err
	}
	return encode.Encode(n, w, cfg.encOpts(w)...)
}

func copyNode(cfg *CopyConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Copy.Parse(cc, args)
	if err != nil {
		cfg.Copy.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doCopy(cfg.MainConfig, cc.In, cc.Out, args)
}

func doCopy(cfg *MainConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: copy requires one argument, a path", cli.ErrUsage)
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	s, err := cfg.open(in, file)
	if err != nil {
		return err
	}
	text, ok := s.engine().CopyNode(p)
	if !ok {
		return fmt.Errorf("%w: no node at %q", errRejected, args[0])
	}
	_, err = fmt.Fprintln(w, text)
	return err
}

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		cfg.Find.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doFind(cfg, cc.In, cc.Out, args)
}

func doFind(cfg *FindConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires a query", cli.ErrUsage)
	}
	q, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	s, err := cfg.open(in, file)
	if err != nil {
		return err
	}
	e := s.engine()
	paths, err := q.Find(e.Document().Root(), e.Schema())
	if err != nil {
		return err
	}
	for _, p := range paths {
		if !cfg.Labels {
			fmt.Fprintln(w, p.String())
			continue
		}
		label, _ := e.DisplayLabel(p)
		fmt.Fprintf(w, "%s\t%s\n", p.String(), label)
	}
	return nil
}
