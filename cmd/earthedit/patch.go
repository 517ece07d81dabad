package main

import (
	"fmt"
	"io"

	"github.com/signadot/earthedit/mergeop"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doPatch(cfg, cc.In, cc.Out, args)
}

func doPatch(cfg *PatchConfig, in io.Reader, w io.Writer, args []string) error {
	if cfg.Ops {
		fmt.Fprintf(w, "available patch kinds:\n")
		for _, name := range mergeop.Names() {
			fmt.Fprintf(w, "\t- %s\n", name)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	if args[0] == "-" && file == "-" {
		return fmt.Errorf("%w: patch and document cannot both be standard input", cli.ErrUsage)
	}
	p, err := readFile(in, args[0])
	if err != nil {
		return err
	}
	s, err := cfg.open(in, file)
	if err != nil {
		return err
	}
	if cfg.Merge {
		err = s.engine().MergePatch(p)
	} else {
		err = s.engine().ApplyPatch(p)
	}
	if err != nil {
		return notice(err)
	}
	return s.finish(w, "")
}
