package main

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/signadot/earthedit/edit"
	"github.com/signadot/earthedit/ir"

	"github.com/scott-cotton/cli"
)

func add(cfg *AddConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Add.Parse(cc, args)
	if err != nil {
		cfg.Add.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doAdd(cfg, cc.In, cc.Out, args)
}

func doAdd(cfg *AddConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: add requires a path", cli.ErrUsage)
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	file, err := fileArg(args, 1)
	if err != nil {
		return err
	}
	typ, err := ir.ParseType(cfg.Type)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	var candidates []string
	chooser := edit.ChooserFunc(func(_ string, cands []string) (string, bool) {
		candidates = cands
		if cfg.Field == "" {
			return "", false
		}
		return cfg.Field, slices.Contains(cands, cfg.Field)
	})
	s, err := cfg.open(in, file, edit.WithChooser(chooser))
	if err != nil {
		return err
	}
	at, err := s.engine().AddProperty(edit.AddRequest{
		Parent:   p,
		FreeEdit: cfg.Free,
		Preset:   cfg.Preset,
		Type:     typ,
	})
	if errors.Is(err, edit.ErrCancelled) && len(candidates) > 0 {
		if cfg.Field == "" {
			return fmt.Errorf("%w: -field must be one of %s", cli.ErrUsage, strings.Join(candidates, ", "))
		}
		return fmt.Errorf("%w: %q is not one of %s", cli.ErrUsage, cfg.Field, strings.Join(candidates, ", "))
	}
	if err != nil {
		return notice(err)
	}
	return s.finish(w, at.String())
}

func rename(cfg *RenameConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rename.Parse(cc, args)
	if err != nil {
		cfg.Rename.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doRename(cfg.MainConfig, cc.In, cc.Out, args)
}

func doRename(cfg *MainConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: rename requires a path and a name", cli.ErrUsage)
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	s, err := cfg.open(in, file)
	if err != nil {
		return err
	}
	np, ok := s.engine().RenameProperty(p, args[1])
	if !ok {
		return fmt.Errorf("%w: cannot rename %q to %q", errRejected, args[0], args[1])
	}
	return s.finish(w, np.String())
}

func rm(cfg *RmConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Rm.Parse(cc, args)
	if err != nil {
		cfg.Rm.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doRm(cfg.MainConfig, cc.In, cc.Out, args)
}

func doRm(cfg *MainConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: rm requires a path", cli.ErrUsage)
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
	if !s.engine().RemoveNode(p) {
		return fmt.Errorf("%w: cannot remove %q", errRejected, args[0])
	}
	return s.finish(w, "")
}

func cut(cfg *CutConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Cut.Parse(cc, args)
	if err != nil {
		cfg.Cut.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doCut(cfg.MainConfig, cc.In, cc.Out, args)
}

// doCut prints the clip.  The remaining document is only written with -w
// or shown with -d.
func doCut(cfg *MainConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: cut requires a path", cli.ErrUsage)
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
	text, ok := s.engine().Cut(p)
	if !ok {
		return fmt.Errorf("%w: cannot cut %q", errRejected, args[0])
	}
	if _, err := fmt.Fprintln(w, text); err != nil {
		return err
	}
	_, err = s.commit(w, "")
	return err
}

func mv(cfg *MvConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Mv.Parse(cc, args)
	if err != nil {
		cfg.Mv.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doMv(cfg.MainConfig, cc.In, cc.Out, args)
}

func doMv(cfg *MainConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: mv requires a path and a target", cli.ErrUsage)
	}
	from, err := parsePath(args[0])
	if err != nil {
		return err
	}
	to, err := parsePath(args[1])
	if err != nil {
		return err
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	s, err := cfg.open(in, file)
	if err != nil {
		return err
	}
	np, ok := s.engine().Move(from, to)
	if !ok {
		return fmt.Errorf("%w: cannot move %q to %q", errRejected, args[0], args[1])
	}
	return s.finish(w, np.String())
}

func paste(cfg *PasteConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Paste.Parse(cc, args)
	if err != nil {
		cfg.Paste.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doPaste(cfg, cc.In, cc.Out, args)
}

func doPaste(cfg *PasteConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: paste requires a path and a clip", cli.ErrUsage)
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	clip := args[1]
	if cfg.File {
		if clip == "-" && file == "-" {
			return fmt.Errorf("%w: clip and document cannot both be standard input", cli.ErrUsage)
		}
		d, err := readFile(in, clip)
		if err != nil {
			return err
		}
		clip = string(d)
	}
	s, err := cfg.open(in, file)
	if err != nil {
		return err
	}
	np, err := s.engine().PasteMerge(p, clip)
	if err != nil {
		return notice(err)
	}
	return s.finish(w, np.String())
}

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		cfg.Set.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doSet(cfg, cc.In, cc.Out, args)
}

// doSet optionally changes the node's type, then sets its value.  With
// -preset, enumerated fields only take one of their options.
func doSet(cfg *SetConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("%w: set requires a path and a value", cli.ErrUsage)
	}
	p, err := parsePath(args[0])
	if err != nil {
		return err
	}
	file, err := fileArg(args, 2)
	if err != nil {
		return err
	}
	s, err := cfg.open(in, file)
	if err != nil {
		return err
	}
	e := s.engine()
	if cfg.Type != "" {
		t, err := ir.ParseType(cfg.Type)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		e.ChangeType(p, t)
	}
	ed, ok := e.EditorFor(p, cfg.Preset)
	if !ok {
		return fmt.Errorf("%w: no node at %q", errRejected, args[0])
	}
	switch ed.Kind {
	case edit.NoEditor:
		if cfg.Type == "" {
			return fmt.Errorf("%w: %q is a %s", errRejected, args[0], ed.Type)
		}
		return s.finish(w, p.String())
	case edit.EnumEditor:
		if !slices.Contains(ed.Options, args[1]) {
			return fmt.Errorf("%w: %s must be one of %s", cli.ErrUsage, ed.Name, strings.Join(ed.Options, ", "))
		}
	}
	if !e.SetValueText(p, args[1]) {
		return fmt.Errorf("%w: %q is not a %s", errRejected, args[1], ed.Type)
	}
	return s.finish(w, p.String())
}
