package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/signadot/earthedit/edit"
	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/workspace"

	"github.com/scott-cotton/cli"
)

func newDoc(cfg *NewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.New.Parse(cc, args)
	if err != nil {
		cfg.New.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doNew(cfg, cc.Out, args)
}

// doNew builds a document from the -preset.  With -c it is saved as
// <name>.json in the documents folder and the file is printed.
func doNew(cfg *NewConfig, w io.Writer, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: new requires a name", cli.ErrUsage)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	preset := cfg.Preset
	if preset == "" {
		preset = workspace.DefaultPreset
	}
	ws := workspace.New(workspace.WithSchema(reg))
	if cfg.Create {
		t, err := ws.Create(args[0], preset)
		if err != nil {
			return notice(err)
		}
		_, err = fmt.Fprintln(w, t.Path)
		return err
	}
	t, err := ws.NewFromPreset(args[0], preset)
	if err != nil {
		return notice(err)
	}
	return encode.Encode(t.Engine().Document().Root(), w, cfg.encOpts(w)...)
}

func presets(cfg *PresetsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.List.Parse(cc, args)
	if err != nil {
		cfg.List.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: presets takes no arguments", cli.ErrUsage)
	}
	return doPresets(cfg.MainConfig, cc.Out)
}

func doPresets(cfg *MainConfig, w io.Writer) error {
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	for _, name := range reg.Names() {
		fmt.Fprintf(w, "%s\t%d fields\n", name, len(reg.Lookup(name).Fields))
	}
	return nil
}

func fields(cfg *FieldsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fields.Parse(cc, args)
	if err != nil {
		cfg.Fields.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	return doFields(cfg.MainConfig, cc.In, cc.Out, args)
}

// doFields lists a preset's fields as name, type, default and enum
// options.  Given a path, only the fields the object there lacks are listed,
// which are the candidates of a guided add.
func doFields(cfg *MainConfig, in io.Reader, w io.Writer, args []string) error {
	if len(args) == 0 || len(args) > 3 {
		return fmt.Errorf("%w: fields requires a preset name", cli.ErrUsage)
	}
	reg, err := cfg.registry()
	if err != nil {
		return err
	}
	p := reg.Lookup(args[0])
	if p == nil {
		return notice(fmt.Errorf("%w: %q", edit.ErrUnknownPreset, args[0]))
	}
	names := p.Names()
	if len(args) > 1 {
		at, err := parsePath(args[1])
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
		obj, err := s.engine().Document().Resolve(at)
		if err != nil {
			return err
		}
		names = p.Missing(obj)
	}
	for _, name := range names {
		f, _ := p.Field(name)
		line := fmt.Sprintf("%s\t%s\t%s", f.Name, f.Type, encode.MustString(f.DefaultNode()))
		if len(f.Enum) > 0 {
			line += "\t" + strings.Join(f.Enum, "|")
		}
		if tip, ok := reg.Tooltip(f.Name); ok {
			line += "\t# " + tip
		}
		fmt.Fprintln(w, line)
	}
	return nil
}
