package main

import (
	"io"
	"os"

	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/schema"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='output with color'"`
	X     bool `cli:"name=x desc='output in compact format'"`
	W     bool `cli:"name=w desc='write the result back to the input file'"`
	D     bool `cli:"name=d desc='show the change as a diff'"`

	Presets string `cli:"name=presets desc='YAML file of extra presets and tooltips'"`
	Preset  string `cli:"name=preset desc='preset guiding add, set and fields'"`

	reg *schema.Registry

	Main *cli.Command
}

// registry returns the built in presets with the -presets overlay applied.
func (cfg *MainConfig) registry() (*schema.Registry, error) {
	if cfg.reg != nil {
		return cfg.reg, nil
	}
	r := schema.Builtin()
	if cfg.Presets != "" {
		if err := r.LoadFile(cfg.Presets); err != nil {
			return nil, err
		}
	}
	cfg.reg = r
	return r, nil
}

func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name != "color" {
				continue
			}
			if opt.Value != nil {
				return false
			}
			break
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) colors(w io.Writer) *encode.Colors {
	if !cfg.colorize(w) {
		return nil
	}
	return encode.NewColors()
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	return []encode.EncodeOption{
		encode.EncodeWire(cfg.X),
		encode.EncodeNewline(true),
		encode.EncodeColors(cfg.colors(w)),
	}
}

type ViewConfig struct {
	*MainConfig

	View *cli.Command
}

type TreeConfig struct {
	*MainConfig
	Depth int `cli:"name=depth desc='expand containers down to this depth, -1 for all'"`

	Tree *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type CopyConfig struct {
	*MainConfig

	Copy *cli.Command
}

type FindConfig struct {
	*MainConfig
	Labels bool `cli:"name=l desc='show labels next to paths'"`

	Find *cli.Command
}

type AddConfig struct {
	*MainConfig
	Type  string `cli:"name=type desc='type of a free form property'"`
	Field string `cli:"name=field desc='preset field to add'"`
	Free  bool   `cli:"name=free desc='ignore the preset and add a free form property'"`

	Add *cli.Command
}

type RenameConfig struct {
	*MainConfig

	Rename *cli.Command
}

type RmConfig struct {
	*MainConfig

	Rm *cli.Command
}

type CutConfig struct {
	*MainConfig

	Cut *cli.Command
}

type MvConfig struct {
	*MainConfig

	Mv *cli.Command
}

type PasteConfig struct {
	*MainConfig
	File bool `cli:"name=f desc='clip argument is a file path'"`

	Paste *cli.Command
}

type SetConfig struct {
	*MainConfig
	Type string `cli:"name=type desc='change the node to this type first'"`

	Set *cli.Command
}

type NewConfig struct {
	*MainConfig
	Create bool `cli:"name=c desc='create the file in the documents folder'"`

	New *cli.Command
}

type PresetsConfig struct {
	*MainConfig

	List *cli.Command
}

type FieldsConfig struct {
	*MainConfig

	Fields *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Paths   bool `cli:"name=p desc='list changed paths instead of lines'"`
	Context int  `cli:"name=context desc='lines of context, -1 for all'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='patch is a JSON merge patch'"`
	Ops   bool `cli:"name=ops desc='show available patch kinds'"`

	Patch *cli.Command
}

type FmtConfig struct {
	*MainConfig

	Fmt *cli.Command
}
