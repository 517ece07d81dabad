package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Main, "earthedit").
		WithSynopsis("earthedit [opts] command [opts]").
		WithDescription(mainDescription).
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return earthedit(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			TreeCommand(cfg),
			GetCommand(cfg),
			CopyCommand(cfg),
			FindCommand(cfg),
			AddCommand(cfg),
			RenameCommand(cfg),
			RmCommand(cfg),
			CutCommand(cfg),
			MvCommand(cfg),
			PasteCommand(cfg),
			SetCommand(cfg),
			NewCommand(cfg),
			PresetsCommand(cfg),
			FieldsCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg),
			FmtCommand(cfg))
}

const mainDescription = `earthedit edits Earth Editor JSON documents.

Nodes are addressed by paths: dotted member names with bracketed indices,
such as 'Base.stats[0]'.  The empty path '' is the document root.

Commands taking a file read standard input when the file is '-' or
omitted.  Editing commands print the resulting document, or write it back
with -w.  With -d they show the change as a diff instead.`

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents as indented JSON, in color on a terminal").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func TreeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &TreeConfig{MainConfig: mainCfg, Depth: -1}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("tree").
		WithAliases("t").
		WithOpts(opts...).
		WithSynopsis("tree [-depth n] [file]").
		WithDescription("show the document as a labelled tree").
		WithRun(func(cc *cli.Context, args []string) error {
			return tree(cfg, cc, args)
		})
	cfg.Tree = cmd
	return cmd
}

func GetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &GetConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("get").
		WithAliases("g").
		WithSynopsis("get <path> [file]").
		WithDescription("print the node at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return get(cfg, cc, args)
		})
	cfg.Get = cmd
	return cmd
}

func CopyCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CopyConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Copy, "copy").
		WithAliases("cp").
		WithSynopsis("copy <path> [file]").
		WithDescription("print the clipboard text of the node at a path").
		WithRun(func(cc *cli.Context, args []string) error {
			return copyNode(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithOpts(opts...).
		WithSynopsis("find [-l] <query> [file]").
		WithDescription(findDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

const findDescription = `find prints the paths of nodes matching a boolean expression.

The expression sees each node as: path, key, index (-1 outside arrays),
depth, type, value (leaves only), isLeaf and tooltip, plus the functions
getpath(path) and has(path) on the document.  For example:

  earthedit find 'type == "Number" && value > 10' enemy.json
  earthedit find 'key == "name" && depth == 2' items.json`

func AddCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &AddConfig{MainConfig: mainCfg, Type: "String"}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Add, "add").
		WithAliases("a").
		WithOpts(opts...).
		WithSynopsis("add [-type T] [-field F] [-free] <path> [file]").
		WithDescription(addDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return add(cfg, cc, args)
		})
}

const addDescription = `add adds a property to the object at path, or to the object holding it.

With -preset, the property is one of the preset's fields missing from the
object, named by -field; without -field the candidates are listed.
With -free, or without -preset, a fresh property Name, Name1, ... of -type is added.`

func RenameCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RenameConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rename, "rename").
		WithAliases("rn").
		WithSynopsis("rename <path> <name> [file]").
		WithDescription("rename an object member in place").
		WithRun(func(cc *cli.Context, args []string) error {
			return rename(cfg, cc, args)
		})
}

func RmCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RmConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Rm, "rm").
		WithAliases("remove").
		WithSynopsis("rm <path> [file]").
		WithDescription("remove the node at path").
		WithRun(func(cc *cli.Context, args []string) error {
			return rm(cfg, cc, args)
		})
}

func CutCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &CutConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Cut, "cut").
		WithSynopsis("cut <path> [file]").
		WithDescription("print the clipboard text of the node at path and remove it").
		WithRun(func(cc *cli.Context, args []string) error {
			return cut(cfg, cc, args)
		})
}

func MvCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &MvConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Mv, "mv").
		WithAliases("move").
		WithSynopsis("mv <path> <target> [file]").
		WithDescription(mvDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return mv(cfg, cc, args)
		})
}

const mvDescription = `mv moves the node at path as a tree drag and drop would.

Dropped on an object or array, the node is appended to it.  Dropped on a
top level value, it is inserted into the root before that value; anywhere
else it is appended to the root.  A key already taken gets a _1, _2, ...
suffix.`

func PasteCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PasteConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Paste, "paste").
		WithAliases("p").
		WithOpts(opts...).
		WithSynopsis("paste [-f] <path> <clip> [file]").
		WithDescription(pasteDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return paste(cfg, cc, args)
		})
}

const pasteDescription = `paste merges clipboard text into the node at path.

The clip is a JSON value or a single '"key": value' member.  Objects merge
missing keys into an object, arrays append, and anything else lands at the
root under a fresh <name>_copy key.`

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("set [-type T] <path> <value> [file]").
		WithDescription("set a value, read according to the node's type").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func NewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.New, "new").
		WithAliases("n").
		WithOpts(opts...).
		WithSynopsis("new [-c] <name>").
		WithDescription("build a new document from -preset (default Empty)").
		WithRun(func(cc *cli.Context, args []string) error {
			return newDoc(cfg, cc, args)
		})
}

func PresetsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PresetsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.List, "presets").
		WithSynopsis("presets").
		WithDescription("list the available presets").
		WithRun(func(cc *cli.Context, args []string) error {
			return presets(cfg, cc, args)
		})
}

func FieldsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FieldsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fields, "fields").
		WithSynopsis("fields <preset> [path [file]]").
		WithDescription("list a preset's fields, or those missing from the object at path").
		WithRun(func(cc *cli.Context, args []string) error {
			return fields(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg, Context: 3}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-r] [-p] <a> <b>").
		WithDescription("diff two documents").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("patch").
		WithAliases("pa").
		WithSynopsis("patch [-merge] <patchfile> [file]").
		WithDescription("apply a JSON patch (RFC 6902) or merge patch (RFC 7386)").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
	cfg.Patch = cmd
	return cmd
}

func FmtCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FmtConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Fmt, "fmt").
		WithSynopsis("fmt [files]").
		WithDescription("reformat documents with 4 space indentation").
		WithRun(func(cc *cli.Context, args []string) error {
			return fmtDocs(cfg, cc, args)
		})
}
