package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Path   bool
	Edit   bool
	Move   bool
	Paste  bool
	Schema bool
	Eval   bool
	LSP    bool
}

var d *debug

func init() {
	d = &debug{}
	all := boolEnv("EARTHEDIT_DEBUG_ALL")
	d.Parse = all || boolEnv("EARTHEDIT_DEBUG_PARSE")
	d.Path = all || boolEnv("EARTHEDIT_DEBUG_PATH")
	d.Edit = all || boolEnv("EARTHEDIT_DEBUG_EDIT")
	d.Move = all || boolEnv("EARTHEDIT_DEBUG_MOVE")
	d.Paste = all || boolEnv("EARTHEDIT_DEBUG_PASTE")
	d.Schema = all || boolEnv("EARTHEDIT_DEBUG_SCHEMA")
	d.Eval = all || boolEnv("EARTHEDIT_DEBUG_EVAL")
	d.LSP = all || boolEnv("EARTHEDIT_DEBUG_LSP")
	initLogger()
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func anyEnabled() bool {
	return d.Parse || d.Path || d.Edit || d.Move || d.Paste || d.Schema || d.Eval || d.LSP
}

func Parse() bool {
	return d.Parse
}
func Path() bool {
	return d.Path
}
func Edit() bool {
	return d.Edit
}
func Move() bool {
	return d.Move
}
func Paste() bool {
	return d.Paste
}
func Schema() bool {
	return d.Schema
}
func Eval() bool {
	return d.Eval
}
func LSP() bool {
	return d.LSP
}
