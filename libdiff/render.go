package libdiff

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Render writes lines prefixed "+ ", "- " or "  ".  Only lines within
// context of a change are written, with "@@" separating runs; a negative
// context writes everything.  With colorize, insertions are green and
// deletions red.
func Render(w io.Writer, lines []Line, context int, colorize bool) error {
	ins := color.New(color.FgGreen)
	del := color.New(color.FgRed)
	sep := color.New(color.FgCyan)
	if !colorize {
		ins.DisableColor()
		del.DisableColor()
		sep.DisableColor()
	}
	show := visible(lines, context)
	var buf strings.Builder
	gap := false
	for i, ln := range lines {
		if !show[i] {
			gap = true
			continue
		}
		if gap && buf.Len() > 0 {
			buf.WriteString(sep.Sprint("@@"))
			buf.WriteByte('\n')
		}
		gap = false
		switch ln.Op {
		case Insert:
			buf.WriteString(ins.Sprint("+ " + ln.Text))
		case Delete:
			buf.WriteString(del.Sprint("- " + ln.Text))
		default:
			buf.WriteString("  " + ln.Text)
		}
		buf.WriteByte('\n')
	}
	_, err := io.WriteString(w, buf.String())
	return err
}

func visible(lines []Line, context int) []bool {
	show := make([]bool, len(lines))
	if context < 0 {
		for i := range show {
			show[i] = true
		}
		return show
	}
	for i, ln := range lines {
		if ln.Op == Equal {
			continue
		}
		for j := max(0, i-context); j <= min(len(lines)-1, i+context); j++ {
			show[j] = true
		}
	}
	return show
}
