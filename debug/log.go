package debug

import (
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/signadot/earthedit/encode"
	"github.com/signadot/earthedit/ir"
)

var logger zerolog.Logger

func initLogger() {
	level := zerolog.WarnLevel
	if anyEnabled() {
		level = zerolog.DebugLevel
	}
	if lvl, err := zerolog.ParseLevel(os.Getenv("EARTHEDIT_LOG_LEVEL")); err == nil && lvl != zerolog.NoLevel {
		level = lvl
	}
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.TimeOnly,
	}).Level(level).With().Timestamp().Logger()
}

// Logger returns the process logger.
func Logger() *zerolog.Logger {
	return &logger
}

// SetLogger replaces the process logger, for tests and embedding.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// Logf logs a debug message.  Nodes are rendered as compact JSON and
// maps and slices as indented JSON.
func Logf(msg string, args ...any) {
	if !logger.Debug().Enabled() {
		return
	}
	for i, arg := range args {
		switch x := arg.(type) {
		case *ir.Node:
			if x != nil {
				args[i] = encode.MustString(x)
			}
		case map[string]any, []any:
			if d, err := json.MarshalIndent(x, "", "  "); err == nil {
				args[i] = string(d)
			}
		}
	}
	logger.Debug().Msg(fmt.Sprintf(msg, args...))
}

// LogAny logs v as JSON at debug level.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		Logf("%v", v)
		return
	}
	logger.Debug().RawJSON("value", d).Send()
}
