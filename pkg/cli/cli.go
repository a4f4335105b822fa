package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/triekit/triemap/pkg/dictionary"
)

// Context carries the shared state the commands run against.
type Context struct {
	dict *dictionary.Dictionary
	log  zerolog.Logger
}

var CLI struct {
	Load   LoadCmd   `cmd:"" help:"Load record files into the trie and write the deduplicated entries"`
	Lookup LookupCmd `cmd:"" help:"Load record files and look up keys"`
	Debug  bool      `help:"Log every add result"`
}

// NewContext wires a dictionary to a console logger.
func NewContext(dict *dictionary.Dictionary, debug bool) *Context {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()

	return &Context{dict: dict, log: log}
}
