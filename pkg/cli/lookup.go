package cli

import (
	"fmt"

	"github.com/triekit/triemap/pkg/dictionary"
)

type LookupCmd struct {
	Keys   []string `arg:"" help:"Keys to look up"`
	File   []string `type:"existingfile" help:"Record files to load before the lookups"`
	KeyCol string   `help:"Column holding the entry key" default:"key"`
}

// Run executes the lookup command.
func (cmd *LookupCmd) Run(ctx *Context) error {
	for _, file := range cmd.File {
		ctx.log.Info().Str("file", file).Msg("loading records")
		err := parseFile(file, cmd.KeyCol, func(key string, rec dictionary.Record) error {
			ctx.dict.Add(key, rec)
			return nil
		})
		if err != nil {
			return err
		}
	}

	for _, key := range cmd.Keys {
		if rec, found := ctx.dict.Lookup(key); found {
			fmt.Printf("%s: %v\n", key, rec)
		} else {
			fmt.Printf("%s: not found\n", key)
		}
	}
	return nil
}
