package cli

import (
	"github.com/triekit/triemap/pkg/dictionary"
)

type LoadCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Input files containing records in CSV, TSV or JSON format"`
	KeyCol string   `help:"Column holding the entry key" default:"key"`
	Erase  []string `help:"Keys to erase after loading"`
	Drop   []string `help:"Columns to drop from the output"`
	Format string   `help:"Output format" enum:"csv,tsv,json,yaml" default:"csv"`
	Out    string   `help:"Output path without extension" default:"entries"`
}

// Run executes the load command: parse every file, add each record, erase the
// requested keys, then write the surviving entries in traversal order.
func (cmd *LoadCmd) Run(ctx *Context) error {
	stats := &Stats{}

	for _, file := range cmd.Files {
		if err := parseAndAddRecords(ctx, cmd, file, stats); err != nil {
			return err
		}
	}

	for _, key := range cmd.Erase {
		if ctx.dict.Delete(key) {
			stats.Erased++
		} else {
			ctx.log.Warn().Str("key", key).Msg("erase requested for a key that is not stored")
		}
	}

	writer, err := NewWriter(cmd.Format, stats)
	if err != nil {
		return err
	}
	if err := writer.Write(ctx.dict, cmd.Out, cmd.KeyCol, cmd.Drop); err != nil {
		return err
	}

	ctx.log.Info().
		Int("input", stats.Input).
		Int("inserted", stats.Inserted).
		Int("replaced", stats.Replaced).
		Int("duplicates", stats.Duplicates).
		Int("erased", stats.Erased).
		Int("output", stats.Output).
		Msg("load complete")
	return nil
}

// parseAndAddRecords parses one file and adds its records to the dictionary.
func parseAndAddRecords(ctx *Context, cmd *LoadCmd, file string, stats *Stats) error {
	ctx.log.Info().Str("file", file).Msg("loading records")
	return parseFile(file, cmd.KeyCol, func(key string, rec dictionary.Record) error {
		stats.Input++
		result := ctx.dict.Add(key, rec)
		switch result.Action {
		case dictionary.Inserted:
			stats.Inserted++
		case dictionary.Replaced:
			stats.Replaced++
		default:
			stats.Duplicates++
		}
		ctx.log.Debug().Msg(result.String())
		return nil
	})
}
