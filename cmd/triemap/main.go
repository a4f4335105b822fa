package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/triekit/triemap/pkg/cli"
	"github.com/triekit/triemap/pkg/dictionary"
)

func main() {
	ctx := kong.Parse(&cli.CLI, kong.UsageOnError())
	if err := ctx.Run(cli.NewContext(dictionary.New(), cli.CLI.Debug)); err != nil {
		fmt.Printf("Error: %v\n", err)
	}
}
