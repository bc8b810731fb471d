package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/cppi/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}
	commander.Register(commander.HelpCommand(), "help")

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion registers shell completion for the subcommands. It exits
// the process when invoked by the shell completion mechanism.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	(&complete.Command{Sub: sub}).Complete("cps")
}
