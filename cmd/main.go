package cmd

import "github.com/google/subcommands"

// Commands lists the subcommands of the cps application.
// A main package registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&simulateCmd{},
	&sweepCmd{},
	&fetchCmd{},
	&exportCmd{},
	&topicCmd{},
	&assistCmd{},
}
