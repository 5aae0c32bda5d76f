package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/folionet/cartera/docs"
	"github.com/google/subcommands"
)

// topicCmd displays the embedded user manual.
type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "display a user manual topic" }
func (*topicCmd) Usage() string {
	return `cta topic [<name>...]

  Displays the named manual topics, the index when called without
  arguments, or the whole manual for '*'.

  Available topics: ` + strings.Join(docs.AllTopics(), ", ") + `
`
}

func (*topicCmd) SetFlags(_ *flag.FlagSet) {}

func (*topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		printMarkdown(docs.Readme())
		return subcommands.ExitSuccess
	}
	var b strings.Builder
	for _, name := range f.Args() {
		content, err := docs.Topic(name)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
