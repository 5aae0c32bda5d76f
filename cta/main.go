package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/folionet/cartera/cmd"
	"github.com/folionet/cartera/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Install with
// COMP_INSTALL=1 cta.
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"ledger-file": predict.Files("*.jsonl"),
		"currency":    predict.Set{"EUR", "USD", "GBP", "CHF"},
	},
	Sub: map[string]*complete.Command{
		"summary": {Flags: map[string]complete.Predictor{
			"d":          predict.Something,
			"quotes":     predict.Files("*.json"),
			"quotes-url": predict.Something,
		}},
		"holding": {Flags: map[string]complete.Predictor{
			"d":          predict.Something,
			"quotes":     predict.Files("*.json"),
			"quotes-url": predict.Something,
		}},
		"log": {},
		"import": {
			Flags: map[string]complete.Predictor{"o": predict.Files("*.jsonl")},
			Args:  predict.Files("*.csv"),
		},
		"assist": {Flags: map[string]complete.Predictor{
			"quotes":     predict.Files("*.json"),
			"quotes-url": predict.Something,
		}},
		"topic": {Args: predict.Set(docs.AllTopics())},
	},
}

func main() {
	completion.Complete("cta")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
