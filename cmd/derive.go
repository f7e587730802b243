package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/arr-ai/greibach/derive"
	"github.com/arr-ai/greibach/interchange"
)

var deriveGrammarFile string
var deriveMax int
var deriveTree bool
var deriveCommand = cli.Command{
	Name:    "derive",
	Aliases: []string{"d"},
	Usage:   "Enumerate the strings a grammar generates, up to a length bound",
	Action:  deriveStrings,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "grammar",
			Usage:       "input grammar file",
			Required:    true,
			TakesFile:   true,
			Destination: &deriveGrammarFile,
		},
		cli.IntFlag{
			Name:        "max",
			Usage:       "maximum string length",
			Value:       6,
			Destination: &deriveMax,
		},
		cli.BoolFlag{
			Name:        "tree",
			Usage:       "print the expansion tree instead of the string set",
			Destination: &deriveTree,
		},
	},
}

func deriveStrings(c *cli.Context) error {
	in, err := interchange.Load(deriveGrammarFile)
	if err != nil {
		return err
	}

	if deriveTree {
		fmt.Print(derive.Tree(in.Grammar, in.Start, deriveMax).Print())
		return nil
	}
	for _, s := range derive.Strings(in.Grammar, in.Start, deriveMax) {
		fmt.Println(s)
	}
	return nil
}
