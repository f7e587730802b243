package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/arr-ai/greibach/grammar"
	"github.com/arr-ai/greibach/interchange"
)

var checkGrammarFile string
var checkForm string
var checkCommand = cli.Command{
	Name:    "check",
	Aliases: []string{"k"},
	Usage:   "Check whether a grammar is in a normal form",
	Action:  check,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "grammar",
			Usage:       "input grammar file",
			Required:    true,
			TakesFile:   true,
			Destination: &checkGrammarFile,
		},
		cli.StringFlag{
			Name:        "form",
			Usage:       "normal form to check: gnf or cnf",
			Value:       "gnf",
			Destination: &checkForm,
		},
	},
}

func check(c *cli.Context) error {
	in, err := interchange.Load(checkGrammarFile)
	if err != nil {
		return err
	}

	switch checkForm {
	case "gnf":
		err = grammar.ValidateGNF(in.Grammar)
	case "cnf":
		err = grammar.ValidateCNF(in.Grammar)
	default:
		return errors.Errorf("unknown normal form %q (want gnf or cnf)", checkForm)
	}
	if err != nil {
		return err
	}
	fmt.Printf("grammar is in %s\n", checkForm)
	return nil
}
