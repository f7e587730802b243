package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/arr-ai/greibach/gnf"
	"github.com/arr-ai/greibach/interchange"
)

var inGrammarFile string
var outFile string
var verboseMode bool
var convertCommand = cli.Command{
	Name:    "convert",
	Aliases: []string{"c"},
	Usage:   "Convert a grammar to Greibach Normal Form",
	Action:  convert,
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:        "grammar",
			Usage:       "input grammar file",
			Required:    true,
			TakesFile:   true,
			Destination: &inGrammarFile,
		},
		cli.StringFlag{
			Name:        "output",
			Usage:       "filename to write the output to",
			Required:    false,
			TakesFile:   false,
			Destination: &outFile,
		},
		cli.BoolFlag{
			Name:        "v",
			Usage:       "verbose logging",
			Destination: &verboseMode,
		},
	},
}

func convert(c *cli.Context) error {
	if verboseMode {
		logrus.SetLevel(logrus.DebugLevel)
	}

	in, err := interchange.Load(inGrammarFile)
	if err != nil {
		return err
	}

	converted, auxes, err := gnf.Convert(in.Grammar, in.Order)
	if err != nil {
		return err
	}
	for _, z := range auxes {
		logrus.Debugf("introduced auxiliary variable %s", z)
	}

	switch outFile {
	case "", "-":
		fmt.Println(converted)
	default:
		if err := os.WriteFile(outFile, []byte(converted.String()+"\n"), 0644); err != nil {
			return err
		}
	}
	return nil
}
