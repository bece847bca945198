package main

import (
	"errors"
	"flag"
	"os"

	"github.com/sirupsen/logrus"

	"hop.computer/seqs/app"
	"hop.computer/seqs/flags"
)

func main() {
	f, err := flags.ParseArgs(os.Args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logrus.Error(err)
		os.Exit(2)
	}

	// c will be the result of merging config file settings and flags
	c, err := flags.LoadConfigFromFlags(f)
	if err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
	logrus.SetLevel(c.Level())
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableColors: !app.ColorEnabled(c.Color, os.Stderr),
	})

	if err := app.Run(f, c, os.Stdout); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
