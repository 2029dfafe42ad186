package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := cli.NewApp()
	app.Name = "docklint"
	app.Usage = "Dockerfile diagnostics"
	app.ArgsUsage = "PATH"

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug output in logs",
		},
		cli.StringFlag{
			Name:  "config",
			Usage: "path to a docklint.toml configuration file",
		},
		cli.StringFlag{
			Name:  "format",
			Usage: "output format, text or json",
			Value: "text",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
	}

	app.Action = lint

	app.Before = func(context *cli.Context) error {
		if context.GlobalBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "docklint: %s\n", err)
		os.Exit(1)
	}
}
