// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"
	"os"

	emitCmd "github.com/Azure/kcfg/cmd/kcfg/commands/emit"
	execCmd "github.com/Azure/kcfg/cmd/kcfg/commands/exec"
	propagateCmd "github.com/Azure/kcfg/cmd/kcfg/commands/propagate"
	renderCmd "github.com/Azure/kcfg/cmd/kcfg/commands/render"
	versionCmd "github.com/Azure/kcfg/cmd/kcfg/commands/version"
	"github.com/Azure/kcfg/version"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := New()
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// New returns a *cli.App instance.
func New() *cli.App {
	app := cli.NewApp()
	app.Name = "kcfg"
	app.Usage = "emit and propagate kconfig options as conditional-compilation flags"
	app.Version = version.Version
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable verbose output for debugging",
		},
	}
	app.Before = func(context *cli.Context) error {
		if context.GlobalBool("debug") {
			logrus.SetLevel(logrus.DebugLevel)
		}
		return nil
	}
	app.Commands = []cli.Command{
		emitCmd.Command,
		propagateCmd.Command,
		execCmd.Command,
		renderCmd.Command,
		versionCmd.Command,
	}
	return app
}
