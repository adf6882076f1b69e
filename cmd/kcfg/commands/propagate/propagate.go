// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package propagate

import (
	"errors"
	"os"

	"github.com/Azure/kcfg/kconfig"
	"github.com/Azure/kcfg/stepio"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// Command publishes flag names for the dependents of the current build step.
var Command = cli.Command{
	Name:  "propagate",
	Usage: "publish flag names so that dependent build steps can re-emit them",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "file,f",
			Usage: "the path to the kconfig output file",
		},
		cli.StringFlag{
			Name:  "prefix,p",
			Usage: "the prefix for derived flag names",
		},
		cli.BoolFlag{
			Name:  "local",
			Usage: "also emit the flags for the current step",
		},
	},
	Action: func(context *cli.Context) error {
		var (
			file   = context.String("file")
			prefix = context.String("prefix")
			local  = context.Bool("local")
		)

		if file == "" {
			return errors.New("a config file is required")
		}
		if prefix == "" {
			return errors.New("a prefix is required")
		}

		args, err := kconfig.FromFile(file)
		if err != nil {
			return err
		}
		logrus.Debugf("loaded %d options from %s", len(args.Pairs()), file)

		sink := stepio.NewDirectiveWriter(os.Stdout)
		if local {
			args.Output(prefix, sink)
		}
		args.Propagate(prefix, sink)

		return nil
	},
}
