// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package emit

import (
	"errors"
	"os"

	"github.com/Azure/kcfg/kconfig"
	"github.com/Azure/kcfg/stepio"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

// Command emits conditional-compilation flags for the current build step.
var Command = cli.Command{
	Name:  "emit",
	Usage: "emit conditional-compilation flags from a kconfig output file or from propagated dependencies",
	Flags: []cli.Flag{
		cli.StringFlag{
			Name:  "file,f",
			Usage: "the path to the kconfig output file",
		},
		cli.StringFlag{
			Name:  "prefix,p",
			Usage: "the prefix for derived flag names",
		},
		cli.StringSliceFlag{
			Name:  "from",
			Usage: "links ids of dependencies whose propagated flags should be re-emitted (use `--from` multiple times)",
		},
	},
	Action: func(context *cli.Context) error {
		var (
			file   = context.String("file")
			prefix = context.String("prefix")
			from   = context.StringSlice("from")
		)

		if file == "" && len(from) == 0 {
			return errors.New("a config file or at least one --from dependency is required")
		}
		if file != "" && prefix == "" {
			return errors.New("a prefix is required when emitting from a config file")
		}

		sink := stepio.NewDirectiveWriter(os.Stdout)

		if file != "" {
			args, err := kconfig.FromFile(file)
			if err != nil {
				return err
			}
			logrus.Debugf("loaded %d options from %s", len(args.Pairs()), file)
			args.Output(prefix, sink)
		}

		for _, dep := range from {
			if err := kconfig.OutputPropagated(dep, stepio.OSEnv{}, sink); err != nil {
				return err
			}
		}

		return nil
	},
}
