// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package render

import (
	"errors"
	"log"
	"runtime"
	"time"

	"github.com/Azure/kcfg/templating"
	"github.com/urfave/cli"
)

// Command renders pipeline templates and verifies their output.
var Command = cli.Command{
	Name:  "render",
	Usage: "render the specified pipeline template",
	Flags: []cli.Flag{
		// Pipeline options
		cli.StringFlag{
			Name:  "file,f",
			Usage: "the path to the pipeline file",
		},
		cli.StringFlag{
			Name:  "encoded-file",
			Usage: "a base64 encoded pipeline file",
		},

		// Rendering options
		cli.StringFlag{
			Name:  "values",
			Usage: "the path to the values file to use for rendering",
		},
		cli.StringFlag{
			Name:  "encoded-values",
			Usage: "a base64 encoded values file to use for rendering",
		},
		cli.StringFlag{
			Name:  "id",
			Usage: "the unique run identifier",
		},
		cli.StringSliceFlag{
			Name:  "set",
			Usage: "set values on the command line (use --set multiple times or use commas: key1=val1,key2=val2)",
		},
	},
	Action: func(context *cli.Context) error {
		var (
			pipelineFile        = context.String("file")
			encodedPipelineFile = context.String("encoded-file")
			values              = context.String("values")
			encodedValues       = context.String("encoded-values")
			id                  = context.String("id")
			setVals             = context.StringSlice("set")

			renderOpts = &templating.BaseRenderOptions{
				PipelineFile:              pipelineFile,
				Base64EncodedPipelineFile: encodedPipelineFile,
				ValuesFile:                values,
				Base64EncodedValuesFile:   encodedValues,
				TemplateValues:            setVals,
				ID:                        id,
				Date:                      time.Now().UTC(),
				OS:                        runtime.GOOS,
				Architecture:              runtime.GOARCH,
			}
		)

		if pipelineFile == "" && encodedPipelineFile == "" {
			return errors.New("a pipeline file or base64 encoded pipeline file is required")
		}

		var template *templating.Template
		var err error
		if pipelineFile == "" {
			if template, err = templating.DecodeTemplate(encodedPipelineFile); err != nil {
				return err
			}
		} else {
			if template, err = templating.LoadTemplate(pipelineFile); err != nil {
				return err
			}
		}

		rendered, err := templating.LoadAndRenderPipeline(template, renderOpts)
		if err != nil {
			return err
		}

		log.Println("Rendered pipeline:")
		log.Println(rendered)
		return nil
	},
}
