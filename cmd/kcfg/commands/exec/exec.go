// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package exec

import (
	gocontext "context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"runtime"
	"time"

	"github.com/Azure/kcfg/graph"
	"github.com/Azure/kcfg/runner"
	"github.com/Azure/kcfg/templating"
	"github.com/google/uuid"
	"github.com/urfave/cli"
)

// Command executes a pipeline of flag-emission steps.
var Command = cli.Command{
	Name:  "exec",
	Usage: "execute a pipeline",
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
		cli.StringSliceFlag{
			Name:  "set",
			Usage: "set values on the command line (use --set multiple times or use commas: key1=val1,key2=val2)",
		},
		cli.StringFlag{
			Name:  "id",
			Usage: "the unique run identifier",
		},

		// Execution options
		cli.BoolFlag{
			Name:  "dry-run",
			Usage: "evaluates the pipeline but doesn't emit any flags",
		},
		cli.StringFlag{
			Name:  "working-directory",
			Usage: "the default working directory to use if the pipeline doesn't have one specified",
		},
	},
	Action: func(context *cli.Context) error {
		var (
			pipelineFile        = context.String("file")
			encodedPipelineFile = context.String("encoded-file")
			values              = context.String("values")
			encodedValues       = context.String("encoded-values")
			setVals             = context.StringSlice("set")
			id                  = context.String("id")
			dryRun              = context.Bool("dry-run")
			workingDirectory    = context.String("working-directory")
			debug               = context.GlobalBool("debug")
		)

		if pipelineFile == "" && encodedPipelineFile == "" {
			return errors.New("a pipeline file or base64 encoded pipeline file is required")
		}

		if id == "" {
			id = uuid.New().String()
		}

		renderOpts := &templating.BaseRenderOptions{
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

		if debug {
			log.Println("Rendered pipeline:")
			log.Println(rendered)
		}

		if workingDirectory == "" && pipelineFile != "" {
			workingDirectory = filepath.Dir(pipelineFile)
		}

		pipeline, err := graph.UnmarshalPipelineFromString(rendered, workingDirectory)
		if err != nil {
			return err
		}

		timeout := time.Duration(pipeline.TotalTimeout) * time.Second
		ctx, cancel := gocontext.WithTimeout(gocontext.Background(), timeout)
		defer cancel()

		log.Printf("Executing run: %s\n", id)
		if err := runner.NewRunner(dryRun).RunPipeline(ctx, pipeline); err != nil {
			return err
		}

		flags := map[string][]string{}
		for _, step := range pipeline.Steps {
			flags[step.ID] = step.EmittedFlags
		}
		bytes, err := json.Marshal(flags)
		if err != nil {
			return err
		}
		fmt.Println("The following flags were emitted:")
		fmt.Println(string(bytes))

		return nil
	},
}
