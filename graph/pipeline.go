// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package graph

import (
	"fmt"
	"io/ioutil"
	"path/filepath"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

const (
	// The default step timeout is 1 minute.
	defaultStepTimeoutInSeconds = 60

	// The default total timeout is 10 minutes.
	defaultTotalTimeoutInSeconds = 60 * 10
)

// Pipeline represents one flag-propagation run over a set of build
// steps.
type Pipeline struct {
	Steps            []*Step `yaml:"steps"`
	StepTimeout      int     `yaml:"stepTimeout,omitempty"`
	TotalTimeout     int     `yaml:"totalTimeout,omitempty"`
	WorkingDirectory string  `yaml:"workingDirectory,omitempty"`
	Version          string  `yaml:"version,omitempty"`
	Dag              *Dag
}

// UnmarshalPipelineFromString unmarshals a Pipeline from a raw string.
func UnmarshalPipelineFromString(data, defaultWorkDir string) (*Pipeline, error) {
	p := &Pipeline{}
	if err := yaml.Unmarshal([]byte(data), p); err != nil {
		return p, errors.Wrap(err, "failed to deserialize pipeline")
	}
	if defaultWorkDir != "" && p.WorkingDirectory == "" {
		p.WorkingDirectory = defaultWorkDir
	}
	err := p.initialize()
	return p, err
}

// UnmarshalPipelineFromFile unmarshals a Pipeline from a file. Relative
// config paths resolve against the pipeline file's directory unless the
// pipeline declares its own working directory.
func UnmarshalPipelineFromFile(file string) (*Pipeline, error) {
	p := &Pipeline{}
	data, err := ioutil.ReadFile(file)
	if err != nil {
		return p, err
	}
	if err := yaml.Unmarshal(data, p); err != nil {
		return p, errors.Wrap(err, "failed to deserialize pipeline")
	}
	if p.WorkingDirectory == "" {
		p.WorkingDirectory = filepath.Dir(file)
	}
	err = p.initialize()
	return p, err
}

// NewPipeline returns a default Pipeline object.
func NewPipeline(steps []*Step, totalTimeout int) (*Pipeline, error) {
	p := &Pipeline{
		Steps:        steps,
		StepTimeout:  defaultStepTimeoutInSeconds,
		TotalTimeout: totalTimeout,
	}

	err := p.initialize()
	return p, err
}

// initialize normalizes a Pipeline's values.
func (p *Pipeline) initialize() error {
	if p.StepTimeout <= 0 {
		p.StepTimeout = defaultStepTimeoutInSeconds
	}
	if p.TotalTimeout <= 0 {
		p.TotalTimeout = defaultTotalTimeoutInSeconds
	}

	// Force total timeout to be greater than the individual step timeout.
	if p.TotalTimeout < p.StepTimeout {
		p.TotalTimeout = p.StepTimeout
	}

	for i, s := range p.Steps {
		// If individual steps don't have step timeouts specified,
		// stamp the global timeout on them.
		if s.Timeout <= 0 {
			s.Timeout = p.StepTimeout
		}

		if s.ID == "" {
			s.ID = fmt.Sprintf("kcfg_step_%d", i)
		}

		if s.Config != "" && p.WorkingDirectory != "" && !filepath.IsAbs(s.Config) {
			s.Config = filepath.Join(p.WorkingDirectory, s.Config)
		}

		// Initialize a completion channel for each step.
		if s.CompletedChan == nil {
			s.CompletedChan = make(chan bool)
		}

		// Mark the step as skipped initially.
		s.StepStatus = Skipped
	}

	var err error
	p.Dag, err = NewDagFromPipeline(p)
	return err
}
