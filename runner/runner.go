// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package runner executes flag-emission pipelines in dependency order.
package runner

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/Azure/kcfg/graph"
	"github.com/Azure/kcfg/kconfig"
	"github.com/Azure/kcfg/stepio"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Runner runs pipelines of flag-emission steps.
type Runner struct {
	dryRun bool
}

// NewRunner creates a new Runner.
func NewRunner(dryRun bool) *Runner {
	return &Runner{
		dryRun: dryRun,
	}
}

// RunPipeline executes a Pipeline. Steps run as soon as all of their
// dependencies have completed, so a step that re-emits propagated
// flags never runs before the step that published them.
func (r *Runner) RunPipeline(ctx context.Context, p *graph.Pipeline) error {
	store := newPropagationStore()

	var completedChans []chan bool
	errorChan := make(chan error)
	for _, n := range p.Dag.Nodes {
		completedChans = append(completedChans, n.Value.CompletedChan)
	}

	for _, n := range p.Dag.Root.Children() {
		go r.processVertex(ctx, p, store, p.Dag.Root, n, errorChan)
	}

	// Block until either:
	// - The global context expires
	// - A step has an error
	// - All steps have been processed
	for _, ch := range completedChans {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ch:
			continue
		case err := <-errorChan:
			return err
		}
	}

	for _, n := range p.Dag.Nodes {
		step := n.Value
		log.Printf("Step ID %v marked as %v (elapsed time in seconds: %f)\n", step.ID, step.StepStatus, step.EndTime.Sub(step.StartTime).Seconds())
	}

	return nil
}

func (r *Runner) processVertex(ctx context.Context, p *graph.Pipeline, store *propagationStore, parent *graph.Node, child *graph.Node, errorChan chan error) {
	err := p.Dag.RemoveEdge(parent.Name, child.Name)
	if err != nil {
		errorChan <- errors.Wrap(err, "failed to remove edge")
		return
	}

	degree := child.GetDegree()
	if degree == 0 {
		step := child.Value
		if err := r.runStep(ctx, step, store); err != nil {
			step.StepStatus = graph.Failed
			errorChan <- errors.Wrapf(err, "failed to run step id: %s", step.ID)
		} else {
			step.StepStatus = graph.Successful
			for _, c := range child.Children() {
				go r.processVertex(ctx, p, store, child, c, errorChan)
			}
		}
		// Step must always be marked as complete.
		step.CompletedChan <- true
	}
}

func (r *Runner) runStep(ctx context.Context, step *graph.Step, store *propagationStore) error {
	log.Printf("Executing step: %s\n", step.ID)

	step.StepStatus = graph.InProgress
	step.StartTime = time.Now()
	defer func() {
		step.EndTime = time.Now()
	}()

	if err := ctx.Err(); err != nil {
		return err
	}

	if r.dryRun {
		log.Printf("Dry run, skipping emission for step: %s\n", step.ID)
		return nil
	}

	recorder := stepio.NewRecorder()

	if step.Config != "" {
		args, err := kconfig.FromFile(step.Config)
		if err != nil {
			return err
		}
		args.Output(step.Prefix, recorder)
		if step.Propagate {
			args.Propagate(step.Prefix, recorder)
		}
	}

	for _, use := range step.Uses {
		if err := kconfig.OutputPropagated(use, store, recorder); err != nil {
			return errors.Wrapf(err, "failed to re-emit flags propagated by %s", use)
		}
	}

	step.EmittedFlags = recorder.Flags()
	logrus.Debugf("step %s emitted %d flags", step.ID, len(step.EmittedFlags))

	if step.Propagate {
		store.publish(step.LinksID(), recorder.Metadata())
	}

	return nil
}

// propagationStore holds the metadata published during a single
// pipeline run, keyed the same way the orchestrator keys a dependent's
// environment: DEP_<links-id>_<key>.
type propagationStore struct {
	mu   sync.Mutex
	vars map[string]string
}

func newPropagationStore() *propagationStore {
	return &propagationStore{
		vars: map[string]string{},
	}
}

// LookupEnv reads a published variable by name.
func (s *propagationStore) LookupEnv(name string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.vars[name]
	return v, ok
}

// publish stores every metadata entry of a step under its links id.
func (s *propagationStore) publish(linksID string, metadata map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, value := range metadata {
		s.vars[fmt.Sprintf("DEP_%s_%s", linksID, key)] = value
	}
}
