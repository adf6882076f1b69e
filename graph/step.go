package graph

import (
	"errors"
	"fmt"
	"time"

	"github.com/Azure/kcfg/util"
)

const (
	// ImmediateExecutionToken defines the when dependency to indicate a step should execute immediately.
	ImmediateExecutionToken = "-"
)

var (
	errMissingID      = errors.New("Step is missing an ID")
	errMissingConfig  = errors.New("Step must have a `config` section or a `uses` section")
	errMissingPrefix  = errors.New("Step has a `config` section but no `prefix`")
	errOrphanedPrefix = errors.New("Step has a `prefix` but no `config` section")
)

// Step is a step in the flag-emission pipeline. It loads a kconfig
// dump and turns enabled options into compile-time flags, and can
// publish them to dependents or re-emit what its dependencies
// published.
type Step struct {
	ID        string   `yaml:"id"`
	Config    string   `yaml:"config,omitempty"`
	Prefix    string   `yaml:"prefix,omitempty"`
	Links     string   `yaml:"links,omitempty"`
	Propagate bool     `yaml:"propagate,omitempty"`
	Uses      []string `yaml:"uses,omitempty"`
	When      []string `yaml:"when,omitempty"`
	Timeout   int      `yaml:"timeout,omitempty"`

	StartTime  time.Time
	EndTime    time.Time
	StepStatus StepStatus

	// EmittedFlags holds the flags the step emitted, filled in by the
	// runner once the step has been processed.
	EmittedFlags []string

	// CompletedChan can be used to signal to readers
	// that the step has been processed.
	CompletedChan chan bool
}

// Validate validates the step and returns an error if the Step has problems.
func (s *Step) Validate() error {
	if s.ID == "" {
		return errMissingID
	}

	if s.Config == "" && len(s.Uses) == 0 {
		return errMissingConfig
	}
	if s.Config != "" && s.Prefix == "" {
		return errMissingPrefix
	}
	if s.Config == "" && s.Prefix != "" {
		return errOrphanedPrefix
	}

	for _, dep := range s.When {
		if dep == s.ID {
			return NewSelfReferencedStepError(fmt.Sprintf("Step ID: %v is self-referenced", s.ID))
		}
	}
	for _, dep := range s.Uses {
		if dep == s.LinksID() {
			return NewSelfReferencedStepError(fmt.Sprintf("Step ID: %v uses its own propagated flags", s.ID))
		}
	}

	return nil
}

// LinksID returns the identifier under which the step's flags are
// propagated. It defaults to the step's ID.
func (s *Step) LinksID() string {
	if s.Links != "" {
		return s.Links
	}
	return s.ID
}

// Equals determines whether or not two steps are equal.
func (s *Step) Equals(t *Step) bool {
	if s == nil && t == nil {
		return true
	}

	if s == nil || t == nil {
		return false
	}

	if s.ID != t.ID ||
		s.Config != t.Config ||
		s.Prefix != t.Prefix ||
		s.Links != t.Links ||
		s.Propagate != t.Propagate ||
		!util.StringSequenceEquals(s.Uses, t.Uses) ||
		!util.StringSequenceEquals(s.When, t.When) ||
		s.Timeout != t.Timeout ||
		s.StartTime != t.StartTime ||
		s.EndTime != t.EndTime ||
		s.StepStatus != t.StepStatus {
		return false
	}

	return true
}

// ShouldExecuteImmediately returns true if the Step should be executed immediately.
func (s *Step) ShouldExecuteImmediately() bool {
	if len(s.When) == 1 && s.When[0] == ImmediateExecutionToken {
		return true
	}

	return false
}

// HasNoWhen returns true if the Step has no when clause, false otherwise.
func (s *Step) HasNoWhen() bool {
	return len(s.When) == 0
}
