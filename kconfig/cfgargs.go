// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package kconfig

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

const (
	// CfgArgsKey is the metadata key under which a build step publishes
	// its flag names. Direct dependents see the published value as the
	// DEP_<links-id>_EMBUILD_CFG_ARGS environment variable.
	CfgArgsKey = "EMBUILD_CFG_ARGS"

	// argSeparator joins flag names in the propagation channel. Flag
	// names are identifier-safe and never contain it.
	argSeparator = ":"
)

// ErrNotPropagated is returned when a dependency never published its
// flags, or when the current step doesn't actually depend on it.
var ErrNotPropagated = errors.New("no propagated configuration found")

// FlagSink registers conditional-compilation flags for the current
// build step.
type FlagSink interface {
	EmitLocalFlag(name string)
}

// MetadataSink publishes a string value under a key, retrievable by
// direct dependents of the current build step.
type MetadataSink interface {
	EmitStepMetadata(key, value string)
}

// EnvLookup reads a single environment-style variable.
type EnvLookup interface {
	LookupEnv(name string) (string, bool)
}

// CfgArgs is the immutable set of options loaded from one config
// file. It is created once per build step and read-only afterwards.
type CfgArgs struct {
	pairs []Pair
}

// New creates a CfgArgs from already-collected pairs.
func New(pairs []Pair) *CfgArgs {
	return &CfgArgs{pairs: pairs}
}

// FromFile loads a CfgArgs from the config file at path.
func FromFile(path string) (*CfgArgs, error) {
	pairs, err := Load(path)
	if err != nil {
		return nil, err
	}
	return New(pairs), nil
}

// Pairs returns the loaded pairs in file order.
func (c *CfgArgs) Pairs() []Pair {
	return c.pairs
}

// FlagName derives the conditional-compilation flag for a single
// option: the lowercased prefix and the lowercased option name joined
// by an underscore.
func FlagName(prefix, key string) string {
	return strings.ToLower(prefix) + "_" + strings.ToLower(key)
}

// Gather returns the flag names for every option set to y, in file
// order. Duplicate keys produce duplicate names; no deduplication is
// performed.
func (c *CfgArgs) Gather(prefix string) []string {
	var args []string
	for _, p := range c.pairs {
		if p.Value.IsEnabled() {
			args = append(args, FlagName(prefix, p.Key))
		}
	}
	return args
}

// Output emits every gathered flag name as a local
// conditional-compilation flag for the current build step.
func (c *CfgArgs) Output(prefix string, sink FlagSink) {
	for _, arg := range c.Gather(prefix) {
		sink.EmitLocalFlag(arg)
	}
}

// Propagate publishes the gathered flag names for all direct
// dependents of the current build step.
//
// Calling this in a dependency does nothing on its own: every
// dependent that wants the flags re-emitted must call
// OutputPropagated with this step's links identifier.
func (c *CfgArgs) Propagate(prefix string, sink MetadataSink) {
	sink.EmitStepMetadata(CfgArgsKey, strings.Join(c.Gather(prefix), argSeparator))
}

// PropagatedVar returns the name of the environment variable through
// which a dependent reads the flags published under depID.
func PropagatedVar(depID string) string {
	return fmt.Sprintf("DEP_%s_%s", depID, CfgArgsKey)
}

// OutputPropagated re-emits the flags a dependency published via
// Propagate. depID is the dependency's links identifier, not its
// package name. It returns ErrNotPropagated if nothing was published
// under that identifier; flag names are otherwise trusted as
// published and not re-validated.
func OutputPropagated(depID string, env EnvLookup, sink FlagSink) error {
	name := PropagatedVar(depID)
	joined, ok := env.LookupEnv(name)
	if !ok {
		return errors.Wrapf(ErrNotPropagated, "%s is not set", name)
	}
	for _, arg := range strings.Split(joined, argSeparator) {
		sink.EmitLocalFlag(arg)
	}
	return nil
}
