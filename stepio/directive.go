// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package stepio provides the sinks through which kconfig flags leave
// a build step: a directive writer for orchestrated builds and an
// in-memory recorder for in-process pipelines and tests.
package stepio

import (
	"fmt"
	"io"
)

const (
	flagDirective     = "kcfg:flag="
	metadataDirective = "kcfg:metadata="
)

// DirectiveWriter emits flags and step metadata as line directives on
// a writer, typically stdout, where the build orchestrator picks them
// up. Flags become conditional-compilation flags of the current step;
// metadata is re-exposed to direct dependents as DEP_<id>_<key>
// environment variables.
type DirectiveWriter struct {
	w io.Writer
}

// NewDirectiveWriter creates a DirectiveWriter on w.
func NewDirectiveWriter(w io.Writer) *DirectiveWriter {
	return &DirectiveWriter{w: w}
}

// EmitLocalFlag writes a flag directive.
func (d *DirectiveWriter) EmitLocalFlag(name string) {
	fmt.Fprintf(d.w, "%s%s\n", flagDirective, name)
}

// EmitStepMetadata writes a metadata directive.
func (d *DirectiveWriter) EmitStepMetadata(key, value string) {
	fmt.Fprintf(d.w, "%s%s=%s\n", metadataDirective, key, value)
}
