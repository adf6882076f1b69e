// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package stepio

import "sync"

// Recorder captures emitted flags and metadata in memory. It stands in
// for the build orchestrator when a pipeline runs in-process and in
// tests.
type Recorder struct {
	mu       sync.Mutex
	flags    []string
	metadata map[string]string
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		metadata: map[string]string{},
	}
}

// EmitLocalFlag records a conditional-compilation flag.
func (r *Recorder) EmitLocalFlag(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.flags = append(r.flags, name)
}

// EmitStepMetadata records a metadata value. Re-publishing a key
// overwrites the previous value.
func (r *Recorder) EmitStepMetadata(key, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.metadata[key] = value
}

// Flags returns a copy of the recorded flags in emission order.
func (r *Recorder) Flags() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	flags := make([]string, len(r.flags))
	copy(flags, r.flags)
	return flags
}

// Metadata returns a copy of the recorded metadata.
func (r *Recorder) Metadata() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	metadata := make(map[string]string, len(r.metadata))
	for k, v := range r.metadata {
		metadata[k] = v
	}
	return metadata
}
