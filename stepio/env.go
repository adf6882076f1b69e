// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package stepio

import "os"

// OSEnv looks up propagated values in the process environment. This is
// the lookup a real build step uses, where the orchestrator has turned
// a dependency's metadata into DEP_<id>_<key> variables.
type OSEnv struct{}

// LookupEnv reads name from the process environment.
func (OSEnv) LookupEnv(name string) (string, bool) {
	return os.LookupEnv(name)
}

// MapEnv looks up propagated values in a fixed map.
type MapEnv map[string]string

// LookupEnv reads name from the map.
func (m MapEnv) LookupEnv(name string) (string, bool) {
	v, ok := m[name]
	return v, ok
}
