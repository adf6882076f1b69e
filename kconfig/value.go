// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package kconfig parses the .config dump files written by kconfig
// style configuration tools and derives conditional-compilation flags
// from the options they enable.
package kconfig

import "strings"

// Tristate is the value of a kconfig boolean option: y, n, m, or unset.
type Tristate int

const (
	// NotSet marks an option that is absent from the config file.
	// Parsing never produces it; callers synthesize it for missing keys.
	NotSet Tristate = iota

	// True corresponds to the `y` literal.
	True

	// False corresponds to the `n` literal.
	False

	// Module corresponds to the `m` literal and denotes a separately
	// loadable component.
	Module
)

// String returns the kconfig literal for the tristate.
func (t Tristate) String() string {
	switch t {
	case True:
		return "y"
	case False:
		return "n"
	case Module:
		return "m"
	default:
		return "unset"
	}
}

// ValueKind discriminates the two shapes a config value can take.
type ValueKind int

const (
	// TristateKind is a y/n/m value.
	TristateKind ValueKind = iota

	// StringKind is a double-quoted string value.
	StringKind
)

// Value is a single option value, either a tristate or a raw string.
// String values keep their surrounding quotes verbatim and escape
// sequences are not interpreted; consumers depend on receiving the
// quoted text unchanged.
type Value struct {
	Kind     ValueKind
	Tristate Tristate
	Raw      string
}

// ParseValue parses the right-hand side of a config line. It returns
// false when the text is not a recognizable value, in which case the
// caller drops the line.
func ParseValue(raw string) (Value, bool) {
	switch {
	case strings.HasPrefix(raw, `"`):
		return Value{Kind: StringKind, Raw: raw}, true
	case raw == "y":
		return Value{Kind: TristateKind, Tristate: True}, true
	case raw == "n":
		return Value{Kind: TristateKind, Tristate: False}, true
	case raw == "m":
		return Value{Kind: TristateKind, Tristate: Module}, true
	default:
		return Value{}, false
	}
}

// IsEnabled returns true if the value is the tristate y.
func (v Value) IsEnabled() bool {
	return v.Kind == TristateKind && v.Tristate == True
}
