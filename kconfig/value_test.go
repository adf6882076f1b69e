// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package kconfig

import "testing"

func TestParseValueTristates(t *testing.T) {
	tests := []struct {
		raw      string
		expected Tristate
	}{
		{"y", True},
		{"n", False},
		{"m", Module},
	}

	for _, test := range tests {
		v, ok := ParseValue(test.raw)
		if !ok {
			t.Fatalf("Expected %q to parse, but it did not", test.raw)
		}
		if v.Kind != TristateKind {
			t.Fatalf("Expected a tristate for %q but got kind %v", test.raw, v.Kind)
		}
		if v.Tristate != test.expected {
			t.Errorf("Expected %v for %q but got %v", test.expected, test.raw, v.Tristate)
		}
	}
}

func TestParseValueStringsKeepRawText(t *testing.T) {
	tests := []string{
		`""`,
		`"hello"`,
		`"with \"escapes\" left alone"`,
		`"trailing junk" extra`,
		`"a=b:c"`,
	}

	for _, raw := range tests {
		v, ok := ParseValue(raw)
		if !ok {
			t.Fatalf("Expected %q to parse, but it did not", raw)
		}
		if v.Kind != StringKind {
			t.Fatalf("Expected a string for %q but got kind %v", raw, v.Kind)
		}
		if v.Raw != raw {
			t.Errorf("Expected raw text %q to be kept unchanged but got %q", raw, v.Raw)
		}
	}
}

func TestParseValueRejectsEverythingElse(t *testing.T) {
	tests := []string{
		"",
		"x",
		"yes",
		"no",
		"Y",
		"N",
		"M",
		"0",
		"1",
		"y ",
		"'quoted'",
	}

	for _, raw := range tests {
		if _, ok := ParseValue(raw); ok {
			t.Errorf("Expected %q not to parse, but it did", raw)
		}
	}
}

func TestTristateString(t *testing.T) {
	tests := []struct {
		tristate Tristate
		expected string
	}{
		{True, "y"},
		{False, "n"},
		{Module, "m"},
		{NotSet, "unset"},
	}

	for _, test := range tests {
		if actual := test.tristate.String(); actual != test.expected {
			t.Errorf("Expected %v but got %v", test.expected, actual)
		}
	}
}

func TestIsEnabled(t *testing.T) {
	tests := []struct {
		value    Value
		expected bool
	}{
		{Value{Kind: TristateKind, Tristate: True}, true},
		{Value{Kind: TristateKind, Tristate: False}, false},
		{Value{Kind: TristateKind, Tristate: Module}, false},
		{Value{Kind: TristateKind, Tristate: NotSet}, false},
		{Value{Kind: StringKind, Raw: `"y"`}, false},
	}

	for _, test := range tests {
		if actual := test.value.IsEnabled(); actual != test.expected {
			t.Errorf("Expected %v for %+v but got %v", test.expected, test.value, actual)
		}
	}
}
