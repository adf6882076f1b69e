// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package templating

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		template string
		values   Values
		expected string
	}{
		{
			"steps:\n  - id: {{.Name}}\n",
			Values{"Name": "idf"},
			"steps:\n  - id: idf\n",
		},
		{
			"prefix: {{upper .Prefix}}\n",
			Values{"Prefix": "esp_idf"},
			"prefix: ESP_IDF\n",
		},
		{
			"id: {{.Missing}}\n",
			Values{},
			"id: \n",
		},
	}

	engine := NewEngine()
	for _, test := range tests {
		rendered, err := engine.Render(&Template{Name: "t", Data: []byte(test.template)}, test.values)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if rendered != test.expected {
			t.Errorf("Expected %q but got %q", test.expected, rendered)
		}
	}
}

func TestRender_RequiredArguments(t *testing.T) {
	engine := NewEngine()

	if _, err := engine.Render(nil, Values{}); err == nil {
		t.Error("Expected to error out on a nil template, but did not")
	}
	if _, err := engine.Render(&Template{Name: "t", Data: []byte("a")}, nil); err == nil {
		t.Error("Expected to error out on nil values, but did not")
	}
}

func TestRender_InvalidTemplate(t *testing.T) {
	engine := NewEngine()
	if _, err := engine.Render(&Template{Name: "t", Data: []byte("{{.Name")}, Values{}); err == nil {
		t.Error("Expected to error out, but did not")
	}
}

func TestLoadAndRenderPipeline(t *testing.T) {
	template := &Template{
		Name: "t",
		Data: []byte("steps:\n  - id: {{.Values.id}}\n    run: {{.Run.ID}}\n"),
	}
	opts := &BaseRenderOptions{
		TemplateValues: []string{"id=idf"},
		ID:             "run-1",
	}

	rendered, err := LoadAndRenderPipeline(template, opts)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !strings.Contains(rendered, "id: idf") {
		t.Errorf("Expected the set value to be rendered but got %q", rendered)
	}
	if !strings.Contains(rendered, "run: run-1") {
		t.Errorf("Expected the run ID to be rendered but got %q", rendered)
	}
}

func TestLoadAndRenderPipeline_InvalidSetValues(t *testing.T) {
	template := &Template{Name: "t", Data: []byte("a")}

	tests := [][]string{
		{"novalue"},
		{"=val"},
	}
	for _, set := range tests {
		opts := &BaseRenderOptions{TemplateValues: set}
		if _, err := LoadAndRenderPipeline(template, opts); err == nil {
			t.Errorf("Expected %v to error out, but it did not", set)
		}
	}
}
