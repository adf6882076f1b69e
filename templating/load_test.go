package templating

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pipeline.yaml")
	if err := os.WriteFile(path, []byte("steps: []"), 0644); err != nil {
		t.Fatalf("Unexpected error writing template: %v", err)
	}

	template, err := LoadTemplate(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if template.GetName() != path {
		t.Errorf("Expected %v as the name but got %v", path, template.GetName())
	}
	if string(template.GetData()) != "steps: []" {
		t.Errorf("Unexpected template data: %q", template.GetData())
	}
}

func TestLoadTemplate_Missing(t *testing.T) {
	if _, err := LoadTemplate(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Error("Expected to error out, but did not")
	}
}

func TestDecodeTemplate(t *testing.T) {
	enc := base64.StdEncoding.EncodeToString([]byte("steps: []"))
	template, err := DecodeTemplate(enc)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if string(template.GetData()) != "steps: []" {
		t.Errorf("Unexpected template data: %q", template.GetData())
	}
}

func TestDecodeTemplate_Invalid(t *testing.T) {
	if _, err := DecodeTemplate("not-base64!!!"); err == nil {
		t.Error("Expected to error out, but did not")
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.yaml")
	if err := os.WriteFile(path, []byte("a: 1"), 0644); err != nil {
		t.Fatalf("Unexpected error writing values: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if config.GetRawValue() != "a: 1" {
		t.Errorf("Unexpected raw value: %q", config.GetRawValue())
	}
}
