// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package runner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/Azure/kcfg/graph"
	"github.com/Azure/kcfg/util"
)

func writeConfig(t *testing.T, dir, name, data string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("Unexpected error writing config: %v", err)
	}
	return path
}

func TestRunPipeline_PropagationRoundTrip(t *testing.T) {
	dir := t.TempDir()
	idfConfig := writeConfig(t, dir, "sdkconfig",
		"CONFIG_WIFI=y\n"+
			"CONFIG_BT=n\n"+
			"CONFIG_NAME=\"esp32\"\n"+
			"CONFIG_ETH=y\n")
	appConfig := writeConfig(t, dir, "app.config",
		"FEATURE_OTA=y\n")

	steps := []*graph.Step{
		{ID: "idf", Config: idfConfig, Prefix: "ESP_IDF", Links: "esp_idf", Propagate: true},
		{ID: "app", Config: appConfig, Prefix: "APP", Uses: []string{"esp_idf"}},
	}
	p, err := graph.NewPipeline(steps, 60)
	if err != nil {
		t.Fatalf("Unexpected error while creating pipeline: %v", err)
	}

	if err := NewRunner(false).RunPipeline(context.Background(), p); err != nil {
		t.Fatalf("Unexpected error while running pipeline: %v", err)
	}

	expectedIdf := []string{"esp_idf_config_wifi", "esp_idf_config_eth"}
	if !util.StringSequenceEquals(steps[0].EmittedFlags, expectedIdf) {
		t.Errorf("Expected %v but got %v", expectedIdf, steps[0].EmittedFlags)
	}

	// The app step emits its own flags first, then re-emits everything
	// the idf step propagated, in propagation order.
	expectedApp := []string{"app_feature_ota", "esp_idf_config_wifi", "esp_idf_config_eth"}
	if !util.StringSequenceEquals(steps[1].EmittedFlags, expectedApp) {
		t.Errorf("Expected %v but got %v", expectedApp, steps[1].EmittedFlags)
	}

	for _, step := range steps {
		if step.StepStatus != graph.Successful {
			t.Errorf("Expected step %v to be successful but got %v", step.ID, step.StepStatus)
		}
	}
}

func TestRunPipeline_MissingConfigFailsStep(t *testing.T) {
	steps := []*graph.Step{
		{ID: "a", Config: filepath.Join(t.TempDir(), "does-not-exist"), Prefix: "P"},
	}
	p, err := graph.NewPipeline(steps, 60)
	if err != nil {
		t.Fatalf("Unexpected error while creating pipeline: %v", err)
	}

	if err := NewRunner(false).RunPipeline(context.Background(), p); err == nil {
		t.Fatal("Expected to error out, but did not")
	}
	if steps[0].StepStatus != graph.Failed {
		t.Errorf("Expected step a to be failed but got %v", steps[0].StepStatus)
	}
}

func TestRunPipeline_DryRunEmitsNothing(t *testing.T) {
	dir := t.TempDir()
	config := writeConfig(t, dir, "sdkconfig", "CONFIG_WIFI=y\n")

	steps := []*graph.Step{
		{ID: "idf", Config: config, Prefix: "ESP_IDF"},
	}
	p, err := graph.NewPipeline(steps, 60)
	if err != nil {
		t.Fatalf("Unexpected error while creating pipeline: %v", err)
	}

	if err := NewRunner(true).RunPipeline(context.Background(), p); err != nil {
		t.Fatalf("Unexpected error while running pipeline: %v", err)
	}
	if len(steps[0].EmittedFlags) != 0 {
		t.Errorf("Expected no flags to be emitted but got %v", steps[0].EmittedFlags)
	}
	if steps[0].StepStatus != graph.Successful {
		t.Errorf("Expected step idf to be successful but got %v", steps[0].StepStatus)
	}
}

func TestRunPipeline_CanceledContext(t *testing.T) {
	dir := t.TempDir()
	config := writeConfig(t, dir, "sdkconfig", "CONFIG_WIFI=y\n")

	steps := []*graph.Step{
		{ID: "idf", Config: config, Prefix: "ESP_IDF"},
	}
	p, err := graph.NewPipeline(steps, 60)
	if err != nil {
		t.Fatalf("Unexpected error while creating pipeline: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewRunner(false).RunPipeline(ctx, p); err == nil {
		t.Error("Expected to error out, but did not")
	}
}

func TestRunPipeline_DiamondOrdering(t *testing.T) {
	dir := t.TempDir()
	leftConfig := writeConfig(t, dir, "left.config", "L=y\n")
	rightConfig := writeConfig(t, dir, "right.config", "R=y\n")

	steps := []*graph.Step{
		{ID: "left", Config: leftConfig, Prefix: "LEFT", Propagate: true, When: []string{graph.ImmediateExecutionToken}},
		{ID: "right", Config: rightConfig, Prefix: "RIGHT", Propagate: true, When: []string{graph.ImmediateExecutionToken}},
		{ID: "sink", Uses: []string{"left", "right"}},
	}
	p, err := graph.NewPipeline(steps, 60)
	if err != nil {
		t.Fatalf("Unexpected error while creating pipeline: %v", err)
	}

	if err := NewRunner(false).RunPipeline(context.Background(), p); err != nil {
		t.Fatalf("Unexpected error while running pipeline: %v", err)
	}

	expected := []string{"left_l", "right_r"}
	if !util.StringSequenceEquals(steps[2].EmittedFlags, expected) {
		t.Errorf("Expected %v but got %v", expected, steps[2].EmittedFlags)
	}
}
