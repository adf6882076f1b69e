// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package templating

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig"
)

// Engine is a wrapper around Go templates.
type Engine struct {
	FuncMap    template.FuncMap
	StrictMode bool
}

// NewEngine creates a new engine.
func NewEngine() *Engine {
	fm := FuncMap()
	return &Engine{
		FuncMap: fm,
	}
}

// FuncMap returns a FuncMap representing all of the functionality of the engine.
func FuncMap() template.FuncMap {
	return sprig.TxtFuncMap()
}

// Render renders a template with the provided values.
func (e *Engine) Render(t *Template, values Values) (rendered string, err error) {
	if t == nil {
		return "", errors.New("template is required")
	}

	if values == nil {
		return "", errors.New("values is required")
	}

	// If a template panics, recover the engine.
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Template rendering recovered. Value: %v\n", r)
		}
	}()

	tmpl := template.New(t.GetName()).Funcs(e.FuncMap)
	if e.StrictMode {
		tmpl.Option("missingkey=error")
	} else {
		// NB: zero will attempt to add default values for types it knows.
		// It still emits <no value> for others. This is corrected below.
		tmpl.Option("missingkey=zero")
	}

	if _, err := tmpl.Parse(string(t.GetData())); err != nil {
		return "", fmt.Errorf("Failed to parse template: %s. Err: %v", t.GetName(), err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, values); err != nil {
		return "", fmt.Errorf("Failed to execute template: %s. Err: %v", t.GetName(), err)
	}

	// NB: handle `missingkey=zero` by removing the string.
	return strings.Replace(buf.String(), "<no value>", "", -1), nil
}
