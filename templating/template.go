// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package templating

// Template represents a pipeline manifest template.
type Template struct {
	Name string `json:"name,omitempty"`
	Data []byte `json:"data,omitempty"`
}

// GetName returns a Template's name.
func (t *Template) GetName() string {
	if t == nil {
		return ""
	}
	return t.Name
}

// GetData returns a Template's data.
func (t *Template) GetData() []byte {
	if t == nil {
		return nil
	}
	return t.Data
}

// Config represents raw configuration values.
type Config struct {
	RawValue string `json:"rawValue,omitempty"`
}

// GetRawValue returns the Config's value as a string.
func (c *Config) GetRawValue() string {
	if c == nil {
		return ""
	}
	return c.RawValue
}
