// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package templating

import (
	"encoding/base64"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// LoadConfig creates a Config from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return &Config{RawValue: string(data)}, nil
}

// LoadTemplate loads a Template from the specified path.
func LoadTemplate(path string) (*Template, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	return &Template{Name: path, Data: data}, nil
}

// DecodeTemplate decodes a base64 encoded template.
func DecodeTemplate(encoded string) (*Template, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode template")
	}

	return &Template{Name: "decoded", Data: data}, nil
}

// DecodeConfig decodes a base64 encoded values file.
func DecodeConfig(encoded string) (*Config, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode values")
	}

	return &Config{RawValue: string(data)}, nil
}

func readFile(path string) ([]byte, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	_, err = os.Stat(abs)
	if err != nil {
		return nil, err
	}

	data, err := ioutil.ReadFile(abs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file: %s, absolute path: %s", path, abs)
	}

	return data, nil
}
