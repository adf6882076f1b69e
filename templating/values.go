// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package templating

import (
	"bytes"
	"io/ioutil"
	"log"

	"github.com/Azure/kcfg/util"
	yaml "gopkg.in/yaml.v2"
)

// Values represents a map of override values.
type Values map[string]interface{}

// ToYAMLString encodes the Values object into a YAML string.
func (v Values) ToYAMLString() (string, error) {
	var buf bytes.Buffer
	err := yaml.NewEncoder(&buf).Encode(v)
	return buf.String(), err
}

// Deserialize will convert the specified bytes to a Values object.
func Deserialize(b []byte) (v Values, err error) {
	v = Values{}
	err = yaml.Unmarshal(b, &v)
	if len(v) == 0 {
		v = Values{}
	}
	return normalize(v), err
}

// DeserializeFromFile will parse the specified file name and convert it
// to a Values object.
func DeserializeFromFile(fileName string) (Values, error) {
	b, err := ioutil.ReadFile(fileName)
	if err != nil {
		return Values{}, err
	}
	return Deserialize(b)
}

// OverrideValues merges the values of c2 on top of c1.
func OverrideValues(c1 *Config, c2 *Config) (Values, error) {
	merged, err := Deserialize([]byte(c1.GetRawValue()))
	if err != nil {
		return Values{}, err
	}

	overrides, err := Deserialize([]byte(c2.GetRawValue()))
	if err != nil {
		return Values{}, err
	}

	return mergeMaps(merged, overrides), nil
}

// mergeMaps merges two maps. The source has precedence over the sink.
func mergeMaps(sink, source map[string]interface{}) map[string]interface{} {
	for k, v := range source {

		// Try to pull out a map from the source
		if _, ok := v.(map[string]interface{}); ok {

			// 1. If the key doesn't exist, set it.
			// 2. If the key exists and it's a map, recursively iterate through the map.
			// 3. Otherwise, the key is trying to be overriden by a scalar value, in which
			// case print a warning message and skip it.
			if innerV, ok := sink[k]; !ok {
				sink[k] = v
			} else if util.IsMap(innerV) {
				mergeMaps(innerV.(map[string]interface{}), v.(map[string]interface{}))
			} else {
				log.Printf("Skip merging: %s. Can't override a scalar with a map %v", k, v)
			}
		} else {
			sv, ok := sink[k]
			if ok && util.IsMap(sv) {
				log.Printf("Skip merging: %s is a map but %v is not", k, v)
			} else {
				sink[k] = v
			}
		}
	}

	return sink
}

// normalize rewrites nested yaml maps into map[string]interface{} so
// that merging can recurse through them.
func normalize(v Values) Values {
	for key, value := range v {
		v[key] = normalizeValue(value)
	}
	return v
}

func normalizeValue(value interface{}) interface{} {
	if m, ok := value.(map[interface{}]interface{}); ok {
		normalized := map[string]interface{}{}
		for k, inner := range m {
			if ks, ok := k.(string); ok {
				normalized[ks] = normalizeValue(inner)
			}
		}
		return normalized
	}
	return value
}
