// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package kconfig

import (
	"bufio"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Pair is one key=value line from a config file. File order is
// preserved and duplicate keys yield multiple pairs.
type Pair struct {
	Key   string
	Value Value
}

// Load reads a kconfig output file into its ordered key/value pairs.
// Comments, blank lines and lines that don't parse are skipped
// silently; the call fails only if the file itself can't be read.
func Load(path string) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer f.Close()

	var pairs []Pair
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if pair, ok := parseLine(scanner.Text()); ok {
			pairs = append(pairs, pair)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file: %s", path)
	}
	return pairs, nil
}

// parseLine parses a single config line. It returns false for
// comments, blank lines, lines without a `=`, lines whose value
// doesn't parse, and lines that aren't valid UTF-8.
func parseLine(line string) (Pair, bool) {
	if !utf8.ValidString(line) {
		return Pair{}, false
	}
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return Pair{}, false
	}

	split := strings.SplitN(line, "=", 2)
	if len(split) != 2 {
		return Pair{}, false
	}

	value, ok := ParseValue(strings.TrimSpace(split[1]))
	if !ok {
		return Pair{}, false
	}
	return Pair{Key: strings.TrimSpace(split[0]), Value: value}, true
}
