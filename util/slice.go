// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package util

// StringSequenceEquals determines whether or not two string slices are equal.
// A nil slice and an empty slice are not considered equal.
func StringSequenceEquals(a []string, b []string) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
