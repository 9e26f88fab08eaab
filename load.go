// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package wildcard

import (
	"fmt"
	"os"
)

// LoadSetFile reads and compiles a pattern list from a file.
func LoadSetFile(path string) (*Set, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pattern file: %w", err)
	}
	defer func() { _ = f.Close() }()

	set, err := ParseSet(f)
	if err != nil {
		return nil, fmt.Errorf("parse pattern file %s: %w", path, err)
	}

	return set, nil
}

// LoadSetFiles reads and merges pattern lists from files in the given order.
//
// Returned set preserves file order and pattern order inside each file.
func LoadSetFiles(paths ...string) (*Set, error) {
	sets := make([]*Set, 0, len(paths))
	for _, path := range paths {
		set, err := LoadSetFile(path)
		if err != nil {
			return nil, err
		}

		sets = append(sets, set)
	}

	return MergeSets(sets...), nil
}
