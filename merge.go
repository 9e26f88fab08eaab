// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package wildcard

// MergeSets merges pattern sets preserving input order.
func MergeSets(sets ...*Set) *Set {
	total := 0
	for _, s := range sets {
		total += len(s.patterns)
	}

	out := make([]*Pattern, 0, total)
	for _, s := range sets {
		out = append(out, s.patterns...)
	}

	return &Set{patterns: out}
}
