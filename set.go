// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package wildcard

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Set is an immutable ordered collection of compiled patterns.
type Set struct {
	patterns []*Pattern
}

// NewSet builds a set from already compiled patterns, preserving order.
func NewSet(patterns ...*Pattern) *Set {
	out := make([]*Pattern, len(patterns))
	copy(out, patterns)
	return &Set{patterns: out}
}

// ParseSet parses a pattern list from reader.
//
// Semantics:
// - one pattern per line
// - blank lines and "#" comment lines are ignored
// - remaining lines are compiled with Parse; the first error rejects the input
func ParseSet(r io.Reader) (*Set, error) {
	s := bufio.NewScanner(r)
	patterns := make([]*Pattern, 0, 16)

	line := 0
	for s.Scan() {
		line++

		text := strings.TrimRight(s.Text(), "\r")
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		p, err := Parse(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		patterns = append(patterns, p)
	}

	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("scan patterns: %w", err)
	}

	return &Set{patterns: patterns}, nil
}

// ParseSetString parses a pattern list from string input.
func ParseSetString(src string) (*Set, error) {
	return ParseSet(strings.NewReader(src))
}

// Match returns the index of the first pattern matching subject in input
// order, or -1 and false when no pattern matches.
func (s *Set) Match(subject string) (int, bool) {
	for i, p := range s.patterns {
		if p.Match(subject) {
			return i, true
		}
	}

	return -1, false
}

// MatchAny reports whether at least one pattern matches subject.
func (s *Set) MatchAny(subject string) bool {
	_, ok := s.Match(subject)
	return ok
}

// Len returns the number of patterns in the set.
func (s *Set) Len() int {
	return len(s.patterns)
}

// Patterns returns a copy of the compiled patterns in set order.
func (s *Set) Patterns() []*Pattern {
	out := make([]*Pattern, len(s.patterns))
	copy(out, s.patterns)
	return out
}
