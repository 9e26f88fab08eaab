// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package wildcard

import (
	"strings"
	"unicode/utf8"
)

// Match reports whether subject satisfies the pattern as a whole.
//
// The matcher walks tokens and subject with two cursors and keeps one
// backtracking checkpoint at the most recent star: on a later mismatch the
// star swallows one more character and matching retries after it. Each star
// retries at most once per subject position, so the worst case is
// O(len(subject) * len(tokens)) with no exponential blowup.
//
// Match never mutates the pattern and is safe for concurrent use.
func (p *Pattern) Match(subject string) bool {
	pi, si := 0, 0

	// Checkpoint of the most recent unresolved star: token index after it
	// and the subject offset where its next retry resumes.
	starPi, starSi := -1, 0

	for {
		if pi < len(p.tokens) {
			t := &p.tokens[pi]

			switch t.Kind {
			case TokenStar:
				// Greedy zero-width first try; the checkpoint covers retries.
				starPi, starSi = pi+1, si
				pi++
				continue

			case TokenLiteral:
				if strings.HasPrefix(subject[si:], t.Text) {
					si += len(t.Text)
					pi++
					continue
				}

			case TokenAnyChar:
				if si < len(subject) {
					_, size := utf8.DecodeRuneInString(subject[si:])
					si += size
					pi++
					continue
				}

			case TokenClass:
				if si < len(subject) {
					r, size := utf8.DecodeRuneInString(subject[si:])
					if classContains(t.Choices, t.Negated, r) {
						si += size
						pi++
						continue
					}
				}
			}
		} else if si == len(subject) {
			return true
		}

		// Mismatch or trailing subject: feed one more character to the last
		// star and retry, or fail when no star can grow.
		if starPi < 0 || starSi >= len(subject) {
			return false
		}

		_, size := utf8.DecodeRuneInString(subject[starSi:])
		starSi += size
		si = starSi
		pi = starPi
	}
}

// Match compiles pattern text and tests subject against it in one call.
func Match(pattern, subject string) (bool, error) {
	p, err := Parse(pattern)
	if err != nil {
		return false, err
	}

	return p.Match(subject), nil
}

// classContains tests one character against bracket expression choices.
func classContains(choices []Choice, negated bool, r rune) bool {
	matched := false
	for _, c := range choices {
		if c.contains(r) {
			matched = true
			break
		}
	}

	if negated {
		return !matched
	}

	return matched
}
