// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package wildcard

import (
	"fmt"
	"unicode/utf8"
)

// Parse compiles wildcard pattern text into an immutable Pattern.
//
// Grammar:
//   - "*" matches any run of characters, including empty
//   - "?" matches exactly one character
//   - "[abc]" matches one character from the set
//   - "[a-z]" matches one character from the inclusive code-point range
//   - "[!...]" negates the bracket expression
//   - every other character matches itself
//
// A "]" right after "[" or "[!" is a literal member, so "[]a]" is a class of
// "]" and "a". A "-" that is the first or last class character binds as a
// range endpoint, it has no literal fallback.
//
// Errors match ErrIncomplete for truncated bracket expressions and
// ErrInvalidCharRange (as *CharRangeError) for inverted range endpoints.
// A malformed pattern is rejected as a whole; there is no partial result.
func Parse(source string) (*Pattern, error) {
	p := parser{source: source, start: -1}

	// prev tracks the last consumed character and its offset, including
	// characters consumed by lookahead (class opener, range high endpoint).
	var prev rune
	prevAt := -1

	for i := 0; i < len(source); {
		r, size := utf8.DecodeRuneInString(source[i:])
		next := i + size

		if p.inClass {
			switch r {
			case ']':
				if len(p.choices) == 0 && p.start < 0 {
					// "[]" and "[!]" openers keep "]" as a literal member.
					p.start = i
					break
				}

				p.flushMembers(i)
				p.closeClass()

			case '-':
				// The range low endpoint is the previous class character;
				// any capture before it becomes a member-set choice.
				p.flushMembers(prevAt)

				if next >= len(source) {
					return nil, fmt.Errorf("%w: range misses high endpoint in %q", ErrIncomplete, source)
				}

				hi, hiSize := utf8.DecodeRuneInString(source[next:])
				if hi < prev {
					return nil, &CharRangeError{Lo: prev, Hi: hi}
				}

				p.choices = append(p.choices, Choice{Lo: prev, Hi: hi})
				prev, prevAt = hi, next
				i = next + hiSize
				continue

			default:
				if p.start < 0 {
					p.start = i
				}
			}

			prev, prevAt = r, i
			i = next
			continue
		}

		switch r {
		case '*':
			p.flushLiteral(i)
			p.tokens = append(p.tokens, Token{Kind: TokenStar})

		case '?':
			p.flushLiteral(i)
			p.tokens = append(p.tokens, Token{Kind: TokenAnyChar})

		case '[':
			p.flushLiteral(i)

			if next >= len(source) {
				return nil, fmt.Errorf("%w: %q ends at bracket expression start", ErrIncomplete, source)
			}

			p.inClass = true

			// The first class character is consumed here: "!" arms negation,
			// anything else (including "]") starts the member capture.
			first, firstSize := utf8.DecodeRuneInString(source[next:])
			if first == '!' {
				p.negate = true
			} else {
				p.start = next
			}

			prev, prevAt = first, next
			i = next + firstSize
			continue

		default:
			if p.start < 0 {
				p.start = i
			}
		}

		prev, prevAt = r, i
		i = next
	}

	if p.inClass {
		return nil, fmt.Errorf("%w: unterminated bracket expression in %q", ErrIncomplete, source)
	}

	p.flushLiteral(len(source))

	return &Pattern{source: source, tokens: p.tokens}, nil
}

// MustParse is like Parse but panics on malformed pattern text.
func MustParse(source string) *Pattern {
	p, err := Parse(source)
	if err != nil {
		panic(fmt.Sprintf("wildcard: Parse(%q): %v", source, err))
	}

	return p
}

// parser holds transient state of one Parse run.
type parser struct {
	// source is the pattern text being scanned.
	source string
	// tokens accumulates emitted pattern tokens.
	tokens []Token
	// choices accumulates alternatives of the open bracket expression.
	choices []Choice
	// start is the active capture start offset, -1 when no capture is open.
	start int
	// negate is armed by "[!" and consumed when the class closes.
	negate bool
	// inClass reports whether the scan is inside a bracket expression.
	inClass bool
}

// flushLiteral emits the pending capture as a literal token if non-empty.
func (p *parser) flushLiteral(end int) {
	if p.start >= 0 && end > p.start {
		p.tokens = append(p.tokens, Token{Kind: TokenLiteral, Text: p.source[p.start:end]})
	}

	p.start = -1
}

// flushMembers emits the pending capture as a member-set choice if non-empty.
func (p *parser) flushMembers(end int) {
	if p.start >= 0 && end > p.start {
		p.choices = append(p.choices, Choice{Members: p.source[p.start:end]})
	}

	p.start = -1
}

// closeClass emits the open bracket expression as a class token.
func (p *parser) closeClass() {
	p.tokens = append(p.tokens, Token{
		Kind:    TokenClass,
		Choices: p.choices,
		Negated: p.negate,
	})

	p.choices = nil
	p.negate = false
	p.inClass = false
}
