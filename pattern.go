// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package wildcard

import "strings"

// Pattern is a compiled, immutable wildcard pattern.
//
// A Pattern is created by Parse and only read afterwards, so one compiled
// value can be matched against many subjects from many goroutines.
type Pattern struct {
	source string
	tokens []Token
}

// Source returns the original pattern text given to Parse.
func (p *Pattern) Source() string {
	return p.source
}

// Tokens returns a copy of the parsed token sequence in pattern order.
func (p *Pattern) Tokens() []Token {
	out := make([]Token, len(p.tokens))
	copy(out, p.tokens)
	return out
}

// Equal reports structural equality of two patterns.
//
// Equality is defined over the token sequences, not the source text, so two
// patterns equal under Equal always match the same subjects.
func (p *Pattern) Equal(other *Pattern) bool {
	if p == nil || other == nil {
		return p == other
	}

	if len(p.tokens) != len(other.tokens) {
		return false
	}

	for i := range p.tokens {
		if !p.tokens[i].Equal(other.tokens[i]) {
			return false
		}
	}

	return true
}

// String renders the pattern back to canonical text.
//
// Literal tokens emit verbatim, "*" and "?" emit themselves, and a class
// emits "[", "!" when negated, each choice (members verbatim, ranges as
// "lo-hi"), then "]". Rendered text re-parses to an equal Pattern.
func (p *Pattern) String() string {
	var b strings.Builder
	b.Grow(len(p.source))

	for i := range p.tokens {
		appendToken(&b, &p.tokens[i])
	}

	return b.String()
}

// appendToken renders one token into the builder.
func appendToken(b *strings.Builder, t *Token) {
	switch t.Kind {
	case TokenLiteral:
		b.WriteString(t.Text)
	case TokenStar:
		b.WriteByte('*')
	case TokenAnyChar:
		b.WriteByte('?')
	case TokenClass:
		b.WriteByte('[')
		if t.Negated {
			b.WriteByte('!')
		}

		for _, c := range t.Choices {
			if c.Members != "" {
				b.WriteString(c.Members)
				continue
			}

			b.WriteRune(c.Lo)
			b.WriteByte('-')
			b.WriteRune(c.Hi)
		}

		b.WriteByte(']')
	}
}
