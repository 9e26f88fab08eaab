// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package wildcard

import "strings"

// TokenKind discriminates Token variants.
type TokenKind uint8

const (
	// TokenUnknown is unset/invalid token kind placeholder.
	TokenUnknown TokenKind = iota
	// TokenLiteral matches a run of ordinary characters verbatim.
	TokenLiteral
	// TokenStar matches any run of characters, including the empty run.
	TokenStar
	// TokenAnyChar matches exactly one arbitrary character.
	TokenAnyChar
	// TokenClass matches exactly one character against a bracket expression.
	TokenClass
)

// Token is one grammar production of a parsed pattern.
//
// Text is set for TokenLiteral only and is always non-empty; the parser
// coalesces adjacent literal characters, so two TokenLiteral tokens are never
// emitted back to back. Choices and Negated are meaningful for TokenClass
// only, and a class produced by a bracket expression always carries at least
// one choice.
type Token struct {
	// Text is the literal run for TokenLiteral tokens.
	Text string `json:"text,omitempty" yaml:"text,omitempty"`
	// Choices holds bracket expression alternatives for TokenClass tokens.
	Choices []Choice `json:"choices,omitempty" yaml:"choices,omitempty"`
	// Kind is the token variant.
	Kind TokenKind `json:"kind" yaml:"kind"`
	// Negated inverts class membership ("[!...]").
	Negated bool `json:"negated,omitempty" yaml:"negated,omitempty"`
}

// Choice is one alternative of a bracket expression: either a set of member
// characters or an inclusive code-point range. Non-empty Members means a
// member set; otherwise Lo and Hi bound a range with Lo <= Hi, enforced at
// parse time.
type Choice struct {
	// Members holds literal member characters for a member-set choice.
	Members string `json:"members,omitempty" yaml:"members,omitempty"`
	// Lo is the inclusive range low endpoint for a range choice.
	Lo rune `json:"lo,omitempty" yaml:"lo,omitempty"`
	// Hi is the inclusive range high endpoint for a range choice.
	Hi rune `json:"hi,omitempty" yaml:"hi,omitempty"`
}

// Equal reports structural equality of two tokens.
func (t Token) Equal(other Token) bool {
	if t.Kind != other.Kind || t.Text != other.Text || t.Negated != other.Negated {
		return false
	}

	if len(t.Choices) != len(other.Choices) {
		return false
	}

	for i := range t.Choices {
		if t.Choices[i] != other.Choices[i] {
			return false
		}
	}

	return true
}

// contains reports whether r satisfies the choice.
func (c Choice) contains(r rune) bool {
	if c.Members != "" {
		return strings.ContainsRune(c.Members, r)
	}

	return r >= c.Lo && r <= c.Hi
}
