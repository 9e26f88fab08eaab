// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/woozymasta/wildcard"
)

var renderCmd = &cobra.Command{
	Use:   "render <pattern>",
	Short: "Parse a pattern and print its canonical text",
	Long: `Parse wildcard pattern text and print the canonical rendering of the
parsed pattern. Malformed patterns are reported as errors.

Example:
  wildcard render 'a*b?c'
  wildcard render --tokens '[!a-z0-9]x'`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

var renderTokens bool

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().BoolVar(&renderTokens, "tokens", false, "Print the parsed token structure instead of canonical text")
}

func runRender(cmd *cobra.Command, args []string) error {
	p, err := wildcard.Parse(args[0])
	if err != nil {
		return err
	}

	if !renderTokens {
		cmd.Println(p.String())
		return nil
	}

	for i, tok := range p.Tokens() {
		cmd.Println(formatToken(i, tok))
	}

	return nil
}

// formatToken renders one token for the --tokens dump.
func formatToken(index int, tok wildcard.Token) string {
	switch tok.Kind {
	case wildcard.TokenLiteral:
		return fmt.Sprintf("%d: literal %q", index, tok.Text)
	case wildcard.TokenStar:
		return fmt.Sprintf("%d: star", index)
	case wildcard.TokenAnyChar:
		return fmt.Sprintf("%d: any-char", index)
	case wildcard.TokenClass:
		out := fmt.Sprintf("%d: class", index)
		if tok.Negated {
			out += " negated"
		}

		for _, c := range tok.Choices {
			if c.Members != "" {
				out += fmt.Sprintf(" members=%q", c.Members)
				continue
			}

			out += fmt.Sprintf(" range=%q-%q", c.Lo, c.Hi)
		}

		return out
	default:
		return fmt.Sprintf("%d: unknown", index)
	}
}
