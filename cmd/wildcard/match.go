// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/woozymasta/wildcard"
)

var matchCmd = &cobra.Command{
	Use:   "match <pattern> [subject...]",
	Short: "Print subjects matching a pattern",
	Long: `Match subjects against a wildcard pattern and print the ones that
match. Subjects are read from the command line, or from stdin (one per line)
when none are given.

With --set, <pattern> names a pattern-list file (one pattern per line, blank
lines and "#" comments ignored) and a subject is printed when any pattern in
the file matches it.

Example:
  wildcard match '*.log' access.log errors.txt
  ls | wildcard match 'img-[0-9][0-9]?.png'
  wildcard match --set patterns.txt candidate-a candidate-b`,
	Args: cobra.MinimumNArgs(1),
	RunE: runMatch,
}

var (
	matchInvert  bool
	matchFromSet bool
)

func init() {
	rootCmd.AddCommand(matchCmd)

	matchCmd.Flags().BoolVar(&matchInvert, "invert", false, "Print subjects that do not match")
	matchCmd.Flags().BoolVar(&matchFromSet, "set", false, "Treat <pattern> as a pattern-list file path")
}

func runMatch(cmd *cobra.Command, args []string) error {
	match, err := buildMatchFunc(args[0])
	if err != nil {
		return err
	}

	if len(args) > 1 {
		for _, subject := range args[1:] {
			if match(subject) != matchInvert {
				cmd.Println(subject)
			}
		}

		return nil
	}

	s := bufio.NewScanner(cmd.InOrStdin())
	for s.Scan() {
		subject := strings.TrimRight(s.Text(), "\r")
		if match(subject) != matchInvert {
			cmd.Println(subject)
		}
	}

	if err := s.Err(); err != nil {
		return fmt.Errorf("read subjects: %w", err)
	}

	return nil
}

// buildMatchFunc compiles the pattern argument into a subject predicate.
func buildMatchFunc(arg string) (func(string) bool, error) {
	if matchFromSet {
		set, err := wildcard.LoadSetFile(arg)
		if err != nil {
			return nil, err
		}

		return set.MatchAny, nil
	}

	p, err := wildcard.Parse(arg)
	if err != nil {
		return nil, err
	}

	return p.Match, nil
}
