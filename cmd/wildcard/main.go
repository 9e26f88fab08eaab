// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "wildcard",
	Short: "Shell-style wildcard pattern tool",
	Long: `wildcard parses shell-style wildcard patterns ("*", "?", "[abc]",
"[!abc]", "[a-z]") and matches them against subject strings.

Example:
  wildcard render 'blarg[!!xy0-9a-z.[]/*.JP?'
  wildcard match '*.log' access.log errors.txt
  printf 'a\nb\n' | wildcard match '[ab]'`,
	SilenceUsage: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
