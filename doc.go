// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

/*
Package wildcard implements shell-style wildcard patterns ("*", "?", "[abc]",
"[!abc]", "[a-z]") as a small reusable grammar engine.

A pattern string is compiled once into an immutable token sequence and then
matched against any number of subject strings. Matching is plain string
matching: there is no filesystem expansion and no special treatment of path
separators.

Basic flow:
  - compile a pattern (`Parse` / `MustParse`)
  - test subjects against it (`Pattern.Match`)
  - reconstruct canonical pattern text (`Pattern.String`)

For ordered pattern lists, use `Set`:
  - parse many patterns from text (`ParseSet`, `ParseSetString`)
  - optionally load them from files (`LoadSetFile`, `LoadSetFiles`)
  - ask which pattern matched first (`Set.Match` / `Set.MatchAny`)

A compiled Pattern or Set is never mutated after construction, so concurrent
matching from multiple goroutines needs no synchronization.
*/
package wildcard
