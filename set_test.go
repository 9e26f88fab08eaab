// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package wildcard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSet(t *testing.T) {
	t.Parallel()

	set, err := ParseSetString(`
# temp files
*.tmp
cache-??
[0-9]*.bak
`)
	require.NoError(t, err)
	require.Equal(t, 3, set.Len())

	idx, ok := set.Match("report.tmp")
	assert.True(t, ok)
	assert.Equal(t, 0, idx)

	idx, ok = set.Match("cache-01")
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	idx, ok = set.Match("7-old.bak")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	idx, ok = set.Match("report.txt")
	assert.False(t, ok)
	assert.Equal(t, -1, idx)

	assert.True(t, set.MatchAny("report.tmp"))
	assert.False(t, set.MatchAny("report.txt"))
}

func TestParseSetFirstMatchWins(t *testing.T) {
	t.Parallel()

	set, err := ParseSetString("*.log\n*\n")
	require.NoError(t, err)

	idx, ok := set.Match("a.log")
	require.True(t, ok)
	assert.Equal(t, 0, idx, "first matching pattern in input order wins")

	idx, ok = set.Match("anything else")
	require.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestParseSetRejectsMalformedLine(t *testing.T) {
	t.Parallel()

	set, err := ParseSetString("*.ok\n[z-a]\n*.never\n")
	require.Nil(t, set)
	require.ErrorIs(t, err, ErrInvalidCharRange)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseSetSkipsBlankAndComments(t *testing.T) {
	t.Parallel()

	set, err := ParseSetString("\r\n# only comments\n\n#\n")
	require.NoError(t, err)
	assert.Equal(t, 0, set.Len())
	assert.False(t, set.MatchAny("anything"))
}

func TestNewSetAndPatterns(t *testing.T) {
	t.Parallel()

	a := MustParse("*.a")
	b := MustParse("*.b")

	set := NewSet(a, b)
	require.Equal(t, 2, set.Len())

	got := set.Patterns()
	require.Len(t, got, 2)
	assert.True(t, got[0].Equal(a))
	assert.True(t, got[1].Equal(b))

	got[0] = b
	idx, ok := set.Match("x.a")
	assert.True(t, ok, "mutating the returned slice must not affect the set")
	assert.Equal(t, 0, idx)
}

func TestMergeSets(t *testing.T) {
	t.Parallel()

	first, err := ParseSetString("*.a\n*.b\n")
	require.NoError(t, err)

	second, err := ParseSetString("*.c\n")
	require.NoError(t, err)

	merged := MergeSets(first, second, NewSet())
	require.Equal(t, 3, merged.Len())

	idx, ok := merged.Match("x.c")
	require.True(t, ok)
	assert.Equal(t, 2, idx, "merge preserves input order")
}
