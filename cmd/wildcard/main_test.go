// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/woozymasta/wildcard"
)

// execute runs the root command with the given stdin and args, resetting
// flag state shared between invocations.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	renderTokens = false
	matchInvert = false
	matchFromSet = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRenderCanonical(t *testing.T) {
	out, err := execute(t, "", "render", "a*b?c")
	require.NoError(t, err)
	assert.Equal(t, "a*b?c\n", out)
}

func TestRenderTokens(t *testing.T) {
	out, err := execute(t, "", "render", "--tokens", "x[!a-z]*")
	require.NoError(t, err)

	assert.Contains(t, out, `literal "x"`)
	assert.Contains(t, out, "class negated range='a'-'z'")
	assert.Contains(t, out, "star")
}

func TestRenderMalformed(t *testing.T) {
	_, err := execute(t, "", "render", "[abc")
	assert.ErrorIs(t, err, wildcard.ErrIncomplete)
}

func TestMatchArgs(t *testing.T) {
	out, err := execute(t, "", "match", "*.log", "access.log", "errors.txt", "debug.log")
	require.NoError(t, err)
	assert.Equal(t, "access.log\ndebug.log\n", out)
}

func TestMatchStdin(t *testing.T) {
	out, err := execute(t, "alpha\nbeta\r\ngamma\n", "match", "*a")
	require.NoError(t, err)
	assert.Equal(t, "alpha\nbeta\ngamma\n", out)

	out, err = execute(t, "alpha\nbeta\n", "match", "a*")
	require.NoError(t, err)
	assert.Equal(t, "alpha\n", out)
}

func TestMatchInvert(t *testing.T) {
	out, err := execute(t, "", "match", "--invert", "*.log", "access.log", "errors.txt")
	require.NoError(t, err)
	assert.Equal(t, "errors.txt\n", out)
}

func TestMatchSetFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "patterns.txt")
	require.NoError(t, os.WriteFile(path, []byte("# junk\n*.tmp\n*.bak\n"), 0o600))

	out, err := execute(t, "", "match", "--set", path, "a.tmp", "b.txt", "c.bak")
	require.NoError(t, err)
	assert.Equal(t, "a.tmp\nc.bak\n", out)
}

func TestMatchMalformedPattern(t *testing.T) {
	_, err := execute(t, "", "match", "[z-a]", "subject")
	assert.ErrorIs(t, err, wildcard.ErrInvalidCharRange)
}
