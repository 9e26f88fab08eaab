// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/wildcard

package wildcard

import (
	"errors"
	"fmt"
)

// Sentinel errors for wildcard parsing.
var (
	// ErrIncomplete indicates pattern text ended before a bracket expression closed.
	ErrIncomplete = errors.New("incomplete pattern")
	// ErrInvalidCharRange indicates a bracket range with inverted endpoints.
	ErrInvalidCharRange = errors.New("invalid character range")
)

// CharRangeError reports a bracket range whose low endpoint sorts after its
// high endpoint by code point. It matches ErrInvalidCharRange under errors.Is.
type CharRangeError struct {
	// Lo is the character before "-".
	Lo rune
	// Hi is the character after "-".
	Hi rune
}

// Error implements the error interface.
func (e *CharRangeError) Error() string {
	return fmt.Sprintf("invalid character range %q-%q", e.Lo, e.Hi)
}

// Unwrap links the error to the ErrInvalidCharRange sentinel.
func (e *CharRangeError) Unwrap() error {
	return ErrInvalidCharRange
}
