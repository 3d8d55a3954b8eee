// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package codes

import (
	"crypto/rand"
	"fmt"
)

// Length is the number of characters in a generated session code.
const Length = 6

// Uppercase letters and digits only: codes get read out loud and typed on
// phones, so no lookalike-prone mixed case.
const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Generate creates a random session code like "7KQ2FA".
// Uniqueness is enforced by the session table's code constraint, not here;
// a collision simply joins the existing session.
func Generate() (string, error) {
	b := make([]byte, Length)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate session code: %w", err)
	}
	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}
	return string(b), nil
}

// Valid reports whether s could have been produced by Generate.
func Valid(s string) bool {
	if len(s) != Length {
		return false
	}
	for i := 0; i < len(s); i++ {
		found := false
		for j := 0; j < len(alphabet); j++ {
			if s[i] == alphabet[j] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
