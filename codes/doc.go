// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package codes generates short shareable session codes.

Codes are 6 characters drawn from uppercase letters and digits, produced
with crypto/rand:

	code, err := codes.Generate() // "7KQ2FA"

Generation does not check the database. Uniqueness comes from the unique
constraint on session.code: a generated (or user-supplied) code that
already exists joins that session instead of creating a new one.
*/
package codes
