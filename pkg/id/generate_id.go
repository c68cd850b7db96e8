// Package id owns the request-id alphabet: it generates the ids the server
// stamps on responses and recognizes the shapes clients may submit.
package id

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

var (
	reUUID  = regexp.MustCompile(`^[a-f0-9]{8}-[a-f0-9]{4}-[1-5][a-f0-9]{3}-[89ab][a-f0-9]{3}-[a-f0-9]{12}$`)
	reHex32 = regexp.MustCompile(`^[a-f0-9]{32}$`)
)

// Valid reports whether s is an accepted request id: a lowercase UUID
// (versions 1-5) or 32-char lowercase hex, the shape NewID32 produces.
func Valid(s string) bool {
	return reHex32.MatchString(s) || reUUID.MatchString(s)
}
