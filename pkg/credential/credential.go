// Package credential isolates credential verification behind a single
// function so the comparison can move to a salted hash without touching any
// call site.
package credential

import "crypto/subtle"

// Verify reports whether the supplied password matches the stored one.
// Passwords are currently stored as-is, so this is an equality check; the
// constant-time comparison keeps the seam timing-safe for when hashes land.
func Verify(stored, supplied string) bool {
	if stored == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(supplied)) == 1
}
