package crypto

import "crypto/subtle"

// ConstantTimeCompareBytes compares two byte slices in constant time.
// Returns true if they are equal.
func ConstantTimeCompareBytes(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
