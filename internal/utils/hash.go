package utils

import "crypto/hmac"

// SecureCompare reports whether two strings are equal in constant time.
// Used to compare shared secrets (e.g. the bot API key header) without
// leaking the position of the first mismatching byte.
func SecureCompare(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
