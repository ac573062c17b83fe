package utils

import (
	"crypto/rand"
	"encoding/hex"
)

// NewSessionToken returns a hex-encoded opaque token of nBytes random bytes.
func NewSessionToken(nBytes int) (string, error) {
	if nBytes <= 0 {
		nBytes = 32 // 256 bits by default
	}
	b := make([]byte, nBytes)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
