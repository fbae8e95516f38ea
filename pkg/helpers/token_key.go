package helpers

import (
	"crypto/rand"
	"encoding/hex"
)

// TokenKeyLen is the length of a generated auth token key.
const TokenKeyLen = 40

// GenTokenKey returns a random 40-character lowercase hex string.
func GenTokenKey() (string, error) {
	b := make([]byte, TokenKeyLen/2)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}
