package auth

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// tokenEntropy is the number of random bytes behind a token. 48 bytes
// encode to 64 URL-safe characters without padding.
const tokenEntropy = 48

// GenerateToken returns an opaque bearer token.
func GenerateToken() (string, error) {
	buf := make([]byte, tokenEntropy)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
