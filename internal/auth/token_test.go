package auth

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokenPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{64}$`)

func TestGenerateToken(t *testing.T) {
	token, err := GenerateToken()
	require.NoError(t, err)

	assert.Regexp(t, tokenPattern, token)
}

func TestGenerateTokenUnique(t *testing.T) {
	const n = 5000

	seen := make(map[string]struct{}, n)
	for range n {
		token, err := GenerateToken()
		require.NoError(t, err)

		_, dup := seen[token]
		require.False(t, dup, "token %q generated twice", token)
		seen[token] = struct{}{}
	}
}
