package auth

import (
	"context"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// DefaultMemoryCapacity bounds the tokens a MemoryStorage keeps.
const DefaultMemoryCapacity = 10000

// MemoryStorage keeps tokens in process. Tokens are lost on restart, so it
// fits single-instance deployments and tests.
type MemoryStorage struct {
	tokens *expirable.LRU[string, TokenInfo]
}

func NewMemoryStorage(opts ...StorageOption) *MemoryStorage {
	options := newStorageOptions(opts)

	return &MemoryStorage{
		tokens: expirable.NewLRU[string, TokenInfo](DefaultMemoryCapacity, nil, options.tokenExpire),
	}
}

// Get re-adds the token, which restarts its TTL.
func (s *MemoryStorage) Get(ctx context.Context, token string) (TokenInfo, error) {
	info, ok := s.tokens.Get(token)
	if !ok {
		return TokenInfo{}, ErrNotFound
	}

	s.tokens.Add(token, info)
	return info, nil
}

func (s *MemoryStorage) Peek(ctx context.Context, token string) (TokenInfo, error) {
	info, ok := s.tokens.Peek(token)
	if !ok {
		return TokenInfo{}, ErrNotFound
	}

	return info, nil
}

func (s *MemoryStorage) Create(ctx context.Context, info TokenInfo) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}

	s.tokens.Add(token, info)
	return token, nil
}

func (s *MemoryStorage) Delete(ctx context.Context, token string) error {
	if !s.tokens.Remove(token) {
		return ErrNotFound
	}

	return nil
}

func (s *MemoryStorage) DeleteByAccount(ctx context.Context, accountID int) error {
	for _, token := range s.tokens.Keys() {
		info, ok := s.tokens.Peek(token)
		if ok && info.AccountID == accountID {
			s.tokens.Remove(token)
		}
	}

	return nil
}

var _ Storage = (*MemoryStorage)(nil)
