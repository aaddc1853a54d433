package auth

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/rueidis"
)

// RedisStorage stores tokens as RedisJSON documents.
type RedisStorage struct {
	redis   rueidis.Client
	options storageOptions
}

const redisTokenPrefix = "auth:token:"

// NewRedisStorage creates a new RedisStorage.
func NewRedisStorage(redis rueidis.Client, opts ...StorageOption) *RedisStorage {
	return &RedisStorage{redis: redis, options: newStorageOptions(opts)}
}

func (s *RedisStorage) Get(ctx context.Context, token string) (TokenInfo, error) {
	info, err := s.Peek(ctx, token)
	if err != nil {
		return TokenInfo{}, err
	}

	expireCmd := s.redis.B().Expire().Key(redisTokenPrefix + token).Seconds(int64(s.options.tokenExpire.Seconds())).Build()
	if err := s.redis.Do(ctx, expireCmd).Error(); err != nil {
		return TokenInfo{}, fmt.Errorf("extend token: %w", err)
	}

	return info, nil
}

func (s *RedisStorage) Peek(ctx context.Context, token string) (TokenInfo, error) {
	reply := s.redis.Do(ctx, s.redis.B().JsonGet().Key(redisTokenPrefix+token).Path(".").Build())
	if err := reply.Error(); err != nil {
		if rueidis.IsRedisNil(err) {
			return TokenInfo{}, ErrNotFound
		}
		return TokenInfo{}, err
	}

	var tokenInfo TokenInfo
	if err := reply.DecodeJSON(&tokenInfo); err != nil {
		return TokenInfo{}, err
	}

	return tokenInfo, nil
}

func (s *RedisStorage) Create(ctx context.Context, info TokenInfo) (string, error) {
	token, err := GenerateToken()
	if err != nil {
		return "", err
	}

	tokenKey := redisTokenPrefix + token

	tokenInfoBytes, err := json.Marshal(info)
	if err != nil {
		return "", fmt.Errorf("marshal token info: %w", err)
	}

	replies := s.redis.DoMulti(ctx,
		s.redis.B().JsonSet().Key(tokenKey).Path(".").Value(rueidis.BinaryString(tokenInfoBytes)).Build(),
		s.redis.B().Expire().Key(tokenKey).Seconds(int64(s.options.tokenExpire.Seconds())).Build(),
	)
	for _, reply := range replies {
		if err := reply.Error(); err != nil {
			return "", err
		}
	}

	return token, nil
}

func (s *RedisStorage) Delete(ctx context.Context, token string) error {
	deleted, err := s.redis.Do(ctx, s.redis.B().Del().Key(redisTokenPrefix+token).Build()).AsInt64()
	if err != nil {
		return err
	}
	if deleted == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *RedisStorage) DeleteByAccount(ctx context.Context, accountID int) error {
	var cursor uint64 = 0

	for {
		cursorReply := s.redis.Do(ctx, s.redis.B().Scan().Cursor(cursor).Match(redisTokenPrefix+"*").Build())
		if cursorReply.Error() != nil {
			return fmt.Errorf("list tokens: %w", cursorReply.Error())
		}

		scanEntry, err := cursorReply.AsScanEntry()
		if err != nil {
			return fmt.Errorf("parse token keys: %w", err)
		}

		for _, element := range scanEntry.Elements {
			elementReply := s.redis.Do(ctx, s.redis.B().JsonGet().Key(element).Path(".account_id").Build())
			if err := elementReply.Error(); err != nil {
				if rueidis.IsRedisNil(err) {
					// expired between SCAN and GET
					continue
				}
				return fmt.Errorf("get token info: %w", err)
			}

			var elementAccountID int
			if err := elementReply.DecodeJSON(&elementAccountID); err != nil {
				return fmt.Errorf("decode account id: %w", err)
			}

			if elementAccountID != accountID {
				continue
			}

			if err := s.redis.Do(ctx, s.redis.B().Del().Key(element).Build()).Error(); err != nil {
				return fmt.Errorf("delete token: %w", err)
			}
		}

		if scanEntry.Cursor == 0 {
			break
		}

		cursor = scanEntry.Cursor
	}

	return nil
}

var _ Storage = (*RedisStorage)(nil)
