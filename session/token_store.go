package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenStore keeps issued bearer tokens in Redis. Each token maps to the
// owning user and expires after the configured TTL; a per-user set allows
// revoking every token a user holds at once.
type TokenStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewTokenStore(rdb *redis.Client, ttl time.Duration) *TokenStore {
	return &TokenStore{rdb: rdb, ttl: ttl}
}

type Token struct {
	UserID    uint  `json:"uid"`
	IssuedAt  int64 `json:"iat"`
	ExpiresAt int64 `json:"exp"`
}

func tokenKey(t string) string   { return fmt.Sprintf("auth:token:%s", t) }
func userSetKey(uid uint) string { return fmt.Sprintf("auth:user_tokens:%d", uid) }

func (s *TokenStore) Create(ctx context.Context, token string, userID uint) error {
	now := time.Now()
	b, _ := json.Marshal(Token{
		UserID:    userID,
		IssuedAt:  now.Unix(),
		ExpiresAt: now.Add(s.ttl).Unix(),
	})
	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, tokenKey(token), b, s.ttl)
	pipe.SAdd(ctx, userSetKey(userID), token)
	pipe.Expire(ctx, userSetKey(userID), s.ttl)
	_, err := pipe.Exec(ctx)
	return err
}

func (s *TokenStore) Get(ctx context.Context, token string) (*Token, error) {
	b, err := s.rdb.Get(ctx, tokenKey(token)).Bytes()
	if err != nil {
		return nil, err
	}
	var t Token
	if err := json.Unmarshal(b, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TokenStore) Delete(ctx context.Context, token string) error {
	t, _ := s.Get(ctx, token)
	pipe := s.rdb.TxPipeline()
	pipe.Del(ctx, tokenKey(token))
	if t != nil {
		pipe.SRem(ctx, userSetKey(t.UserID), token)
	}
	_, err := pipe.Exec(ctx)
	return err
}

// RevokeAllForUser drops every live token the user holds.
func (s *TokenStore) RevokeAllForUser(ctx context.Context, userID uint) error {
	tokens, err := s.rdb.SMembers(ctx, userSetKey(userID)).Result()
	if err != nil && err != redis.Nil {
		return err
	}

	pipe := s.rdb.TxPipeline()
	for _, t := range tokens {
		pipe.Del(ctx, tokenKey(t))
	}
	pipe.Del(ctx, userSetKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}
