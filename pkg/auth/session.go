package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrInvalidSession = errors.New("invalid session")

type Session struct {
	AccountID int64
	Role      string
}

// Resolver maps an opaque bearer token to the session it was issued for.
type Resolver interface {
	Issue(ctx context.Context, accountID int64, role string) (string, error)
	Resolve(ctx context.Context, token string) (*Session, error)
	Revoke(ctx context.Context, token string) error
}

const sessionPrefix = "session"

// RedisStore keeps opaque random tokens in redis with a TTL, so sessions can
// be revoked before they expire.
type RedisStore struct {
	rdb      redis.Cmdable
	ttl      time.Duration
	newToken func() (string, error)
}

func NewRedisStore(rdb redis.Cmdable, ttl time.Duration) *RedisStore {
	return &RedisStore{
		rdb:      rdb,
		ttl:      ttl,
		newToken: randomToken,
	}
}

func randomToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

func sessionKey(token string) string {
	return fmt.Sprintf("%s:%s", sessionPrefix, token)
}

func (s *RedisStore) Issue(ctx context.Context, accountID int64, role string) (string, error) {
	token, err := s.newToken()
	if err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	value := strconv.FormatInt(accountID, 10) + ":" + role
	if err := s.rdb.Set(ctx, sessionKey(token), value, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}
	value, err := s.rdb.Get(ctx, sessionKey(token)).Result()
	if errors.Is(err, redis.Nil) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	id, role, ok := strings.Cut(value, ":")
	if !ok {
		return nil, ErrInvalidSession
	}
	accountID, err := strconv.ParseInt(id, 10, 64)
	if err != nil || accountID == 0 {
		return nil, ErrInvalidSession
	}
	return &Session{AccountID: accountID, Role: role}, nil
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Del(ctx, sessionKey(token)).Err(); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}
