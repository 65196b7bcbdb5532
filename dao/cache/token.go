package cache

import (
	"Blackout/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// TokenStorage 已登出 token 的黑名单，按 jti 记录
type TokenStorage struct {
	redis *redis.Client
}

func NewTokenStorage(rds *redis.Client) *TokenStorage {
	return &TokenStorage{rds}
}

// Revoke 吊销 token，ttl 取 token 剩余有效期
func (t *TokenStorage) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if jti == "" || ttl <= 0 {
		return nil
	}
	return t.redis.Set(ctx, t.name(jti), 1, ttl).Err()
}

// IsRevoked Redis 不可用时放行
func (t *TokenStorage) IsRevoked(ctx context.Context, jti string) bool {
	if jti == "" {
		return false
	}
	n, err := t.redis.Exists(ctx, t.name(jti)).Result()
	if err != nil {
		log.L.Warn("check revoked token", zap.Error(err))
		return false
	}
	return n > 0
}

// jwt:revoked:<jti>
func (t *TokenStorage) name(jti string) string {
	return fmt.Sprintf("jwt:revoked:%s", jti)
}
