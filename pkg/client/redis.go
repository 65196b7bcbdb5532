package client

import (
	"Blackout/config"
	"Blackout/pkg/log"
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// NewRedisClient 只承载登出吊销和未读缓存，连不上时降级运行
func NewRedisClient(conf *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:        conf.Redis.Addr(),
		Password:    conf.Redis.Password,
		Username:    conf.Redis.Username,
		DB:          conf.Redis.Database,
		DialTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.L.Warn("redis unavailable, token revocation and unread cache disabled",
			zap.String("addr", conf.Redis.Addr()), zap.Error(err))
		return client
	}
	log.L.Info("redis client success", zap.String("addr", conf.Redis.Addr()))
	return client
}
