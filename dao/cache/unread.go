package cache

import (
	"Blackout/pkg/log"
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 未读消息过期时间 - 14天
const unreadExpireAt = 14 * 24 * time.Hour

// 占位字段，区分“已缓存但全部已读”和“未缓存”
const unreadLoaded = "_"

// 版本号未变才写入，重建期间有写入时放弃本次结果
// KEYS[1] hash  KEYS[2] 版本号  ARGV[1] 读库前的版本  ARGV[2] 过期秒数  ARGV[3..] field/value
var setIfVersion = redis.NewScript(`
local ver = redis.call("GET", KEYS[2]) or "0"
if ver ~= ARGV[1] then
	return 0
end
redis.call("DEL", KEYS[1])
redis.call("HSET", KEYS[1], unpack(ARGV, 3))
redis.call("EXPIRE", KEYS[1], ARGV[2])
return 1
`)

// 写入方先递增版本再删缓存
var invalidate = redis.NewScript(`
redis.call("INCR", KEYS[2])
redis.call("EXPIRE", KEYS[2], ARGV[1])
redis.call("DEL", KEYS[1])
return 1
`)

// UnreadStorage 收件人维度的未读数，hash 字段为对方用户ID
type UnreadStorage struct {
	redis *redis.Client
}

func NewUnreadStorage(rds *redis.Client) *UnreadStorage {
	return &UnreadStorage{rds}
}

// Version 读库前取版本号，重建时原样传给 Set
func (u *UnreadStorage) Version(ctx context.Context, uid uint64) (string, error) {
	ver, err := u.redis.Get(ctx, u.versionName(uid)).Result()
	if errors.Is(err, redis.Nil) {
		return "0", nil
	}
	return ver, err
}

// Get 获取全部会话未读数，ok=false 表示缓存未建立
func (u *UnreadStorage) Get(ctx context.Context, uid uint64) (map[uint64]int, bool) {
	vals, err := u.redis.HGetAll(ctx, u.name(uid)).Result()
	if err != nil || len(vals) == 0 {
		return nil, false
	}

	res := make(map[uint64]int, len(vals))
	for field, val := range vals {
		if field == unreadLoaded {
			continue
		}
		peer, err := strconv.ParseUint(field, 10, 64)
		if err != nil {
			continue
		}
		n, err := strconv.Atoi(val)
		if err != nil || n <= 0 {
			continue
		}
		res[peer] = n
	}
	return res, true
}

// Set 用数据库统计结果重建缓存，版本已变时返回 false
func (u *UnreadStorage) Set(ctx context.Context, uid uint64, version string, counts map[uint64]int) bool {
	args := make([]any, 0, 4+2*len(counts))
	args = append(args, version, int(unreadExpireAt.Seconds()), unreadLoaded, 0)
	for peer, n := range counts {
		args = append(args, strconv.FormatUint(peer, 10), n)
	}

	ok, err := setIfVersion.Run(ctx, u.redis, []string{u.name(uid), u.versionName(uid)}, args...).Int()
	if err != nil {
		log.L.Warn("set unread", zap.Uint64("uid", uid), zap.Error(err))
		return false
	}
	return ok == 1
}

// Invalidate 收到新消息或标记已读后调用，下次读取时重建
func (u *UnreadStorage) Invalidate(ctx context.Context, uid uint64) {
	err := invalidate.Run(ctx, u.redis, []string{u.name(uid), u.versionName(uid)},
		int(unreadExpireAt.Seconds())).Err()
	if err != nil {
		log.L.Warn("invalidate unread", zap.Uint64("uid", uid), zap.Error(err))
	}
}

// Total 未读总数
func (u *UnreadStorage) Total(counts map[uint64]int) int {
	total := 0
	for _, n := range counts {
		total += n
	}
	return total
}

// inbox:unread:<uid>
func (u *UnreadStorage) name(uid uint64) string {
	return fmt.Sprintf("inbox:unread:%d", uid)
}

// inbox:unread:ver:<uid>
func (u *UnreadStorage) versionName(uid uint64) string {
	return fmt.Sprintf("inbox:unread:ver:%d", uid)
}
