package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	IndexCacheTTL       = 20 * time.Second
	IndexCacheKeyPrefix = "cache:index:page" // 首页列表按页缓存
	IndexCacheVerKey    = "cache:index:ver"  // 版本号，Clear 时自增使旧键失效
)

// IndexCacheRepository 首页列表短缓存。TTL 固定 20s，写路径调用 Clear 保证读己之写。
type IndexCacheRepository struct {
	ttl time.Duration
}

func NewIndexCacheRepository() *IndexCacheRepository {
	return &IndexCacheRepository{ttl: IndexCacheTTL}
}

func (r *IndexCacheRepository) key(ver int64, page int) string {
	return fmt.Sprintf("%s:v%d:%d", IndexCacheKeyPrefix, ver, page)
}

func (r *IndexCacheRepository) version(ctx context.Context) (int64, error) {
	ver, err := Client.Get(ctx, IndexCacheVerKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return ver, err
}

// Get 命中返回缓存好的页面载荷
func (r *IndexCacheRepository) Get(ctx context.Context, page int) ([]byte, bool, error) {
	ver, err := r.version(ctx)
	if err != nil {
		return nil, false, err
	}
	b, err := Client.Get(ctx, r.key(ver, page)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (r *IndexCacheRepository) Set(ctx context.Context, page int, payload []byte) error {
	ver, err := r.version(ctx)
	if err != nil {
		return err
	}
	return Client.Set(ctx, r.key(ver, page), payload, r.ttl).Err()
}

// Clear 显式失效：版本号+1，旧键留给 TTL 自然过期
func (r *IndexCacheRepository) Clear(ctx context.Context) error {
	return Client.Incr(ctx, IndexCacheVerKey).Err()
}
