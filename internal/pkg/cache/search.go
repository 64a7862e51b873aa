package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"cidian/internal/model/dictionary"
)

// 搜索缓存 key 模式
const (
	SearchGenerationKey = "dict:search:gen"
	SearchKeyPrefix     = "dict:search:"
	SearchCacheTTL      = 10 * time.Minute
)

// SearchKey 生成搜索缓存 key
// 查询词统一小写后哈希，代数 gen 变化后旧 key 自然失效
func SearchKey(gen int64, query string) string {
	sum := sha1.Sum([]byte(strings.ToLower(strings.TrimSpace(query))))
	return SearchKeyPrefix + strconv.FormatInt(gen, 10) + ":" + hex.EncodeToString(sum[:])
}

// SearchCache 词条搜索结果缓存（Redis）
// 任何写操作后调用 Invalidate，一次 INCR 即可使全部查询失效
type SearchCache struct {
	redis *RedisCache
	ttl   time.Duration
}

// NewSearchCache 创建搜索缓存
func NewSearchCache(rc *RedisCache) *SearchCache {
	return &SearchCache{redis: rc, ttl: SearchCacheTTL}
}

// NoGeneration 代数读取失败时返回，Set 遇到该值直接跳过
const NoGeneration int64 = -1

// Get 读取缓存，任何错误都视为未命中
// 返回本次读取到的代数，未命中时调用方查询后需用同一代数调用 Set，
// 查询期间发生的失效会让这次写入落在旧代数下
func (c *SearchCache) Get(ctx context.Context, query string) ([]*dictionary.Entry, int64, bool) {
	gen, err := c.redis.GetInt64(ctx, SearchGenerationKey)
	if err != nil {
		log.Warn().Err(err).Msg("search cache: read generation failed")
		return nil, NoGeneration, false
	}

	var entries []*dictionary.Entry
	if err := c.redis.Get(ctx, SearchKey(gen, query), &entries); err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("search cache: read failed")
		}
		return nil, gen, false
	}
	return entries, gen, true
}

// Set 在 gen 代下写入缓存
func (c *SearchCache) Set(ctx context.Context, gen int64, query string, entries []*dictionary.Entry) {
	if gen == NoGeneration {
		return
	}
	if err := c.redis.Set(ctx, SearchKey(gen, query), entries, c.ttl); err != nil {
		log.Warn().Err(err).Msg("search cache: write failed")
	}
}

// Invalidate 使全部搜索缓存失效
func (c *SearchCache) Invalidate(ctx context.Context) {
	if _, err := c.redis.Incr(ctx, SearchGenerationKey); err != nil {
		log.Warn().Err(err).Msg("search cache: invalidate failed")
	}
}
