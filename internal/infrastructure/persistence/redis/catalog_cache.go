package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/storefront/internal/domain/product"
	"github.com/xiebiao/storefront/pkg/circuitbreaker"
)

// CatalogCache 商品列表页缓存
// 设计说明：
// 1. Cache-Aside策略：先查缓存，未命中再查数据库并回填
// 2. 写路径（新增/改价/改描述/删除商品）统一删除全部列表缓存，
//    不做缓存更新，避免并发写导致的脏数据
// 3. 所有Redis访问都经过熔断器：Redis不可用时快速失败，
//    调用方当作缓存未命中降级到数据库
type CatalogCache struct {
	client  *redis.Client
	breaker *circuitbreaker.CircuitBreaker
	listTTL time.Duration
}

// cachedPage 列表页缓存载荷
type cachedPage struct {
	Products []*product.Product `json:"products"`
	Total    int64              `json:"total"`
}

// NewCatalogCache 创建商品列表缓存
func NewCatalogCache(client *redis.Client, listTTL time.Duration) *CatalogCache {
	breaker := circuitbreaker.NewCircuitBreaker("catalog-cache", circuitbreaker.Config{
		MaxRequests: 3,
		Interval:    60 * time.Second,
		Timeout:     10 * time.Second,
	})
	return &CatalogCache{
		client:  client,
		breaker: breaker,
		listTTL: listTTL,
	}
}

// GetPage 获取列表页缓存
// 未命中或Redis故障（含熔断快速失败）都返回(nil, 0, nil)，
// 调用方降级到数据库
func (c *CatalogCache) GetPage(ctx context.Context, page, pageSize int) ([]*product.Product, int64, error) {
	key := c.listKey(page, pageSize)

	var result cachedPage
	hit := false
	err := c.breaker.Execute(func() error {
		val, err := c.client.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return nil // 未命中不算故障
			}
			return err
		}
		if err := json.Unmarshal([]byte(val), &result); err != nil {
			return err
		}
		hit = true
		return nil
	})
	if err != nil {
		// 熔断器打开或Redis故障：降级为未命中
		return nil, 0, nil
	}
	if !hit {
		return nil, 0, nil
	}

	return result.Products, result.Total, nil
}

// SetPage 回填列表页缓存
func (c *CatalogCache) SetPage(ctx context.Context, page, pageSize int, products []*product.Product, total int64) error {
	key := c.listKey(page, pageSize)

	val, err := json.Marshal(cachedPage{Products: products, Total: total})
	if err != nil {
		return fmt.Errorf("序列化失败: %w", err)
	}

	return c.breaker.Execute(func() error {
		return c.client.Set(ctx, key, val, c.listTTL).Err()
	})
}

// InvalidateLists 删除所有列表页缓存
// 设计说明：
// 1. 使用SCAN命令遍历匹配的key（不用KEYS，避免阻塞）
// 2. 批量删除使用UNLINK（异步删除，不阻塞）
func (c *CatalogCache) InvalidateLists(ctx context.Context) error {
	return c.breaker.Execute(func() error {
		iter := c.client.Scan(ctx, 0, "catalog:list:*", 0).Iterator()

		var keys []string
		for iter.Next(ctx) {
			keys = append(keys, iter.Val())
		}
		if err := iter.Err(); err != nil {
			return fmt.Errorf("扫描缓存key失败: %w", err)
		}

		if len(keys) > 0 {
			if err := c.client.Unlink(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("删除缓存失败: %w", err)
			}
		}
		return nil
	})
}

// listKey 生成列表页缓存key
// 格式：catalog:list:{page}:{pageSize}
func (c *CatalogCache) listKey(page, pageSize int) string {
	return fmt.Sprintf("catalog:list:%d:%d", page, pageSize)
}
