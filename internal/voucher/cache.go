package voucher

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	cacheKey = "vouchers:active"
	cacheTTL = 5 * time.Minute
)

// Cache keeps the active voucher list in Redis so the checkout page does not
// hit Postgres on every subtotal change.
type Cache interface {
	Get(ctx context.Context) ([]*Voucher, bool)
	Set(ctx context.Context, vouchers []*Voucher)
}

type redisCache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) Get(ctx context.Context) ([]*Voucher, bool) {
	raw, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		return nil, false
	}

	var vouchers []*Voucher
	if err := json.Unmarshal(raw, &vouchers); err != nil {
		return nil, false
	}
	return vouchers, true
}

func (c *redisCache) Set(ctx context.Context, vouchers []*Voucher) {
	raw, err := json.Marshal(vouchers)
	if err != nil {
		return
	}
	// cache is best-effort, a failed write just means a DB read next time
	_ = c.client.Set(ctx, cacheKey, raw, cacheTTL).Err()
}
