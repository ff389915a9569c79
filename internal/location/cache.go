package location

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	provincesKey = "locations:provinces"
	wardsKeyFmt  = "locations:wards:%d"

	// Administrative units change on the order of years, a day is plenty.
	cacheTTL = 24 * time.Hour
)

type Cache interface {
	GetProvinces(ctx context.Context) ([]Province, bool)
	SetProvinces(ctx context.Context, provinces []Province)
	GetWards(ctx context.Context, districtCode int) ([]Ward, bool)
	SetWards(ctx context.Context, districtCode int, wards []Ward)
}

type redisCache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) Cache {
	return &redisCache{client: client}
}

func (c *redisCache) GetProvinces(ctx context.Context) ([]Province, bool) {
	raw, err := c.client.Get(ctx, provincesKey).Bytes()
	if err != nil {
		return nil, false
	}

	var provinces []Province
	if err := json.Unmarshal(raw, &provinces); err != nil {
		return nil, false
	}
	return provinces, true
}

func (c *redisCache) SetProvinces(ctx context.Context, provinces []Province) {
	raw, err := json.Marshal(provinces)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, provincesKey, raw, cacheTTL).Err()
}

func (c *redisCache) GetWards(ctx context.Context, districtCode int) ([]Ward, bool) {
	raw, err := c.client.Get(ctx, fmt.Sprintf(wardsKeyFmt, districtCode)).Bytes()
	if err != nil {
		return nil, false
	}

	var wards []Ward
	if err := json.Unmarshal(raw, &wards); err != nil {
		return nil, false
	}
	return wards, true
}

func (c *redisCache) SetWards(ctx context.Context, districtCode int, wards []Ward) {
	raw, err := json.Marshal(wards)
	if err != nil {
		return
	}
	_ = c.client.Set(ctx, fmt.Sprintf(wardsKeyFmt, districtCode), raw, cacheTTL).Err()
}
