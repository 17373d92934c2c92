package memcache_fx

import (
	"go.uber.org/fx"
	"tripchat/internal/config"
	mem "tripchat/pkg/memcache"
)

var Module = fx.Provide(provideLookupCache)

func provideLookupCache(cfg *config.Config) mem.LookupCache {
	return mem.NewLookupCache(cfg.LookupCacheTTL)
}
