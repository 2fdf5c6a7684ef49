package memcache_fx

import (
	"go.uber.org/fx"

	"tourapp/pkg/memcache"
)

var Module = fx.Provide(
	provideUsageCounter)

func provideUsageCounter() memcache.UsageCounter {
	return memcache.NewUsageCounter()
}
