package job

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/mblog/internal/cache"
)

// Pinger is the only part of the store this job needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KeepAliveJob pings the hosted project on a schedule so the free tier
// does not pause it for inactivity. It also reports the current cache
// size, which is the only visibility the cache needs.
type KeepAliveJob struct {
	store Pinger
	cache *cache.ArticleCache
}

func NewKeepAliveJob(st Pinger, c *cache.ArticleCache) *KeepAliveJob {
	return &KeepAliveJob{store: st, cache: c}
}

func (j *KeepAliveJob) Name() string {
	return "store-keepalive"
}

func (j *KeepAliveJob) Run(ctx context.Context) error {
	if err := j.store.Ping(ctx); err != nil {
		return err
	}
	logutil.GetLogger(ctx).Debug("store alive", zap.Int("cached_entries", j.cache.Len()))
	return nil
}
