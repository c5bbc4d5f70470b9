package job_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/mblog/internal/cache"
	"github.com/xxxsen/mblog/internal/job"
)

type fakePinger struct {
	calls int
	err   error
}

func (f *fakePinger) Ping(ctx context.Context) error {
	f.calls++
	return f.err
}

func TestKeepAliveRun(t *testing.T) {
	pinger := &fakePinger{}
	j := job.NewKeepAliveJob(pinger, cache.NewArticleCache(16, time.Minute))

	require.Equal(t, "store-keepalive", j.Name())
	require.NoError(t, j.Run(context.Background()))
	require.Equal(t, 1, pinger.calls)
}

func TestKeepAlivePropagatesError(t *testing.T) {
	pinger := &fakePinger{err: errors.New("paused")}
	j := job.NewKeepAliveJob(pinger, cache.NewArticleCache(16, time.Minute))

	require.Error(t, j.Run(context.Background()))
}
