package service

import (
	"context"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/xxxsen/mblog/internal/cache"
	"github.com/xxxsen/mblog/internal/model"
	"github.com/xxxsen/mblog/internal/store"
)

// ArticleService fronts the store with the read-through cache. Reads
// populate the cache on a miss; writes go straight to the store and do
// not touch the cache, so a cached read can stay stale until its TTL
// elapses.
type ArticleService struct {
	store store.Store
	cache *cache.ArticleCache
}

func NewArticleService(st store.Store, c *cache.ArticleCache) *ArticleService {
	return &ArticleService{store: st, cache: c}
}

func (s *ArticleService) List(ctx context.Context) ([]model.Article, error) {
	if articles, ok := s.cache.GetList(); ok {
		logutil.GetLogger(ctx).Debug("article list cache hit")
		return articles, nil
	}
	articles, err := s.store.ListArticles(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetList(articles)
	return articles, nil
}

func (s *ArticleService) Get(ctx context.Context, id int64) (*model.Article, error) {
	if article, ok := s.cache.GetOne(id); ok {
		logutil.GetLogger(ctx).Debug("article cache hit", zap.Int64("id", id))
		return &article, nil
	}
	article, err := s.store.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.SetOne(*article)
	return article, nil
}

func (s *ArticleService) Create(ctx context.Context, in model.ArticleInput) (*model.Article, error) {
	return s.store.CreateArticle(ctx, in)
}

func (s *ArticleService) Update(ctx context.Context, id int64, in model.ArticleInput) error {
	return s.store.UpdateArticle(ctx, id, in)
}

func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	return s.store.DeleteArticle(ctx, id)
}
