// Package cache holds the TTL overlay in front of the article store.
// Entries expire a fixed interval after insertion and nothing on the
// write path ever invalidates them: a reader may observe data up to one
// TTL window stale after a write. That window is a documented trade-off
// of this system, not an oversight.
package cache

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/xxxsen/mblog/internal/model"
)

const listKey = "article-list"

// ArticleCache keys the full listing under a single fixed key and
// individual articles under their id. Expired entries are refused on
// access and reaped in the background by the LRU itself. All mutations
// are idempotent overwrites, so concurrent populates after a shared
// miss are benign.
type ArticleCache struct {
	list  *expirable.LRU[string, []model.Article]
	items *expirable.LRU[int64, model.Article]
}

func NewArticleCache(maxEntries int, ttl time.Duration) *ArticleCache {
	return &ArticleCache{
		list:  expirable.NewLRU[string, []model.Article](1, nil, ttl),
		items: expirable.NewLRU[int64, model.Article](maxEntries, nil, ttl),
	}
}

func (c *ArticleCache) GetList() ([]model.Article, bool) {
	return c.list.Get(listKey)
}

func (c *ArticleCache) SetList(articles []model.Article) {
	c.list.Add(listKey, articles)
}

func (c *ArticleCache) GetOne(id int64) (model.Article, bool) {
	return c.items.Get(id)
}

func (c *ArticleCache) SetOne(article model.Article) {
	c.items.Add(article.ID, article)
}

// Len reports how many entries are currently held, counting the list
// entry as one. Used for log reporting only.
func (c *ArticleCache) Len() int {
	return c.list.Len() + c.items.Len()
}
