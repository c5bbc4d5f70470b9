// Package store talks to the hosted backend. All persistence lives
// there; the application keeps no storage of its own.
package store

import (
	"context"

	"github.com/xxxsen/mblog/internal/model"
)

// Store is the credential/article adapter consumed by the services.
// Every call returns the data and a single error; no taxonomy beyond
// "not found" vs "store failed" is assumed by callers, and nothing is
// retried.
type Store interface {
	ListArticles(ctx context.Context) ([]model.Article, error)
	GetArticle(ctx context.Context, id int64) (*model.Article, error)
	CreateArticle(ctx context.Context, in model.ArticleInput) (*model.Article, error)
	UpdateArticle(ctx context.Context, id int64, in model.ArticleInput) error
	DeleteArticle(ctx context.Context, id int64) error
	FindUser(ctx context.Context, email, password string) (*model.User, error)
	Ping(ctx context.Context) error
}
