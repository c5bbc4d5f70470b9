package service_test

import (
	"context"
	"sync"

	"github.com/xxxsen/mblog/internal/model"
	appErr "github.com/xxxsen/mblog/internal/pkg/errors"
)

// fakeStore is an in-memory stand-in for the hosted backend.
type fakeStore struct {
	mu        sync.Mutex
	articles  []model.Article
	users     []model.User
	nextID    int64
	failWith  error
	listCalls int
	getCalls  int
	findCalls int
	pingCalls int
}

func newFakeStore() *fakeStore {
	return &fakeStore{nextID: 1}
}

func (f *fakeStore) ListArticles(ctx context.Context) ([]model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	out := make([]model.Article, len(f.articles))
	copy(out, f.articles)
	return out, nil
}

func (f *fakeStore) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.getCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.articles {
		if f.articles[i].ID == id {
			a := f.articles[i]
			return &a, nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (f *fakeStore) CreateArticle(ctx context.Context, in model.ArticleInput) (*model.Article, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return nil, f.failWith
	}
	a := model.Article{ID: f.nextID, Title: in.Title, Description: in.Description, Time: in.Time}
	f.nextID++
	f.articles = append(f.articles, a)
	return &a, nil
}

func (f *fakeStore) UpdateArticle(ctx context.Context, id int64, in model.ArticleInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	for i := range f.articles {
		if f.articles[i].ID == id {
			f.articles[i].Title = in.Title
			f.articles[i].Description = in.Description
			f.articles[i].Time = in.Time
			return nil
		}
	}
	return nil
}

func (f *fakeStore) DeleteArticle(ctx context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failWith != nil {
		return f.failWith
	}
	kept := f.articles[:0]
	for _, a := range f.articles {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	f.articles = kept
	return nil
}

func (f *fakeStore) FindUser(ctx context.Context, email, password string) (*model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.findCalls++
	if f.failWith != nil {
		return nil, f.failWith
	}
	for i := range f.users {
		if f.users[i].Email == email && f.users[i].Password == password {
			u := f.users[i]
			return &u, nil
		}
	}
	return nil, appErr.ErrNotFound
}

func (f *fakeStore) Ping(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pingCalls++
	return f.failWith
}
