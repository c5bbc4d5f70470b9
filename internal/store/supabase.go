package store

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	appErr "github.com/xxxsen/mblog/internal/pkg/errors"
	"github.com/xxxsen/mblog/internal/model"
)

// SupabaseStore reaches the hosted project over its PostgREST surface.
// Filters use the PostgREST operator syntax (column=eq.value). The user
// lookup matches email and password by exact equality, exactly as the
// backend stores them.
type SupabaseStore struct {
	client *resty.Client
}

func NewSupabaseStore(baseURL, apiKey string, timeout time.Duration) *SupabaseStore {
	client := resty.New().
		SetBaseURL(baseURL+"/rest/v1").
		SetTimeout(timeout).
		SetHeader("apikey", apiKey).
		SetHeader("Authorization", "Bearer "+apiKey).
		SetHeader("Content-Type", "application/json")
	return &SupabaseStore{client: client}
}

func (s *SupabaseStore) ListArticles(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "id.asc").
		SetResult(&articles).
		Get("/articles")
	if err := storeErr("list articles", resp, err); err != nil {
		return nil, err
	}
	return articles, nil
}

func (s *SupabaseStore) GetArticle(ctx context.Context, id int64) (*model.Article, error) {
	var articles []model.Article
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("id", "eq."+strconv.FormatInt(id, 10)).
		SetResult(&articles).
		Get("/articles")
	if err := storeErr("get article", resp, err); err != nil {
		return nil, err
	}
	if len(articles) == 0 {
		return nil, appErr.ErrNotFound
	}
	return &articles[0], nil
}

func (s *SupabaseStore) CreateArticle(ctx context.Context, in model.ArticleInput) (*model.Article, error) {
	var created []model.Article
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody([]model.ArticleInput{in}).
		SetResult(&created).
		Post("/articles")
	if err := storeErr("create article", resp, err); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("%w: create article: empty representation", appErr.ErrStore)
	}
	return &created[0], nil
}

func (s *SupabaseStore) UpdateArticle(ctx context.Context, id int64, in model.ArticleInput) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+strconv.FormatInt(id, 10)).
		SetBody(in).
		Patch("/articles")
	return storeErr("update article", resp, err)
}

func (s *SupabaseStore) DeleteArticle(ctx context.Context, id int64) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("id", "eq."+strconv.FormatInt(id, 10)).
		Delete("/articles")
	return storeErr("delete article", resp, err)
}

func (s *SupabaseStore) FindUser(ctx context.Context, email, password string) (*model.User, error) {
	var users []model.User
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("email", "eq."+email).
		SetQueryParam("password", "eq."+password).
		SetResult(&users).
		Get("/users")
	if err := storeErr("find user", resp, err); err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, appErr.ErrNotFound
	}
	return &users[0], nil
}

// Ping issues the cheapest possible select. Used by the keep-alive job
// so the hosted free-tier project is not paused for inactivity.
func (s *SupabaseStore) Ping(ctx context.Context) error {
	resp, err := s.client.R().
		SetContext(ctx).
		SetQueryParam("select", "id").
		SetQueryParam("limit", "1").
		Get("/articles")
	return storeErr("ping", resp, err)
}

// storeErr collapses transport failures and non-2xx replies into the
// single ErrStore class. The wrapped detail is for logs only; handlers
// never surface it to a client.
func storeErr(op string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%w: %s: %v", appErr.ErrStore, op, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: %s: status %d", appErr.ErrStore, op, resp.StatusCode())
	}
	return nil
}
