package model

// Article is the canonical article row as stored in the hosted backend.
// The cache may hold a stale copy of it for up to the cache TTL.
type Article struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// ArticleInput carries the writable fields of an article.
type ArticleInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Time        string `json:"time,omitempty"`
}
