package store_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/xxxsen/mblog/internal/model"
	appErr "github.com/xxxsen/mblog/internal/pkg/errors"
	"github.com/xxxsen/mblog/internal/store"
)

// fakePostgREST emulates just enough of the hosted REST surface.
func fakePostgREST(t *testing.T) (*httptest.Server, *[]model.Article) {
	t.Helper()
	articles := []model.Article{
		{ID: 1, Title: "first", Description: "d1"},
		{ID: 2, Title: "second", Description: "d2"},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/rest/v1/articles", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.Equal(t, "anon-key", r.Header.Get("apikey"))
		require.Equal(t, "Bearer anon-key", r.Header.Get("Authorization"))

		switch r.Method {
		case http.MethodGet:
			if filter := r.URL.Query().Get("id"); filter != "" {
				require.Equal(t, "eq.2", filter)
				_ = json.NewEncoder(w).Encode([]model.Article{articles[1]})
				return
			}
			_ = json.NewEncoder(w).Encode(articles)
		case http.MethodPost:
			require.Equal(t, "return=representation", r.Header.Get("Prefer"))
			var in []model.ArticleInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			require.Len(t, in, 1)
			created := model.Article{ID: 3, Title: in[0].Title, Description: in[0].Description}
			articles = append(articles, created)
			w.WriteHeader(http.StatusCreated)
			_ = json.NewEncoder(w).Encode([]model.Article{created})
		case http.MethodPatch, http.MethodDelete:
			require.NotEmpty(t, r.URL.Query().Get("id"))
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	mux.HandleFunc("/rest/v1/users", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		email := r.URL.Query().Get("email")
		password := r.URL.Query().Get("password")
		if email == "eq.admin@example.com" && password == "eq.hunter2" {
			_ = json.NewEncoder(w).Encode([]model.User{{ID: 1, Email: "admin@example.com", Password: "hunter2"}})
			return
		}
		_ = json.NewEncoder(w).Encode([]model.User{})
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server, &articles
}

func newClient(server *httptest.Server) *store.SupabaseStore {
	return store.NewSupabaseStore(server.URL, "anon-key", 5*time.Second)
}

func TestListArticles(t *testing.T) {
	server, _ := fakePostgREST(t)
	st := newClient(server)

	articles, err := st.ListArticles(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 2)
	require.Equal(t, "first", articles[0].Title)
}

func TestGetArticle(t *testing.T) {
	server, _ := fakePostgREST(t)
	st := newClient(server)

	article, err := st.GetArticle(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "second", article.Title)
}

func TestCreateArticle(t *testing.T) {
	server, articles := fakePostgREST(t)
	st := newClient(server)

	created, err := st.CreateArticle(context.Background(), model.ArticleInput{Title: "third", Description: "d3"})
	require.NoError(t, err)
	require.Equal(t, int64(3), created.ID)
	require.Len(t, *articles, 3)
}

func TestUpdateAndDeleteArticle(t *testing.T) {
	server, _ := fakePostgREST(t)
	st := newClient(server)

	require.NoError(t, st.UpdateArticle(context.Background(), 1, model.ArticleInput{Title: "x", Description: "y"}))
	require.NoError(t, st.DeleteArticle(context.Background(), 1))
}

func TestFindUser(t *testing.T) {
	server, _ := fakePostgREST(t)
	st := newClient(server)

	user, err := st.FindUser(context.Background(), "admin@example.com", "hunter2")
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)

	_, err = st.FindUser(context.Background(), "admin@example.com", "wrong")
	require.True(t, appErr.IsNotFound(err))

	_, err = st.FindUser(context.Background(), "ghost@example.com", "hunter2")
	require.True(t, appErr.IsNotFound(err))
}

func TestNon2xxIsStoreError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"permission denied"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)
	st := store.NewSupabaseStore(server.URL, "anon-key", 5*time.Second)

	_, err := st.ListArticles(context.Background())
	require.ErrorIs(t, err, appErr.ErrStore)

	err = st.Ping(context.Background())
	require.ErrorIs(t, err, appErr.ErrStore)
}

func TestUnreachableHostIsStoreError(t *testing.T) {
	st := store.NewSupabaseStore("http://127.0.0.1:1", "anon-key", 500*time.Millisecond)

	_, err := st.ListArticles(context.Background())
	require.ErrorIs(t, err, appErr.ErrStore)
}
