package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/mblog/internal/middleware"
	"github.com/xxxsen/mblog/internal/model"
	appErr "github.com/xxxsen/mblog/internal/pkg/errors"
	"github.com/xxxsen/mblog/internal/pkg/markdown"
	"github.com/xxxsen/mblog/internal/service"
)

type ArticleHandler struct {
	articles *service.ArticleService
}

func NewArticleHandler(articles *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articles: articles}
}

func (h *ArticleHandler) List(c *gin.Context) {
	articles, err := h.articles.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	c.HTML(http.StatusOK, "blog.html", gin.H{
		"Articles": articles,
		"Identity": middleware.Identity(c),
	})
}

func (h *ArticleHandler) Detail(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		handleError(c, err)
		return
	}
	article, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.HTML(http.StatusOK, "article.html", gin.H{
		"Article":  article,
		"Body":     markdown.Render(article.Description),
		"Identity": middleware.Identity(c),
	})
}

func (h *ArticleHandler) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "new-blog.html", gin.H{
		"Identity": middleware.Identity(c),
	})
}

func (h *ArticleHandler) Create(c *gin.Context) {
	in, ok := articleForm(c, "new-blog.html", 0)
	if !ok {
		return
	}
	if _, err := h.articles.Create(c.Request.Context(), in); err != nil {
		handleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *ArticleHandler) EditForm(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		handleError(c, err)
		return
	}
	article, err := h.articles.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit-blog.html", gin.H{
		"Article":  article,
		"Identity": middleware.Identity(c),
	})
}

func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		handleError(c, err)
		return
	}
	in, ok := articleForm(c, "edit-blog.html", id)
	if !ok {
		return
	}
	if err := h.articles.Update(c.Request.Context(), id, in); err != nil {
		handleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := articleID(c)
	if err != nil {
		handleError(c, err)
		return
	}
	if err := h.articles.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/")
}

func articleID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, appErr.ErrInvalid
	}
	return id, nil
}

// articleForm binds and validates the shared create/update form. On a
// missing field it re-renders the form with a 400, echoing whatever the
// user already typed so the input is not lost.
func articleForm(c *gin.Context, tmpl string, id int64) (model.ArticleInput, bool) {
	in := model.ArticleInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Time:        c.PostForm("time"),
	}
	if in.Title == "" || in.Description == "" {
		c.HTML(http.StatusBadRequest, tmpl, gin.H{
			"Notice":   "title and description are required",
			"Identity": middleware.Identity(c),
			"Article": model.Article{
				ID:          id,
				Title:       in.Title,
				Description: in.Description,
				Time:        in.Time,
			},
		})
		return model.ArticleInput{}, false
	}
	return in, true
}
