package handler

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/xxxsen/mblog/internal/middleware"
	"github.com/xxxsen/mblog/web"
)

type RouterDeps struct {
	Articles *ArticleHandler
	Auth     *AuthHandler
	Session  *middleware.Session
}

// NewRouter builds the full engine: recovery, request ids, gzip, the
// embedded templates and every route of the site.
func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), gzip.Gzip(gzip.DefaultCompression))
	r.SetHTMLTemplate(web.Templates())
	RegisterRoutes(r, deps)
	return r
}

func RegisterRoutes(r *gin.Engine, deps RouterDeps) {
	// public pages; Optional only decodes the cookie to show login state
	public := r.Group("", deps.Session.Optional())
	public.GET("/", deps.Articles.List)
	public.GET("/article/content/:id", deps.Articles.Detail)
	public.GET("/account", deps.Auth.Form)
	public.POST("/account", deps.Auth.Login)
	public.GET("/logout", deps.Auth.Logout)

	// guarded pages; Require rejects with 401 before the handler runs
	guarded := r.Group("", deps.Session.Require())
	guarded.GET("/articles/new", deps.Articles.NewForm)
	guarded.POST("/articles/new", deps.Articles.Create)
	guarded.GET("/article/update/:id", deps.Articles.EditForm)
	guarded.POST("/article/update/:id", deps.Articles.Update)
	guarded.GET("/article/delete/:id", deps.Articles.Delete)
}
