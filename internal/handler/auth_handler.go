package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/mblog/internal/middleware"
	"github.com/xxxsen/mblog/internal/service"
)

type AuthHandler struct {
	auth    *service.AuthService
	session *middleware.Session
}

func NewAuthHandler(auth *service.AuthService, session *middleware.Session) *AuthHandler {
	return &AuthHandler{auth: auth, session: session}
}

func (h *AuthHandler) Form(c *gin.Context) {
	c.HTML(http.StatusOK, "account.html", gin.H{
		"Identity": middleware.Identity(c),
	})
}

// Login validates the form, checks the credentials and issues the
// session cookie. Wrong password, unknown email and a backend failure
// all render the exact same failure view, so the login page leaks
// nothing about which accounts exist.
func (h *AuthHandler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.HTML(http.StatusBadRequest, "account.html", gin.H{
			"Notice": "email and password are required",
		})
		return
	}
	raw, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		c.HTML(http.StatusUnauthorized, "account.html", gin.H{
			"Notice": "invalid email or password",
		})
		return
	}
	h.session.SetToken(c, raw)
	c.Redirect(http.StatusFound, "/")
}

// Logout clears the cookie unconditionally. The token itself remains
// valid until its natural expiry; the server keeps no revocation list.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.session.Clear(c)
	c.Redirect(http.StatusFound, "/")
}
