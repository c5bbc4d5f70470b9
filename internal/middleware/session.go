package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xxxsen/mblog/internal/pkg/token"
)

// ContextIdentityKey is where the guard leaves the verified identity on
// the request context.
const ContextIdentityKey = "identity"

// Session is the boundary between anonymous and authenticated requests.
// The token travels in a cookie whose Max-Age (30 minutes by default)
// is deliberately shorter than the token's own 7-day expiry: the cookie
// decides how long the browser keeps presenting the token, the token
// decides how long it verifies. Logout only clears the cookie; the
// server holds no revocation state.
type Session struct {
	tokens     *token.Service
	cookieName string
	maxAge     int
	secure     bool
}

func NewSession(tokens *token.Service, cookieName string, maxAge int, secure bool) *Session {
	return &Session{tokens: tokens, cookieName: cookieName, maxAge: maxAge, secure: secure}
}

// SetToken issues the session cookie after a successful login.
func (s *Session) SetToken(c *gin.Context, raw string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, raw, s.maxAge, "/", "", s.secure, true)
}

// Clear removes the session cookie from the client.
func (s *Session) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(s.cookieName, "", -1, "/", "", s.secure, true)
}

// Require is the blocking guard for protected routes. A missing cookie
// rejects immediately; an invalid or expired token additionally clears
// the cookie so a stale value is not replayed on every request. The
// chain is aborted on rejection, so the guarded handler never runs.
func (s *Session) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(s.cookieName)
		if err != nil || raw == "" {
			c.HTML(http.StatusUnauthorized, "account.html", gin.H{
				"Notice": "please sign in first",
			})
			c.Abort()
			return
		}
		identity, err := s.tokens.Verify(raw)
		if err != nil {
			s.Clear(c)
			c.HTML(http.StatusUnauthorized, "account.html", gin.H{
				"Notice": "session expired, please sign in again",
			})
			c.Abort()
			return
		}
		c.Set(ContextIdentityKey, identity)
		c.Next()
	}
}

// Optional decodes the token when present so public pages can show the
// login state. It never rejects and never clears anything.
func (s *Session) Optional() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(s.cookieName)
		if err == nil && raw != "" {
			if identity, err := s.tokens.Verify(raw); err == nil {
				c.Set(ContextIdentityKey, identity)
			}
		}
		c.Next()
	}
}

// Identity returns the verified identity left by the guard, or nil on
// public requests.
func Identity(c *gin.Context) *token.Identity {
	value, ok := c.Get(ContextIdentityKey)
	if !ok {
		return nil
	}
	identity, _ := value.(*token.Identity)
	return identity
}
