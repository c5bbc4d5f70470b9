package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	appErr "github.com/xxxsen/mblog/internal/pkg/errors"
)

// handleError is the single conversion point between internal failures
// and what a client sees. Internal detail (backend status codes, error
// text) is logged here and goes no further; the client always gets a
// generic rendered view.
func handleError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	requestID, _ := c.Get("request_id")
	logutil.GetLogger(c.Request.Context()).Error("request failed",
		zap.Any("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	switch {
	case appErr.IsUnauthorized(err):
		renderError(c, http.StatusUnauthorized, "unauthorized")
	case appErr.IsNotFound(err):
		// kept apart from store failures internally, but the client
		// sees the same generic 400-class page
		renderError(c, http.StatusBadRequest, "article not found")
	case errors.Is(err, appErr.ErrInvalid):
		renderError(c, http.StatusBadRequest, "bad request")
	default:
		renderError(c, http.StatusInternalServerError, "server error")
	}
}

func renderError(c *gin.Context, status int, message string) {
	c.HTML(status, "error.html", gin.H{"Message": message})
	c.Abort()
}
