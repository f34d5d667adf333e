package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	"ootd-commerce/internal/handler/httperr"
	"ootd-commerce/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const stackLines = 12

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, e := range c.Errors {
			logHandlerError(c, e)
		}

		if c.Writer.Written() {
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]

			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}
		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Internal server error"}})
	}
}

// logHandlerError keeps 4xx quiet and attaches the stack to 5xx.
func logHandlerError(c *gin.Context, e *gin.Error) {
	status := c.Writer.Status()
	if resp, ok := e.Meta.(httperr.Response); ok {
		status = resp.Status
	}
	attrs := []any{
		"request_id", GetRequestID(c),
		"path", c.Request.URL.Path,
		"status", status,
		"error", e.Err.Error(),
	}
	if status >= http.StatusInternalServerError {
		attrs = append(attrs, "stack", errs.ExtractStackLines(e.Err, stackLines))
		slog.Error("request failed", attrs...)
		return
	}
	slog.Debug("request rejected", attrs...)
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := errs.New(fmt.Sprint(rec))
				slog.Error("recovered from panic",
					"error", rec,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
					"stack", errs.ExtractStackLines(err, stackLines),
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
