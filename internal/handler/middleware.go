package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OptionalAuth resolves the bearer token when one is sent. A missing header
// leaves the request anonymous; a bad token is rejected outright.
func (h *Handler) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.Next()
			return
		}
		if !strings.HasPrefix(auth, "Bearer ") {
			abortWithError(c, http.StatusUnauthorized, "Invalid token")
			return
		}
		r, err := h.users.Authenticate(c.Request.Context(), strings.TrimPrefix(auth, "Bearer "))
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.Set(requesterKey, r)
		c.Next()
	}
}

// RequireAuth rejects anonymous callers. It expects OptionalAuth to have run.
func (h *Handler) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !requester(c).Authenticated() {
			abortWithError(c, http.StatusUnauthorized, "Missing token")
			return
		}
		c.Next()
	}
}

func RequestLogger(log *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
			"latency", time.Since(start),
			"ip", c.ClientIP(),
		}
		if r := requester(c); r.Authenticated() {
			fields = append(fields, "user_id", r.UserID)
		}
		switch {
		case status >= http.StatusInternalServerError:
			log.Errorw("request", fields...)
		case status >= http.StatusBadRequest:
			log.Warnw("request", fields...)
		default:
			log.Infow("request", fields...)
		}
	}
}

// Recovery logs a panic and answers 500.
func Recovery(log *zap.SugaredLogger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		log.Errorw("panic recovered", "path", c.Request.URL.Path, "panic", recovered)
		abortWithError(c, http.StatusInternalServerError, "internal server error")
	})
}
