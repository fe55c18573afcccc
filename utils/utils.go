package utils

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// Logger logs information about each request through logrus
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		c.Next()

		entry := log.WithFields(log.Fields{
			"status":  c.Writer.Status(),
			"latency": time.Since(startTime).String(),
			"method":  c.Request.Method,
			"path":    c.Request.URL.Path,
			"client":  c.ClientIP(),
		})
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Error("[HTTP]")
		case c.Writer.Status() >= http.StatusBadRequest:
			entry.Warn("[HTTP]")
		default:
			entry.Debug("[HTTP]")
		}
	}
}

// ErrorHandler handles global errors: panics become a 500 and errors attached
// with c.Error are logged
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Errorf("[HTTP-PANIC] %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			}
		}()

		c.Next()

		for _, err := range c.Errors {
			log.Errorf("[HTTP-ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err.Err)
		}
	}
}
