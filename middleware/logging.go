package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// RequestLogger logs every request with its status and duration.
func RequestLogger(c *gin.Context) {
	start := time.Now()
	c.Next()
	log.Printf("%s %s %d %s", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
}
