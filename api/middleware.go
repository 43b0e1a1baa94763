package api

import (
	"fmt"
	"time"

	service_i "github.com/beka-birhanu/vinom-world/service/i"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is set on every response.
const RequestIDHeader = "X-Request-ID"

// requestID assigns each request an id, echoes it back and logs the result.
func requestID(logger service_i.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := uuid.New().String()
		ctx.Header(RequestIDHeader, id)
		start := time.Now()

		ctx.Next()

		msg := fmt.Sprintf("%s %s %s -> %d in %s", id, ctx.Request.Method, ctx.Request.URL.Path, ctx.Writer.Status(), time.Since(start))
		if ctx.Writer.Status() >= 500 {
			logger.Error(msg)
			return
		}
		logger.Info(msg)
	}
}
