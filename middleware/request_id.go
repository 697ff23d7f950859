package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/supanugit/Blog-Frontend/utils"
)

// RequestID tags every request with a correlation id, reusing one supplied
// by an upstream proxy when present.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		rid := ctx.GetHeader(utils.RequestIDHeader)
		if rid == "" {
			rid = uuid.NewString()
		}
		ctx.Writer.Header().Set(utils.RequestIDHeader, rid)
		ctx.Next()
	}
}
