package middleware

import (
	"fmt"
	"net/http"

	"anoa.com/internfundraiser/pkg/dto"
	"anoa.com/internfundraiser/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery turns panics into the generic 500 envelope. The panic value is only echoed
// back in development.
func Recovery(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(c).Error("Panic recovered",
					zap.Any("error", rec),
					zap.Stack("stacktrace"),
				)

				detail := "Internal server error"
				if development {
					detail = fmt.Sprint(rec)
				}

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Response{
					Success: false,
					Message: "Something went wrong!",
					Error:   detail,
				})
			}
		}()
		c.Next()
	}
}
