package response

import (
	"net/http"

	"anoa.com/internfundraiser/pkg/apperror"
	"anoa.com/internfundraiser/pkg/dto"
	"anoa.com/internfundraiser/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const hiddenDetail = "Internal server error"

// Success writes a 200 envelope around data.
func Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.Response{Success: true, Data: data})
}

// Failure writes the failure envelope. Detail of 5xx errors is only exposed in debug mode.
func Failure(c *gin.Context, err error, message string) {
	code := apperror.MapErrorToStatus(err)

	detail := err.Error()
	if code >= http.StatusInternalServerError {
		logger.FromContext(c).Error(message, zap.Error(err))
		if !gin.IsDebugging() {
			detail = hiddenDetail
		}
	}

	c.JSON(code, dto.Response{Success: false, Message: message, Error: detail})
}

// Abort writes a failure envelope without error detail and stops the handler chain.
func Abort(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, dto.Response{Success: false, Message: message})
}
