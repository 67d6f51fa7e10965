package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	domainerrors "mise.backend/internal/domain/errors"
	"mise.backend/pkg/logger"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Errors without a known kind are reported as
// internal and logged with their cause.
func Error(c *gin.Context, err error) {
	appErr := domainerrors.FromError(err)
	if appErr.Status >= http.StatusInternalServerError {
		logger.Error(c.Request.Context(), "Request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
	})
}

// Abort sends an error response and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}
