package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/denisAlshanov/ytgrab/internal/utils"
)

// RecoveryMiddleware turns panics into the standard error envelope instead
// of gin's plain 500.
func RecoveryMiddleware() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		utils.LogError(c.Request.Context(), "Panic recovered", fmt.Errorf("%v", recovered), utils.Fields{
			"path": c.Request.URL.Path,
		})

		appErr := utils.NewInternalError()
		c.AbortWithStatusJSON(appErr.StatusCode, gin.H{
			"error":      appErr,
			"request_id": c.GetString("request_id"),
			"timestamp":  time.Now().Format(time.RFC3339),
		})
	})
}
