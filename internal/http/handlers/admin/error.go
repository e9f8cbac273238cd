package admin

import (
	handlershared "github.com/inkwell-cms/inkwell/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func requestLog(c *gin.Context) *zap.SugaredLogger {
	return handlershared.RequestLog(c)
}

func respondError(c *gin.Context, status int, msg string, err error) {
	handlershared.RespondError(c, status, msg, err)
}

func respondServiceError(c *gin.Context, err error, internalMsg string) {
	handlershared.RespondServiceError(c, err, internalMsg)
}
