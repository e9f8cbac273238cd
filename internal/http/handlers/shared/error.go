package shared

import (
	"errors"
	"net/http"

	"github.com/inkwell-cms/inkwell/internal/http/response"
	"github.com/inkwell-cms/inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

// RespondError 返回错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, status int, msg string, err error) {
	appErr := response.WrapError(status, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"status", appErr.Status,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Status, appErr.Message)
}

// RespondServiceError 将业务层错误映射为 HTTP 响应。
// 校验错误 400、缺失 404、草稿越权 403、冲突 409，其余按 500 处理并记录。
func RespondServiceError(c *gin.Context, err error, internalMsg string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		response.ErrorWithFields(c, http.StatusBadRequest, verr.Error(), verr.Fields)
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, service.ErrNotFound.Error())
	case errors.Is(err, service.ErrDraftNotPublished):
		response.Forbidden(c, service.ErrDraftNotPublished.Error())
	case errors.Is(err, service.ErrNameExists):
		response.Conflict(c, service.ErrNameExists.Error())
	case errors.Is(err, service.ErrCategoryInUse):
		response.Conflict(c, service.ErrCategoryInUse.Error())
	case errors.Is(err, service.ErrVersionConflict):
		response.Conflict(c, service.ErrVersionConflict.Error())
	default:
		RespondError(c, http.StatusInternalServerError, internalMsg, err)
	}
}
