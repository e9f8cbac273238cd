package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Pagination 分页信息
type Pagination struct {
	Page      int   `json:"page"`
	PageSize  int   `json:"pageSize"`
	Total     int64 `json:"total"`
	TotalPage int64 `json:"totalPage"`
}

// PageResponse 分页响应结构
type PageResponse struct {
	Data       interface{} `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Success 成功响应，直接返回资源本身
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, data interface{}, pagination Pagination) {
	c.JSON(http.StatusOK, PageResponse{
		Data:       data,
		Pagination: pagination,
	})
}

// Error 错误响应，统一为 {"error": msg} 加 HTTP 状态码
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// ErrorWithFields 错误响应（附字段级校验信息）
func ErrorWithFields(c *gin.Context, status int, msg string, fields map[string]string) {
	if len(fields) == 0 {
		Error(c, status, msg)
		return
	}
	c.JSON(status, gin.H{"error": msg, "fields": fields})
}

// BadRequest 400 响应
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

// Forbidden 403 响应
func Forbidden(c *gin.Context, msg string) {
	Error(c, http.StatusForbidden, msg)
}

// NotFound 404 响应
func NotFound(c *gin.Context, msg string) {
	Error(c, http.StatusNotFound, msg)
}

// Conflict 409 响应
func Conflict(c *gin.Context, msg string) {
	Error(c, http.StatusConflict, msg)
}

// Internal 500 响应
func Internal(c *gin.Context, msg string) {
	Error(c, http.StatusInternalServerError, msg)
}
