package admin

import "github.com/inkwell-cms/inkwell/internal/provider"

// Handler 后台管理接口处理器入口
// 说明：该处理器仅用于管理端 API，返回未消毒的原始正文供编辑器使用。
type Handler struct {
	*provider.Container
}

// New 创建后台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
