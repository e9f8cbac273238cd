package public

import (
	"net/http"

	"github.com/inkwell-cms/inkwell/internal/cache"
	"github.com/inkwell-cms/inkwell/internal/constants"
	"github.com/inkwell-cms/inkwell/internal/http/response"
	"github.com/inkwell-cms/inkwell/internal/models"

	"github.com/gin-gonic/gin"
)

// GetCategories 获取分类列表（名称升序）
func (h *Handler) GetCategories(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Category
	hit, err := cache.GetJSON(ctx, constants.CachePublicCategories, &cached)
	if err != nil {
		requestLog(c).Warnw("public_categories_cache_get_failed", "error", err)
	}
	if hit {
		response.Success(c, cached)
		return
	}

	categories, err := h.CategoryService.List(false)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch categories", err)
		return
	}

	if err := cache.SetJSON(ctx, constants.CachePublicCategories, categories, h.cacheTTL()); err != nil {
		requestLog(c).Warnw("public_categories_cache_set_failed", "error", err)
	}
	response.Success(c, categories)
}
