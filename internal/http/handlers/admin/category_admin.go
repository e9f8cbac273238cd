package admin

import (
	"net/http"
	"strings"

	"github.com/inkwell-cms/inkwell/internal/cache"
	"github.com/inkwell-cms/inkwell/internal/constants"
	"github.com/inkwell-cms/inkwell/internal/http/response"
	"github.com/inkwell-cms/inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

// CategoryCreateRequest 分类创建请求
type CategoryCreateRequest struct {
	Name        string `json:"name"`
	ImageURL    string `json:"imageURL"`
	Description string `json:"description"`
}

// CategoryUpdateRequest 分类部分更新请求，未携带的字段保持原值
type CategoryUpdateRequest struct {
	Name        *string `json:"name"`
	ImageURL    *string `json:"imageURL"`
	Description *string `json:"description"`
}

// GetAdminCategories 获取后台分类列表（含关联文章数）
func (h *Handler) GetAdminCategories(c *gin.Context) {
	categories, err := h.CategoryService.List(true)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch categories", err)
		return
	}
	response.Success(c, categories)
}

// GetAdminCategory 获取后台分类详情
func (h *Handler) GetAdminCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.BadRequest(c, "category id is required")
		return
	}

	category, err := h.CategoryService.GetByID(id)
	if err != nil {
		respondServiceError(c, err, "failed to fetch category")
		return
	}
	response.Success(c, category)
}

// CreateCategory 创建分类，名称唯一
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	category, err := h.CategoryService.Create(service.CategoryInput{
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err, "failed to create category")
		return
	}

	h.invalidatePublicCategoryCache(c)
	response.Success(c, category)
}

// UpdateCategory 部分更新分类
func (h *Handler) UpdateCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.BadRequest(c, "category id is required")
		return
	}

	var req CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	category, err := h.CategoryService.Update(id, service.CategoryPatch{
		Name:        req.Name,
		ImageURL:    req.ImageURL,
		Description: req.Description,
	})
	if err != nil {
		respondServiceError(c, err, "failed to update category")
		return
	}

	h.invalidatePublicCategoryCache(c)
	response.Success(c, category)
}

// DeleteCategory 删除分类，被文章引用时拒绝
func (h *Handler) DeleteCategory(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.BadRequest(c, "category id is required")
		return
	}

	if err := h.CategoryService.Delete(id); err != nil {
		respondServiceError(c, err, "failed to delete category")
		return
	}

	h.invalidatePublicCategoryCache(c)
	response.Success(c, gin.H{"message": "deleted"})
}

// invalidatePublicCategoryCache 分类变更后失效公开接口缓存。
// 文章列表内嵌分类名称，因此文章缓存一并失效。
func (h *Handler) invalidatePublicCategoryCache(c *gin.Context) {
	err := cache.Del(c.Request.Context(),
		constants.CachePublicCategories,
		constants.CachePublishedPosts,
	)
	if err != nil {
		requestLog(c).Warnw("public_cache_invalidate_failed", "error", err)
	}
}
