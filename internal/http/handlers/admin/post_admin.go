package admin

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/inkwell-cms/inkwell/internal/cache"
	"github.com/inkwell-cms/inkwell/internal/constants"
	handlershared "github.com/inkwell-cms/inkwell/internal/http/handlers/shared"
	"github.com/inkwell-cms/inkwell/internal/http/response"
	"github.com/inkwell-cms/inkwell/internal/service"

	"github.com/gin-gonic/gin"
)

// PostUpsertRequest 文章创建/更新请求
type PostUpsertRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	CoverImageURL string   `json:"coverImageURL"`
	CategoryIDs   []string `json:"categoryIds"`
	Published     *bool    `json:"published"`
	// ExpectedVersion 可选，携带时启用乐观并发检查
	ExpectedVersion *uint `json:"expectedVersion"`
}

func (r PostUpsertRequest) toInput() service.PostInput {
	return service.PostInput{
		Title:           r.Title,
		Content:         r.Content,
		CoverImageURL:   r.CoverImageURL,
		CategoryIDs:     r.CategoryIDs,
		Published:       r.Published,
		ExpectedVersion: r.ExpectedVersion,
	}
}

// GetAdminPosts 获取后台文章列表（草稿 + 已发布）
func (h *Handler) GetAdminPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "0"))
	page, pageSize = handlershared.NormalizePagination(page, pageSize)
	search := c.Query("search")

	posts, total, err := h.PostService.ListAdmin(search, page, pageSize)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch posts", err)
		return
	}

	if pageSize == 0 {
		response.Success(c, posts)
		return
	}
	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, posts, pagination)
}

// GetAdminPost 获取后台文章详情（原始正文，供编辑器加载）
func (h *Handler) GetAdminPost(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.BadRequest(c, "post id is required")
		return
	}

	post, err := h.PostService.GetAdmin(id)
	if err != nil {
		respondServiceError(c, err, "failed to fetch post")
		return
	}
	response.Success(c, post)
}

// CreatePost 创建文章，默认为草稿
func (h *Handler) CreatePost(c *gin.Context) {
	var req PostUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.PostService.Create(req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to create post")
		return
	}

	h.invalidatePublicPostCache(c, post.ID)
	response.Success(c, post)
}

// UpdatePost 全量覆盖文章，分类关联整体替换
func (h *Handler) UpdatePost(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.BadRequest(c, "post id is required")
		return
	}

	var req PostUpsertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	post, err := h.PostService.Update(id, req.toInput())
	if err != nil {
		respondServiceError(c, err, "failed to update post")
		return
	}

	h.invalidatePublicPostCache(c, id)
	response.Success(c, post)
}

// DeletePost 删除文章
func (h *Handler) DeletePost(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.BadRequest(c, "post id is required")
		return
	}

	if err := h.PostService.Delete(id); err != nil {
		respondServiceError(c, err, "failed to delete post")
		return
	}

	h.invalidatePublicPostCache(c, id)
	response.Success(c, gin.H{"message": "deleted"})
}

// invalidatePublicPostCache 文章变更后失效公开接口缓存。
// 分类的派生文章数随关联变化，因此分类缓存一并失效。
func (h *Handler) invalidatePublicPostCache(c *gin.Context, postID string) {
	err := cache.Del(c.Request.Context(),
		constants.CachePublishedPosts,
		constants.CachePublishedPostItem+":"+postID,
		constants.CachePublicCategories,
	)
	if err != nil {
		requestLog(c).Warnw("public_cache_invalidate_failed", "post_id", postID, "error", err)
	}
}
