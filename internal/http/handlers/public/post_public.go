package public

import (
	"net/http"
	"strings"
	"time"

	"github.com/inkwell-cms/inkwell/internal/cache"
	"github.com/inkwell-cms/inkwell/internal/constants"
	"github.com/inkwell-cms/inkwell/internal/http/response"
	"github.com/inkwell-cms/inkwell/internal/models"

	"github.com/gin-gonic/gin"
)

// GetPosts 获取已发布文章列表，按创建时间倒序
func (h *Handler) GetPosts(c *gin.Context) {
	ctx := c.Request.Context()

	var cached []models.Post
	hit, err := cache.GetJSON(ctx, constants.CachePublishedPosts, &cached)
	if err != nil {
		requestLog(c).Warnw("public_posts_cache_get_failed", "error", err)
	}
	if hit {
		response.Success(c, cached)
		return
	}

	posts, _, err := h.PostService.ListPublic(0, 0)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "failed to fetch posts", err)
		return
	}
	for i := range posts {
		posts[i].Content = h.Sanitizer.Sanitize(posts[i].Content)
	}

	if err := cache.SetJSON(ctx, constants.CachePublishedPosts, posts, h.cacheTTL()); err != nil {
		requestLog(c).Warnw("public_posts_cache_set_failed", "error", err)
	}
	response.Success(c, posts)
}

// GetPost 获取文章详情。
// preview=true 时跳过缓存并放行草稿，供后台预览使用。
func (h *Handler) GetPost(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if id == "" {
		response.BadRequest(c, "post id is required")
		return
	}
	preview := c.Query("preview") == "true"

	cacheKey := constants.CachePublishedPostItem + ":" + id
	if !preview {
		var cached models.Post
		hit, err := cache.GetJSON(c.Request.Context(), cacheKey, &cached)
		if err != nil {
			requestLog(c).Warnw("public_post_cache_get_failed", "post_id", id, "error", err)
		}
		if hit {
			response.Success(c, cached)
			return
		}
	}

	post, err := h.PostService.GetPublic(id, preview)
	if err != nil {
		respondServiceError(c, err, "failed to fetch post")
		return
	}
	post.Content = h.Sanitizer.Sanitize(post.Content)

	if !preview {
		if err := cache.SetJSON(c.Request.Context(), cacheKey, post, h.cacheTTL()); err != nil {
			requestLog(c).Warnw("public_post_cache_set_failed", "post_id", id, "error", err)
		}
	}
	response.Success(c, post)
}

func (h *Handler) cacheTTL() time.Duration {
	seconds := h.Config.Content.CacheTTLSeconds
	if seconds <= 0 {
		seconds = 60
	}
	return time.Duration(seconds) * time.Second
}
