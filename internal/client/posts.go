package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/inkwell-cms/inkwell/internal/models"
)

// PostRequest 文章创建/更新请求
type PostRequest struct {
	Title         string   `json:"title"`
	Content       string   `json:"content"`
	CoverImageURL string   `json:"coverImageURL"`
	CategoryIDs   []string `json:"categoryIds"`
	Published     *bool    `json:"published,omitempty"`
	// ExpectedVersion 非空时服务端校验版本号，冲突返回 409
	ExpectedVersion *uint `json:"expectedVersion,omitempty"`
}

// ListPosts 获取已发布文章列表
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts", nil, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetPost 获取文章详情，preview 为 true 时可读取草稿
func (c *Client) GetPost(ctx context.Context, id string, preview bool) (*models.Post, error) {
	query := url.Values{}
	if preview {
		query.Set("preview", "true")
	}
	var post models.Post
	if err := c.do(ctx, http.MethodGet, "/api/v1/posts/"+url.PathEscape(id), query, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// ListAdminPosts 获取后台文章列表，search 为空时返回全部
func (c *Client) ListAdminPosts(ctx context.Context, search string) ([]models.Post, error) {
	query := url.Values{}
	if search != "" {
		query.Set("search", search)
	}
	var posts []models.Post
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/posts", query, nil, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

// GetAdminPost 获取后台文章详情
func (c *Client) GetAdminPost(ctx context.Context, id string) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/posts/"+url.PathEscape(id), nil, nil, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// CreatePost 创建文章
func (c *Client) CreatePost(ctx context.Context, input PostRequest) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/posts", nil, input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// UpdatePost 全量更新文章
func (c *Client) UpdatePost(ctx context.Context, id string, input PostRequest) (*models.Post, error) {
	var post models.Post
	if err := c.do(ctx, http.MethodPut, "/api/v1/admin/posts/"+url.PathEscape(id), nil, input, &post); err != nil {
		return nil, err
	}
	return &post, nil
}

// DeletePost 删除文章
func (c *Client) DeletePost(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/admin/posts/"+url.PathEscape(id), nil, nil, nil)
}
