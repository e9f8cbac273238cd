package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/inkwell-cms/inkwell/internal/models"
)

// CategoryRequest 分类创建请求
type CategoryRequest struct {
	Name        string `json:"name"`
	ImageURL    string `json:"imageURL"`
	Description string `json:"description"`
}

// CategoryPatch 分类部分更新请求，nil 字段不修改
type CategoryPatch struct {
	Name        *string `json:"name,omitempty"`
	ImageURL    *string `json:"imageURL,omitempty"`
	Description *string `json:"description,omitempty"`
}

// ListCategories 获取公开分类列表
func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/v1/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListAdminCategories 获取后台分类列表（含关联文章数）
func (c *Client) ListAdminCategories(ctx context.Context) ([]models.Category, error) {
	var categories []models.Category
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/categories", nil, nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// GetAdminCategory 获取后台分类详情
func (c *Client) GetAdminCategory(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodGet, "/api/v1/admin/categories/"+url.PathEscape(id), nil, nil, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// CreateCategory 创建分类
func (c *Client) CreateCategory(ctx context.Context, input CategoryRequest) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPost, "/api/v1/admin/categories", nil, input, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// UpdateCategory 部分更新分类
func (c *Client) UpdateCategory(ctx context.Context, id string, patch CategoryPatch) (*models.Category, error) {
	var category models.Category
	if err := c.do(ctx, http.MethodPut, "/api/v1/admin/categories/"+url.PathEscape(id), nil, patch, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// DeleteCategory 删除分类
func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/v1/admin/categories/"+url.PathEscape(id), nil, nil, nil)
}
