package adminview

import (
	"context"
	"strings"

	"github.com/inkwell-cms/inkwell/internal/client"
	"github.com/inkwell-cms/inkwell/internal/constants"
	"github.com/inkwell-cms/inkwell/internal/models"
)

// PostStore 文章复制所需的读写操作，由 API 客户端实现
type PostStore interface {
	GetAdminPost(ctx context.Context, id string) (*models.Post, error)
	CreatePost(ctx context.Context, input client.PostRequest) (*models.Post, error)
}

// PostDeleter 文章删除操作，由 API 客户端实现
type PostDeleter interface {
	DeletePost(ctx context.Context, id string) error
}

// PostListView 后台文章列表视图。
// 搜索与分类过滤在内存中对整份集合重算，不逐键请求服务端。
type PostListView struct {
	items          []models.Post
	search         string
	categoryFilter string
	selected       selection
}

// NewPostListView 创建文章列表视图
func NewPostListView() *PostListView {
	return &PostListView{
		categoryFilter: FilterAllCategories,
		selected:       newSelection(),
	}
}

// SetItems 置入整份文章集合，勾选状态清空
func (v *PostListView) SetItems(items []models.Post) {
	v.items = items
	v.selected.clear()
}

// SetSearch 设置标题搜索词
func (v *PostListView) SetSearch(query string) {
	v.search = query
}

// SetCategoryFilter 设置分类过滤，FilterAllCategories 表示不过滤
func (v *PostListView) SetCategoryFilter(categoryID string) {
	if strings.TrimSpace(categoryID) == "" {
		categoryID = FilterAllCategories
	}
	v.categoryFilter = categoryID
}

// Visible 返回搜索与过滤后的文章
func (v *PostListView) Visible() []models.Post {
	query := strings.ToLower(strings.TrimSpace(v.search))
	visible := make([]models.Post, 0, len(v.items))
	for _, post := range v.items {
		if query != "" && !strings.Contains(strings.ToLower(post.Title), query) {
			continue
		}
		if v.categoryFilter != FilterAllCategories && !postHasCategory(post, v.categoryFilter) {
			continue
		}
		visible = append(visible, post)
	}
	return visible
}

func postHasCategory(post models.Post, categoryID string) bool {
	for _, category := range post.Categories {
		if category.ID == categoryID {
			return true
		}
	}
	return false
}

// ToggleSelect 切换单篇文章的勾选状态
func (v *PostListView) ToggleSelect(id string) {
	v.selected.toggle(id)
}

// Selected 判断文章是否被勾选
func (v *PostListView) Selected(id string) bool {
	return v.selected.contains(id)
}

// SelectedIDs 返回已勾选的文章 ID
func (v *PostListView) SelectedIDs() []string {
	visible := v.Visible()
	ids := make([]string, 0, v.selected.size())
	for _, post := range visible {
		if v.selected.contains(post.ID) {
			ids = append(ids, post.ID)
		}
	}
	return ids
}

// ToggleSelectAll 在「全不选」与「当前过滤结果全选」之间切换
func (v *PostListView) ToggleSelectAll() {
	visible := v.Visible()
	if v.selected.size() == len(visible) && len(visible) > 0 {
		v.selected.clear()
		return
	}
	ids := make([]string, 0, len(visible))
	for _, post := range visible {
		ids = append(ids, post.ID)
	}
	v.selected.setAll(ids)
}

// BulkDelete 并发删除所有勾选文章，完成后清空勾选。
// 调用方应在返回后重新拉取列表。
func (v *PostListView) BulkDelete(ctx context.Context, deleter PostDeleter) error {
	err := bulkDelete(ctx, v.SelectedIDs(), deleter.DeletePost)
	v.selected.clear()
	return err
}

// DuplicatePost 复制文章：读取原文后以「标题 + 复制后缀」创建一篇草稿，
// 分类集合原样继承，由客户端编排，不是服务端路由。
func DuplicatePost(ctx context.Context, store PostStore, id string) (*models.Post, error) {
	post, err := store.GetAdminPost(ctx, id)
	if err != nil {
		return nil, err
	}

	published := false
	return store.CreatePost(ctx, client.PostRequest{
		Title:         post.Title + constants.DuplicateTitleSuffix,
		Content:       post.Content,
		CoverImageURL: post.CoverImageURL,
		CategoryIDs:   post.CategoryIDs(),
		Published:     &published,
	})
}
