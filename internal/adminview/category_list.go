package adminview

import (
	"context"
	"sort"
	"strings"

	"github.com/inkwell-cms/inkwell/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// CategoryDeleter 分类删除操作，由 API 客户端实现
type CategoryDeleter interface {
	DeleteCategory(ctx context.Context, id string) error
}

// CategoryListView 后台分类列表视图，按名称做本地化排序
type CategoryListView struct {
	items    []models.Category
	search   string
	desc     bool
	collator *collate.Collator
	selected selection
}

// NewCategoryListView 创建分类列表视图，tag 决定名称排序的语言环境
func NewCategoryListView(tag language.Tag) *CategoryListView {
	return &CategoryListView{
		collator: collate.New(tag),
		selected: newSelection(),
	}
}

// SetItems 置入整份分类集合，勾选状态清空
func (v *CategoryListView) SetItems(items []models.Category) {
	v.items = items
	v.selected.clear()
}

// SetSearch 设置名称搜索词
func (v *CategoryListView) SetSearch(query string) {
	v.search = query
}

// SetDescending 设置名称排序方向
func (v *CategoryListView) SetDescending(desc bool) {
	v.desc = desc
}

// Visible 返回搜索过滤并按名称排序后的分类
func (v *CategoryListView) Visible() []models.Category {
	query := strings.ToLower(strings.TrimSpace(v.search))
	visible := make([]models.Category, 0, len(v.items))
	for _, category := range v.items {
		if query != "" && !strings.Contains(strings.ToLower(category.Name), query) {
			continue
		}
		visible = append(visible, category)
	}

	sort.SliceStable(visible, func(i, j int) bool {
		cmp := v.collator.CompareString(visible[i].Name, visible[j].Name)
		if v.desc {
			return cmp > 0
		}
		return cmp < 0
	})
	return visible
}

// ToggleSelect 切换单个分类的勾选状态
func (v *CategoryListView) ToggleSelect(id string) {
	v.selected.toggle(id)
}

// Selected 判断分类是否被勾选
func (v *CategoryListView) Selected(id string) bool {
	return v.selected.contains(id)
}

// SelectedIDs 返回已勾选的分类 ID
func (v *CategoryListView) SelectedIDs() []string {
	visible := v.Visible()
	ids := make([]string, 0, v.selected.size())
	for _, category := range visible {
		if v.selected.contains(category.ID) {
			ids = append(ids, category.ID)
		}
	}
	return ids
}

// ToggleSelectAll 在「全不选」与「当前过滤结果全选」之间切换
func (v *CategoryListView) ToggleSelectAll() {
	visible := v.Visible()
	if v.selected.size() == len(visible) && len(visible) > 0 {
		v.selected.clear()
		return
	}
	ids := make([]string, 0, len(visible))
	for _, category := range visible {
		ids = append(ids, category.ID)
	}
	v.selected.setAll(ids)
}

// BulkDelete 并发删除所有勾选分类，完成后清空勾选
func (v *CategoryListView) BulkDelete(ctx context.Context, deleter CategoryDeleter) error {
	err := bulkDelete(ctx, v.SelectedIDs(), deleter.DeleteCategory)
	v.selected.clear()
	return err
}
