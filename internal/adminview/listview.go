// Package adminview 实现后台列表视图的内存侧逻辑：
// 搜索、过滤、排序、勾选与批量操作，数据由 API 客户端拉取后整体置入。
package adminview

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"
)

// FilterAllCategories 分类过滤的「全部」哨兵值
const FilterAllCategories = "all"

// ErrBulkDeleteFailed 批量删除中任一请求失败时返回的统一错误
var ErrBulkDeleteFailed = errors.New("one or more deletes failed")

// selection 已勾选 ID 集合
type selection struct {
	ids map[string]struct{}
}

func newSelection() selection {
	return selection{ids: make(map[string]struct{})}
}

func (s *selection) toggle(id string) {
	if _, ok := s.ids[id]; ok {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
}

func (s *selection) contains(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *selection) clear() {
	s.ids = make(map[string]struct{})
}

func (s *selection) setAll(ids []string) {
	s.clear()
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
}

func (s *selection) size() int {
	return len(s.ids)
}

// bulkDelete 对每个 ID 并发发起一次删除。
// 任一请求失败只返回统一错误，不聚合明细，完成后由调用方刷新列表。
func bulkDelete(ctx context.Context, ids []string, del func(context.Context, string) error) error {
	if len(ids) == 0 {
		return nil
	}
	g, ctx := errgroup.WithContext(ctx)
	for _, id := range ids {
		id := id
		g.Go(func() error {
			return del(ctx, id)
		})
	}
	if err := g.Wait(); err != nil {
		return ErrBulkDeleteFailed
	}
	return nil
}
