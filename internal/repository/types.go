package repository

import "errors"

// ErrStaleRecord 带版本条件的更新未命中任何行（版本已过期）
var ErrStaleRecord = errors.New("record version is stale")

// PostListFilter 查询文章列表的过滤条件
type PostListFilter struct {
	Page           int
	PageSize       int
	Search         string
	OnlyPublished  bool
	WithCategories bool
	OrderBy        string
}
