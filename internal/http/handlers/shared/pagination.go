package shared

// NormalizePagination 归一化分页参数。pageSize 为 0 表示不分页（整表返回）。
func NormalizePagination(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 0 {
		pageSize = 0
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}
