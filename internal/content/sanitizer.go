package content

import (
	"github.com/microcosm-cc/bluemonday"
)

// allowedTags 公开渲染允许的标签白名单，名单之外的标记一律剥离
var allowedTags = []string{
	"b", "strong", "i", "em", "u", "br", "p", "div", "h1", "h2", "h3",
}

// Sanitizer 富文本消毒器。文章正文在进入公开渲染面之前必须经过 Sanitize，
// 白名单外的标签与所有属性都会被剥离，不会被执行。
type Sanitizer struct {
	policy *bluemonday.Policy
}

// NewSanitizer 创建消毒器
func NewSanitizer() *Sanitizer {
	policy := bluemonday.NewPolicy()
	policy.AllowElements(allowedTags...)
	return &Sanitizer{policy: policy}
}

// Sanitize 清洗富文本
func (s *Sanitizer) Sanitize(raw string) string {
	if raw == "" {
		return ""
	}
	return s.policy.Sanitize(raw)
}
