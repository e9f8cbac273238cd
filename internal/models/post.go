package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Post 文章表
type Post struct {
	ID            string         `gorm:"primarykey;size:36" json:"id"`                   // 主键（UUID）
	Title         string         `gorm:"not null;index" json:"title"`                    // 标题
	Content       string         `gorm:"not null" json:"content"`                        // 正文（富文本，公开渲染前需消毒）
	CoverImageURL string         `gorm:"type:varchar(500)" json:"coverImageURL"`         // 封面图片
	Published     bool           `gorm:"default:false;index" json:"published"`           // 是否发布
	Version       uint           `gorm:"default:1" json:"version"`                       // 乐观并发版本号，每次更新 +1
	CreatedAt     time.Time      `gorm:"index" json:"createdAt"`                         // 创建时间
	UpdatedAt     time.Time      `json:"updatedAt"`                                      // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                 // 软删除时间
	Categories    []Category     `gorm:"many2many:post_categories" json:"categories"`    // 关联分类
}

// TableName 指定表名
func (Post) TableName() string {
	return "posts"
}

// BeforeCreate 创建前生成 UUID 主键
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// CategoryIDs 返回关联分类 ID 列表
func (p *Post) CategoryIDs() []string {
	ids := make([]string, 0, len(p.Categories))
	for _, category := range p.Categories {
		ids = append(ids, category.ID)
	}
	return ids
}

// PostCategory 文章-分类关联表，(post_id, category_id) 唯一
type PostCategory struct {
	PostID     string    `gorm:"primarykey;size:36" json:"postId"`
	CategoryID string    `gorm:"primarykey;size:36" json:"categoryId"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName 指定表名
func (PostCategory) TableName() string {
	return "post_categories"
}
