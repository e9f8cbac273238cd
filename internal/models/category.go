package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category 分类表
type Category struct {
	ID          string         `gorm:"primarykey;size:36" json:"id"`              // 主键（UUID）
	Name        string         `gorm:"uniqueIndex;not null" json:"name"`          // 分类名称（唯一）
	ImageURL    string         `gorm:"type:varchar(500)" json:"imageURL"`         // 分类图片
	Description string         `json:"description"`                               // 分类描述
	CreatedAt   time.Time      `gorm:"index" json:"createdAt"`                    // 创建时间
	UpdatedAt   time.Time      `json:"updatedAt"`                                 // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                            // 软删除时间
	PostCount   int64          `gorm:"->;-:migration" json:"postCount,omitempty"` // 关联文章数（查询时派生）
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate 创建前生成 UUID 主键
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
