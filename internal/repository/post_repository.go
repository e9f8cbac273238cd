package repository

import (
	"errors"
	"strings"
	"time"

	"github.com/inkwell-cms/inkwell/internal/models"

	"gorm.io/gorm"
)

// PostRepository 文章数据访问接口
type PostRepository interface {
	List(filter PostListFilter) ([]models.Post, int64, error)
	GetByID(id string) (*models.Post, error)
	Create(post *models.Post, categoryIDs []string) error
	Update(post *models.Post, categoryIDs []string, expectedVersion *uint) error
	Delete(id string) error
	PurgeDeleted(id string, before time.Time) error
}

// GormPostRepository GORM 实现
type GormPostRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建文章仓库
func NewPostRepository(db *gorm.DB) *GormPostRepository {
	return &GormPostRepository{db: db}
}

// List 文章列表，默认按创建时间倒序
func (r *GormPostRepository) List(filter PostListFilter) ([]models.Post, int64, error) {
	var posts []models.Post
	query := r.db.Model(&models.Post{})

	if filter.OnlyPublished {
		query = query.Where("published = ?", true)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyPagination(query, filter.Page, filter.PageSize)

	orderBy := filter.OrderBy
	if orderBy == "" {
		orderBy = "created_at DESC"
	}
	query = query.Order(orderBy)

	if filter.WithCategories {
		query = query.Preload("Categories", func(db *gorm.DB) *gorm.DB {
			return db.Order("categories.name ASC")
		})
	}

	if err := query.Find(&posts).Error; err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

// GetByID 根据 ID 获取文章（含关联分类）
func (r *GormPostRepository) GetByID(id string) (*models.Post, error) {
	var post models.Post
	err := r.db.Preload("Categories", func(db *gorm.DB) *gorm.DB {
		return db.Order("categories.name ASC")
	}).Where("id = ?", id).First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

// Create 创建文章及其分类关联，单事务提交
func (r *GormPostRepository) Create(post *models.Post, categoryIDs []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Categories").Create(post).Error; err != nil {
			return err
		}
		return replaceCategoryLinks(tx, post.ID, categoryIDs)
	})
}

// Update 全量覆盖文章字段并替换整个分类关联集合。
// 关联的删除与重建在同一事务内提交，读取方不会观察到中间状态。
// expectedVersion 非空时执行乐观并发检查，版本不符返回 ErrStaleRecord。
func (r *GormPostRepository) Update(post *models.Post, categoryIDs []string, expectedVersion *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Post{}).Where("id = ?", post.ID)
		if expectedVersion != nil {
			query = query.Where("version = ?", *expectedVersion)
		}
		result := query.Updates(map[string]interface{}{
			"title":           post.Title,
			"content":         post.Content,
			"cover_image_url": post.CoverImageURL,
			"published":       post.Published,
			"version":         gorm.Expr("version + 1"),
		})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrStaleRecord
		}

		if err := tx.Where("post_id = ?", post.ID).Delete(&models.PostCategory{}).Error; err != nil {
			return err
		}
		return replaceCategoryLinks(tx, post.ID, categoryIDs)
	})
}

// Delete 软删除文章并移除其分类关联
func (r *GormPostRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostCategory{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Post{}).Error
	})
}

// PurgeDeleted 物理清除在 before 之前软删除的文章
func (r *GormPostRepository) PurgeDeleted(id string, before time.Time) error {
	return r.db.Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL AND deleted_at < ?", id, before).
		Delete(&models.Post{}).Error
}

func replaceCategoryLinks(tx *gorm.DB, postID string, categoryIDs []string) error {
	if len(categoryIDs) == 0 {
		return nil
	}
	links := make([]models.PostCategory, 0, len(categoryIDs))
	for _, categoryID := range categoryIDs {
		links = append(links, models.PostCategory{
			PostID:     postID,
			CategoryID: categoryID,
		})
	}
	return tx.Create(&links).Error
}
