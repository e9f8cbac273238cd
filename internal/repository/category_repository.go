package repository

import (
	"errors"
	"time"

	"github.com/inkwell-cms/inkwell/internal/models"

	"gorm.io/gorm"
)

// CategoryRepository 分类数据访问接口
type CategoryRepository interface {
	List(withCounts bool) ([]models.Category, error)
	GetByID(id string) (*models.Category, error)
	GetByIDs(ids []string) ([]models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id string) error
	CountByName(name string, excludeID *string) (int64, error)
	CountPosts(categoryID string) (int64, error)
	PurgeDeleted(id string, before time.Time) error
}

// GormCategoryRepository GORM 实现
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository 创建分类仓库
func NewCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// List 分类列表，按名称升序。withCounts 时附带派生的关联文章数。
func (r *GormCategoryRepository) List(withCounts bool) ([]models.Category, error) {
	var categories []models.Category
	query := r.db.Model(&models.Category{}).Order("name ASC")
	if withCounts {
		query = query.Select("categories.*, " +
			"(SELECT COUNT(*) FROM post_categories pc WHERE pc.category_id = categories.id) AS post_count")
	}
	if err := query.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// GetByID 根据 ID 获取分类
func (r *GormCategoryRepository) GetByID(id string) (*models.Category, error) {
	var category models.Category
	if err := r.db.Where("id = ?", id).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

// GetByIDs 批量获取分类
func (r *GormCategoryRepository) GetByIDs(ids []string) ([]models.Category, error) {
	if len(ids) == 0 {
		return []models.Category{}, nil
	}
	var categories []models.Category
	if err := r.db.Where("id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// Create 创建分类
func (r *GormCategoryRepository) Create(category *models.Category) error {
	return r.db.Create(category).Error
}

// Update 更新分类
func (r *GormCategoryRepository) Update(category *models.Category) error {
	return r.db.Save(category).Error
}

// Delete 软删除分类
func (r *GormCategoryRepository) Delete(id string) error {
	return r.db.Where("id = ?", id).Delete(&models.Category{}).Error
}

// CountByName 统计同名分类数量，excludeID 用于更新时排除自身
func (r *GormCategoryRepository) CountByName(name string, excludeID *string) (int64, error) {
	var count int64
	query := r.db.Model(&models.Category{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountPosts 统计引用某分类的文章数
func (r *GormCategoryRepository) CountPosts(categoryID string) (int64, error) {
	var count int64
	if err := r.db.Model(&models.PostCategory{}).Where("category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// PurgeDeleted 物理清除在 before 之前软删除的分类
func (r *GormCategoryRepository) PurgeDeleted(id string, before time.Time) error {
	return r.db.Unscoped().
		Where("id = ? AND deleted_at IS NOT NULL AND deleted_at < ?", id, before).
		Delete(&models.Category{}).Error
}
