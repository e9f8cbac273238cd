package service

import (
	"strings"
	"time"

	"github.com/inkwell-cms/inkwell/internal/constants"
	"github.com/inkwell-cms/inkwell/internal/logger"
	"github.com/inkwell-cms/inkwell/internal/models"
	"github.com/inkwell-cms/inkwell/internal/queue"
	"github.com/inkwell-cms/inkwell/internal/repository"
)

// CategoryService 分类业务服务
type CategoryService struct {
	repo           repository.CategoryRepository
	queueClient    *queue.Client
	trashRetention time.Duration
}

// NewCategoryService 创建分类服务
func NewCategoryService(repo repository.CategoryRepository, queueClient *queue.Client, trashRetention time.Duration) *CategoryService {
	return &CategoryService{
		repo:           repo,
		queueClient:    queueClient,
		trashRetention: trashRetention,
	}
}

// CategoryInput 创建分类输入
type CategoryInput struct {
	Name        string
	ImageURL    string
	Description string
}

// CategoryPatch 部分更新分类输入，nil 字段保持原值
type CategoryPatch struct {
	Name        *string
	ImageURL    *string
	Description *string
}

// List 获取分类列表，按名称升序。withCounts 时附带关联文章数。
func (s *CategoryService) List(withCounts bool) ([]models.Category, error) {
	return s.repo.List(withCounts)
}

// GetByID 获取分类详情
func (s *CategoryService) GetByID(id string) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

// Create 创建分类。名称去除首尾空白后必须非空且全局唯一。
func (s *CategoryService) Create(input CategoryInput) (*models.Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		verr := newValidationError()
		verr.add("name", "name is required")
		return nil, verr
	}

	count, err := s.repo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}

	category := models.Category{
		Name:        name,
		ImageURL:    input.ImageURL,
		Description: input.Description,
	}
	if err := s.repo.Create(&category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Update 部分更新分类，改名同样执行唯一性检查
func (s *CategoryService) Update(id string, patch CategoryPatch) (*models.Category, error) {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}

	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			verr := newValidationError()
			verr.add("name", "name is required")
			return nil, verr
		}
		count, err := s.repo.CountByName(name, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrNameExists
		}
		category.Name = name
	}
	if patch.ImageURL != nil {
		category.ImageURL = *patch.ImageURL
	}
	if patch.Description != nil {
		category.Description = *patch.Description
	}

	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete 删除分类。被文章引用的分类拒绝删除，调用方需先解除关联。
func (s *CategoryService) Delete(id string) error {
	category, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if category == nil {
		return ErrNotFound
	}

	count, err := s.repo.CountPosts(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.enqueuePurge(id)
	return nil
}

func (s *CategoryService) enqueuePurge(id string) {
	if !s.queueClient.Enabled() {
		return
	}
	err := s.queueClient.EnqueueTrashPurge(queue.TrashPurgePayload{
		Entity: constants.TrashEntityCategory,
		ID:     id,
	}, s.trashRetention)
	if err != nil {
		logger.Warnw("category_purge_enqueue_failed", "category_id", id, "error", err)
	}
}
