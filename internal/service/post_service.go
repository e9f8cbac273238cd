package service

import (
	"errors"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/inkwell-cms/inkwell/internal/constants"
	"github.com/inkwell-cms/inkwell/internal/logger"
	"github.com/inkwell-cms/inkwell/internal/models"
	"github.com/inkwell-cms/inkwell/internal/queue"
	"github.com/inkwell-cms/inkwell/internal/repository"
)

// PostService 文章业务服务
type PostService struct {
	repo           repository.PostRepository
	categoryRepo   repository.CategoryRepository
	queueClient    *queue.Client
	trashRetention time.Duration
}

// NewPostService 创建文章服务
func NewPostService(repo repository.PostRepository, categoryRepo repository.CategoryRepository, queueClient *queue.Client, trashRetention time.Duration) *PostService {
	return &PostService{
		repo:           repo,
		categoryRepo:   categoryRepo,
		queueClient:    queueClient,
		trashRetention: trashRetention,
	}
}

// PostInput 创建/更新文章输入
type PostInput struct {
	Title         string
	Content       string
	CoverImageURL string
	CategoryIDs   []string
	Published     *bool
	// ExpectedVersion 非空时启用乐观并发检查；为空保持后写覆盖语义
	ExpectedVersion *uint
}

// ListPublic 获取已发布文章列表，按创建时间倒序
func (s *PostService) ListPublic(page, pageSize int) ([]models.Post, int64, error) {
	filter := repository.PostListFilter{
		Page:           page,
		PageSize:       pageSize,
		OnlyPublished:  true,
		WithCategories: true,
	}
	return s.repo.List(filter)
}

// GetPublic 获取公开文章详情。未发布的文章仅在 preview 为 true 时可见，
// preview 只放行读取，不改变发布状态。
func (s *PostService) GetPublic(id string, preview bool) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	if !post.Published && !preview {
		return nil, ErrDraftNotPublished
	}
	return post, nil
}

// ListAdmin 获取后台文章列表（草稿 + 已发布，含分类）
func (s *PostService) ListAdmin(search string, page, pageSize int) ([]models.Post, int64, error) {
	filter := repository.PostListFilter{
		Page:           page,
		PageSize:       pageSize,
		Search:         search,
		WithCategories: true,
	}
	return s.repo.List(filter)
}

// GetAdmin 获取后台文章详情
func (s *PostService) GetAdmin(id string) (*models.Post, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}
	return post, nil
}

// Create 创建文章，默认为草稿
func (s *PostService) Create(input PostInput) (*models.Post, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	published := false
	if input.Published != nil {
		published = *input.Published
	}

	post := models.Post{
		Title:         strings.TrimSpace(input.Title),
		Content:       input.Content,
		CoverImageURL: input.CoverImageURL,
		Published:     published,
	}
	if err := s.repo.Create(&post, input.CategoryIDs); err != nil {
		return nil, err
	}
	return s.repo.GetByID(post.ID)
}

// Update 全量覆盖文章。分类关联集合整体替换为 input.CategoryIDs，
// 不做差量合并。
func (s *PostService) Update(id string, input PostInput) (*models.Post, error) {
	if err := s.validateInput(input); err != nil {
		return nil, err
	}

	post, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrNotFound
	}

	post.Title = strings.TrimSpace(input.Title)
	post.Content = input.Content
	post.CoverImageURL = input.CoverImageURL
	if input.Published != nil {
		post.Published = *input.Published
	}

	if err := s.repo.Update(post, input.CategoryIDs, input.ExpectedVersion); err != nil {
		if errors.Is(err, repository.ErrStaleRecord) {
			return nil, ErrVersionConflict
		}
		return nil, err
	}
	return s.repo.GetByID(id)
}

// Delete 删除文章（软删除），并安排保留期满后的物理清理
func (s *PostService) Delete(id string) error {
	post, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrNotFound
	}
	if err := s.repo.Delete(id); err != nil {
		return err
	}
	s.enqueuePurge(id)
	return nil
}

func (s *PostService) enqueuePurge(id string) {
	if !s.queueClient.Enabled() {
		return
	}
	err := s.queueClient.EnqueueTrashPurge(queue.TrashPurgePayload{
		Entity: constants.TrashEntityPost,
		ID:     id,
	}, s.trashRetention)
	if err != nil {
		logger.Warnw("post_purge_enqueue_failed", "post_id", id, "error", err)
	}
}

func (s *PostService) validateInput(input PostInput) error {
	verr := newValidationError()

	title := strings.TrimSpace(input.Title)
	titleLen := utf8.RuneCountInString(title)
	if titleLen < constants.PostTitleMinLen {
		verr.add("title", "title is required")
	} else if titleLen > constants.PostTitleMaxLen {
		verr.add("title", "title is too long")
	}

	if strings.TrimSpace(input.Content) == "" {
		verr.add("content", "content is required")
	}

	if !isValidHTTPURL(input.CoverImageURL) {
		verr.add("coverImageURL", "a valid URL is required")
	}

	if len(input.CategoryIDs) == 0 {
		verr.add("categoryIds", "at least one category is required")
	} else if err := s.checkCategoriesExist(input.CategoryIDs, verr); err != nil {
		return err
	}

	return verr.orNil()
}

// checkCategoriesExist 校验每个分类 ID 均可解析
func (s *PostService) checkCategoriesExist(ids []string, verr *ValidationError) error {
	unique := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := unique[id]; dup {
			verr.add("categoryIds", "duplicate category id")
			return nil
		}
		unique[id] = struct{}{}
	}
	categories, err := s.categoryRepo.GetByIDs(ids)
	if err != nil {
		return err
	}
	if len(categories) != len(ids) {
		verr.add("categoryIds", "unknown category id")
	}
	return nil
}

func isValidHTTPURL(raw string) bool {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}
