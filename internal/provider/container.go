package provider

import (
	"time"

	"github.com/inkwell-cms/inkwell/internal/cache"
	"github.com/inkwell-cms/inkwell/internal/config"
	"github.com/inkwell-cms/inkwell/internal/content"
	"github.com/inkwell-cms/inkwell/internal/logger"
	"github.com/inkwell-cms/inkwell/internal/models"
	"github.com/inkwell-cms/inkwell/internal/queue"
	"github.com/inkwell-cms/inkwell/internal/repository"
	"github.com/inkwell-cms/inkwell/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	PostRepo     repository.PostRepository
	CategoryRepo repository.CategoryRepository

	// Services
	PostService     *service.PostService
	CategoryService *service.CategoryService

	// 公开渲染面的富文本消毒器
	Sanitizer *content.Sanitizer
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	db := models.DB
	c.PostRepo = repository.NewPostRepository(db)
	c.CategoryRepo = repository.NewCategoryRepository(db)

	trashRetention := time.Duration(cfg.Content.TrashRetentionHours) * time.Hour
	c.PostService = service.NewPostService(c.PostRepo, c.CategoryRepo, c.QueueClient, trashRetention)
	c.CategoryService = service.NewCategoryService(c.CategoryRepo, c.QueueClient, trashRetention)

	c.Sanitizer = content.NewSanitizer()

	return c
}
