package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/inkwell-cms/inkwell/internal/constants"
	"github.com/inkwell-cms/inkwell/internal/models"
	"github.com/inkwell-cms/inkwell/internal/provider"
	"github.com/inkwell-cms/inkwell/internal/queue"
	"github.com/inkwell-cms/inkwell/internal/repository"

	"github.com/glebarez/sqlite"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func setupWorkerTest(t *testing.T) (*Consumer, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:worker_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}

	container := &provider.Container{
		PostRepo:     repository.NewPostRepository(db),
		CategoryRepo: repository.NewCategoryRepository(db),
	}
	return NewConsumer(container), db
}

func newTrashPurgeTask(t *testing.T, entity, id string) *asynq.Task {
	t.Helper()

	data, err := json.Marshal(queue.TrashPurgePayload{Entity: entity, ID: id})
	if err != nil {
		t.Fatalf("marshal payload failed: %v", err)
	}
	return asynq.NewTask(queue.TaskTrashPurge, data)
}

func TestHandleTrashPurgePost(t *testing.T) {
	consumer, db := setupWorkerTest(t)

	post := &models.Post{Title: "gone", Content: "<p>x</p>"}
	if err := db.Create(post).Error; err != nil {
		t.Fatalf("create post failed: %v", err)
	}
	if err := db.Delete(&models.Post{}, "id = ?", post.ID).Error; err != nil {
		t.Fatalf("soft delete failed: %v", err)
	}
	// 保留期回溯，使记录到期
	expired := time.Now().Add(-time.Hour)
	if err := db.Unscoped().Model(&models.Post{}).Where("id = ?", post.ID).
		Update("deleted_at", expired).Error; err != nil {
		t.Fatalf("backdate deleted_at failed: %v", err)
	}

	task := newTrashPurgeTask(t, constants.TrashEntityPost, post.ID)
	if err := consumer.handleTrashPurge(context.Background(), task); err != nil {
		t.Fatalf("handle trash purge failed: %v", err)
	}

	var count int64
	if err := db.Unscoped().Model(&models.Post{}).Where("id = ?", post.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expired record should be hard deleted, still %d rows", count)
	}
}

func TestHandleTrashPurgeSkipsLiveRecord(t *testing.T) {
	consumer, db := setupWorkerTest(t)

	category := &models.Category{Name: "keep"}
	if err := db.Create(category).Error; err != nil {
		t.Fatalf("create category failed: %v", err)
	}

	task := newTrashPurgeTask(t, constants.TrashEntityCategory, category.ID)
	if err := consumer.handleTrashPurge(context.Background(), task); err != nil {
		t.Fatalf("handle trash purge failed: %v", err)
	}

	var count int64
	if err := db.Unscoped().Model(&models.Category{}).Where("id = ?", category.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("live record must survive purge, got %d rows", count)
	}
}

func TestHandleTrashPurgeIgnoresUnknownEntity(t *testing.T) {
	consumer, _ := setupWorkerTest(t)

	task := newTrashPurgeTask(t, "unknown", "some-id")
	if err := consumer.handleTrashPurge(context.Background(), task); err != nil {
		t.Fatalf("unknown entity should be ignored, got %v", err)
	}

	blank := newTrashPurgeTask(t, constants.TrashEntityPost, "  ")
	if err := consumer.handleTrashPurge(context.Background(), blank); err != nil {
		t.Fatalf("blank id should be ignored, got %v", err)
	}
}
