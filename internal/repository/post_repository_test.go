package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/inkwell-cms/inkwell/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupRepoTest(t *testing.T) (*gorm.DB, *GormPostRepository, *GormCategoryRepository) {
	t.Helper()

	dsn := fmt.Sprintf("file:post_repo_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if err := models.Migrate(db); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	return db, NewPostRepository(db), NewCategoryRepository(db)
}

func createTestCategory(t *testing.T, repo *GormCategoryRepository, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	if err := repo.Create(category); err != nil {
		t.Fatalf("create category %s failed: %v", name, err)
	}
	return category
}

func countJoinRows(t *testing.T, db *gorm.DB, postID string) int64 {
	t.Helper()
	var count int64
	if err := db.Model(&models.PostCategory{}).Where("post_id = ?", postID).Count(&count).Error; err != nil {
		t.Fatalf("count join rows failed: %v", err)
	}
	return count
}

func TestPostCreateWritesJoinRows(t *testing.T) {
	db, postRepo, categoryRepo := setupRepoTest(t)
	catA := createTestCategory(t, categoryRepo, "a")
	catB := createTestCategory(t, categoryRepo, "b")

	post := &models.Post{Title: "t", Content: "c", CoverImageURL: "https://example.com/c.png"}
	if err := postRepo.Create(post, []string{catA.ID, catB.ID}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if post.ID == "" {
		t.Fatalf("post id should be generated")
	}
	if got := countJoinRows(t, db, post.ID); got != 2 {
		t.Fatalf("join rows want 2 got %d", got)
	}
}

func TestPostUpdateReplacesNotMerges(t *testing.T) {
	db, postRepo, categoryRepo := setupRepoTest(t)
	catA := createTestCategory(t, categoryRepo, "a")
	catB := createTestCategory(t, categoryRepo, "b")
	catC := createTestCategory(t, categoryRepo, "c")

	post := &models.Post{Title: "t", Content: "c", CoverImageURL: "https://example.com/c.png"}
	if err := postRepo.Create(post, []string{catA.ID, catB.ID}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := postRepo.Update(post, []string{catC.ID}, nil); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	reloaded, err := postRepo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(reloaded.Categories) != 1 || reloaded.Categories[0].ID != catC.ID {
		t.Fatalf("category set must be replaced, got %v", reloaded.CategoryIDs())
	}
	if got := countJoinRows(t, db, post.ID); got != 1 {
		t.Fatalf("join rows want 1 got %d", got)
	}
}

func TestPostUpdateStaleVersionRollsBack(t *testing.T) {
	db, postRepo, categoryRepo := setupRepoTest(t)
	catA := createTestCategory(t, categoryRepo, "a")
	catB := createTestCategory(t, categoryRepo, "b")

	post := &models.Post{Title: "t", Content: "c", CoverImageURL: "https://example.com/c.png"}
	if err := postRepo.Create(post, []string{catA.ID}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	stale := uint(99)
	err := postRepo.Update(post, []string{catB.ID}, &stale)
	if !errors.Is(err, ErrStaleRecord) {
		t.Fatalf("stale version want ErrStaleRecord got %v", err)
	}

	// 事务回滚后关联集合保持原样
	reloaded, err := postRepo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(reloaded.Categories) != 1 || reloaded.Categories[0].ID != catA.ID {
		t.Fatalf("failed update must leave associations intact, got %v", reloaded.CategoryIDs())
	}
	if got := countJoinRows(t, db, post.ID); got != 1 {
		t.Fatalf("join rows want 1 got %d", got)
	}
}

func TestPostDeleteRemovesJoinRowsAndSoftDeletes(t *testing.T) {
	db, postRepo, categoryRepo := setupRepoTest(t)
	catA := createTestCategory(t, categoryRepo, "a")

	post := &models.Post{Title: "t", Content: "c", CoverImageURL: "https://example.com/c.png"}
	if err := postRepo.Create(post, []string{catA.ID}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := postRepo.Delete(post.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	got, err := postRepo.GetByID(post.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got != nil {
		t.Fatalf("soft-deleted post should not be readable")
	}
	if count := countJoinRows(t, db, post.ID); count != 0 {
		t.Fatalf("join rows must be removed on delete, got %d", count)
	}

	// 软删除的行仍在表中，保留期内可供物理清理
	var raw int64
	if err := db.Unscoped().Model(&models.Post{}).Where("id = ?", post.ID).Count(&raw).Error; err != nil {
		t.Fatalf("unscoped count failed: %v", err)
	}
	if raw != 1 {
		t.Fatalf("soft-deleted row should remain, got %d", raw)
	}
}

func TestPostPurgeDeletedRespectsRetention(t *testing.T) {
	db, postRepo, categoryRepo := setupRepoTest(t)
	catA := createTestCategory(t, categoryRepo, "a")

	post := &models.Post{Title: "t", Content: "c", CoverImageURL: "https://example.com/c.png"}
	if err := postRepo.Create(post, []string{catA.ID}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := postRepo.Delete(post.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	// 保留期未到不清理
	if err := postRepo.PurgeDeleted(post.ID, time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	var count int64
	if err := db.Unscoped().Model(&models.Post{}).Where("id = ?", post.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("purge before retention must keep the row")
	}

	// 保留期已到物理删除
	if err := postRepo.PurgeDeleted(post.ID, time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	if err := db.Unscoped().Model(&models.Post{}).Where("id = ?", post.ID).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("purge after retention must remove the row")
	}
}

func TestPostListFilters(t *testing.T) {
	_, postRepo, categoryRepo := setupRepoTest(t)
	catA := createTestCategory(t, categoryRepo, "a")

	published := &models.Post{Title: "hello world", Content: "c", CoverImageURL: "https://example.com/c.png", Published: true}
	draft := &models.Post{Title: "hidden draft", Content: "c", CoverImageURL: "https://example.com/c.png"}
	if err := postRepo.Create(published, []string{catA.ID}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := postRepo.Create(draft, []string{catA.ID}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	posts, total, err := postRepo.List(PostListFilter{OnlyPublished: true})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 1 || len(posts) != 1 || posts[0].ID != published.ID {
		t.Fatalf("published filter want only published post")
	}

	posts, _, err = postRepo.List(PostListFilter{Search: "WORLD"})
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(posts) != 1 || posts[0].ID != published.ID {
		t.Fatalf("search should match title substring")
	}
}
