package adminview

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/inkwell-cms/inkwell/internal/client"
	"github.com/inkwell-cms/inkwell/internal/constants"
	"github.com/inkwell-cms/inkwell/internal/models"

	"golang.org/x/text/language"
)

func samplePosts() []models.Post {
	return []models.Post{
		{ID: "p1", Title: "Go でブログを作る", Categories: []models.Category{{ID: "c1", Name: "tech"}}},
		{ID: "p2", Title: "Weekly Notes", Categories: []models.Category{{ID: "c2", Name: "diary"}}},
		{ID: "p3", Title: "Go concurrency patterns", Categories: []models.Category{{ID: "c1", Name: "tech"}, {ID: "c2", Name: "diary"}}},
	}
}

func TestPostListSearchIsCaseInsensitive(t *testing.T) {
	v := NewPostListView()
	v.SetItems(samplePosts())

	v.SetSearch("gO")
	visible := v.Visible()
	if len(visible) != 2 {
		t.Fatalf("search want 2 posts got %d", len(visible))
	}

	v.SetSearch("")
	if len(v.Visible()) != 3 {
		t.Fatalf("empty search must show everything")
	}
}

func TestPostListCategoryFilter(t *testing.T) {
	v := NewPostListView()
	v.SetItems(samplePosts())

	v.SetCategoryFilter("c2")
	visible := v.Visible()
	if len(visible) != 2 {
		t.Fatalf("category filter want 2 posts got %d", len(visible))
	}

	v.SetCategoryFilter(FilterAllCategories)
	if len(v.Visible()) != 3 {
		t.Fatalf("all sentinel must disable the filter")
	}

	// 搜索与过滤叠加
	v.SetCategoryFilter("c1")
	v.SetSearch("concurrency")
	visible = v.Visible()
	if len(visible) != 1 || visible[0].ID != "p3" {
		t.Fatalf("combined filters want only p3, got %v", visible)
	}
}

func TestPostListSelectAllToggle(t *testing.T) {
	v := NewPostListView()
	v.SetItems(samplePosts())
	v.SetCategoryFilter("c1")

	v.ToggleSelectAll()
	ids := v.SelectedIDs()
	sort.Strings(ids)
	if len(ids) != 2 || ids[0] != "p1" || ids[1] != "p3" {
		t.Fatalf("select all should cover the filtered set, got %v", ids)
	}

	// 再次切换回到全不选
	v.ToggleSelectAll()
	if len(v.SelectedIDs()) != 0 {
		t.Fatalf("second toggle must clear selection")
	}

	v.ToggleSelect("p1")
	if !v.Selected("p1") {
		t.Fatalf("single toggle should select p1")
	}
	v.ToggleSelect("p1")
	if v.Selected("p1") {
		t.Fatalf("second single toggle should deselect p1")
	}
}

type fakePostDeleter struct {
	mu      sync.Mutex
	deleted []string
	failID  string
}

func (f *fakePostDeleter) DeletePost(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id == f.failID {
		return errors.New("delete failed")
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func TestPostListBulkDelete(t *testing.T) {
	v := NewPostListView()
	v.SetItems(samplePosts())
	v.ToggleSelectAll()

	deleter := &fakePostDeleter{}
	if err := v.BulkDelete(context.Background(), deleter); err != nil {
		t.Fatalf("bulk delete failed: %v", err)
	}
	sort.Strings(deleter.deleted)
	if len(deleter.deleted) != 3 {
		t.Fatalf("want 3 deletes got %v", deleter.deleted)
	}
	if len(v.SelectedIDs()) != 0 {
		t.Fatalf("selection must clear after bulk delete")
	}
}

func TestPostListBulkDeleteSingleGenericError(t *testing.T) {
	v := NewPostListView()
	v.SetItems(samplePosts())
	v.ToggleSelectAll()

	deleter := &fakePostDeleter{failID: "p2"}
	err := v.BulkDelete(context.Background(), deleter)
	if !errors.Is(err, ErrBulkDeleteFailed) {
		t.Fatalf("partial failure want ErrBulkDeleteFailed got %v", err)
	}
}

type fakePostStore struct {
	posts   map[string]*models.Post
	created *client.PostRequest
}

func (f *fakePostStore) GetAdminPost(_ context.Context, id string) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return post, nil
}

func (f *fakePostStore) CreatePost(_ context.Context, input client.PostRequest) (*models.Post, error) {
	f.created = &input
	published := input.Published != nil && *input.Published
	return &models.Post{ID: "new-id", Title: input.Title, Published: published}, nil
}

func TestDuplicatePost(t *testing.T) {
	store := &fakePostStore{posts: map[string]*models.Post{
		"p1": {
			ID:            "p1",
			Title:         "original",
			Content:       "<p>x</p>",
			CoverImageURL: "https://example.com/a.png",
			Published:     true,
			Categories:    []models.Category{{ID: "c1"}, {ID: "c2"}},
		},
	}}

	duplicated, err := DuplicatePost(context.Background(), store, "p1")
	if err != nil {
		t.Fatalf("duplicate failed: %v", err)
	}
	if duplicated.Title != "original"+constants.DuplicateTitleSuffix {
		t.Fatalf("title want copy suffix, got %q", duplicated.Title)
	}
	if duplicated.Published {
		t.Fatalf("duplicate must be created as draft")
	}
	if store.created == nil || len(store.created.CategoryIDs) != 2 {
		t.Fatalf("duplicate must inherit the category set, got %+v", store.created)
	}
	if store.created.Published == nil || *store.created.Published {
		t.Fatalf("duplicate request must force published=false")
	}
}

func TestCategoryListLocaleSort(t *testing.T) {
	v := NewCategoryListView(language.Japanese)
	v.SetItems([]models.Category{
		{ID: "c1", Name: "さくら"},
		{ID: "c2", Name: "あんず"},
		{ID: "c3", Name: "かえで"},
	})

	visible := v.Visible()
	if visible[0].Name != "あんず" || visible[1].Name != "かえで" || visible[2].Name != "さくら" {
		t.Fatalf("ascending locale sort wrong: %v", []string{visible[0].Name, visible[1].Name, visible[2].Name})
	}

	v.SetDescending(true)
	visible = v.Visible()
	if visible[0].Name != "さくら" {
		t.Fatalf("descending sort should start with さくら, got %s", visible[0].Name)
	}
}

func TestCategoryListSearchAndSelection(t *testing.T) {
	v := NewCategoryListView(language.English)
	v.SetItems([]models.Category{
		{ID: "c1", Name: "Tech"},
		{ID: "c2", Name: "Travel"},
		{ID: "c3", Name: "Food"},
	})

	v.SetSearch("tr")
	visible := v.Visible()
	if len(visible) != 1 || visible[0].ID != "c2" {
		t.Fatalf("search want only Travel, got %v", visible)
	}

	// 全选只覆盖过滤结果
	v.ToggleSelectAll()
	ids := v.SelectedIDs()
	if len(ids) != 1 || ids[0] != "c2" {
		t.Fatalf("select all should cover filtered set, got %v", ids)
	}
}
