package projects

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepository struct {
	items map[string]Project
	// set to fail SetDisplayOrder after this many calls (0 disables)
	failSetAfter int
	setCalls     int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]Project)}
}

func (f *fakeRepository) Create(ctx context.Context, item Project) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (Project, error) {
	item, ok := f.items[id]
	if !ok {
		return Project{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepository) Update(ctx context.Context, id string, set bson.M) (Project, error) {
	item, ok := f.items[id]
	if !ok {
		return Project{}, mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "title":
			item.Title = value.(string)
		case "description":
			item.Description = value.(string)
		case "technologies":
			item.Technologies = value.([]string)
		case "liveUrl":
			item.LiveURL = value.(string)
		case "repoUrl":
			item.RepoURL = value.(string)
		case "media":
			item.Media = value.([]Media)
		case "displayOrder":
			item.DisplayOrder = value.(int)
		case "updatedAt":
			item.UpdatedAt = value.(time.Time)
		}
	}
	f.items[id] = item
	return item, nil
}

func (f *fakeRepository) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}

func (f *fakeRepository) List(ctx context.Context, limit, skip int64) ([]Project, error) {
	all := make([]Project, 0, len(f.items))
	for _, item := range f.items {
		all = append(all, item)
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].DisplayOrder != all[j].DisplayOrder {
			return all[i].DisplayOrder < all[j].DisplayOrder
		}
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})
	if limit <= 0 {
		return all, nil
	}
	if skip >= int64(len(all)) {
		return []Project{}, nil
	}
	end := skip + limit
	if end > int64(len(all)) {
		end = int64(len(all))
	}
	return all[skip:end], nil
}

func (f *fakeRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeRepository) SetDisplayOrder(ctx context.Context, id string, order int) error {
	f.setCalls++
	if f.failSetAfter > 0 && f.setCalls > f.failSetAfter {
		return errors.New("write failed")
	}
	item, ok := f.items[id]
	if !ok {
		return nil
	}
	item.DisplayOrder = order
	f.items[id] = item
	return nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, time.UTC)
}

func createN(t *testing.T, svc *Service, n int) []Project {
	t.Helper()
	created := make([]Project, 0, n)
	for i := 0; i < n; i++ {
		item, err := svc.Create(context.Background(), CreateRequest{
			Title:       fmt.Sprintf("P%d", i+1),
			Description: "d",
		})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		created = append(created, item)
	}
	return created
}

func TestCreateAssignsSequentialDisplayOrder(t *testing.T) {
	svc := newTestService(newFakeRepository())
	created := createN(t, svc, 3)

	for i, item := range created {
		if item.DisplayOrder != i {
			t.Fatalf("expected displayOrder %d for item %d, got %d", i, i, item.DisplayOrder)
		}
	}
}

func TestListSortedByDisplayOrder(t *testing.T) {
	svc := newTestService(newFakeRepository())
	createN(t, svc, 5)

	result, err := svc.List(context.Background(), 0, 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	for i := 1; i < len(result.Projects); i++ {
		if result.Projects[i].DisplayOrder < result.Projects[i-1].DisplayOrder {
			t.Fatalf("list not sorted by displayOrder: %v", result.Projects)
		}
	}
	if result.Page != 1 || result.Pages != 1 {
		t.Fatalf("unpaginated list: expected page=1 pages=1, got page=%d pages=%d", result.Page, result.Pages)
	}
}

func TestListPagination(t *testing.T) {
	svc := newTestService(newFakeRepository())
	createN(t, svc, 7)

	first, err := svc.List(context.Background(), 3, 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(first.Projects) != 3 {
		t.Fatalf("page 1: expected 3 projects, got %d", len(first.Projects))
	}
	if first.Pages != 3 {
		t.Fatalf("expected pages=3, got %d", first.Pages)
	}

	last, err := svc.List(context.Background(), 3, 3)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(last.Projects) != 1 {
		t.Fatalf("page 3: expected 1 project, got %d", len(last.Projects))
	}
}

func TestReorderRewritesDisplayOrder(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)
	created := createN(t, svc, 3)
	a, b, c := created[0], created[1], created[2]

	if err := svc.Reorder(context.Background(), []string{c.ID, a.ID, b.ID}); err != nil {
		t.Fatalf("Reorder error: %v", err)
	}

	for i, id := range []string{c.ID, a.ID, b.ID} {
		item, err := svc.GetByID(context.Background(), id)
		if err != nil {
			t.Fatalf("GetByID error: %v", err)
		}
		if item.DisplayOrder != i {
			t.Fatalf("expected displayOrder %d for %s, got %d", i, id, item.DisplayOrder)
		}
	}

	result, err := svc.List(context.Background(), 0, 1)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	got := []string{result.Projects[0].ID, result.Projects[1].ID, result.Projects[2].ID}
	want := []string{c.ID, a.ID, b.ID}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("list order mismatch at %d: got %v, want %v", i, got, want)
		}
	}
}

func TestReorderPartialFailure(t *testing.T) {
	repo := newFakeRepository()
	svc := newTestService(repo)
	created := createN(t, svc, 3)

	repo.failSetAfter = 1
	err := svc.Reorder(context.Background(), []string{created[2].ID, created[0].ID, created[1].ID})
	if err == nil {
		t.Fatal("expected error from mid-sequence failure")
	}

	// The first update landed before the failure.
	item, err := svc.GetByID(context.Background(), created[2].ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if item.DisplayOrder != 0 {
		t.Fatalf("expected first update applied, got displayOrder %d", item.DisplayOrder)
	}
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	svc := newTestService(newFakeRepository())
	created := createN(t, svc, 1)
	orig := created[0]

	title := "X"
	updated, err := svc.Update(context.Background(), orig.ID, UpdateRequest{Title: &title})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Title != "X" {
		t.Fatalf("expected title X, got %q", updated.Title)
	}
	if updated.Description != orig.Description {
		t.Fatalf("description changed: %q != %q", updated.Description, orig.Description)
	}
	if updated.DisplayOrder != orig.DisplayOrder {
		t.Fatalf("displayOrder changed: %d != %d", updated.DisplayOrder, orig.DisplayOrder)
	}
}

func TestUpdateNotFound(t *testing.T) {
	svc := newTestService(newFakeRepository())
	title := "X"
	if _, err := svc.Update(context.Background(), "missing", UpdateRequest{Title: &title}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteThenGetNotFound(t *testing.T) {
	svc := newTestService(newFakeRepository())
	created := createN(t, svc, 1)

	if err := svc.Delete(context.Background(), created[0].ID); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), created[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), created[0].ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestCreateDefaultsMediaType(t *testing.T) {
	svc := newTestService(newFakeRepository())
	item, err := svc.Create(context.Background(), CreateRequest{
		Title:       "P",
		Description: "d",
		Media:       []MediaInput{{URL: "https://example.com/a.png"}},
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if len(item.Media) != 1 || item.Media[0].Type != "image" {
		t.Fatalf("expected media type to default to image, got %+v", item.Media)
	}
}
