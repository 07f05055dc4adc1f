package leadership

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
	items map[string]Leadership
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]Leadership)}
}

func (f *fakeRepository) Create(ctx context.Context, item Leadership) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (Leadership, error) {
	item, ok := f.items[id]
	if !ok {
		return Leadership{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepository) Update(ctx context.Context, id string, set bson.M) (Leadership, error) {
	item, ok := f.items[id]
	if !ok {
		return Leadership{}, mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "role":
			item.Role = value.(string)
		case "organization":
			item.Organization = value.(string)
		case "description":
			item.Description = value.(string)
		case "certificateUrl":
			item.CertificateURL = value.(string)
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

func (f *fakeRepository) List(ctx context.Context) ([]Leadership, error) {
	all := make([]Leadership, 0, len(f.items))
	for _, item := range f.items {
		all = append(all, item)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].DisplayOrder < all[j].DisplayOrder
	})
	return all, nil
}

func (f *fakeRepository) Count(ctx context.Context) (int64, error) {
	return int64(len(f.items)), nil
}

func (f *fakeRepository) SetDisplayOrder(ctx context.Context, id string, order int) error {
	item, ok := f.items[id]
	if !ok {
		return nil
	}
	item.DisplayOrder = order
	f.items[id] = item
	return nil
}

func createN(t *testing.T, svc *Service, n int) []Leadership {
	t.Helper()
	created := make([]Leadership, 0, n)
	for i := 0; i < n; i++ {
		item, err := svc.Create(context.Background(), CreateRequest{
			Role:         fmt.Sprintf("Role %d", i+1),
			Organization: "Org",
			Description:  "d",
		})
		if err != nil {
			t.Fatalf("Create error: %v", err)
		}
		created = append(created, item)
	}
	return created
}

func TestCreateAssignsSequentialDisplayOrder(t *testing.T) {
	svc := NewService(newFakeRepository(), time.UTC)
	created := createN(t, svc, 3)

	for i, item := range created {
		if item.DisplayOrder != i {
			t.Fatalf("expected displayOrder %d for item %d, got %d", i, i, item.DisplayOrder)
		}
	}
}

func TestReorderRewritesDisplayOrder(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, time.UTC)
	created := createN(t, svc, 3)
	a, b, c := created[0], created[1], created[2]

	if err := svc.Reorder(context.Background(), []string{b.ID, c.ID, a.ID}); err != nil {
		t.Fatalf("Reorder error: %v", err)
	}

	items, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	want := []string{b.ID, c.ID, a.ID}
	for i := range want {
		if items[i].ID != want[i] {
			t.Fatalf("list order mismatch at %d: got %s, want %s", i, items[i].ID, want[i])
		}
	}
}

func TestUpdateAppliesOnlySuppliedFields(t *testing.T) {
	svc := NewService(newFakeRepository(), time.UTC)
	created := createN(t, svc, 1)
	orig := created[0]

	role := "Lead"
	updated, err := svc.Update(context.Background(), orig.ID, UpdateRequest{Role: &role})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Role != "Lead" {
		t.Fatalf("expected role Lead, got %q", updated.Role)
	}
	if updated.Organization != orig.Organization {
		t.Fatalf("organization changed: %q != %q", updated.Organization, orig.Organization)
	}
}

func TestDeleteMissing(t *testing.T) {
	svc := NewService(newFakeRepository(), time.UTC)
	if err := svc.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
