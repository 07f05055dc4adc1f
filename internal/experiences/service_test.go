package experiences

import (
	"context"
	"reflect"
	"sort"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepository struct {
	items map[string]Experience
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{items: make(map[string]Experience)}
}

func (f *fakeRepository) Create(ctx context.Context, item Experience) error {
	f.items[item.ID] = item
	return nil
}

func (f *fakeRepository) GetByID(ctx context.Context, id string) (Experience, error) {
	item, ok := f.items[id]
	if !ok {
		return Experience{}, mongo.ErrNoDocuments
	}
	return item, nil
}

func (f *fakeRepository) Update(ctx context.Context, id string, set bson.M) (Experience, error) {
	item, ok := f.items[id]
	if !ok {
		return Experience{}, mongo.ErrNoDocuments
	}
	for key, value := range set {
		switch key {
		case "title":
			item.Title = value.(string)
		case "company":
			item.Company = value.(string)
		case "location":
			item.Location = value.(string)
		case "startDate":
			item.StartDate = value.(string)
		case "endDate":
			item.EndDate = value.(string)
		case "description":
			item.Description = value.([]string)
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

func (f *fakeRepository) List(ctx context.Context) ([]Experience, error) {
	all := make([]Experience, 0, len(f.items))
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

func TestCreateSplitsDescription(t *testing.T) {
	svc := NewService(newFakeRepository(), time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		StartDate:   "2023-01-01",
		Description: "Built the API\n\n  Ran the on-call rotation  \n",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	want := []string{"Built the API", "Ran the on-call rotation"}
	if !reflect.DeepEqual(item.Description, want) {
		t.Fatalf("expected %v, got %v", want, item.Description)
	}
	if item.DisplayOrder != 0 {
		t.Fatalf("expected displayOrder 0, got %d", item.DisplayOrder)
	}
}

func TestUpdateSplitsDescription(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, time.UTC)

	item, err := svc.Create(context.Background(), CreateRequest{
		Title:       "Backend Engineer",
		Company:     "Acme",
		Location:    "Remote",
		StartDate:   "2023-01-01",
		Description: "line one",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	desc := "first\nsecond\n\nthird"
	updated, err := svc.Update(context.Background(), item.ID, UpdateRequest{Description: &desc})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}

	want := []string{"first", "second", "third"}
	if !reflect.DeepEqual(updated.Description, want) {
		t.Fatalf("expected %v, got %v", want, updated.Description)
	}
	if updated.Title != "Backend Engineer" {
		t.Fatalf("title changed: %q", updated.Title)
	}
}

func TestSplitDescriptionAllBlank(t *testing.T) {
	got := splitDescription("\n  \n\t\n")
	if len(got) != 0 {
		t.Fatalf("expected no lines, got %v", got)
	}
}
