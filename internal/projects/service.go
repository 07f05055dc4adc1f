package projects

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("project not found")

type Service struct {
	repo     Repository
	location *time.Location
}

func NewService(repo Repository, location *time.Location) *Service {
	return &Service{
		repo:     repo,
		location: location,
	}
}

// List returns projects sorted by displayOrder. A limit of zero disables
// pagination and returns the whole collection as a single page.
func (s *Service) List(ctx context.Context, limit, page int64) (Page, error) {
	if limit <= 0 {
		items, err := s.repo.List(ctx, 0, 0)
		if err != nil {
			return Page{}, err
		}
		return Page{Projects: items, Page: 1, Pages: 1}, nil
	}

	if page < 1 {
		page = 1
	}
	count, err := s.repo.Count(ctx)
	if err != nil {
		return Page{}, err
	}
	items, err := s.repo.List(ctx, limit, limit*(page-1))
	if err != nil {
		return Page{}, err
	}
	pages := (count + limit - 1) / limit
	return Page{Projects: items, Page: page, Pages: pages}, nil
}

func (s *Service) ListAll(ctx context.Context) ([]Project, error) {
	return s.repo.List(ctx, 0, 0)
}

func (s *Service) GetByID(ctx context.Context, id string) (Project, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Project, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return Project{}, err
	}

	now := time.Now().In(s.location)
	item := Project{
		ID:           primitive.NewObjectID().Hex(),
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Technologies: req.Technologies,
		LiveURL:      strings.TrimSpace(req.LiveURL),
		RepoURL:      strings.TrimSpace(req.RepoURL),
		Media:        mediaFromInput(req.Media),
		DisplayOrder: int(count),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if item.Technologies == nil {
		item.Technologies = []string{}
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Project{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Project, error) {
	set := bson.M{"updatedAt": time.Now().In(s.location)}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Technologies != nil {
		set["technologies"] = *req.Technologies
	}
	if req.LiveURL != nil {
		set["liveUrl"] = strings.TrimSpace(*req.LiveURL)
	}
	if req.RepoURL != nil {
		set["repoUrl"] = strings.TrimSpace(*req.RepoURL)
	}
	if req.Media != nil {
		set["media"] = mediaFromInput(*req.Media)
	}
	if req.DisplayOrder != nil {
		set["displayOrder"] = *req.DisplayOrder
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Project{}, ErrNotFound
		}
		return Project{}, err
	}
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	deleted, err := s.repo.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Reorder rewrites displayOrder to each id's position in the supplied
// sequence. Updates are issued one by one; a mid-sequence failure leaves the
// collection partially reordered.
func (s *Service) Reorder(ctx context.Context, orderedIDs []string) error {
	for i, id := range orderedIDs {
		if err := s.repo.SetDisplayOrder(ctx, strings.TrimSpace(id), i); err != nil {
			return err
		}
	}
	return nil
}

func mediaFromInput(input []MediaInput) []Media {
	media := make([]Media, 0, len(input))
	for _, m := range input {
		kind := m.Type
		if kind == "" {
			kind = "image"
		}
		media = append(media, Media{URL: strings.TrimSpace(m.URL), Type: kind})
	}
	return media
}
