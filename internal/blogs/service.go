package blogs

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Vrushabh-003/Personal-Portfolio/internal/utils"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound    = errors.New("blog post not found")
	ErrSlugExists  = errors.New("slug already exists")
	ErrInvalidSlug = errors.New("invalid slug")
)

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

func (s *Service) List(ctx context.Context) ([]Blog, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Blog, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Blog{}, ErrNotFound
		}
		return Blog{}, err
	}
	return item, nil
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Blog, error) {
	item, err := s.repo.GetBySlug(ctx, strings.TrimSpace(slug))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Blog{}, ErrNotFound
		}
		return Blog{}, err
	}
	return item, nil
}

// Create derives the slug from the title. A duplicate slug is rejected, backed
// by the unique index on the collection.
func (s *Service) Create(ctx context.Context, req CreateRequest) (Blog, error) {
	slug := utils.Slugify(req.Title)
	if slug == "" {
		return Blog{}, ErrInvalidSlug
	}

	count, err := s.repo.Count(ctx)
	if err != nil {
		return Blog{}, err
	}

	now := time.Now().In(s.location)
	item := Blog{
		ID:           primitive.NewObjectID().Hex(),
		Title:        strings.TrimSpace(req.Title),
		Content:      req.Content,
		ImageURL:     strings.TrimSpace(req.ImageURL),
		Slug:         slug,
		DisplayOrder: int(count),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return Blog{}, ErrSlugExists
		}
		return Blog{}, err
	}
	return item, nil
}

// Update applies only the supplied fields. A new title recomputes the slug.
func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Blog, error) {
	set := bson.M{"updatedAt": time.Now().In(s.location)}
	if req.Title != nil {
		slug := utils.Slugify(*req.Title)
		if slug == "" {
			return Blog{}, ErrInvalidSlug
		}
		set["title"] = strings.TrimSpace(*req.Title)
		set["slug"] = slug
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.ImageURL != nil {
		set["imageUrl"] = strings.TrimSpace(*req.ImageURL)
	}
	if req.DisplayOrder != nil {
		set["displayOrder"] = *req.DisplayOrder
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Blog{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return Blog{}, ErrSlugExists
		}
		return Blog{}, err
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

func (s *Service) Reorder(ctx context.Context, orderedIDs []string) error {
	for i, id := range orderedIDs {
		if err := s.repo.SetDisplayOrder(ctx, strings.TrimSpace(id), i); err != nil {
			return err
		}
	}
	return nil
}
