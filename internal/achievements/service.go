package achievements

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("achievement not found")

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

func (s *Service) List(ctx context.Context) ([]Achievement, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Achievement, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Achievement{}, ErrNotFound
		}
		return Achievement{}, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Achievement, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return Achievement{}, err
	}

	now := time.Now().In(s.location)
	item := Achievement{
		ID:           primitive.NewObjectID().Hex(),
		Title:        strings.TrimSpace(req.Title),
		Description:  strings.TrimSpace(req.Description),
		Date:         req.Date,
		ImageURL:     strings.TrimSpace(req.ImageURL),
		DisplayOrder: int(count),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Achievement{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Achievement, error) {
	set := bson.M{"updatedAt": time.Now().In(s.location)}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.Date != nil {
		set["date"] = *req.Date
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
			return Achievement{}, ErrNotFound
		}
		return Achievement{}, err
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
