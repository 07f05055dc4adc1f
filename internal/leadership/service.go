package leadership

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("leadership role not found")

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

func (s *Service) List(ctx context.Context) ([]Leadership, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Leadership, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Leadership{}, ErrNotFound
		}
		return Leadership{}, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Leadership, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return Leadership{}, err
	}

	now := time.Now().In(s.location)
	item := Leadership{
		ID:             primitive.NewObjectID().Hex(),
		Role:           strings.TrimSpace(req.Role),
		Organization:   strings.TrimSpace(req.Organization),
		Description:    strings.TrimSpace(req.Description),
		CertificateURL: strings.TrimSpace(req.CertificateURL),
		DisplayOrder:   int(count),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Leadership{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Leadership, error) {
	set := bson.M{"updatedAt": time.Now().In(s.location)}
	if req.Role != nil {
		set["role"] = strings.TrimSpace(*req.Role)
	}
	if req.Organization != nil {
		set["organization"] = strings.TrimSpace(*req.Organization)
	}
	if req.Description != nil {
		set["description"] = strings.TrimSpace(*req.Description)
	}
	if req.CertificateURL != nil {
		set["certificateUrl"] = strings.TrimSpace(*req.CertificateURL)
	}
	if req.DisplayOrder != nil {
		set["displayOrder"] = *req.DisplayOrder
	}

	updated, err := s.repo.Update(ctx, strings.TrimSpace(id), set)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Leadership{}, ErrNotFound
		}
		return Leadership{}, err
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
