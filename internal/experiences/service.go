package experiences

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var ErrNotFound = errors.New("experience not found")

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

func (s *Service) List(ctx context.Context) ([]Experience, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (Experience, error) {
	item, err := s.repo.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return Experience{}, ErrNotFound
		}
		return Experience{}, err
	}
	return item, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Experience, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return Experience{}, err
	}

	now := time.Now().In(s.location)
	item := Experience{
		ID:             primitive.NewObjectID().Hex(),
		Title:          strings.TrimSpace(req.Title),
		Company:        strings.TrimSpace(req.Company),
		Location:       strings.TrimSpace(req.Location),
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Description:    splitDescription(req.Description),
		CertificateURL: strings.TrimSpace(req.CertificateURL),
		DisplayOrder:   int(count),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return Experience{}, err
	}
	return item, nil
}

func (s *Service) Update(ctx context.Context, id string, req UpdateRequest) (Experience, error) {
	set := bson.M{"updatedAt": time.Now().In(s.location)}
	if req.Title != nil {
		set["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Company != nil {
		set["company"] = strings.TrimSpace(*req.Company)
	}
	if req.Location != nil {
		set["location"] = strings.TrimSpace(*req.Location)
	}
	if req.StartDate != nil {
		set["startDate"] = *req.StartDate
	}
	if req.EndDate != nil {
		set["endDate"] = *req.EndDate
	}
	if req.Description != nil {
		set["description"] = splitDescription(*req.Description)
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
			return Experience{}, ErrNotFound
		}
		return Experience{}, err
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

// splitDescription turns a newline-delimited block into trimmed lines,
// dropping the blank ones.
func splitDescription(raw string) []string {
	lines := make([]string, 0)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
