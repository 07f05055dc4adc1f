package users

import (
	"context"
	"errors"
	"strings"

	"github.com/Vrushabh-003/Personal-Portfolio/internal/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password so
// the response never reveals which field was wrong.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAuthUnavailable is returned when no token manager is configured; logins
// cannot be honored without a signing secret.
var ErrAuthUnavailable = errors.New("admin auth not configured")

type Service struct {
	repo    Repository
	manager *auth.Manager
}

func NewService(repo Repository, manager *auth.Manager) *Service {
	return &Service{
		repo:    repo,
		manager: manager,
	}
}

func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	if s.manager == nil {
		return "", ErrAuthUnavailable
	}

	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.manager.NewToken(user.ID)
}
