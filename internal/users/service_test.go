package users

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Vrushabh-003/Personal-Portfolio/internal/auth"
	"go.mongodb.org/mongo-driver/mongo"
)

type fakeRepository struct {
	byEmail map[string]User
}

func (f *fakeRepository) GetByEmail(ctx context.Context, email string) (User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return User{}, mongo.ErrNoDocuments
	}
	return user, nil
}

func newTestService(t *testing.T) (*Service, *auth.Manager) {
	t.Helper()
	hash, err := auth.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	repo := &fakeRepository{byEmail: map[string]User{
		"admin@example.com": {ID: "user-123", Email: "admin@example.com", PasswordHash: hash},
	}}
	manager := &auth.Manager{Secret: []byte("test-secret"), TTL: time.Hour, Issuer: "personal-portfolio"}
	return NewService(repo, manager), manager
}

func TestLoginIssuesToken(t *testing.T) {
	svc, manager := newTestService(t)

	token, err := svc.Login(context.Background(), "admin@example.com", "s3cret")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}

	claims, err := manager.Parse(token)
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if claims.Subject != "user-123" {
		t.Fatalf("expected subject user-123, got %q", claims.Subject)
	}
}

func TestLoginNormalizesEmail(t *testing.T) {
	svc, _ := newTestService(t)

	if _, err := svc.Login(context.Background(), "  Admin@Example.COM ", "s3cret"); err != nil {
		t.Fatalf("Login error: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "admin@example.com", "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody@example.com", "s3cret")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginWithoutTokenManager(t *testing.T) {
	hash, err := auth.HashPassword("s3cret")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	repo := &fakeRepository{byEmail: map[string]User{
		"admin@example.com": {ID: "user-123", Email: "admin@example.com", PasswordHash: hash},
	}}
	svc := NewService(repo, nil)

	_, err = svc.Login(context.Background(), "admin@example.com", "s3cret")
	if !errors.Is(err, ErrAuthUnavailable) {
		t.Fatalf("expected ErrAuthUnavailable, got %v", err)
	}
}
