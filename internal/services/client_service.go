package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hustlepro/internal/models"
	"hustlepro/internal/repositories"
)

type ClientService struct {
	Repo *repositories.ClientRepository
	Docs *repositories.DocumentRepository
}

func NewClientService(repo *repositories.ClientRepository, docs *repositories.DocumentRepository) *ClientService {
	return &ClientService{Repo: repo, Docs: docs}
}

func (s *ClientService) Create(ctx context.Context, client *models.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(client.Email) == "" {
		return errors.New("email is required")
	}
	if client.Status == "" {
		client.Status = models.ClientActive
	}
	if !models.IsValidClientStatus(client.Status) {
		return errors.New("invalid client status")
	}
	if client.ID == "" {
		client.ID = uuid.NewString()
	}
	now := time.Now()
	client.CreatedAt = now
	client.UpdatedAt = now
	return s.Repo.Create(ctx, client)
}

func (s *ClientService) Update(ctx context.Context, client *models.Client) error {
	if strings.TrimSpace(client.Name) == "" {
		return errors.New("name is required")
	}
	if !models.IsValidClientStatus(client.Status) {
		return errors.New("invalid client status")
	}
	client.UpdatedAt = time.Now()
	return s.Repo.Update(ctx, client)
}

// GetByID returns the client with its documents attached.
func (s *ClientService) GetByID(ctx context.Context, userID, id string) (*models.Client, error) {
	client, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil || client == nil {
		return client, err
	}
	docs, err := s.Docs.ListByOwner(ctx, userID, models.OwnerClient, id)
	if err != nil {
		return nil, err
	}
	client.Documents = docs
	return client, nil
}

func (s *ClientService) List(ctx context.Context, userID string) ([]models.Client, error) {
	return s.Repo.List(ctx, userID)
}

func (s *ClientService) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}
