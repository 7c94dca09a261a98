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

type DocumentService struct {
	Repo    *repositories.DocumentRepository
	Clients *repositories.ClientRepository
	Tasks   *repositories.TaskRepository
}

func NewDocumentService(repo *repositories.DocumentRepository, clients *repositories.ClientRepository,
	tasks *repositories.TaskRepository) *DocumentService {
	return &DocumentService{Repo: repo, Clients: clients, Tasks: tasks}
}

func (s *DocumentService) ownerExists(ctx context.Context, userID string, owner models.DocumentOwner, ownerID string) (bool, error) {
	switch owner {
	case models.OwnerClient:
		c, err := s.Clients.GetByID(ctx, userID, ownerID)
		return c != nil, err
	case models.OwnerTask:
		t, err := s.Tasks.GetByID(ctx, userID, ownerID)
		return t != nil, err
	}
	return false, nil
}

func (s *DocumentService) Create(ctx context.Context, d *models.Document) error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("title is required")
	}
	if !models.IsValidDocumentOwner(d.OwnerType) {
		return errors.New("invalid owner type")
	}
	if !models.IsValidDocumentType(d.Type) {
		return errors.New("invalid document type")
	}
	ok, err := s.ownerExists(ctx, d.UserID, d.OwnerType, d.OwnerID)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("owner not found")
	}
	d.ID = uuid.NewString()
	now := time.Now()
	d.CreatedAt = now
	d.UpdatedAt = now
	return s.Repo.Create(ctx, d)
}

// Update edits title and content only; the type tag and owner are
// fixed at creation.
func (s *DocumentService) Update(ctx context.Context, d *models.Document) error {
	if strings.TrimSpace(d.Title) == "" {
		return errors.New("title is required")
	}
	existing, err := s.Repo.GetByID(ctx, d.UserID, d.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("document not found")
	}
	d.UpdatedAt = time.Now()
	return s.Repo.Update(ctx, d)
}

func (s *DocumentService) GetByID(ctx context.Context, userID, id string) (*models.Document, error) {
	return s.Repo.GetByID(ctx, userID, id)
}

func (s *DocumentService) ListByOwner(ctx context.Context, userID string, owner models.DocumentOwner, ownerID string) ([]models.Document, error) {
	if !models.IsValidDocumentOwner(owner) {
		return nil, errors.New("invalid owner type")
	}
	return s.Repo.ListByOwner(ctx, userID, owner, ownerID)
}

func (s *DocumentService) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}
