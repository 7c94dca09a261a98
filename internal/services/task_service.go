package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"hustlepro/internal/models"
	"hustlepro/internal/repositories"
)

type TaskService struct {
	Repo          *repositories.TaskRepository
	Clients       *repositories.ClientRepository
	Docs          *repositories.DocumentRepository
	Notifications *repositories.NotificationRepository
}

func NewTaskService(repo *repositories.TaskRepository, clients *repositories.ClientRepository,
	docs *repositories.DocumentRepository, notifications *repositories.NotificationRepository) *TaskService {
	return &TaskService{Repo: repo, Clients: clients, Docs: docs, Notifications: notifications}
}

func (s *TaskService) validate(ctx context.Context, task *models.Task) error {
	if strings.TrimSpace(task.Title) == "" {
		return errors.New("title is required")
	}
	if task.Deadline.IsZero() {
		return errors.New("deadline is required")
	}
	if task.Price < 0 {
		return errors.New("price must not be negative")
	}
	if task.Priority == "" {
		task.Priority = models.PriorityMedium
	}
	if !models.IsValidTaskPriority(task.Priority) {
		return errors.New("invalid task priority")
	}
	if task.Status == "" {
		task.Status = models.TaskPending
	}
	if !models.IsValidTaskStatus(task.Status) {
		return errors.New("invalid task status")
	}
	client, err := s.Clients.GetByID(ctx, task.UserID, task.ClientID)
	if err != nil {
		return err
	}
	if client == nil {
		return errors.New("client not found")
	}
	return nil
}

func (s *TaskService) Create(ctx context.Context, task *models.Task) error {
	if err := s.validate(ctx, task); err != nil {
		return err
	}
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now()
	task.CreatedAt = now
	task.UpdatedAt = now
	return s.Repo.Create(ctx, task)
}

// Update persists the task and, on a transition into completed, drops a
// task_completed entry into the notification feed.
func (s *TaskService) Update(ctx context.Context, task *models.Task) error {
	if err := s.validate(ctx, task); err != nil {
		return err
	}
	previous, err := s.Repo.GetByID(ctx, task.UserID, task.ID)
	if err != nil {
		return err
	}
	if previous == nil {
		return errors.New("task not found")
	}
	task.UpdatedAt = time.Now()
	if err := s.Repo.Update(ctx, task); err != nil {
		return err
	}

	if task.Status == models.TaskCompleted && previous.Status != models.TaskCompleted {
		n := &models.Notification{
			ID:        uuid.NewString(),
			UserID:    task.UserID,
			Type:      models.NotifTaskCompleted,
			Title:     "Task Completed",
			Message:   fmt.Sprintf("Task %q marked as completed", task.Title),
			ClientID:  task.ClientID,
			TaskID:    task.ID,
			CreatedAt: time.Now(),
		}
		if err := s.Notifications.Create(ctx, n); err != nil {
			return err
		}
	}
	return nil
}

func (s *TaskService) GetByID(ctx context.Context, userID, id string) (*models.Task, error) {
	task, err := s.Repo.GetByID(ctx, userID, id)
	if err != nil || task == nil {
		return task, err
	}
	docs, err := s.Docs.ListByOwner(ctx, userID, models.OwnerTask, id)
	if err != nil {
		return nil, err
	}
	task.Documents = docs
	return task, nil
}

func (s *TaskService) List(ctx context.Context, userID string) ([]models.Task, error) {
	return s.Repo.List(ctx, userID)
}

func (s *TaskService) Delete(ctx context.Context, userID, id string) error {
	return s.Repo.Delete(ctx, userID, id)
}
