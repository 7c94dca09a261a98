package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"hustlepro/internal/models"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, user_id, client_id, title, description, deadline, price, priority, status, created_at, updated_at`

func scanTask(row interface{ Scan(...any) error }) (*models.Task, error) {
	var t models.Task
	err := row.Scan(&t.ID, &t.UserID, &t.ClientID, &t.Title, &t.Description, &t.Deadline,
		&t.Price, &t.Priority, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	const q = `
                INSERT INTO tasks (id, user_id, client_id, title, description, deadline, price, priority, status, created_at, updated_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        `
	_, err := r.db.ExecContext(ctx, q, task.ID, task.UserID, task.ClientID, task.Title,
		task.Description, task.Deadline, task.Price, task.Priority, task.Status,
		task.CreatedAt, task.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	const q = `
                UPDATE tasks
                SET client_id=$1, title=$2, description=$3, deadline=$4, price=$5, priority=$6, status=$7, updated_at=$8
                WHERE id=$9 AND user_id=$10
        `
	if _, err := r.db.ExecContext(ctx, q, task.ClientID, task.Title, task.Description, task.Deadline,
		task.Price, task.Priority, task.Status, task.UpdatedAt, task.ID, task.UserID); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, userID, id string) (*models.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE id=$1 AND user_id=$2`
	t, err := scanTask(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) List(ctx context.Context, userID string) ([]models.Task, error) {
	const q = `SELECT ` + taskColumns + ` FROM tasks WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var res []models.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *t)
	}
	return res, rows.Err()
}

func (r *TaskRepository) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM tasks WHERE id=$1 AND user_id=$2`
	if _, err := r.db.ExecContext(ctx, q, id, userID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
