package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"hustlepro/internal/models"
)

type NotificationRepository struct {
	db *sql.DB
}

func NewNotificationRepository(db *sql.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(ctx context.Context, n *models.Notification) error {
	const q = `
                INSERT INTO notifications (id, user_id, type, title, message, read, client_id, invoice_id, task_id, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
        `
	_, err := r.db.ExecContext(ctx, q, n.ID, n.UserID, n.Type, n.Title, n.Message, n.Read,
		n.ClientID, n.InvoiceID, n.TaskID, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}
	return nil
}

// ListLatest returns the newest entries, capped like the dashboard feed.
func (r *NotificationRepository) ListLatest(ctx context.Context, userID string, limit int) ([]models.Notification, error) {
	const q = `
                SELECT id, user_id, type, title, message, read, client_id, invoice_id, task_id, created_at
                FROM notifications
                WHERE user_id=$1
                ORDER BY created_at DESC
                LIMIT $2
        `
	rows, err := r.db.QueryContext(ctx, q, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var res []models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message, &n.Read,
			&n.ClientID, &n.InvoiceID, &n.TaskID, &n.CreatedAt); err != nil {
			return nil, err
		}
		res = append(res, n)
	}
	return res, rows.Err()
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id string) error {
	const q = `UPDATE notifications SET read=TRUE WHERE id=$1 AND user_id=$2`
	if _, err := r.db.ExecContext(ctx, q, id, userID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	return nil
}

func (r *NotificationRepository) Clear(ctx context.Context, userID string) error {
	const q = `DELETE FROM notifications WHERE user_id=$1`
	if _, err := r.db.ExecContext(ctx, q, userID); err != nil {
		return fmt.Errorf("clear notifications: %w", err)
	}
	return nil
}
