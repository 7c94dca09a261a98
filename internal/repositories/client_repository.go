package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"hustlepro/internal/models"
)

type ClientRepository struct {
	db *sql.DB
}

func NewClientRepository(db *sql.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

const clientColumns = `id, user_id, name, email, phone, address, company, status, logo_url, created_at, updated_at`

func scanClient(row interface{ Scan(...any) error }) (*models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.UserID, &c.Name, &c.Email, &c.Phone, &c.Address,
		&c.Company, &c.Status, &c.LogoURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClientRepository) Create(ctx context.Context, client *models.Client) error {
	const q = `
                INSERT INTO clients (id, user_id, name, email, phone, address, company, status, logo_url, created_at, updated_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        `
	_, err := r.db.ExecContext(ctx, q, client.ID, client.UserID, client.Name, client.Email,
		client.Phone, client.Address, client.Company, client.Status, client.LogoURL,
		client.CreatedAt, client.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create client: %w", err)
	}
	return nil
}

func (r *ClientRepository) Update(ctx context.Context, client *models.Client) error {
	const q = `
                UPDATE clients
                SET name=$1, email=$2, phone=$3, address=$4, company=$5, status=$6, logo_url=$7, updated_at=$8
                WHERE id=$9 AND user_id=$10
        `
	if _, err := r.db.ExecContext(ctx, q, client.Name, client.Email, client.Phone, client.Address,
		client.Company, client.Status, client.LogoURL, client.UpdatedAt, client.ID, client.UserID); err != nil {
		return fmt.Errorf("update client: %w", err)
	}
	return nil
}

func (r *ClientRepository) GetByID(ctx context.Context, userID, id string) (*models.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients WHERE id=$1 AND user_id=$2`
	c, err := scanClient(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get client: %w", err)
	}
	return c, nil
}

func (r *ClientRepository) List(ctx context.Context, userID string) ([]models.Client, error) {
	const q = `SELECT ` + clientColumns + ` FROM clients WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}
	defer rows.Close()

	var res []models.Client
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *c)
	}
	return res, rows.Err()
}

func (r *ClientRepository) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM clients WHERE id=$1 AND user_id=$2`
	if _, err := r.db.ExecContext(ctx, q, id, userID); err != nil {
		return fmt.Errorf("delete client: %w", err)
	}
	return nil
}
