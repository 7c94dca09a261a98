package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"hustlepro/internal/models"
)

type PaymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

const paymentColumns = `id, user_id, client_id, invoice_id, amount, date, method, status, reference_number, notes, created_at, updated_at`

func scanPayment(row interface{ Scan(...any) error }) (*models.Payment, error) {
	var p models.Payment
	err := row.Scan(&p.ID, &p.UserID, &p.ClientID, &p.InvoiceID, &p.Amount, &p.Date,
		&p.Method, &p.Status, &p.ReferenceNumber, &p.Notes, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) Create(ctx context.Context, p *models.Payment) error {
	const q = `
                INSERT INTO payments (id, user_id, client_id, invoice_id, amount, date, method, status, reference_number, notes, created_at, updated_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
        `
	_, err := r.db.ExecContext(ctx, q, p.ID, p.UserID, p.ClientID, p.InvoiceID, p.Amount,
		p.Date, p.Method, p.Status, p.ReferenceNumber, p.Notes, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *models.Payment) error {
	const q = `
                UPDATE payments
                SET client_id=$1, invoice_id=$2, amount=$3, date=$4, method=$5, status=$6, reference_number=$7, notes=$8, updated_at=$9
                WHERE id=$10 AND user_id=$11
        `
	if _, err := r.db.ExecContext(ctx, q, p.ClientID, p.InvoiceID, p.Amount, p.Date, p.Method,
		p.Status, p.ReferenceNumber, p.Notes, p.UpdatedAt, p.ID, p.UserID); err != nil {
		return fmt.Errorf("update payment: %w", err)
	}
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, userID, id string) (*models.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments WHERE id=$1 AND user_id=$2`
	p, err := scanPayment(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

func (r *PaymentRepository) List(ctx context.Context, userID string) ([]models.Payment, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payments WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var res []models.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *p)
	}
	return res, rows.Err()
}

func (r *PaymentRepository) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM payments WHERE id=$1 AND user_id=$2`
	if _, err := r.db.ExecContext(ctx, q, id, userID); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}
	return nil
}
