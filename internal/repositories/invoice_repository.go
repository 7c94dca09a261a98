package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"hustlepro/internal/models"
)

type InvoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

const invoiceColumns = `id, user_id, client_id, invoice_number, issue_date, due_date, status, items,
                subtotal, tax_rate, tax_amount, total, payment_status, paid_amount, payment_link, notes,
                created_at, updated_at`

func scanInvoice(row interface{ Scan(...any) error }) (*models.Invoice, error) {
	var inv models.Invoice
	var items []byte
	err := row.Scan(&inv.ID, &inv.UserID, &inv.ClientID, &inv.InvoiceNumber, &inv.IssueDate,
		&inv.DueDate, &inv.Status, &items, &inv.Subtotal, &inv.TaxRate, &inv.TaxAmount,
		&inv.Total, &inv.PaymentStatus, &inv.PaidAmount, &inv.PaymentLink, &inv.Notes,
		&inv.CreatedAt, &inv.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if len(items) > 0 {
		if err := json.Unmarshal(items, &inv.Items); err != nil {
			return nil, fmt.Errorf("decode invoice items: %w", err)
		}
	}
	return &inv, nil
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *models.Invoice) error {
	items, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("encode invoice items: %w", err)
	}
	const q = `
                INSERT INTO invoices (id, user_id, client_id, invoice_number, issue_date, due_date, status, items,
                        subtotal, tax_rate, tax_amount, total, payment_status, paid_amount, payment_link, notes,
                        created_at, updated_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
        `
	_, err = r.db.ExecContext(ctx, q, inv.ID, inv.UserID, inv.ClientID, inv.InvoiceNumber,
		inv.IssueDate, inv.DueDate, inv.Status, items, inv.Subtotal, inv.TaxRate,
		inv.TaxAmount, inv.Total, inv.PaymentStatus, inv.PaidAmount, inv.PaymentLink,
		inv.Notes, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) Update(ctx context.Context, inv *models.Invoice) error {
	items, err := json.Marshal(inv.Items)
	if err != nil {
		return fmt.Errorf("encode invoice items: %w", err)
	}
	const q = `
                UPDATE invoices
                SET client_id=$1, due_date=$2, status=$3, items=$4, subtotal=$5, tax_rate=$6, tax_amount=$7,
                    total=$8, payment_status=$9, paid_amount=$10, payment_link=$11, notes=$12, updated_at=$13
                WHERE id=$14 AND user_id=$15
        `
	if _, err := r.db.ExecContext(ctx, q, inv.ClientID, inv.DueDate, inv.Status, items,
		inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.Total, inv.PaymentStatus,
		inv.PaidAmount, inv.PaymentLink, inv.Notes, inv.UpdatedAt, inv.ID, inv.UserID); err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, userID, id string) (*models.Invoice, error) {
	const q = `SELECT ` + invoiceColumns + ` FROM invoices WHERE id=$1 AND user_id=$2`
	inv, err := scanInvoice(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

func (r *InvoiceRepository) List(ctx context.Context, userID string) ([]models.Invoice, error) {
	const q = `SELECT ` + invoiceColumns + ` FROM invoices WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()

	var res []models.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *inv)
	}
	return res, rows.Err()
}

// CountByUser backs invoice numbering (INV-YYYY-NNNN from count+1).
func (r *InvoiceRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	const q = `SELECT COUNT(*) FROM invoices WHERE user_id=$1`
	var n int
	if err := r.db.QueryRowContext(ctx, q, userID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

func (r *InvoiceRepository) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM invoices WHERE id=$1 AND user_id=$2`
	if _, err := r.db.ExecContext(ctx, q, id, userID); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
