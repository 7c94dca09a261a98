package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"hustlepro/internal/models"
)

type DocumentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) *DocumentRepository {
	return &DocumentRepository{db: db}
}

const documentColumns = `id, user_id, owner_type, owner_id, title, type, content, is_imported, file_name, file_type, file_size, created_at, updated_at`

func scanDocument(row interface{ Scan(...any) error }) (*models.Document, error) {
	var d models.Document
	err := row.Scan(&d.ID, &d.UserID, &d.OwnerType, &d.OwnerID, &d.Title, &d.Type, &d.Content,
		&d.IsImported, &d.FileName, &d.FileType, &d.FileSize, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *DocumentRepository) Create(ctx context.Context, d *models.Document) error {
	const q = `
                INSERT INTO documents (id, user_id, owner_type, owner_id, title, type, content, is_imported, file_name, file_type, file_size, created_at, updated_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
        `
	_, err := r.db.ExecContext(ctx, q, d.ID, d.UserID, d.OwnerType, d.OwnerID, d.Title, d.Type,
		d.Content, d.IsImported, d.FileName, d.FileType, d.FileSize, d.CreatedAt, d.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}
	return nil
}

// Update never touches the type tag: document types are immutable.
func (r *DocumentRepository) Update(ctx context.Context, d *models.Document) error {
	const q = `
                UPDATE documents
                SET title=$1, content=$2, updated_at=$3
                WHERE id=$4 AND user_id=$5
        `
	if _, err := r.db.ExecContext(ctx, q, d.Title, d.Content, d.UpdatedAt, d.ID, d.UserID); err != nil {
		return fmt.Errorf("update document: %w", err)
	}
	return nil
}

func (r *DocumentRepository) GetByID(ctx context.Context, userID, id string) (*models.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE id=$1 AND user_id=$2`
	d, err := scanDocument(r.db.QueryRowContext(ctx, q, id, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get document: %w", err)
	}
	return d, nil
}

func (r *DocumentRepository) ListByOwner(ctx context.Context, userID string, owner models.DocumentOwner, ownerID string) ([]models.Document, error) {
	const q = `SELECT ` + documentColumns + ` FROM documents WHERE user_id=$1 AND owner_type=$2 AND owner_id=$3 ORDER BY created_at DESC`
	rows, err := r.db.QueryContext(ctx, q, userID, owner, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	defer rows.Close()

	var res []models.Document
	for rows.Next() {
		d, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *d)
	}
	return res, rows.Err()
}

func (r *DocumentRepository) Delete(ctx context.Context, userID, id string) error {
	const q = `DELETE FROM documents WHERE id=$1 AND user_id=$2`
	if _, err := r.db.ExecContext(ctx, q, id, userID); err != nil {
		return fmt.Errorf("delete document: %w", err)
	}
	return nil
}
