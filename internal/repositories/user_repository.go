package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"hustlepro/internal/models"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, password_hash, name, business_name, upi_id, phone, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.BusinessName, &u.UPIID,
		&u.Phone, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) Create(ctx context.Context, u *models.User) error {
	const q = `
                INSERT INTO users (id, email, password_hash, name, business_name, upi_id, phone, created_at, updated_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        `
	_, err := r.db.ExecContext(ctx, q, u.ID, u.Email, u.PasswordHash, u.Name, u.BusinessName,
		u.UPIID, u.Phone, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE email=$1`
	u, err := scanUser(r.db.QueryRowContext(ctx, q, email))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id=$1`
	u, err := scanUser(r.db.QueryRowContext(ctx, q, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, u *models.User) error {
	const q = `
                UPDATE users
                SET name=$1, business_name=$2, upi_id=$3, phone=$4, updated_at=$5
                WHERE id=$6
        `
	if _, err := r.db.ExecContext(ctx, q, u.Name, u.BusinessName, u.UPIID, u.Phone, u.UpdatedAt, u.ID); err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	return nil
}

func (r *UserRepository) StoreRefreshToken(ctx context.Context, token, userID string, expiresAt time.Time) error {
	const q = `INSERT INTO refresh_tokens (token, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, q, token, userID, expiresAt, time.Now()); err != nil {
		return fmt.Errorf("store refresh token: %w", err)
	}
	return nil
}

// DeleteRefreshToken revokes a single token (used on rotation and
// logout).
func (r *UserRepository) DeleteRefreshToken(ctx context.Context, token string) error {
	const q = `DELETE FROM refresh_tokens WHERE token=$1`
	if _, err := r.db.ExecContext(ctx, q, token); err != nil {
		return fmt.Errorf("delete refresh token: %w", err)
	}
	return nil
}

// LookupRefreshToken returns the owning user id, or "" when the token
// is unknown or expired.
func (r *UserRepository) LookupRefreshToken(ctx context.Context, token string) (string, error) {
	const q = `SELECT user_id FROM refresh_tokens WHERE token=$1 AND expires_at > NOW()`
	var userID string
	if err := r.db.QueryRowContext(ctx, q, token).Scan(&userID); err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}
		return "", fmt.Errorf("lookup refresh token: %w", err)
	}
	return userID, nil
}
