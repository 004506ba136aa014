package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rpggio/curriculum/internal/domain/admin"
	"github.com/rpggio/curriculum/internal/repository"
)

// AdminRepository implements admin.Repository for SQLite
type AdminRepository struct {
	db *DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// Create creates a new admin user
func (r *AdminRepository) Create(ctx context.Context, user *admin.User) error {
	query := `
		INSERT INTO admin_users (id, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.CreatedAt,
	)
	if err != nil {
		return mapWriteError("create admin user", err)
	}

	return nil
}

// GetByEmail retrieves an admin user by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*admin.User, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM admin_users
		WHERE email = ?
	`

	var user admin.User
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}

	return &user, nil
}
