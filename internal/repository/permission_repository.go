package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/naturecounter/insights-server/internal/repository/models"
)

type PermissionRepository struct {
	db *sql.DB
}

func NewPermissionRepository(db *sql.DB) *PermissionRepository {
	return &PermissionRepository{db: db}
}

// EnsureSchema creates the permissions table when it does not exist.
func (r *PermissionRepository) EnsureSchema(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS permissions (
			email TEXT PRIMARY KEY,
			role  TEXT NOT NULL
		)
	`
	if _, err := r.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create permissions schema: %w", err)
	}
	return nil
}

// FindByEmail looks up a permission entry by its exact (already normalized)
// email. The second return value reports whether the entry exists.
func (r *PermissionRepository) FindByEmail(ctx context.Context, email string) (models.Permission, bool, error) {
	const query = `SELECT email, role FROM permissions WHERE email = ?`

	var p models.Permission
	err := r.db.QueryRowContext(ctx, query, email).Scan(&p.Email, &p.Role)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Permission{}, false, nil
		}
		return models.Permission{}, false, fmt.Errorf("query FindByEmail: %w", err)
	}
	return p, true, nil
}

// Upsert inserts or replaces a permission entry. Used by the importer.
func (r *PermissionRepository) Upsert(ctx context.Context, p models.Permission) error {
	const query = `
		INSERT INTO permissions (email, role) VALUES (?, ?)
		ON CONFLICT(email) DO UPDATE SET role = excluded.role
	`
	if _, err := r.db.ExecContext(ctx, query, p.Email, p.Role); err != nil {
		return fmt.Errorf("upsert permission %q: %w", p.Email, err)
	}
	return nil
}
