package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/g-guevara/ramos-api/internal/models"
)

// CatalogRepository persists imported course catalogs.
type CatalogRepository struct {
	db *sqlx.DB
}

// NewCatalogRepository constructs repository.
func NewCatalogRepository(db *sqlx.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// Create inserts a catalog, assigning an id when missing.
func (r *CatalogRepository) Create(ctx context.Context, catalog *models.Catalog) error {
	if catalog == nil {
		return fmt.Errorf("catalog payload is nil")
	}
	if catalog.Name == "" {
		return fmt.Errorf("catalog name is required")
	}
	if catalog.ID == "" {
		catalog.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if catalog.CreatedAt.IsZero() {
		catalog.CreatedAt = now
	}
	catalog.UpdatedAt = now

	const query = `
INSERT INTO catalogs (id, name, format, data, section_count, created_at, updated_at)
VALUES (:id, :name, :format, :data, :section_count, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, catalog); err != nil {
		return fmt.Errorf("insert catalog: %w", err)
	}
	return nil
}

// List returns all stored catalogs, newest first.
func (r *CatalogRepository) List(ctx context.Context) ([]models.Catalog, error) {
	const query = `SELECT id, name, format, data, section_count, created_at, updated_at
FROM catalogs ORDER BY created_at DESC`
	var catalogs []models.Catalog
	if err := r.db.SelectContext(ctx, &catalogs, query); err != nil {
		return nil, fmt.Errorf("list catalogs: %w", err)
	}
	return catalogs, nil
}

// FindByID loads a catalog by its identifier.
func (r *CatalogRepository) FindByID(ctx context.Context, id string) (*models.Catalog, error) {
	const query = `SELECT id, name, format, data, section_count, created_at, updated_at
FROM catalogs WHERE id = $1`
	var catalog models.Catalog
	if err := r.db.GetContext(ctx, &catalog, query, id); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Delete removes a stored catalog.
func (r *CatalogRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM catalogs WHERE id = $1`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("delete catalog: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("catalog rows affected: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}
