package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-guevara/ramos-api/internal/models"
)

func newCatalogRepoMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return sqlx.NewDb(db, "sqlmock"), mock, func() { db.Close() }
}

func TestCatalogRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO catalogs")).
		WithArgs(sqlmock.AnyArg(), "2024-1", string(models.FormatCompact), sqlmock.AnyArg(), 12, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	payload := &models.Catalog{
		Name:         "2024-1",
		Format:       models.FormatCompact,
		Data:         `"A1","Course A","1","Prof X","L3","Lunes","11:45-12:55"`,
		SectionCount: 12,
	}
	err := repo.Create(context.Background(), payload)
	require.NoError(t, err)
	assert.NotEmpty(t, payload.ID)
	assert.False(t, payload.UpdatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryCreateRequiresName(t *testing.T) {
	db, _, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	err := repo.Create(context.Background(), &models.Catalog{Format: models.FormatCompact})
	assert.Error(t, err)
}

func TestCatalogRepositoryList(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "format", "data", "section_count", "created_at", "updated_at"}).
		AddRow("cat-1", "2024-1", string(models.FormatCompact), "raw", 3, time.Now(), time.Now()).
		AddRow("cat-2", "2024-2", string(models.FormatExplicit), "raw", 5, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, format, data, section_count, created_at, updated_at")).
		WillReturnRows(rows)

	list, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 2)
	assert.Equal(t, "cat-1", list[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "format", "data", "section_count", "created_at", "updated_at"}).
		AddRow("cat-1", "2024-1", string(models.FormatCompact), "raw", 3, time.Now(), time.Now())
	mock.ExpectQuery(regexp.QuoteMeta("FROM catalogs WHERE id = $1")).
		WithArgs("cat-1").
		WillReturnRows(rows)

	catalog, err := repo.FindByID(context.Background(), "cat-1")
	require.NoError(t, err)
	assert.Equal(t, models.FormatCompact, catalog.Format)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryFindByIDMissing(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM catalogs WHERE id = $1")).
		WithArgs("nope").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "nope")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM catalogs WHERE id = $1")).
		WithArgs("cat-1").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Delete(context.Background(), "cat-1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCatalogRepositoryDeleteNotFound(t *testing.T) {
	db, mock, cleanup := newCatalogRepoMock(t)
	defer cleanup()
	repo := NewCatalogRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM catalogs WHERE id = $1")).
		WithArgs("cat-1").
		WillReturnResult(sqlmock.NewResult(1, 0))

	err := repo.Delete(context.Background(), "cat-1")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}
