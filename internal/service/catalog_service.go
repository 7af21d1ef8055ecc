package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/g-guevara/ramos-api/internal/dto"
	"github.com/g-guevara/ramos-api/internal/models"
	"github.com/g-guevara/ramos-api/internal/schedule"
	appErrors "github.com/g-guevara/ramos-api/pkg/errors"
)

type catalogStore interface {
	Create(ctx context.Context, catalog *models.Catalog) error
	List(ctx context.Context) ([]models.Catalog, error)
	FindByID(ctx context.Context, id string) (*models.Catalog, error)
	Delete(ctx context.Context, id string) error
}

// CatalogService imports and serves stored course catalogs.
type CatalogService struct {
	catalogs  catalogStore
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
}

// NewCatalogService wires catalog dependencies.
func NewCatalogService(catalogs catalogStore, cache *CacheService, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogService{catalogs: catalogs, cache: cache, validator: validate, logger: logger}
}

// Import parses raw catalog text and persists it. Unparseable lines are
// dropped by the parser; an import yielding no sections at all is rejected.
func (s *CatalogService) Import(ctx context.Context, req dto.ImportCatalogRequest) (*dto.CatalogDetail, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid import payload")
	}
	format := models.ScheduleFormat(req.Format)
	if !format.Valid() {
		return nil, appErrors.Clone(appErrors.ErrUnknownFormat, fmt.Sprintf("unknown schedule format %q", req.Format))
	}

	sections := schedule.Parse(req.Data, format, s.logger)
	if len(sections) == 0 {
		return nil, appErrors.Clone(appErrors.ErrEmptyCatalog, "no parseable course sections in import")
	}
	if err := checkSectionKeys(sections); err != nil {
		return nil, err
	}

	catalog := &models.Catalog{
		Name:         req.Name,
		Format:       format,
		Data:         req.Data,
		SectionCount: len(sections),
	}
	if err := s.catalogs.Create(ctx, catalog); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store catalog")
	}

	s.logger.Info("catalog imported",
		zap.String("catalog_id", catalog.ID),
		zap.String("format", string(format)),
		zap.Int("sections", len(sections)))
	return &dto.CatalogDetail{Catalog: *catalog, Sections: sections}, nil
}

// List returns stored catalog summaries.
func (s *CatalogService) List(ctx context.Context) ([]models.Catalog, error) {
	catalogs, err := s.catalogs.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list catalogs")
	}
	return catalogs, nil
}

// Get loads one catalog with its parsed sections.
func (s *CatalogService) Get(ctx context.Context, id string) (*dto.CatalogDetail, error) {
	if id == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "catalog id is required")
	}
	catalog, err := s.catalogs.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "catalog not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog")
	}
	sections := schedule.Parse(catalog.Data, catalog.Format, s.logger)
	return &dto.CatalogDetail{Catalog: *catalog, Sections: sections}, nil
}

// Delete removes a catalog and any planner results cached for it.
func (s *CatalogService) Delete(ctx context.Context, id string) error {
	if err := s.catalogs.Delete(ctx, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.Clone(appErrors.ErrNotFound, "catalog not found")
		}
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete catalog")
	}
	if s.cache.Enabled() {
		_ = s.cache.Invalidate(ctx, fmt.Sprintf("planner:*:%s*", id))
	}
	return nil
}

// checkSectionKeys enforces (code, section) uniqueness within one catalog.
func checkSectionKeys(sections []models.CourseSection) error {
	seen := make(map[models.SectionKey]bool, len(sections))
	for _, section := range sections {
		key := section.Key()
		if seen[key] {
			return appErrors.Clone(appErrors.ErrValidation,
				fmt.Sprintf("duplicate section %s-%s in catalog", key.Code, key.Section))
		}
		seen[key] = true
	}
	return nil
}
