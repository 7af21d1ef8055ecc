package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/g-guevara/ramos-api/internal/dto"
	"github.com/g-guevara/ramos-api/internal/models"
	"github.com/g-guevara/ramos-api/internal/schedule"
	appErrors "github.com/g-guevara/ramos-api/pkg/errors"
)

// PlannerConfig governs search bounds and result caching.
type PlannerConfig struct {
	MaxAttempts     int
	MaxCombinations int
	CacheTTL        time.Duration
}

// PlannerService runs the scheduling engine against stored or inline
// catalogs. Every call receives the full selection state it needs and
// returns a complete result; nothing is carried between calls beyond the
// enumeration cache.
type PlannerService struct {
	catalogs catalogStore
	cache    *CacheService
	metrics  *MetricsService
	logger   *zap.Logger
	cfg      PlannerConfig
}

// NewPlannerService wires planner dependencies.
func NewPlannerService(catalogs catalogStore, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cfg PlannerConfig) *PlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = schedule.DefaultMaxAttempts
	}
	if cfg.MaxCombinations <= 0 {
		cfg.MaxCombinations = schedule.DefaultMaxCombinations
	}
	return &PlannerService{catalogs: catalogs, cache: cache, metrics: metrics, logger: logger, cfg: cfg}
}

// Preview expands a manual selection into conflict-annotated events.
func (s *PlannerService) Preview(ctx context.Context, req dto.PreviewRequest) (*dto.PreviewResponse, error) {
	sections, err := s.resolve(ctx, req.CatalogRef)
	if err != nil {
		return nil, err
	}
	selected, err := selectSections(sections, req.Selection)
	if err != nil {
		return nil, err
	}

	events := schedule.DetectConflicts(schedule.Generate(selected, s.logger))
	return &dto.PreviewResponse{
		Events:        events,
		ConflictCount: schedule.CountConflicts(events),
	}, nil
}

// Recommend runs the randomized search for a low-conflict selection. An
// empty catalog yields an empty response, not an error.
func (s *PlannerService) Recommend(ctx context.Context, req dto.RecommendRequest) (*dto.RecommendResponse, error) {
	sections, err := s.resolve(ctx, req.CatalogRef)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return &dto.RecommendResponse{}, nil
	}

	var rng *rand.Rand
	if req.Seed != nil {
		rng = rand.New(rand.NewSource(*req.Seed))
	}

	selection := schedule.Recommend(sections, rng, s.cfg.MaxAttempts)
	events := schedule.DetectConflicts(schedule.Generate(selection, s.logger))
	conflicts := schedule.CountConflicts(events)
	if s.metrics != nil {
		s.metrics.ObserveRecommendation(conflicts)
	}

	return &dto.RecommendResponse{
		Selection:     selection,
		Events:        events,
		ConflictCount: conflicts,
	}, nil
}

// Combinations enumerates every conflict-free combination, honoring pinned
// sections. Results for stored catalogs are cached; inline catalogs are
// always computed fresh.
func (s *PlannerService) Combinations(ctx context.Context, req dto.CombinationsRequest) (*dto.CombinationsResponse, error) {
	sections, err := s.resolve(ctx, req.CatalogRef)
	if err != nil {
		return nil, err
	}
	if len(sections) == 0 {
		return &dto.CombinationsResponse{}, nil
	}
	fixed, err := selectSections(sections, req.Fixed)
	if err != nil {
		return nil, err
	}

	cacheKey := ""
	if req.CatalogID != "" {
		cacheKey = combinationsCacheKey(req.CatalogID, req.Fixed)
		var cached dto.CombinationsResponse
		if hit, _ := s.cache.Get(ctx, cacheKey, &cached); hit {
			return &cached, nil
		}
	}

	combos := schedule.EnumerateAll(sections, fixed, s.cfg.MaxCombinations)
	resp := &dto.CombinationsResponse{
		Combinations: combos,
		Count:        len(combos),
		Truncated:    len(combos) >= s.cfg.MaxCombinations,
	}
	if s.metrics != nil {
		s.metrics.ObserveEnumeration(resp.Count, resp.Truncated)
	}
	if cacheKey != "" {
		_ = s.cache.Set(ctx, cacheKey, resp, s.cfg.CacheTTL)
	}
	return resp, nil
}

// resolve loads the catalog a planner request points at and parses it into
// course sections.
func (s *PlannerService) resolve(ctx context.Context, ref dto.CatalogRef) ([]models.CourseSection, error) {
	switch {
	case ref.CatalogID != "":
		catalog, err := s.catalogs.FindByID(ctx, ref.CatalogID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return nil, appErrors.Clone(appErrors.ErrNotFound, "catalog not found")
			}
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load catalog")
		}
		return schedule.Parse(catalog.Data, catalog.Format, s.logger), nil
	case ref.Data != "":
		format := models.ScheduleFormat(ref.Format)
		if !format.Valid() {
			return nil, appErrors.Clone(appErrors.ErrUnknownFormat, fmt.Sprintf("unknown schedule format %q", ref.Format))
		}
		return schedule.Parse(ref.Data, format, s.logger), nil
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, "catalogId or data is required")
	}
}

// selectSections maps section keys back to catalog sections. Unknown keys
// are an error: the caller references a section the catalog does not hold.
func selectSections(sections []models.CourseSection, keys []models.SectionKey) ([]models.CourseSection, error) {
	if len(keys) == 0 {
		return nil, nil
	}
	byKey := make(map[models.SectionKey]models.CourseSection, len(sections))
	for _, section := range sections {
		byKey[section.Key()] = section
	}

	selected := make([]models.CourseSection, 0, len(keys))
	for _, key := range keys {
		section, ok := byKey[key]
		if !ok {
			return nil, appErrors.Clone(appErrors.ErrNotFound,
				fmt.Sprintf("section %s-%s not found in catalog", key.Code, key.Section))
		}
		selected = append(selected, section)
	}
	return selected, nil
}

func combinationsCacheKey(catalogID string, fixed []models.SectionKey) string {
	parts := make([]string, 0, len(fixed))
	for _, key := range fixed {
		parts = append(parts, key.Code+"-"+key.Section)
	}
	sort.Strings(parts)
	if len(parts) == 0 {
		return fmt.Sprintf("planner:combinations:%s", catalogID)
	}
	return fmt.Sprintf("planner:combinations:%s:%s", catalogID, strings.Join(parts, ","))
}
