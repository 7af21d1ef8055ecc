package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-guevara/ramos-api/internal/dto"
	"github.com/g-guevara/ramos-api/internal/models"
	appErrors "github.com/g-guevara/ramos-api/pkg/errors"
)

// Two courses, two sections each. A1 section 1 collides with B1 section 1
// on Lunes 11:45; every other pairing is conflict free.
const plannerText = `"A1","Course A","1","Prof X","L3","Lunes","11:45-12:55"
"A1","Course A","2","Prof X","M3","Martes","11:45-12:55"
"B1","Course B","1","Prof Y","L3","Lunes","11:45-12:55"
"B1","Course B","2","Prof Y","J3","Jueves","11:45-12:55"`

func inlineRef() dto.CatalogRef {
	return dto.CatalogRef{Format: "explicit", Data: plannerText}
}

func TestPlannerServicePreview(t *testing.T) {
	svc := NewPlannerService(&catalogStoreMock{}, nil, nil, nil, PlannerConfig{})

	resp, err := svc.Preview(context.Background(), dto.PreviewRequest{
		CatalogRef: inlineRef(),
		Selection: []models.SectionKey{
			{Code: "A1", Section: "1"},
			{Code: "B1", Section: "1"},
		},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Events, 2)
	assert.Equal(t, 2, resp.ConflictCount)
	for _, event := range resp.Events {
		assert.True(t, event.HasConflict)
	}
}

func TestPlannerServicePreviewUnknownSection(t *testing.T) {
	svc := NewPlannerService(&catalogStoreMock{}, nil, nil, nil, PlannerConfig{})

	_, err := svc.Preview(context.Background(), dto.PreviewRequest{
		CatalogRef: inlineRef(),
		Selection:  []models.SectionKey{{Code: "Z9", Section: "1"}},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestPlannerServiceRecommendSeeded(t *testing.T) {
	svc := NewPlannerService(&catalogStoreMock{}, nil, nil, nil, PlannerConfig{})
	seed := int64(7)

	resp, err := svc.Recommend(context.Background(), dto.RecommendRequest{
		CatalogRef: inlineRef(),
		Seed:       &seed,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Selection, 2)
	assert.Equal(t, 0, resp.ConflictCount)

	again, err := svc.Recommend(context.Background(), dto.RecommendRequest{
		CatalogRef: inlineRef(),
		Seed:       &seed,
	})
	require.NoError(t, err)
	assert.Equal(t, resp.Selection, again.Selection)
}

func TestPlannerServiceRecommendEmptyCatalog(t *testing.T) {
	store := &catalogStoreMock{catalogs: map[string]*models.Catalog{
		"cat-1": {ID: "cat-1", Format: models.FormatExplicit, Data: ""},
	}}
	svc := NewPlannerService(store, nil, nil, nil, PlannerConfig{})

	resp, err := svc.Recommend(context.Background(), dto.RecommendRequest{
		CatalogRef: dto.CatalogRef{CatalogID: "cat-1"},
	})
	require.NoError(t, err)
	assert.Empty(t, resp.Selection)
	assert.Zero(t, resp.ConflictCount)
}

func TestPlannerServiceCombinations(t *testing.T) {
	svc := NewPlannerService(&catalogStoreMock{}, nil, nil, nil, PlannerConfig{})

	resp, err := svc.Combinations(context.Background(), dto.CombinationsRequest{
		CatalogRef: inlineRef(),
	})
	require.NoError(t, err)
	assert.Equal(t, 3, resp.Count)
	assert.False(t, resp.Truncated)
	for _, combo := range resp.Combinations {
		assert.Len(t, combo, 2)
	}
}

func TestPlannerServiceCombinationsFixed(t *testing.T) {
	svc := NewPlannerService(&catalogStoreMock{}, nil, nil, nil, PlannerConfig{})

	resp, err := svc.Combinations(context.Background(), dto.CombinationsRequest{
		CatalogRef: inlineRef(),
		Fixed:      []models.SectionKey{{Code: "A1", Section: "2"}},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, resp.Count)
	for _, combo := range resp.Combinations {
		assert.Equal(t, "A1", combo[0].Code)
		assert.Equal(t, "2", combo[0].Section)
	}
}

func TestPlannerServiceResolveRequiresSource(t *testing.T) {
	svc := NewPlannerService(&catalogStoreMock{}, nil, nil, nil, PlannerConfig{})

	_, err := svc.Preview(context.Background(), dto.PreviewRequest{})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErrors.FromError(err).Code)
}

func TestPlannerServiceResolveCatalogNotFound(t *testing.T) {
	svc := NewPlannerService(&catalogStoreMock{}, nil, nil, nil, PlannerConfig{})

	_, err := svc.Combinations(context.Background(), dto.CombinationsRequest{
		CatalogRef: dto.CatalogRef{CatalogID: "missing"},
	})
	require.Error(t, err)
	assert.Equal(t, appErrors.ErrNotFound.Code, appErrors.FromError(err).Code)
}

func TestCombinationsCacheKeyOrderIndependent(t *testing.T) {
	a := combinationsCacheKey("cat-1", []models.SectionKey{
		{Code: "B1", Section: "1"},
		{Code: "A1", Section: "2"},
	})
	b := combinationsCacheKey("cat-1", []models.SectionKey{
		{Code: "A1", Section: "2"},
		{Code: "B1", Section: "1"},
	})
	assert.Equal(t, a, b)
	assert.Equal(t, "planner:combinations:cat-1", combinationsCacheKey("cat-1", nil))
}
